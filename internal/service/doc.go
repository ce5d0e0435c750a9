// Package service implements the application's use cases by orchestrating
// the domain entities, the lesson store, and the external generator. It
// contains the submission pipeline (correct, teach, extract, persist), the
// review listing, and quiz generation/evaluation.
package service
