// Package memorybank implements the lesson store on top of a single JSON
// document, the long-term memory bank of taught phrases. The whole
// document is rewritten atomically on every append, and a store-level
// mutex serializes writers against each other and against snapshot reads,
// since the format itself offers no concurrency control.
package memorybank
