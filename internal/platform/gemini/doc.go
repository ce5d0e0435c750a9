// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the system instructions for the corrector
// and tutor calls, the retry policy around the API, and the normalization
// of raw model output into plain lesson text and safe lesson HTML.
package gemini
