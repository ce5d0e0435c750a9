// Package generation provides interfaces and implementations for
// interacting with external AI/LLM services for content generation. It
// abstracts the details of LLM API integration (Gemini), allowing the
// application to correct user sentences and produce phrase lessons
// without coupling to specific external services.
package generation
