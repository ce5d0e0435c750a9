// Package phrase derives structured lesson data from the free-form text
// and markup produced by the language model. The upstream output format is
// not strictly guaranteed, so extraction runs a fixed chain of matchers in
// priority order, preferring explicit markers over styling heuristics, and
// degrades to an empty result instead of failing.
package phrase
