package service

import "strings"

// defaultOverlapThreshold is the token-overlap ratio above which a
// free-text answer counts as correct.
const defaultOverlapThreshold = 0.4

// AnswerScorer scores a free-text answer against a stored definition.
// Implementations must be deterministic for identical inputs, and adding
// overlapping tokens to the answer must never decrease the score.
type AnswerScorer interface {
	// Score returns a similarity score in [0, 1] and whether the answer
	// should count as correct.
	Score(answer, definition string) (float64, bool)
}

// TokenOverlapScorer is the default AnswerScorer: the fraction of the
// definition's distinct tokens that also appear in the answer, computed
// over lowercased, punctuation-stripped tokens. An answer containing the
// whole cleaned definition is correct regardless of ratio.
type TokenOverlapScorer struct {
	// Threshold is the minimum score that counts as correct.
	Threshold float64
}

// NewTokenOverlapScorer creates a TokenOverlapScorer with the default
// threshold.
func NewTokenOverlapScorer() *TokenOverlapScorer {
	return &TokenOverlapScorer{Threshold: defaultOverlapThreshold}
}

// Ensure TokenOverlapScorer implements AnswerScorer interface
var _ AnswerScorer = (*TokenOverlapScorer)(nil)

// Score implements AnswerScorer.Score.
func (s *TokenOverlapScorer) Score(answer, definition string) (float64, bool) {
	answerClean := cleanForComparison(answer)
	definitionClean := cleanForComparison(definition)

	definitionTokens := distinctTokens(definitionClean)
	if len(definitionTokens) == 0 {
		return 0.0, false
	}

	answerTokens := distinctTokens(answerClean)
	common := 0
	for token := range definitionTokens {
		if answerTokens[token] {
			common++
		}
	}

	score := float64(common) / float64(len(definitionTokens))
	correct := score >= s.Threshold || strings.Contains(answerClean, definitionClean)
	return score, correct
}

// cleanForComparison lowercases text and strips everything that is not a
// letter, digit, or whitespace.
func cleanForComparison(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\t', r == '\n':
			b.WriteRune(r)
		case r > 127:
			// Keep non-ASCII letters; definitions are mostly English but
			// the store does not require it.
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// distinctTokens splits cleaned text into a set of whitespace-separated
// tokens.
func distinctTokens(clean string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Fields(clean) {
		tokens[token] = true
	}
	return tokens
}
