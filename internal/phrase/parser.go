package phrase

import (
	"regexp"
	"strings"

	"github.com/nativephrase/navigator-api/internal/domain"
)

// maxExamples is the target number of example sentences shown per lesson.
const maxExamples = 2

var (
	definitionRe = regexp.MustCompile(`(?is)Definition\s*[:\-]?\s*(.+)`)
	// A definition runs until a blank line or the next labeled section.
	definitionEndRe = regexp.MustCompile(`\n\n|\n[A-Z][a-z]+\s*[:\-]`)
	examplesBlockRe = regexp.MustCompile(`(?is)Examples?\s*[:\-]?\s*(.*?)(?:\n\n|\nNotes:|$)`)
	bulletPrefixRe  = regexp.MustCompile(`^[\-\*\d\.)\s]+`)
	sentenceRe      = regexp.MustCompile(`[^\n.]+\.`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// ParsedLesson is the display-oriented view of a stored lesson record,
// re-derived from the raw lesson content on every listing.
type ParsedLesson struct {
	Phrase     string   `json:"phrase"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	DateAdded  string   `json:"date_added"`
}

// ParseLesson derives the review view of a record from its raw lesson
// content, falling back to the stored fields wherever the lesson text is
// missing or unparseable. It never fails: a fully malformed record yields
// a view built from whatever stored fields exist.
func ParseLesson(record *domain.LessonRecord) ParsedLesson {
	canonical := Extract(record.LessonText, record.LessonHTML)
	if canonical == "" {
		canonical = strings.TrimSpace(record.Phrase)
	}

	definition := parseDefinition(record.LessonText)
	if definition == "" {
		definition = strings.TrimSpace(record.Definition)
	}

	return ParsedLesson{
		Phrase:     canonical,
		Definition: definition,
		Examples:   parseExamples(record, canonical),
		DateAdded:  record.DateAdded,
	}
}

// parseDefinition finds the Definition: label in the lesson text and
// returns the text up to the next blank line or labeled section.
func parseDefinition(lessonText string) string {
	m := definitionRe.FindStringSubmatch(lessonText)
	if m == nil {
		return ""
	}

	value := m[1]
	if loc := definitionEndRe.FindStringIndex(value); loc != nil {
		value = value[:loc[0]]
	}
	return strings.TrimSpace(value)
}

// parseExamples collects up to maxExamples example sentences for a record.
// It prefers the Examples: block of the lesson text, then any examples
// stored on the record, then sentences from the corrected context, then
// sentences of the lesson text that mention the phrase.
func parseExamples(record *domain.LessonRecord, canonical string) []string {
	examples := examplesFromBlock(record.LessonText, canonical)

	for _, stored := range record.Examples {
		examples = appendExample(examples, unwrapMarkers(stored, canonical))
	}

	if len(examples) < maxExamples && record.CorrectedContext != "" {
		for _, sentence := range splitSentences(record.CorrectedContext) {
			examples = appendExample(examples, unwrapMarkers(sentence, canonical))
		}
	}

	if len(examples) < maxExamples && canonical != "" {
		lowered := strings.ToLower(canonical)
		for _, sentence := range sentenceRe.FindAllString(record.LessonText, -1) {
			if strings.Contains(strings.ToLower(sentence), lowered) ||
				strings.Contains(sentence, "<<") {
				examples = appendExample(examples, unwrapMarkers(sentence, canonical))
			}
		}
	}

	return examples
}

// examplesFromBlock parses the Examples: block of the lesson text.
func examplesFromBlock(lessonText, canonical string) []string {
	m := examplesBlockRe.FindStringSubmatch(lessonText)
	if m == nil {
		return nil
	}

	var examples []string
	for _, line := range strings.Split(m[1], "\n") {
		line = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), "")
		examples = appendExample(examples, unwrapMarkers(line, canonical))
	}
	return examples
}

// appendExample adds a cleaned candidate example, skipping short lines,
// duplicates, and anything once the target count is reached.
func appendExample(examples []string, candidate string) []string {
	if len(examples) >= maxExamples {
		return examples
	}

	candidate = strings.TrimSpace(multiSpaceRe.ReplaceAllString(candidate, " "))
	if len(candidate) <= 5 {
		return examples
	}

	for _, existing := range examples {
		if existing == candidate {
			return examples
		}
	}
	return append(examples, candidate)
}

// unwrapMarkers replaces each <<...>> span with its inner text, or with
// the canonical phrase when the span is empty.
func unwrapMarkers(s, canonical string) string {
	s = markerRe.ReplaceAllStringFunc(s, func(span string) string {
		inner := strings.TrimSpace(strings.Trim(span, "<>"))
		if inner == "" {
			return canonical
		}
		return inner
	})
	return strings.TrimSpace(strings.ReplaceAll(s, "<>", ""))
}

// splitSentences breaks text on sentence-final punctuation.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '?' || r == '!' {
			sentences = append(sentences, strings.TrimSpace(text[start:i+1]))
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
