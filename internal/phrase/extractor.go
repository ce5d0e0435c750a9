package phrase

import (
	"regexp"
	"strings"
)

// Extraction patterns, compiled once. The labeled pattern captures either a
// <<...>> marker (group 1) or a freestanding span up to end of line
// (group 2); the marker group is listed first so it wins when both could
// match.
var (
	labeledRe = regexp.MustCompile(
		`(?i)(?:Phrase to learn|Suggested colloquial phrase)\s*[:\-]?\s*(?:<<([^>]+)>>|"?([^\n"]+)"?)`,
	)
	markerRe = regexp.MustCompile(`<<([^>]+)>>`)
	strongRe = regexp.MustCompile(`(?i)<(?:strong|b)>([^<]+)</(?:strong|b)>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	quotedRe = regexp.MustCompile(`"([^"]{2,40})"`)
)

// matcher is one step of the extraction chain. Matchers are total: they
// return the matched phrase or the empty string, never an error.
type matcher func(lessonText, lessonHTML string) string

// extractionChain lists the matchers in strict priority order.
// First non-empty result wins.
var extractionChain = []matcher{
	matchLabeledText,
	matchMarkerText,
	matchLabeledStrippedHTML,
	matchEmphasizedHTML,
}

// Extract returns the single canonical phrase found in the lesson text
// and/or markup, trimmed of surrounding whitespace and quote characters.
// It returns the empty string when no phrase can be confidently
// identified.
func Extract(lessonText, lessonHTML string) string {
	for _, match := range extractionChain {
		if phrase := match(lessonText, lessonHTML); phrase != "" {
			return phrase
		}
	}
	return ""
}

// ExtractCandidate pulls a candidate phrase out of arbitrary generator
// output, such as the corrector's response. It is a weaker variant of
// Extract used before the lesson exists: markers first, then labeled
// lines, then a short quoted span.
func ExtractCandidate(text string) string {
	if text == "" {
		return ""
	}

	if m := markerRe.FindStringSubmatch(text); m != nil {
		if phrase := clean(m[1]); phrase != "" {
			return phrase
		}
	}

	if phrase := matchLabeledText(text, ""); phrase != "" {
		return phrase
	}

	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return clean(m[1])
	}

	return ""
}

// matchLabeledText finds a labeled phrase line in the plain lesson text.
func matchLabeledText(lessonText, _ string) string {
	return matchLabeled(lessonText)
}

// matchMarkerText finds any <<...>> span in the plain lesson text,
// with no label requirement.
func matchMarkerText(lessonText, _ string) string {
	if m := markerRe.FindStringSubmatch(lessonText); m != nil {
		return clean(m[1])
	}
	return ""
}

// matchLabeledStrippedHTML strips all markup tags from the lesson HTML and
// re-runs the labeled search against the result. Each tag is replaced with
// a newline so that line boundaries survive the stripping: the freestanding
// label group must not run across what used to be separate elements.
func matchLabeledStrippedHTML(_, lessonHTML string) string {
	if lessonHTML == "" {
		return ""
	}
	return matchLabeled(tagRe.ReplaceAllString(lessonHTML, "\n"))
}

// matchEmphasizedHTML falls back to the first bold/strong span in the raw
// lesson HTML. This is the weakest signal and runs last.
func matchEmphasizedHTML(_, lessonHTML string) string {
	if m := strongRe.FindStringSubmatch(lessonHTML); m != nil {
		return clean(m[1])
	}
	return ""
}

// matchLabeled applies the labeled pattern to the given text, preferring
// the <<...>> group over the freestanding one.
func matchLabeled(text string) string {
	m := labeledRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if phrase := clean(m[1]); phrase != "" {
		return phrase
	}
	return clean(m[2])
}

// clean trims leading/trailing whitespace and quote characters from a
// matched span.
func clean(s string) string {
	return strings.Trim(s, " \t\r\n\"'“”‘’")
}
