package gemini

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]*)`")
	emphasisRe   = regexp.MustCompile(`\*\*?|__`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
	// Matches the escaped form of <<...>>; escaping runs first, so the
	// raw form cannot occur by the time spans are rewritten.
	escapedSpan = regexp.MustCompile(`&lt;&lt;([^&]*)&gt;&gt;`)
)

// sanitizeLessonText removes the Markdown the model sometimes emits
// despite the plain-text instruction, leaving the <<...>> emphasis
// markers intact.
func sanitizeLessonText(text string) string {
	if text == "" {
		return text
	}

	text = codeFenceRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = emphasisRe.ReplaceAllString(text, "")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// renderLessonHTML converts sanitized lesson text into minimal safe HTML:
// everything is escaped, the <<...>> markers become <strong> spans, and
// newlines become <br>. No other markup survives.
func renderLessonHTML(text string) string {
	if text == "" {
		return text
	}

	escaped := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(text)
	html := escapedSpan.ReplaceAllString(escaped, "<strong>$1</strong>")
	return strings.ReplaceAll(html, "\n", "<br>")
}
