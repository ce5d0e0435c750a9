package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLessonText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips markdown emphasis",
			input: "Phrase to learn: **hit the sack**\nDefinition: __to go to bed__",
			want:  "Phrase to learn: hit the sack\nDefinition: to go to bed",
		},
		{
			name:  "keeps angle markers",
			input: "Phrase to learn: <<hit the sack>>",
			want:  "Phrase to learn: <<hit the sack>>",
		},
		{
			name:  "removes code fences",
			input: "Definition: to sleep\n```\nsome code\n```\nNotes: informal",
			want:  "Definition: to sleep\n\nNotes: informal",
		},
		{
			name:  "unwraps inline code",
			input: "Use `hit the sack` casually.",
			want:  "Use hit the sack casually.",
		},
		{
			name:  "collapses blank runs",
			input: "a\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, sanitizeLessonText(tc.input))
		})
	}
}

func TestRenderLessonHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markers become strong spans",
			input: "Phrase to learn: <<hit the sack>>",
			want:  "Phrase to learn: <strong>hit the sack</strong>",
		},
		{
			name:  "html in the source is escaped",
			input: "never <script> here",
			want:  "never &lt;script&gt; here",
		},
		{
			name:  "newlines become breaks",
			input: "line one\nline two",
			want:  "line one<br>line two",
		},
		{
			name:  "ampersand is escaped",
			input: "bread & butter",
			want:  "bread &amp; butter",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, renderLessonHTML(tc.input))
		})
	}
}
