package pipeline

import "testing"

func TestNormalizeSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix endings untouched", "a\nb\n", "a\nb\n"},
		{"windows endings", "a\r\nb\r\n", "a\nb\n"},
		{"old mac endings", "a\rb\r", "a\nb\n"},
		{"mixed endings", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"CR before CRLF", "a\r\r\nb", "a\n\nb"},
		{"leading BOM", "\uFEFF# Title", "# Title"},
		{"inner BOM kept", "a\uFEFFb", "a\uFEFFb"},
		{"blank lines preserved", "a\n\n\n\nb", "a\n\n\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeSource(tt.input); got != tt.want {
				t.Errorf("normalizeSource(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
