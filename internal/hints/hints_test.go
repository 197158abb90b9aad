package hints

import (
	"strings"
	"testing"
)

func TestForUnknownTheme(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "short list is spelled out",
			available: []string{"monokai", "none", "dotfiles"},
			contains:  "monokai, none, dotfiles",
		},
		{
			name:      "long list points to --list-themes",
			available: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "none", "dotfiles"},
			contains:  "--list-themes to see all 11 themes (e.g. a, b, c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForUnknownTheme(tt.available)

			if tt.wantEmpty {
				if hint != "" {
					t.Errorf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForUnknownEncoding(t *testing.T) {
	hint := ForUnknownEncoding()

	if !strings.Contains(hint, "utf-8") {
		t.Error("expected utf-8 mention")
	}
}

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with paths",
			paths:    []string{"./site.yaml", "/home/u/.config/md2htmldoc/site.yaml"},
			contains: "create /home/u/.config/md2htmldoc/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForWatch(t *testing.T) {
	hint := ForWatch()

	if !strings.Contains(hint, "INPUT_FILE") || !strings.Contains(hint, "OUTPUT_FILE") {
		t.Errorf("expected positional argument names, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForUnknownTheme([]string{"none"}),
		ForUnknownEncoding(),
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForAssetPath(),
		ForWatch(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
