package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := NewGoldmarkRenderer()

	tests := []struct {
		name       string
		input      string
		contains   []string
		notContain []string
	}{
		{
			name:     "heading and paragraph",
			input:    "# Hello\n\nWorld",
			contains: []string{`<h1 id="hello">`, "<p>World</p>"},
		},
		{
			name:     "heading permalink",
			input:    "## Getting Started",
			contains: []string{`id="getting-started"`, `href="#getting-started"`, `class="anchor"`},
		},
		{
			name:     "raw HTML passes through",
			input:    "<div class=\"note\">kept</div>\n",
			contains: []string{`<div class="note">kept</div>`},
		},
		{
			name:     "bare URLs become links",
			input:    "see https://example.com/docs for more",
			contains: []string{`<a href="https://example.com/docs">https://example.com/docs</a>`},
		},
		{
			name:     "emoji shorthand",
			input:    "shipped :tada:",
			contains: []string{"\U0001F389"},
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "lists and links",
			input:    "- one\n- [two](https://example.org)\n",
			contains: []string{"<ul>", "<li>one</li>", `<a href="https://example.org">two</a>`},
		},
		{
			name:     "known language is highlighted",
			input:    "```go\nfunc main() {}\n```\n",
			contains: []string{`class="chroma"`, "main"},
		},
		{
			name:       "unknown language renders plain code",
			input:      "```nosuchlang\n<b>x</b>\n```\n",
			contains:   []string{"&lt;b&gt;x&lt;/b&gt;"},
			notContain: []string{"chroma", "<b>x</b>"},
		},
		{
			name:       "missing language renders plain code",
			input:      "```\nplain & simple\n```\n",
			contains:   []string{"<pre><code>plain &amp; simple"},
			notContain: []string{"chroma"},
		},
		{
			name:       "CRLF input",
			input:      "# Title\r\n\r\nBody\r\n",
			contains:   []string{`id="title"`, "<p>Body</p>"},
			notContain: []string{"\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderer.Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got.HTML, want) {
					t.Errorf("Render() missing %q\ngot:\n%s", want, got.HTML)
				}
			}
			for _, unwanted := range tt.notContain {
				if strings.Contains(got.HTML, unwanted) {
					t.Errorf("Render() should not contain %q\ngot:\n%s", unwanted, got.HTML)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_TaskList(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkRenderer().Render(context.Background(), "- [x] done\n- [ ] todo\n")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	for _, want := range []string{
		`<ul class="contains-task-list">`,
		`<li class="task-list-item">`,
		`<input type="checkbox" class="task-list-item-checkbox" checked="">`,
		`<input type="checkbox" class="task-list-item-checkbox">`,
	} {
		if !strings.Contains(got.HTML, want) {
			t.Errorf("Render() missing %q\ngot:\n%s", want, got.HTML)
		}
	}
	if strings.Contains(got.HTML, "disabled") {
		t.Errorf("checkboxes should be interactive, got:\n%s", got.HTML)
	}
}

func TestGoldmarkRenderer_DuplicateHeadings(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkRenderer().Render(context.Background(), "# Notes\n\n## Notes\n\n### Notes\n")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	for _, id := range []string{`id="notes"`, `id="notes-1"`, `id="notes-2"`} {
		if strings.Count(got.HTML, id) != 1 {
			t.Errorf("expected exactly one %s\ngot:\n%s", id, got.HTML)
		}
	}
}

func TestGoldmarkRenderer_Deterministic(t *testing.T) {
	t.Parallel()

	renderer := NewGoldmarkRenderer()
	input := "# Intro\n\n# Intro\n\n```python\nprint('x')\n```\n\n- [ ] task :rocket:\n"

	first, err := renderer.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	second, err := renderer.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("second Render() error: %v", err)
	}
	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first.HTML, second.HTML)
	}
}

func TestGoldmarkRenderer_FrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTitle string
	}{
		{
			name:      "yaml title",
			input:     "---\ntitle: Release Notes\n---\n\n# Body\n",
			wantTitle: "Release Notes",
		},
		{
			name:      "toml title",
			input:     "+++\ntitle = \"Handbook\"\n+++\n\n# Body\n",
			wantTitle: "Handbook",
		},
		{
			name:      "front matter without title",
			input:     "---\nauthor: someone\n---\n\n# Body\n",
			wantTitle: "",
		},
		{
			name:      "no front matter",
			input:     "# Body\n",
			wantTitle: "",
		},
	}

	renderer := NewGoldmarkRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderer.Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if strings.Contains(got.HTML, "title") || strings.Contains(got.HTML, "author") {
				t.Errorf("front matter leaked into body:\n%s", got.HTML)
			}
			if !strings.Contains(got.HTML, `id="body"`) {
				t.Errorf("body heading missing:\n%s", got.HTML)
			}
		})
	}
}

func TestGoldmarkRenderer_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkRenderer().Render(ctx, "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	names := Languages()
	if len(names) < 50 {
		t.Fatalf("Languages() returned %d names, expected the full chroma registry", len(names))
	}

	found := false
	for _, n := range names {
		if strings.EqualFold(n, "go") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Languages() should include Go")
	}
}
