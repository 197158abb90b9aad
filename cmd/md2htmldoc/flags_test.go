package main

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"in.md", "out.html",
			"--input-encoding", "latin1",
			"--output-encoding", "utf-8",
			"--no-default-stylesheets",
			"--syntax-theme", "monokai",
			"--stylesheet", "a.css", "--stylesheet", "b,c.css",
			"--script", "x.js",
			"--asset-path", "assets",
			"--title", "Doc",
			"--config", "site",
			"-w", "-v",
		}
		f, positional, err := parseFlags(args)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}

		if !slices.Equal(positional, []string{"in.md", "out.html"}) {
			t.Errorf("positional = %v", positional)
		}
		if f.encoding.input != "latin1" || f.encoding.output != "utf-8" {
			t.Errorf("encodings = %+v", f.encoding)
		}
		if !f.styles.noDefaults || f.styles.syntaxTheme != "monokai" {
			t.Errorf("styles = %+v", f.styles)
		}
		// StringArray keeps commas inside a value.
		if !slices.Equal(f.styles.stylesheets, []string{"a.css", "b,c.css"}) {
			t.Errorf("stylesheets = %v", f.styles.stylesheets)
		}
		if !slices.Equal(f.styles.scripts, []string{"x.js"}) {
			t.Errorf("scripts = %v", f.styles.scripts)
		}
		if f.styles.assetPath != "assets" || f.title != "Doc" || f.common.config != "site" {
			t.Errorf("unexpected values: %+v", f)
		}
		if !f.watch || !f.common.verbose {
			t.Error("watch and verbose should be set")
		}
		for _, name := range []string{"syntax-theme", "stylesheet", "title", "watch"} {
			if !f.set[name] {
				t.Errorf("set[%q] = false", name)
			}
		}
	})

	t.Run("unset flags are not recorded", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(positional) != 0 || len(f.set) != 0 {
			t.Errorf("positional = %v, set = %v", positional, f.set)
		}
	})

	t.Run("flags after positional", func(t *testing.T) {
		t.Parallel()

		_, positional, err := parseFlags([]string{"in.md", "--syntax-theme", "none", "out.html"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !slices.Equal(positional, []string{"in.md", "out.html"}) {
			t.Errorf("positional = %v", positional)
		}
	})
}

func TestParseFlags_MultiValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantSheets  []string
		wantScripts []string
		wantPos     []string
	}{
		{
			name:       "values up to next flag",
			args:       []string{"in.md", "--stylesheet", "a.css", "b.css", "--title", "T"},
			wantSheets: []string{"a.css", "b.css"},
			wantPos:    []string{"in.md"},
		},
		{
			name:        "both lists",
			args:        []string{"--script", "x.js", "y.js", "--stylesheet", "a.css", "-v"},
			wantSheets:  []string{"a.css"},
			wantScripts: []string{"x.js", "y.js"},
		},
		{
			name:       "repeated flag still works",
			args:       []string{"--stylesheet", "a.css", "--stylesheet", "b.css"},
			wantSheets: []string{"a.css", "b.css"},
		},
		{
			name:       "equals form takes one value",
			args:       []string{"--stylesheet=a.css", "in.md"},
			wantSheets: []string{"a.css"},
			wantPos:    []string{"in.md"},
		},
		{
			name:       "double dash ends the list",
			args:       []string{"--stylesheet", "a.css", "--", "in.md", "out.html"},
			wantSheets: []string{"a.css"},
			wantPos:    []string{"in.md", "out.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if !slices.Equal(f.styles.stylesheets, tt.wantSheets) {
				t.Errorf("stylesheets = %v, want %v", f.styles.stylesheets, tt.wantSheets)
			}
			if !slices.Equal(f.styles.scripts, tt.wantScripts) {
				t.Errorf("scripts = %v, want %v", f.styles.scripts, tt.wantScripts)
			}
			if !slices.Equal(positional, tt.wantPos) {
				t.Errorf("positional = %v, want %v", positional, tt.wantPos)
			}
		})
	}
}

func TestParseFlags_EmptyListFlag(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{"--stylesheet", "--script"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !f.set["stylesheet"] || !f.set["script"] {
		t.Errorf("set = %v, want stylesheet and script recorded", f.set)
	}
	if len(f.styles.stylesheets) != 0 || len(f.styles.scripts) != 0 {
		t.Errorf("lists = %v, %v, want empty", f.styles.stylesheets, f.styles.scripts)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--nope"}, ErrUsage},
		{"missing value", []string{"--syntax-theme"}, ErrUsage},
		{"three positional", []string{"a", "b", "c"}, ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
