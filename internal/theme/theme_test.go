package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestTheme_Variants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		theme          Theme
		wantSet        bool
		wantNone       bool
		wantReserved   bool
		wantBundled    bool
		wantStylesheet bool
	}{
		{"unset", Unset, false, false, false, false, false},
		{"none", None, true, true, false, false, false},
		{"reserved", Reserved, true, false, true, false, true},
		{"bundled", Theme{kind: kindBundled, name: "monokai"}, true, false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.theme.IsSet(); got != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", got, tt.wantSet)
			}
			if got := tt.theme.IsNone(); got != tt.wantNone {
				t.Errorf("IsNone() = %v, want %v", got, tt.wantNone)
			}
			if got := tt.theme.IsReserved(); got != tt.wantReserved {
				t.Errorf("IsReserved() = %v, want %v", got, tt.wantReserved)
			}
			if got := tt.theme.IsBundled(); got != tt.wantBundled {
				t.Errorf("IsBundled() = %v, want %v", got, tt.wantBundled)
			}
			if got := tt.theme.HasStylesheet(); got != tt.wantStylesheet {
				t.Errorf("HasStylesheet() = %v, want %v", got, tt.wantStylesheet)
			}
		})
	}
}

func TestTheme_Or(t *testing.T) {
	t.Parallel()

	if got := Unset.Or(Reserved); got != Reserved {
		t.Errorf("Unset.Or(Reserved) = %v, want Reserved", got)
	}
	if got := None.Or(Reserved); got != None {
		t.Errorf("None.Or(Reserved) = %v, want None", got)
	}
}

func TestCatalog_Parse(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	tests := []struct {
		name    string
		input   string
		want    Theme
		wantErr error
	}{
		{"empty is unset", "", Unset, nil},
		{"whitespace is unset", "  ", Unset, nil},
		{"none", "none", None, nil},
		{"reserved", "dotfiles", Reserved, nil},
		{"bundled", "monokai", Theme{kind: kindBundled, name: "monokai"}, nil},
		{"unknown", "foo", Unset, ErrUnknownTheme},
		{"case sensitive", "Monokai-Nope", Unset, ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCatalog_Names(t *testing.T) {
	t.Parallel()

	names := NewCatalog().Names()
	if len(names) < 3 {
		t.Fatalf("Names() returned %d entries, want bundled themes plus reserved names", len(names))
	}
	if names[len(names)-2] != NoneName || names[len(names)-1] != ReservedName {
		t.Errorf("Names() should end with %q and %q, got %v", NoneName, ReservedName, names[len(names)-2:])
	}

	found := false
	for _, n := range names {
		if n == "monokai" {
			found = true
		}
	}
	if !found {
		t.Error("Names() should include the bundled monokai style")
	}
}

func TestCatalog_CSS(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	t.Run("unset and none have no stylesheet", func(t *testing.T) {
		t.Parallel()

		for _, th := range []Theme{Unset, None} {
			css, err := c.CSS(th)
			if err != nil {
				t.Fatalf("CSS(%v) unexpected error: %v", th, err)
			}
			if css != "" {
				t.Errorf("CSS(%v) = %q, want empty", th, css)
			}
		}
	})

	t.Run("reserved uses dotfiles palette", func(t *testing.T) {
		t.Parallel()

		css, err := c.CSS(Reserved)
		if err != nil {
			t.Fatalf("CSS(Reserved) unexpected error: %v", err)
		}
		if !strings.Contains(css, ".chroma") {
			t.Error("stylesheet should target .chroma classes")
		}
		if !strings.Contains(strings.ToLower(css), "#2d2d2d") {
			t.Error("stylesheet should contain the dotfiles background colour")
		}
	})

	t.Run("bundled theme", func(t *testing.T) {
		t.Parallel()

		th, err := c.Parse("monokai")
		if err != nil {
			t.Fatalf("Parse() unexpected error: %v", err)
		}
		css, err := c.CSS(th)
		if err != nil {
			t.Fatalf("CSS() unexpected error: %v", err)
		}
		if !strings.Contains(css, ".chroma") {
			t.Error("stylesheet should target .chroma classes")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first, _ := c.CSS(Reserved)
		second, _ := c.CSS(Reserved)
		if first != second {
			t.Error("CSS() should be deterministic for the same theme")
		}
	})

	t.Run("bundled name missing from catalog", func(t *testing.T) {
		t.Parallel()

		_, err := c.CSS(Theme{kind: kindBundled, name: "does-not-exist"})
		if !errors.Is(err, ErrUnknownTheme) {
			t.Errorf("CSS() error = %v, want ErrUnknownTheme", err)
		}
	})
}
