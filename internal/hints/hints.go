// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// maxListedThemes bounds how many theme names are spelled out inline.
const maxListedThemes = 8

// ForUnknownTheme returns hints for an invalid --syntax-theme value.
// Short catalogs are listed in full; long ones point at --list-themes.
func ForUnknownTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) <= maxListedThemes {
		return format("available: " + strings.Join(available, ", "))
	}
	return format(fmt.Sprintf("run --list-themes to see all %d themes (e.g. %s)",
		len(available), strings.Join(available[:3], ", ")))
}

// ForUnknownEncoding returns hints for invalid --input-encoding/--output-encoding values.
func ForUnknownEncoding() string {
	return format("use a WHATWG encoding label such as utf-8, windows-1252, iso-8859-2 or shift_jis")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/md2htmldoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains md2htmldoc/) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "md2htmldoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetPath returns hints for an invalid --asset-path directory.
func ForAssetPath() string {
	return format("--asset-path must be a directory containing styles/<name>.css overrides")
}

// ForWatch returns hints when --watch cannot be used.
func ForWatch() string {
	return format("--watch needs both INPUT_FILE and OUTPUT_FILE (standard streams cannot be watched)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
