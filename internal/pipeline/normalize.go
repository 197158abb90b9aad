package pipeline

import "strings"

// lineEndings folds CRLF and lone CR into LF. "\r\n" comes first so it
// is matched before the bare "\r".
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeSource drops a leading byte order mark and unifies line endings,
// so a document renders the same whichever platform saved it.
func normalizeSource(source string) string {
	source = strings.TrimPrefix(source, "\uFEFF")
	if !strings.Contains(source, "\r") {
		return source
	}
	return lineEndings.Replace(source)
}
