package pipeline

import (
	"strconv"

	"github.com/shurcooL/sanitized_anchor_name"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// fallbackHeadingID is used when a heading has no letters or digits.
const fallbackHeadingID = "section"

// headingIDs generates heading identifiers for a single document.
// Identical heading text yields "notes", "notes-1", "notes-2" in document
// order, so the result depends only on the input.
type headingIDs struct {
	used map[string]bool
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: make(map[string]bool)}
}

// Generate implements parser.IDs.
func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := sanitized_anchor_name.Create(string(value))
	if base == "" {
		base = fallbackHeadingID
	}

	id := base
	for i := 1; h.used[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	h.used[id] = true
	return []byte(id)
}

// Put implements parser.IDs.
func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = true
}

var _ parser.IDs = (*headingIDs)(nil)
