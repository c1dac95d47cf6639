package wrapgen

import (
	"go/ast"
	"strings"
)

// firstDocLine returns the first line of a doc comment, trimmed.
// Comment markers and directives (//go:generate, //nolint:all, ...) are
// dropped by ast.CommentGroup.Text; only the first line is kept.
func firstDocLine(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}

	text := doc.Text()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
