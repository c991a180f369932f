package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/gorewood/blockgen/internal/block"
)

// PlaceholderOffset returns the character index right after the first
// occurrence of kind's placeholder token in text. ok is false when the
// token is absent.
func PlaceholderOffset(kind block.Kind, text string) (offset int, ok bool) {
	token := kind.Placeholder()
	if token == "" {
		return 0, false
	}
	idx := strings.Index(text, token)
	if idx < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(text[:idx+len(token)]), true
}

// Delta splits the first offset characters of text on newlines.
// lineDelta is the number of newlines seen; column is the length of the
// text after the last newline, or offset itself when there was none.
func Delta(text string, offset int) (lineDelta, column int) {
	prefix := text
	if n := utf8.RuneCountInString(text); offset < n {
		prefix = string([]rune(text)[:offset])
	}
	lineDelta = strings.Count(prefix, "\n")
	if lineDelta == 0 {
		return 0, utf8.RuneCountInString(prefix)
	}
	tail := prefix[strings.LastIndexByte(prefix, '\n')+1:]
	return lineDelta, utf8.RuneCountInString(tail)
}

// CursorAfterInsert computes where the cursor lands when text for kind was
// inserted at origin. ok is false when text has no placeholder for kind,
// in which case the cursor should stay where the host put it.
func CursorAfterInsert(kind block.Kind, origin Position, text string) (Position, bool) {
	offset, ok := PlaceholderOffset(kind, text)
	if !ok {
		return origin, false
	}
	lineDelta, column := Delta(text, offset)
	if lineDelta == 0 {
		return Position{Line: origin.Line, Column: origin.Column + column}, true
	}
	return Position{Line: origin.Line + lineDelta, Column: column}, true
}
