package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorewood/blockgen/internal/editor"
	"github.com/gorewood/blockgen/internal/output"
)

// parseAt parses a one-based "LINE" or "LINE:COL" cursor flag into a
// zero-based editor position.
func parseAt(value string) (editor.Position, error) {
	lineStr, colStr, hasCol := strings.Cut(strings.TrimSpace(value), ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return editor.Position{}, fmt.Errorf("invalid --at %q: line must be a positive number", value)
	}
	col := 1
	if hasCol {
		col, err = strconv.Atoi(colStr)
		if err != nil || col < 1 {
			return editor.Position{}, fmt.Errorf("invalid --at %q: column must be a positive number", value)
		}
	}
	return editor.Position{Line: line - 1, Column: col - 1}, nil
}

// toCursor converts a zero-based editor position for display.
func toCursor(pos editor.Position) output.Cursor {
	return output.Cursor{Line: pos.Line + 1, Column: pos.Column + 1}
}
