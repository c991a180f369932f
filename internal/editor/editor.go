// Package editor holds the contracts blockgen needs from a host editor and
// the orchestrator that inserts a block and moves the cursor into it.
//
// # Host contract
//
// A host exposes the focused editor through Host. An Editor reports its
// language identifier and selection, applies insertions, and accepts a new
// selection. Insert blocks until the host has applied or rejected the edit;
// a non-nil error means rejected.
//
// # Flow
//
//	kind → catalog.Template(kind, language) → Editor.Insert → PlaceholderOffset → Editor.SetSelection
//
// No state is kept between invocations.
package editor

import "context"

// Position is a zero-based line and column. Columns count characters.
type Position struct {
	Line   int `json:"line"   jsonschema:"zero-based line"`
	Column int `json:"column" jsonschema:"zero-based column in characters"`
}

// Selection is an anchor/active pair. The active end is where the cursor is.
type Selection struct {
	Anchor Position `json:"anchor"`
	Active Position `json:"active"`
}

// Collapsed returns a selection with anchor and active both at pos.
func Collapsed(pos Position) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// IsEmpty reports whether the selection is a bare cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Editor is the focused text editor as seen by blockgen.
type Editor interface {
	// LanguageID returns the identifier of the document's language.
	LanguageID() string
	// Selection returns the current selection.
	Selection() Selection
	// Insert places text at pos. It returns an error if the host rejects
	// the edit; in that case the document may or may not have changed.
	Insert(ctx context.Context, pos Position, text string) error
	// SetSelection replaces the current selection.
	SetSelection(sel Selection)
}

// Host gives access to the focused editor, if any.
type Host interface {
	ActiveEditor() (Editor, bool)
}
