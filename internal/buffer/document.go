// Package buffer provides an in-memory text document and a file-backed
// host, so blockgen can run outside a GUI editor.
package buffer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gorewood/blockgen/internal/editor"
)

var (
	// ErrPositionOutOfRange is returned when an insertion targets a line or
	// column the document does not have.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrReadOnly is returned when inserting into a read-only document.
	ErrReadOnly = errors.New("document is read-only")
)

// Document is a mutable text buffer with a selection.
// All methods are safe for concurrent use; edits are applied in the order
// they acquire the lock.
type Document struct {
	mu        sync.Mutex
	text      string
	language  string
	eol       string
	selection editor.Selection
	version   int
	readOnly  bool
}

var _ editor.Editor = (*Document)(nil)

// NewDocument returns a document holding text in the given language.
// The line ending style is taken from the first line break in text.
func NewDocument(text, language string) *Document {
	eol := "\n"
	if idx := strings.IndexByte(text, '\n'); idx > 0 && text[idx-1] == '\r' {
		eol = "\r\n"
	}
	return &Document{text: text, language: language, eol: eol}
}

// LanguageID implements editor.Editor.
func (d *Document) LanguageID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.language
}

// Selection implements editor.Editor.
func (d *Document) Selection() editor.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// SetSelection implements editor.Editor.
func (d *Document) SetSelection(sel editor.Selection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = sel
}

// SetReadOnly makes subsequent insertions fail with ErrReadOnly.
func (d *Document) SetReadOnly(readOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = readOnly
}

// Text returns the current contents.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Version counts applied edits.
func (d *Document) Version() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

// Insert implements editor.Editor. Line breaks in text are converted to
// the document's line ending before insertion.
func (d *Document) Insert(ctx context.Context, pos editor.Position, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return ErrReadOnly
	}
	offset, err := d.byteOffset(pos)
	if err != nil {
		return err
	}
	if d.eol != "\n" {
		text = strings.ReplaceAll(text, "\n", d.eol)
	}
	d.text = d.text[:offset] + text + d.text[offset:]
	d.version++
	return nil
}

// byteOffset maps a line/column position onto a byte index in d.text.
// The column may equal the line length (end of line) but not exceed it.
func (d *Document) byteOffset(pos editor.Position) (int, error) {
	if pos.Line < 0 || pos.Column < 0 {
		return 0, fmt.Errorf("%w: %d:%d", ErrPositionOutOfRange, pos.Line, pos.Column)
	}

	start := 0
	for line := 0; line < pos.Line; line++ {
		idx := strings.IndexByte(d.text[start:], '\n')
		if idx < 0 {
			return 0, fmt.Errorf("%w: line %d (document has %d lines)", ErrPositionOutOfRange, pos.Line, line+1)
		}
		start += idx + 1
	}

	lineText := d.text[start:]
	if idx := strings.IndexByte(lineText, '\n'); idx >= 0 {
		lineText = lineText[:idx]
	}
	lineText = strings.TrimSuffix(lineText, "\r")

	if pos.Column > utf8.RuneCountInString(lineText) {
		return 0, fmt.Errorf("%w: column %d on line %d", ErrPositionOutOfRange, pos.Column, pos.Line)
	}

	offset := start
	for col := 0; col < pos.Column; col++ {
		_, size := utf8.DecodeRuneInString(d.text[offset:])
		offset += size
	}
	return offset, nil
}
