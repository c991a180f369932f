package buffer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/blockgen/internal/editor"
)

// OpenOptions controls how a file is opened.
type OpenOptions struct {
	// Language overrides detection when non-empty.
	Language string
	// FallbackLanguage is used when detection finds nothing.
	FallbackLanguage string
	// Cursor is the initial cursor position.
	Cursor editor.Position
}

// File is a host whose only editor is a document loaded from disk.
type File struct {
	path string
	mode os.FileMode
	doc  *Document
}

var _ editor.Host = (*File)(nil)

// Open reads path into a document with its cursor at opts.Cursor. Files
// without an owner write bit open read-only, so insertions are rejected.
func Open(path string, opts OpenOptions) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	language := opts.Language
	if language == "" {
		language = DetectLanguage(path, content)
	}
	if language == "" {
		language = opts.FallbackLanguage
	}

	doc := NewDocument(content, language)
	doc.SetSelection(editor.Collapsed(opts.Cursor))
	doc.SetReadOnly(info.Mode().Perm()&0o200 == 0)
	return &File{path: path, mode: info.Mode().Perm(), doc: doc}, nil
}

// ActiveEditor implements editor.Host.
func (f *File) ActiveEditor() (editor.Editor, bool) {
	return f.doc, true
}

// Document returns the loaded document.
func (f *File) Document() *Document {
	return f.doc
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Save writes the document back to disk through a temp file and rename,
// keeping the original permissions.
func (f *File) Save() error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(f.doc.Text()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, f.mode); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}
