package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/config"
)

// OverrideFileName is the file name looked up in each override location.
const OverrideFileName = config.TemplatesFileName

// overrideFile is the on-disk shape of a template override file.
//
//	aliases:
//	  py: python
//	templates:
//	  if:
//	    go: "if condition {\n\t\n}"
type overrideFile struct {
	Aliases   map[string]string            `yaml:"aliases"`
	Templates map[string]map[string]string `yaml:"templates"`
}

// LoadOptions locates override files. Empty paths are skipped.
type LoadOptions struct {
	// GlobalPath is the user-wide override file.
	GlobalPath string
	// ProjectPath is the project-local override file.
	ProjectPath string
	// Aliases are applied before any file aliases, so files win.
	Aliases map[string]string
}

// DefaultLoadOptions returns the standard override locations:
// <config dir>/templates.yaml and .blockgen/templates.yaml.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		GlobalPath:  config.Locate().TemplatesFile(),
		ProjectPath: filepath.Join(".blockgen", OverrideFileName),
	}
}

// Load builds a catalog from the built-in rows plus override files.
// Resolution order: project-local → user global → built-in.
// Missing files are skipped; unreadable or malformed files are errors.
func Load(opts LoadOptions) (*Catalog, error) {
	c := New()
	for from, to := range opts.Aliases {
		c.addAlias(from, to)
	}

	layers := []struct {
		path   string
		source string
	}{
		{opts.GlobalPath, SourceGlobal},
		{opts.ProjectPath, SourceProject},
	}
	for _, layer := range layers {
		if layer.path == "" {
			continue
		}
		if err := c.applyFile(layer.path, layer.source); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) addAlias(from, to string) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if from == "" || to == "" || from == to {
		return
	}
	c.aliases[from] = to
}

// applyFile layers one override file onto the catalog.
func (c *Catalog) applyFile(path, source string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading template overrides %s: %w", path, err)
	}

	parsed, err := parseOverrides(data)
	if err != nil {
		return fmt.Errorf("template overrides %s: %w", path, err)
	}

	for from, to := range parsed.Aliases {
		c.addAlias(from, to)
	}
	for label, byLang := range parsed.Templates {
		kind, err := block.Parse(label)
		if err != nil {
			return fmt.Errorf("template overrides %s: %w", path, err)
		}
		for lang, text := range byLang {
			lang = strings.ToLower(strings.TrimSpace(lang))
			if lang == "" {
				return fmt.Errorf("template overrides %s: empty language for %s", path, kind)
			}
			c.set(kind, lang, text, source)
		}
	}
	return nil
}

// parseOverrides decodes an override file, rejecting unknown top-level keys.
func parseOverrides(data []byte) (*overrideFile, error) {
	var parsed overrideFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil {
		if errors.Is(err, io.EOF) {
			return &parsed, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &parsed, nil
}
