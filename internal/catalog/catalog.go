// Package catalog maps a block kind and a language identifier to the
// literal text inserted into the editor.
//
// Lookup never fails: a language without its own row for a kind gets the
// kind's DefaultLanguage row. Rows can be added or replaced by YAML
// override files; see Load.
package catalog

import (
	"maps"
	"slices"
	"strings"

	"github.com/gorewood/blockgen/internal/block"
)

// Row sources, from lowest to highest precedence.
const (
	SourceBuiltin = "built-in"
	SourceGlobal  = "global"
	SourceProject = "project"
)

// Template is the text inserted for a kind in a given language.
type Template struct {
	Kind     block.Kind `json:"kind"`
	Language string     `json:"language"`
	Text     string     `json:"text"`
	Source   string     `json:"source"`
	// Fallback is set when the requested language had no row and the
	// DefaultLanguage row was used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// Placeholder returns the token the cursor should land after.
func (t Template) Placeholder() string {
	return t.Kind.Placeholder()
}

type row struct {
	text   string
	source string
}

// Catalog holds the template rows and language aliases.
// A Catalog is read-only once built and safe for concurrent use.
type Catalog struct {
	rows    map[block.Kind]map[string]row
	aliases map[string]string
}

// New returns a catalog holding only the built-in rows.
func New() *Catalog {
	c := &Catalog{
		rows:    make(map[block.Kind]map[string]row, len(builtinTemplates)),
		aliases: make(map[string]string),
	}
	for kind, byLang := range builtinTemplates {
		for lang, text := range byLang {
			c.set(kind, lang, text, SourceBuiltin)
		}
	}
	return c
}

func (c *Catalog) set(kind block.Kind, language, text, source string) {
	byLang, ok := c.rows[kind]
	if !ok {
		byLang = make(map[string]row)
		c.rows[kind] = byLang
	}
	byLang[language] = row{text: text, source: source}
}

// Normalize lowercases a language identifier and resolves aliases.
func (c *Catalog) Normalize(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if target, ok := c.aliases[lang]; ok {
		return target
	}
	return lang
}

// Template returns the row for kind in language, falling back to the
// kind's default row.
func (c *Catalog) Template(kind block.Kind, language string) Template {
	lang := c.Normalize(language)
	byLang := c.rows[kind]
	if r, ok := byLang[lang]; ok {
		return Template{Kind: kind, Language: lang, Text: r.text, Source: r.source}
	}
	r := byLang[DefaultLanguage]
	return Template{Kind: kind, Language: DefaultLanguage, Text: r.text, Source: r.source, Fallback: true}
}

// Languages returns the languages with a row for kind, default first.
func (c *Catalog) Languages(kind block.Kind) []string {
	langs := slices.Sorted(maps.Keys(c.rows[kind]))
	return slices.SortedStableFunc(slices.Values(langs), func(a, b string) int {
		switch {
		case a == DefaultLanguage:
			return -1
		case b == DefaultLanguage:
			return 1
		}
		return 0
	})
}

// Entries returns every row, ordered by kind then language.
func (c *Catalog) Entries() []Template {
	var entries []Template
	for _, kind := range block.All() {
		for _, lang := range c.Languages(kind) {
			r := c.rows[kind][lang]
			entries = append(entries, Template{Kind: kind, Language: lang, Text: r.text, Source: r.source})
		}
	}
	return entries
}

// Aliases returns a copy of the configured language aliases.
func (c *Catalog) Aliases() map[string]string {
	return maps.Clone(c.aliases)
}
