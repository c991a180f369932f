package main

import (
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/catalog"
)

// listEntry is one catalog row in list output.
type listEntry struct {
	Kind        string `json:"kind"`
	Language    string `json:"language"`
	Source      string `json:"source"`
	Placeholder string `json:"placeholder"`
	Fallback    bool   `json:"fallback,omitempty"`
}

// listResult is the JSON shape of list.
type listResult struct {
	Entries []listEntry       `json:"entries"`
	Aliases map[string]string `json:"aliases,omitempty"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List block kinds and their templates",
		Long: `List every template row: block kind, language, and where it comes from
(built-in, global or project overrides). Language aliases from settings
and override files are listed after the table.

With --language, show the single template each kind would use for that
language instead, marking fallbacks to the default.

Examples:
  blockgen list
  blockgen list --language python
  blockgen list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, language)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Resolve templates for this language")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, language string) error {
	printer := newPrinter(cmd)

	application, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer application.close()

	entries := listEntries(application.catalog, language)
	aliases := application.catalog.Aliases()

	if printer.IsJSON() {
		return printer.JSON(listResult{Entries: entries, Aliases: aliases})
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		lang := e.Language
		if e.Fallback {
			lang += " (default)"
		}
		rows = append(rows, []string{e.Kind, lang, e.Placeholder, e.Source})
	}
	printer.Table([]string{"KIND", "LANGUAGE", "PLACEHOLDER", "SOURCE"}, rows)
	printer.Hint("%d templates\n", len(entries))
	if len(aliases) > 0 {
		printer.Hint("aliases: %s\n", formatAliases(aliases))
	}
	return nil
}

// formatAliases renders aliases as sorted "from=to" pairs.
func formatAliases(aliases map[string]string) string {
	pairs := make([]string, 0, len(aliases))
	for _, from := range slices.Sorted(maps.Keys(aliases)) {
		pairs = append(pairs, from+"="+aliases[from])
	}
	return strings.Join(pairs, ", ")
}

// listEntries returns every catalog row, or one resolved row per kind when
// language is set.
func listEntries(cat *catalog.Catalog, language string) []listEntry {
	var templates []catalog.Template
	if language == "" {
		templates = cat.Entries()
	} else {
		for _, kind := range block.All() {
			templates = append(templates, cat.Template(kind, language))
		}
	}

	entries := make([]listEntry, 0, len(templates))
	for _, t := range templates {
		entries = append(entries, listEntry{
			Kind:        t.Kind.String(),
			Language:    t.Language,
			Source:      t.Source,
			Placeholder: t.Placeholder(),
			Fallback:    t.Fallback,
		})
	}
	return entries
}
