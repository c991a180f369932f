package main

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/catalog"
	"github.com/gorewood/blockgen/internal/editor"
	"github.com/gorewood/blockgen/internal/output"
)

// showResult is the JSON shape of show. The cursor is relative to an
// insertion at the start of a document, zero-based.
type showResult struct {
	catalog.Template
	Placeholder string           `json:"placeholder"`
	Cursor      *editor.Position `json:"cursor,omitempty"`
}

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "show <kind>",
		Short: "Display the template for a block kind",
		Long: `Display the template a block kind inserts for a language.

Without --language the default template is shown. On a terminal the
template is syntax highlighted.

Examples:
  blockgen show if
  blockgen show try-catch --language python
  blockgen show for --language python --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], language)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", catalog.DefaultLanguage, "Language identifier")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, label, language string) error {
	printer := newPrinter(cmd)

	kind, err := block.Parse(label)
	if err != nil {
		userErr := output.Classify(err)
		printer.Error(userErr)
		return userErr
	}

	application, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer application.close()

	tmpl := application.catalog.Template(kind, language)
	result := showResult{Template: tmpl, Placeholder: kind.Placeholder()}
	if cursor, ok := editor.CursorAfterInsert(kind, editor.Position{}, tmpl.Text); ok {
		result.Cursor = &cursor
	}

	if printer.IsJSON() {
		return printer.JSON(result)
	}

	title := kind.String() + " (" + tmpl.Language + ")"
	if tmpl.Fallback {
		title += " - default for " + language
	}
	printer.Snippet(title, renderTemplate(tmpl, printer.IsTTY()))
	printer.Field("Placeholder", kind.Placeholder())
	printer.Field("Source", tmpl.Source)
	return nil
}

// renderTemplate highlights the template for a terminal, or returns it as is.
func renderTemplate(tmpl catalog.Template, isTTY bool) string {
	if !isTTY {
		return tmpl.Text
	}
	lexer := lexers.Get(tmpl.Language)
	if lexer == nil {
		return tmpl.Text
	}

	var sb strings.Builder
	if err := quick.Highlight(&sb, tmpl.Text, lexer.Config().Name, "terminal256", "monokai"); err != nil {
		return tmpl.Text
	}
	return strings.TrimRight(sb.String(), "\n")
}
