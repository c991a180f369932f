package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/buffer"
	"github.com/gorewood/blockgen/internal/editor"
	"github.com/gorewood/blockgen/internal/output"
	"github.com/gorewood/blockgen/internal/picker"
)

// pickFunc prompts for a block kind. ok is false when the user cancelled.
type pickFunc func(cmd *cobra.Command) (kind block.Kind, ok bool, err error)

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	file     string
	at       string
	language string
	dryRun   bool
}

// generateResult is the JSON shape of a generate run. Positions are
// one-based. A rejected run has no cursor and a reason.
type generateResult struct {
	Status   string         `json:"status"`
	File     string         `json:"file"`
	Kind     string         `json:"kind"`
	Language string         `json:"language"`
	Inserted string         `json:"inserted,omitempty"`
	At       output.Cursor  `json:"at"`
	Cursor   *output.Cursor `json:"cursor,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	DryRun   bool           `json:"dry_run,omitempty"`
	Content  string         `json:"content,omitempty"`
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	return newGenerateCmdInternal(nil)
}

// newGenerateCmdInternal creates the generate command with an optional
// picker. If pick is nil, the interactive list is used on a terminal.
func newGenerateCmdInternal(pick pickFunc) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [<kind>]",
		Short: "Insert a code block at the cursor",
		Long: `Insert an if, for, while, switch or try-catch block into a file at the
cursor, then report where the cursor lands: right after the block's
placeholder (condition, length, variable or code).

The template is chosen by the file's language, detected from its name or
given with --language. Languages without a dedicated template get the
default (C++ style) one. Without <kind>, an interactive list is shown.

If the file refuses the edit (read-only, or the cursor is past the end of
the file) nothing is written and the command still succeeds; --json
reports status "rejected" and --verbose says why.

Examples:
  blockgen generate if --file main.py --at 12:5
  blockgen generate try-catch --file server.cpp --at 40 --dry-run
  blockgen generate --file main.py --at 3:1          # pick interactively
  blockgen generate for --file x.txt --language python --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, flags, pick)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "File to edit (required)")
	cmd.Flags().StringVar(&flags.at, "at", "1:1", "Cursor as one-based LINE or LINE:COL")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "Language identifier (overrides detection)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the edited document instead of writing it")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, flags generateFlags, pick pickFunc) error {
	printer := newPrinter(cmd)

	origin, err := parseAt(flags.at)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	kind, ok, err := resolveKind(cmd, args, pick)
	if err != nil {
		printer.Error(err)
		return err
	}
	if !ok {
		// Prompt cancelled: nothing to do.
		return nil
	}

	application, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer application.close()

	file, err := buffer.Open(flags.file, buffer.OpenOptions{
		Language:         flags.language,
		FallbackLanguage: application.settings.FallbackLanguage,
		Cursor:           origin,
	})
	if err != nil {
		exitErr := output.Classify(err)
		printer.Error(exitErr)
		return exitErr
	}

	orch := editor.NewOrchestrator(file, application.catalog, editor.WithLogger(application.logger))
	outcome, err := orch.Generate(cmd.Context(), kind)
	if err != nil {
		exitErr := output.Classify(err)
		printer.Error(exitErr)
		return exitErr
	}

	if outcome.Status != editor.StatusApplied {
		reason := rejectionReason(outcome)
		application.logger.Debug("generate aborted",
			zap.String("file", file.Path()),
			zap.String("status", string(outcome.Status)),
			zap.Error(outcome.Err))
		if boolFlag(cmd, "verbose") {
			printer.Hint("nothing inserted into %s: %s\n", file.Path(), reason)
		}
		if printer.IsJSON() {
			result := buildGenerateResult(file, outcome, false)
			result.Reason = reason
			return printer.JSON(result)
		}
		return nil
	}

	if !flags.dryRun {
		if err := file.Save(); err != nil {
			exitErr := output.Classify(err)
			printer.Error(exitErr)
			return exitErr
		}
	}

	return outputGenerate(printer, buildGenerateResult(file, outcome, flags.dryRun))
}

// resolveKind takes the kind from args, or prompts for it on a terminal.
func resolveKind(cmd *cobra.Command, args []string, pick pickFunc) (block.Kind, bool, error) {
	if len(args) == 1 {
		kind, err := block.Parse(args[0])
		if err != nil {
			return 0, false, output.Classify(err)
		}
		return kind, true, nil
	}

	if pick == nil {
		if isJSONMode(cmd) || !output.IsInteractive(cmd.InOrStdin()) {
			return 0, false, output.NewUserError("specify a block kind: if, for, while, switch or try-catch")
		}
		pick = interactivePick
	}
	kind, ok, err := pick(cmd)
	if err != nil {
		return 0, false, output.Classify(err)
	}
	return kind, ok, nil
}

// interactivePick shows the bubbletea block list on the terminal.
func interactivePick(cmd *cobra.Command) (block.Kind, bool, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return picker.Pick(ctx, cmd.InOrStdin(), cmd.ErrOrStderr())
}

// rejectionReason explains why nothing was inserted.
func rejectionReason(outcome editor.Outcome) string {
	switch {
	case outcome.Status == editor.StatusNoEditor:
		return "no active editor"
	case outcome.Err != nil:
		return outcome.Err.Error()
	default:
		return "edit rejected"
	}
}

// buildGenerateResult converts an outcome into one-based output.
func buildGenerateResult(file *buffer.File, outcome editor.Outcome, dryRun bool) generateResult {
	result := generateResult{
		Status:   string(outcome.Status),
		File:     file.Path(),
		Kind:     outcome.Kind.String(),
		Language: outcome.Language,
		At:       toCursor(outcome.Origin),
		DryRun:   dryRun,
	}
	if outcome.Status == editor.StatusApplied {
		result.Inserted = outcome.Text
	}
	if outcome.Cursor != nil {
		cursor := toCursor(*outcome.Cursor)
		result.Cursor = &cursor
	}
	if dryRun {
		result.Content = file.Document().Text()
	}
	return result
}

// outputGenerate prints the result in JSON or human form.
func outputGenerate(printer *output.Printer, result generateResult) error {
	if printer.IsJSON() {
		return printer.JSON(result)
	}

	if result.DryRun {
		printer.Raw(result.Content)
		printer.Hint("dry run: %s not written\n", result.File)
		return nil
	}

	printer.Inserted(output.Insertion{
		Kind:     result.Kind,
		Language: result.Language,
		File:     result.File,
		At:       result.At,
		Cursor:   result.Cursor,
	})
	return nil
}
