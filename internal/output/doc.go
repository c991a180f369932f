// Package output renders blockgen command results for people and tools.
//
// Human output is styled with lipgloss when color is enabled; --json
// switches every command to JSON on stdout.
//
//	color := output.ResolveColorMode(flag, output.IsTTY(cmd.OutOrStdout()))
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, color).WithStderr(cmd.ErrOrStderr())
//
//	printer.Inserted(output.Insertion{Kind: "if", Language: "cpp", File: "main.cpp", At: at, Cursor: &cursor})
//	printer.Snippet("if (python)", text)
//	printer.Table(headers, rows)
//	printer.Error(output.Classify(err))
//
// In JSON mode errors are written as {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success, also a cancelled prompt or a refused edit
//	output.ExitUserError   // 1: bad kind, bad --at, missing file
//	output.ExitSystemError // 2: I/O error, malformed settings or overrides
package output
