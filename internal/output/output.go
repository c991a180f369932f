package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results as indented JSON or as styled text.
// In human mode errors and hints go to a separate writer so stdout stays
// pipeable; in JSON mode everything is on stdout.
type Printer struct {
	out   io.Writer
	hints io.Writer
	json  bool
	color bool
	theme theme
}

// theme holds the lipgloss styles of human mode. Every style is plain when
// color is off.
type theme struct {
	errLabel lipgloss.Style
	ok       lipgloss.Style
	header   lipgloss.Style
	title    lipgloss.Style
	key      lipgloss.Style
	cursor   lipgloss.Style
	border   lipgloss.TerminalColor
}

func newTheme(color bool) theme {
	if !color {
		plain := lipgloss.NewStyle()
		return theme{
			errLabel: plain,
			ok:       plain,
			header:   plain,
			title:    plain,
			key:      plain,
			cursor:   plain,
			border:   lipgloss.NoColor{},
		}
	}
	return theme{
		errLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		header:   lipgloss.NewStyle().Bold(true),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		border:   lipgloss.Color("8"),
	}
}

// NewPrinter returns a printer on w. color enables styles and boxes in
// human mode; pass the result of ResolveColorMode.
func NewPrinter(w io.Writer, jsonMode bool, color bool) *Printer {
	return &Printer{
		out:   w,
		hints: w,
		json:  jsonMode,
		color: color,
		theme: newTheme(color),
	}
}

// WithStderr routes human-mode errors and hints to w.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.hints = w
	return p
}

// IsJSON reports whether the printer writes JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY reports whether styled output is enabled.
func (p *Printer) IsTTY() bool {
	return p.color
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Error reports err. JSON mode writes {"error": "...", "code": N} to
// stdout; human mode writes "Error: ..." to the hint writer.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitCode(err), Message: err.Error()}
	}

	if p.json {
		mustWrite(fmt.Fprintf(p.out, "%s\n", errorJSON(exitErr.Message, exitErr.Code)))
		return
	}
	mustWrite(fmt.Fprintf(p.hints, "%s: %s\n", p.theme.errLabel.Render("Error"), exitErr.Message))
}

// Hint writes a status line to the hint writer. Silent in JSON mode.
func (p *Printer) Hint(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.hints, format, args...))
}

// Raw writes text to stdout unchanged, e.g. a dry-run document.
func (p *Printer) Raw(text string) {
	mustWrite(io.WriteString(p.out, text))
}

// Field writes "key: value".
func (p *Printer) Field(key, value string) {
	mustWrite(fmt.Fprintf(p.out, "%s %s\n", p.theme.key.Render(key+":"), value))
}

// Table writes rows under bold headers with space-padded columns.
// Widths are measured in cells, so non-ASCII language names line up.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = p.theme.header.Render(pad(h, widths[i]))
	}
	mustWrite(fmt.Fprintln(p.out, strings.Join(styled, "  ")))

	for _, row := range rows {
		cells := make([]string, 0, len(widths))
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			cells = append(cells, pad(cell, widths[i]))
		}
		mustWrite(fmt.Fprintln(p.out, strings.Join(cells, "  ")))
	}
}

// Snippet shows a template. With color it is framed in a rounded box
// under its title, tabs expanded; without color the title, a blank line
// and the text are written verbatim so the template can be piped.
func (p *Printer) Snippet(title, text string) {
	if !p.color {
		if title != "" {
			mustWrite(fmt.Fprintf(p.out, "%s\n\n", title))
		}
		mustWrite(fmt.Fprintln(p.out, text))
		return
	}

	body := text
	if title != "" {
		body = p.theme.title.Render(title) + "\n\n" + text
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.border).
		Padding(0, 1)
	mustWrite(fmt.Fprintln(p.out, frame.Render(body)))
}

func errorJSON(message string, code int) []byte {
	data, _ := json.Marshal(struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}{message, code})
	return data
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// mustWrite panics on a failed write to stdout, stderr or a buffer.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
