package output

import "fmt"

// Cursor is a one-based line and column as users and compilers count them.
type Cursor struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String formats the cursor as LINE:COL.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Insertion summarizes an applied block insertion.
type Insertion struct {
	Kind     string
	Language string
	File     string
	At       Cursor
	// Cursor is where the cursor landed, nil when it was not moved.
	Cursor *Cursor
}

// Inserted reports an insertion on one line:
//
//	Inserted if block (cpp) into main.cpp at 2:2; cursor 2:15
func (p *Printer) Inserted(ins Insertion) {
	line := fmt.Sprintf("Inserted %s block (%s) into %s at %s",
		p.theme.header.Render(ins.Kind), ins.Language, ins.File, ins.At)
	if ins.Cursor != nil {
		line += "; cursor " + p.theme.cursor.Render(ins.Cursor.String())
	}
	mustWrite(fmt.Fprintln(p.out, p.theme.ok.Render(line)))
}
