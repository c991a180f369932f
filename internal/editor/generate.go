package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/catalog"
)

// Status describes how a Generate call ended.
type Status string

// Generate outcomes. Only StatusApplied changed the document.
const (
	StatusApplied  Status = "applied"
	StatusNoEditor Status = "no-editor"
	StatusRejected Status = "rejected"
)

// Outcome reports what Generate did.
type Outcome struct {
	Status   Status     `json:"status"`
	Kind     block.Kind `json:"kind"`
	Language string     `json:"language,omitempty"`
	Text     string     `json:"text,omitempty"`
	// Origin is where the block was inserted.
	Origin Position `json:"origin"`
	// Cursor is the final cursor, set only when the cursor was moved.
	Cursor *Position `json:"cursor,omitempty"`
	// Err is the host's rejection reason for StatusRejected.
	Err error `json:"-"`
}

// Moved reports whether the cursor was placed after the placeholder.
func (o Outcome) Moved() bool {
	return o.Cursor != nil
}

// Orchestrator runs the Generate Block command against a host.
type Orchestrator struct {
	host    Host
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator returns an orchestrator that reads templates from cat.
// A nil cat uses the built-in templates.
func NewOrchestrator(host Host, cat *catalog.Catalog, opts ...Option) *Orchestrator {
	if cat == nil {
		cat = catalog.New()
	}
	o := &Orchestrator{host: host, catalog: cat, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate inserts the template for kind at the active editor's cursor and
// moves the cursor right after the kind's placeholder.
//
// A missing editor or a rejected insertion is not an error: Generate
// returns an Outcome with the matching status and leaves the selection
// untouched. The error return is reserved for invalid kinds and context
// cancellation before the edit is requested.
func (o *Orchestrator) Generate(ctx context.Context, kind block.Kind) (Outcome, error) {
	if !kind.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", block.ErrUnknownKind, int(kind))
	}
	out := Outcome{Kind: kind}

	ed, ok := o.host.ActiveEditor()
	if !ok || ed == nil {
		o.logger.Debug("no active editor", zap.Stringer("kind", kind))
		out.Status = StatusNoEditor
		return out, nil
	}

	language := ed.LanguageID()
	origin := ed.Selection().Active
	tmpl := o.catalog.Template(kind, language)

	out.Language = tmpl.Language
	out.Text = tmpl.Text
	out.Origin = origin

	o.logger.Debug("inserting block",
		zap.Stringer("kind", kind),
		zap.String("language", language),
		zap.String("template_language", tmpl.Language),
		zap.Bool("fallback", tmpl.Fallback),
		zap.Int("line", origin.Line),
		zap.Int("column", origin.Column))

	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("generate %s: %w", kind, err)
	}

	if err := ed.Insert(ctx, origin, tmpl.Text); err != nil {
		o.logger.Debug("insertion rejected", zap.Stringer("kind", kind), zap.Error(err))
		out.Status = StatusRejected
		out.Err = err
		return out, nil
	}
	out.Status = StatusApplied

	cursor, ok := CursorAfterInsert(kind, origin, tmpl.Text)
	if !ok {
		o.logger.Debug("template has no placeholder", zap.Stringer("kind", kind), zap.String("token", kind.Placeholder()))
		return out, nil
	}
	ed.SetSelection(Collapsed(cursor))
	out.Cursor = &cursor

	o.logger.Debug("cursor moved", zap.Int("line", cursor.Line), zap.Int("column", cursor.Column))
	return out, nil
}
