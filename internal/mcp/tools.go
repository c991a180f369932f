package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/buffer"
	"github.com/gorewood/blockgen/internal/editor"
)

// --- List tool ---

// ListBlocksInput is the input for the list_blocks tool (no parameters needed).
type ListBlocksInput struct{}

// BlockInfo describes one block kind.
type BlockInfo struct {
	Kind        string   `json:"kind"        jsonschema:"block kind label"`
	Description string   `json:"description" jsonschema:"one-line description"`
	Placeholder string   `json:"placeholder" jsonschema:"token the cursor lands after"`
	Languages   []string `json:"languages"   jsonschema:"languages with a dedicated template (default first)"`
}

// ListBlocksOutput is the output for the list_blocks tool.
type ListBlocksOutput struct {
	Blocks []BlockInfo `json:"blocks" jsonschema:"available block kinds"`
}

func handleListBlocks(deps *toolDeps) mcp.ToolHandlerFor[ListBlocksInput, ListBlocksOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListBlocksInput) (*mcp.CallToolResult, ListBlocksOutput, error) {
		var out ListBlocksOutput
		for _, kind := range block.All() {
			out.Blocks = append(out.Blocks, BlockInfo{
				Kind:        kind.String(),
				Description: kind.Description(),
				Placeholder: kind.Placeholder(),
				Languages:   deps.catalog.Languages(kind),
			})
		}
		return nil, out, nil
	}
}

// --- Template tool ---

// GetTemplateInput is the input for the get_template tool.
type GetTemplateInput struct {
	Kind     string `json:"kind"               jsonschema:"block kind: if, for, while, switch or try-catch"`
	Language string `json:"language,omitempty" jsonschema:"editor language identifier (default template when omitted)"`
}

// GetTemplateOutput is the output for the get_template tool.
type GetTemplateOutput struct {
	Kind        string           `json:"kind"             jsonschema:"block kind label"`
	Language    string           `json:"language"         jsonschema:"language of the template used"`
	Text        string           `json:"text"             jsonschema:"template text"`
	Source      string           `json:"source"           jsonschema:"built-in, global or project"`
	Fallback    bool             `json:"fallback"         jsonschema:"true when the default template was used"`
	Placeholder string           `json:"placeholder"      jsonschema:"token the cursor lands after"`
	Cursor      *editor.Position `json:"cursor,omitempty" jsonschema:"cursor relative to an insertion at 0:0"`
}

func handleGetTemplate(deps *toolDeps) mcp.ToolHandlerFor[GetTemplateInput, GetTemplateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GetTemplateInput) (*mcp.CallToolResult, GetTemplateOutput, error) {
		kind, err := block.Parse(input.Kind)
		if err != nil {
			return nil, GetTemplateOutput{}, err
		}

		tmpl := deps.catalog.Template(kind, input.Language)
		out := GetTemplateOutput{
			Kind:        kind.String(),
			Language:    tmpl.Language,
			Text:        tmpl.Text,
			Source:      tmpl.Source,
			Fallback:    tmpl.Fallback,
			Placeholder: kind.Placeholder(),
		}
		if cursor, ok := editor.CursorAfterInsert(kind, editor.Position{}, tmpl.Text); ok {
			out.Cursor = &cursor
		}
		return nil, out, nil
	}
}

// --- Generate tool ---

// GenerateBlockInput is the input for the generate_block tool.
type GenerateBlockInput struct {
	Path     string `json:"path"               jsonschema:"file to edit"`
	Kind     string `json:"kind"               jsonschema:"block kind: if, for, while, switch or try-catch"`
	Line     int    `json:"line"               jsonschema:"zero-based line of the cursor"`
	Column   int    `json:"column"             jsonschema:"zero-based column of the cursor"`
	Language string `json:"language,omitempty" jsonschema:"language identifier (detected from the file name when omitted)"`
}

// GenerateBlockOutput is the output for the generate_block tool.
type GenerateBlockOutput struct {
	Status   string           `json:"status"           jsonschema:"applied or rejected"`
	Kind     string           `json:"kind"             jsonschema:"block kind label"`
	Language string           `json:"language"         jsonschema:"language of the template used"`
	Inserted string           `json:"inserted"         jsonschema:"text inserted into the file"`
	Cursor   *editor.Position `json:"cursor,omitempty" jsonschema:"cursor after the placeholder, absent when not moved"`
	Reason   string           `json:"reason,omitempty" jsonschema:"why the edit was rejected"`
}

func handleGenerateBlock(deps *toolDeps) mcp.ToolHandlerFor[GenerateBlockInput, GenerateBlockOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateBlockInput) (*mcp.CallToolResult, GenerateBlockOutput, error) {
		kind, err := block.Parse(input.Kind)
		if err != nil {
			return nil, GenerateBlockOutput{}, err
		}
		if input.Path == "" {
			return nil, GenerateBlockOutput{}, errors.New("path is required")
		}

		file, err := buffer.Open(input.Path, buffer.OpenOptions{
			Language:         input.Language,
			FallbackLanguage: deps.fallbackLanguage,
			Cursor:           editor.Position{Line: input.Line, Column: input.Column},
		})
		if err != nil {
			return nil, GenerateBlockOutput{}, err
		}

		orch := editor.NewOrchestrator(file, deps.catalog, editor.WithLogger(deps.logger))
		outcome, err := orch.Generate(ctx, kind)
		if err != nil {
			return nil, GenerateBlockOutput{}, err
		}

		out := GenerateBlockOutput{
			Status:   string(outcome.Status),
			Kind:     kind.String(),
			Language: outcome.Language,
			Inserted: outcome.Text,
			Cursor:   outcome.Cursor,
		}
		if outcome.Status != editor.StatusApplied {
			if outcome.Err != nil {
				out.Reason = outcome.Err.Error()
			}
			out.Inserted = ""
			return nil, out, nil
		}

		if err := file.Save(); err != nil {
			return nil, GenerateBlockOutput{}, err
		}
		deps.logger.Info("block generated",
			zap.String("path", input.Path),
			zap.String("kind", kind.String()),
			zap.String("language", outcome.Language))
		return nil, out, nil
	}
}
