// Package mcp provides a Model Context Protocol server for blockgen.
// It exposes the Generate Block command and the template catalog as MCP
// tools, so any MCP-capable editor or agent can act as the host.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gorewood/blockgen/internal/catalog"
)

// Options configures the server. Zero values use built-in templates and
// discard logs.
type Options struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger
	// FallbackLanguage is assigned to files whose language is not detected.
	FallbackLanguage string
}

// NewServer creates an MCP server with all blockgen tools registered.
func NewServer(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "blockgen",
		Version: version,
	}, nil)
	registerTools(server, newToolDeps(opts))
	return server
}

func newToolDeps(opts Options) *toolDeps {
	deps := &toolDeps{
		catalog:          opts.Catalog,
		logger:           opts.Logger,
		fallbackLanguage: opts.FallbackLanguage,
	}
	if deps.catalog == nil {
		deps.catalog = catalog.New()
	}
	if deps.logger == nil {
		deps.logger = zap.NewNop()
	}
	return deps
}

// toolDeps is shared by all tool handlers.
type toolDeps struct {
	catalog          *catalog.Catalog
	logger           *zap.Logger
	fallbackLanguage string
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all blockgen tools to the server.
func registerTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_blocks",
		Description: "List the block kinds blockgen can insert, with their placeholder token and the languages that have a dedicated template.",
		Annotations: readOnlyAnnotations(),
	}, handleListBlocks(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_template",
		Description: "Return the template text for a block kind in a language, falling back to the default template when the language has none.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTemplate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_block",
		Description: "Insert a block (if, for, while, switch, try-catch) into a file at line:column and return where the cursor lands after the placeholder. Writes the file.",
		Annotations: writeAnnotations(),
	}, handleGenerateBlock(deps))
}
