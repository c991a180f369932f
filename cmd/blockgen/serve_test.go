package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	blockgenmcp "github.com/gorewood/blockgen/internal/mcp"
)

// connect serves the loaded app over an in-memory transport and returns a
// client session on it.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	application, err := loadApp(newServeCmd())
	if err != nil {
		t.Fatalf("loadApp() error = %v", err)
	}
	t.Cleanup(application.close)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	if _, err := newMCPServer(application).Connect(t.Context(), serverTransport, nil); err != nil {
		t.Fatalf("server Connect() error = %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "blockgen-test", Version: "0"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	if err != nil {
		t.Fatalf("client Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

// decode re-reads a tool's structured result into out.
func decode(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned an error: %+v", result.Content)
	}
	data, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal structured content: %v\n%s", err, data)
	}
}

func TestServe_ListsTools(t *testing.T) {
	isolate(t)
	session := connect(t)

	tools, err := session.ListTools(t.Context(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	slices.Sort(names)
	if want := []string{"generate_block", "get_template", "list_blocks"}; !slices.Equal(names, want) {
		t.Errorf("tools = %v, want %v", names, want)
	}
}

func TestServe_UsesProjectTemplates(t *testing.T) {
	dir := isolate(t)
	overrides := filepath.Join(dir, ".blockgen")
	if err := os.MkdirAll(overrides, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, overrides, "templates.yaml", "templates:\n  while:\n    go: \"for condition {\\n\\t\\n}\"\n")
	path := writeSource(t, dir, "main.go", "package main\n")
	session := connect(t)

	result, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "generate_block",
		Arguments: map[string]any{"path": path, "kind": "while", "line": 1, "column": 0},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	var out blockgenmcp.GenerateBlockOutput
	decode(t, result, &out)

	if out.Status != "applied" || out.Cursor == nil || out.Cursor.Line != 1 || out.Cursor.Column != 13 {
		t.Errorf("output = %+v, want applied with cursor 1:13", out)
	}
	if got := readSource(t, path); got != "package main\nfor condition {\n\t\n}" {
		t.Errorf("file = %q", got)
	}
}

func TestNewServeCmd_RejectsArgs(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, newRootCmd(), "serve", "extra"); err == nil {
		t.Error("serve with arguments should fail")
	}
}
