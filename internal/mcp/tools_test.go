package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/blockgen/internal/catalog"
	"github.com/gorewood/blockgen/internal/editor"
)

// --- Test helpers ---

func testDeps() *toolDeps {
	return newToolDeps(Options{FallbackLanguage: "plaintext"})
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// --- List handler tests ---

func TestHandleListBlocks(t *testing.T) {
	handler := handleListBlocks(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListBlocksInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []string
	for _, b := range out.Blocks {
		kinds = append(kinds, b.Kind)
	}
	want := []string{"if", "for", "while", "switch", "try-catch"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cpp"}, out.Blocks[3].Languages); diff != "" {
		t.Errorf("switch languages mismatch (-want +got):\n%s", diff)
	}
	if out.Blocks[1].Placeholder != "length" {
		t.Errorf("for placeholder = %q, want length", out.Blocks[1].Placeholder)
	}
}

// --- Template handler tests ---

func TestHandleGetTemplate(t *testing.T) {
	handler := handleGetTemplate(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GetTemplateInput{Kind: "for", Language: "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "for i in range(length):\n\t" || out.Fallback {
		t.Errorf("out = %+v", out)
	}
	if out.Cursor == nil || *out.Cursor != (editor.Position{Line: 0, Column: 21}) {
		t.Errorf("Cursor = %v, want {0 21}", out.Cursor)
	}
}

func TestHandleGetTemplate_Fallback(t *testing.T) {
	handler := handleGetTemplate(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GetTemplateInput{Kind: "switch", Language: "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Fallback || out.Language != catalog.DefaultLanguage {
		t.Errorf("out = %+v, want default fallback", out)
	}
}

func TestHandleGetTemplate_UnknownKind(t *testing.T) {
	handler := handleGetTemplate(testDeps())

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetTemplateInput{Kind: "loop"})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

// --- Generate handler tests ---

func TestHandleGenerateBlock(t *testing.T) {
	path := writeSource(t, "main.py", "def main():\n    \n")
	handler := handleGenerateBlock(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GenerateBlockInput{
		Path: path, Kind: "try-catch", Line: 1, Column: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != string(editor.StatusApplied) {
		t.Fatalf("Status = %q, want applied", out.Status)
	}
	if out.Language != "python" {
		t.Errorf("Language = %q, want python", out.Language)
	}
	if out.Cursor == nil || *out.Cursor != (editor.Position{Line: 2, Column: 5}) {
		t.Errorf("Cursor = %v, want {2 5}", out.Cursor)
	}

	want := "def main():\n    try:\n\tcode\nexcept Exception as e:\n\tpass\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestHandleGenerateBlock_Rejected(t *testing.T) {
	path := writeSource(t, "main.cpp", "int x;\n")
	handler := handleGenerateBlock(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GenerateBlockInput{
		Path: path, Kind: "if", Line: 9, Column: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != string(editor.StatusRejected) || out.Reason == "" {
		t.Errorf("out = %+v, want rejected with reason", out)
	}
	if out.Cursor != nil {
		t.Error("cursor should not move on rejection")
	}
	if got := readFile(t, path); got != "int x;\n" {
		t.Errorf("file changed after rejection: %q", got)
	}
}

func TestHandleGenerateBlock_LanguageOverride(t *testing.T) {
	path := writeSource(t, "snippet.txt", "")
	handler := handleGenerateBlock(testDeps())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GenerateBlockInput{
		Path: path, Kind: "if", Language: "python",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "if condition:\n\t" {
		t.Errorf("file = %q", got)
	}
	if out.Cursor == nil || *out.Cursor != (editor.Position{Line: 0, Column: 12}) {
		t.Errorf("Cursor = %v, want {0 12}", out.Cursor)
	}
}

func TestHandleGenerateBlock_Errors(t *testing.T) {
	handler := handleGenerateBlock(testDeps())
	tests := []struct {
		name  string
		input GenerateBlockInput
	}{
		{"unknown kind", GenerateBlockInput{Path: "x.py", Kind: "loop"}},
		{"missing path", GenerateBlockInput{Kind: "if"}},
		{"missing file", GenerateBlockInput{Path: filepath.Join(t.TempDir(), "gone.py"), Kind: "if"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	if NewServer("test", Options{}) == nil {
		t.Fatal("NewServer returned nil")
	}
}
