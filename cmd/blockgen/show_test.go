package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/blockgen/internal/block"
	"github.com/gorewood/blockgen/internal/catalog"
)

func TestShow_Human(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, newRootCmd(), "show", "if", "--language", "python")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"if (python)", "if condition:", "Placeholder: condition", "Source: built-in"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestShow_FallbackJSON(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, newRootCmd(), "show", "switch", "-l", "python", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result["language"] != catalog.DefaultLanguage || result["fallback"] != true {
		t.Errorf("result = %v, want default fallback", result)
	}
	if result["kind"] != "switch" || result["placeholder"] != "variable" {
		t.Errorf("result = %v", result)
	}
	cursor, ok := result["cursor"].(map[string]any)
	if !ok || cursor["column"] != float64(16) {
		t.Errorf("cursor = %v, want column 16", result["cursor"])
	}
}

func TestShow_UnknownKind(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, newRootCmd(), "show", "loop"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderTemplate(t *testing.T) {
	tmpl := catalog.New().Template(block.If, "python")
	if got := renderTemplate(tmpl, false); got != tmpl.Text {
		t.Errorf("non-TTY render = %q, want raw text", got)
	}
	if got := renderTemplate(tmpl, true); !strings.Contains(got, "\x1b[") {
		t.Errorf("TTY render should contain ANSI codes: %q", got)
	}
}
