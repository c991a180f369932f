package block

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		label string
		want  Kind
	}{
		{"if", If},
		{"for", For},
		{"while", While},
		{"switch", Switch},
		{"try-catch", TryCatch},
		{"TRY-CATCH", TryCatch},
		{"trycatch", TryCatch},
		{" While ", While},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Parse(tt.label)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("do-while")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Parse error = %v, want ErrUnknownKind", err)
	}
}

func TestPlaceholders(t *testing.T) {
	want := map[Kind]string{
		If:       "condition",
		For:      "length",
		While:    "condition",
		Switch:   "variable",
		TryCatch: "code",
	}
	for kind, token := range want {
		if got := kind.Placeholder(); got != token {
			t.Errorf("%v.Placeholder() = %q, want %q", kind, got, token)
		}
	}
}

func TestKind_Invalid(t *testing.T) {
	k := Kind(42)
	if k.Valid() {
		t.Error("Kind(42) should not be valid")
	}
	if k.Placeholder() != "" || k.Description() != "" {
		t.Error("invalid kind should have no placeholder or description")
	}
	if _, err := k.MarshalText(); err == nil {
		t.Error("MarshalText on invalid kind should fail")
	}
}

func TestKind_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Kind{"kind": TryCatch})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"kind":"try-catch"}` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded map[string]Kind
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["kind"] != TryCatch {
		t.Errorf("decoded kind = %v, want try-catch", decoded["kind"])
	}
}
