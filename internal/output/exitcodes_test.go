package output

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/gorewood/blockgen/internal/block"
)

func TestClassify(t *testing.T) {
	diskFull := errors.New("replacing main.py: no space left on device")
	missing := fmt.Errorf("opening nope.cpp: %w", fs.ErrNotExist)
	unknown := fmt.Errorf("%w: %q", block.ErrUnknownKind, "loop")
	passed := NewUserError("invalid --at \"0\"")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing file is the user's", missing, ExitUserError, missing.Error()},
		{"unknown kind is the user's", unknown, ExitUserError, unknown.Error()},
		{"I/O failure is the system's", diskFull, ExitSystemError, diskFull.Error()},
		{"exit errors pass through", fmt.Errorf("generate: %w", passed), ExitUserError, passed.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Code != tt.wantCode || got.Error() != tt.wantMsg {
				t.Errorf("Classify() = {%d %q}, want {%d %q}", got.Code, got.Error(), tt.wantCode, tt.wantMsg)
			}
			if !errors.Is(got, tt.err) && !errors.Is(tt.err, got) {
				t.Errorf("Classify() lost the cause of %v", tt.err)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("Classify(nil) != nil")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"bad --at", NewUserError(`invalid --at "x"`), ExitUserError},
		{"malformed overrides", Classify(errors.New("templates.yaml: invalid YAML")), ExitSystemError},
		{"wrapped", fmt.Errorf("show: %w", Classify(errors.New("read failed"))), ExitSystemError},
		{"cobra flag error", errors.New("required flag(s) \"file\" not set"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
