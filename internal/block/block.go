// Package block defines the kinds of code blocks blockgen can insert.
package block

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a label does not name a block kind.
var ErrUnknownKind = errors.New("unknown block kind")

// Kind identifies a code-construct skeleton.
type Kind int

// Block kinds in the order they are offered to the user.
const (
	If Kind = iota
	For
	While
	Switch
	TryCatch
)

type kindInfo struct {
	label       string
	description string
	placeholder string
}

var kinds = [...]kindInfo{
	If:       {label: "if", description: "Generate if block", placeholder: "condition"},
	For:      {label: "for", description: "Generate for block", placeholder: "length"},
	While:    {label: "while", description: "Generate while block", placeholder: "condition"},
	Switch:   {label: "switch", description: "Generate switch block", placeholder: "variable"},
	TryCatch: {label: "try-catch", description: "Generate try-catch block", placeholder: "code"},
}

// All returns every kind in display order.
func All() []Kind {
	return []Kind{If, For, While, Switch, TryCatch}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= If && k <= TryCatch
}

// String returns the kind's label, e.g. "try-catch".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].label
}

// Description returns the one-line description shown in the picker.
func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].description
}

// Placeholder returns the token the cursor lands after once the block
// is inserted. Each kind searches for its own token only.
func (k Kind) Placeholder() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].placeholder
}

// Parse resolves a label to a Kind. Matching is case-insensitive and
// accepts "trycatch" and "try" as spellings of try-catch.
func Parse(label string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	switch normalized {
	case "trycatch", "try", "try_catch":
		return TryCatch, nil
	}
	for _, k := range All() {
		if kinds[k].label == normalized {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, label, strings.Join(Labels(), ", "))
}

// Labels returns the labels of all kinds in display order.
func Labels() []string {
	labels := make([]string, 0, len(kinds))
	for _, k := range All() {
		labels = append(labels, k.String())
	}
	return labels
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
