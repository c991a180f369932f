package output

import (
	"bytes"
	"testing"
)

func TestPrinter_Inserted(t *testing.T) {
	cursor := Cursor{Line: 3, Column: 17}

	tests := []struct {
		name string
		ins  Insertion
		want string
	}{
		{
			name: "cursor moved",
			ins:  Insertion{Kind: "if", Language: "cpp", File: "main.cpp", At: Cursor{Line: 3, Column: 5}, Cursor: &cursor},
			want: "Inserted if block (cpp) into main.cpp at 3:5; cursor 3:17\n",
		},
		{
			name: "no placeholder",
			ins:  Insertion{Kind: "while", Language: "go", File: "loop.go", At: Cursor{Line: 1, Column: 1}},
			want: "Inserted while block (go) into loop.go at 1:1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, false, false).Inserted(tt.ins)
			if got := buf.String(); got != tt.want {
				t.Errorf("Inserted() = %q, want %q", got, tt.want)
			}
		})
	}
}
