package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/fablecraft/langman/keypath"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	doc := `{
  "skills": {
    "archery": {"name": "Archery", "desc": "Bows and crossbows"},
    "smithing": {"name": "Smithing"}
  },
  "ui": {"ok": "OK"}
}`
	root, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	want := [][2]string{
		{"skills.archery.name", "Archery"},
		{"skills.archery.desc", "Bows and crossbows"},
		{"skills.smithing.name", "Smithing"},
		{"ui.ok", "OK"},
	}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	root, err := Decode(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("Decode({}) error: %v", err)
	}
	if len(root.Fields) != 0 {
		t.Errorf("empty document has %d fields", len(root.Fields))
	}
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"array root", `[]`, ErrValidation},
		{"string root", `"x"`, ErrValidation},
		{"number leaf", `{"a": 1}`, ErrValidation},
		{"bool leaf", `{"a": true}`, ErrValidation},
		{"null leaf", `{"a": null}`, ErrValidation},
		{"array leaf", `{"a": ["x"]}`, ErrValidation},
		{"empty string leaf", `{"a": ""}`, ErrValidation},
		{"empty namespace", `{"a": {}}`, ErrValidation},
		{"duplicate key", `{"a": "x", "a": "y"}`, ErrValidation},
		{"trailing data", `{"a": "x"} {}`, ErrValidation},
		{"truncated", `{"a": `, ErrValidation},
		{"empty key", `{"": "x"}`, keypath.ErrInvalidKey},
		{"dotted key", `{"a.b": "x"}`, keypath.ErrInvalidKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%s) = %v, want %v", tt.doc, err, tt.want)
			}
		})
	}
}
