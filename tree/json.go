package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fablecraft/langman/keypath"
)

// Decode reads a UTF-8 JSON document from r into a Node tree, preserving
// object key order. The document must be an object whose every leaf is a
// non-empty string and whose every non-leaf is a non-empty object;
// anything else (arrays, numbers, booleans, null, empty strings, empty
// objects, duplicate keys) reports ErrValidation. Segment names may not
// be empty or contain a dot; those report keypath.ErrInvalidKey.
//
// The token-level walk is what preserves insertion order: unmarshalling
// into Go maps would lose it.
func Decode(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: document root must be an object, got %v", ErrValidation, tok)
	}
	root, err := decodeObject(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrValidation)
	}
	return root, nil
}

// decodeObject decodes the members of an object whose opening brace has
// already been consumed, through its closing brace. path is the joined
// key of the object, "" for the root.
func decodeObject(dec *json.Decoder, path string) (*Node, error) {
	ns := NewNamespace()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key %v under %q", ErrValidation, tok, path)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty segment name under %q", keypath.ErrInvalidKey, path)
		}
		if strings.Contains(key, ".") {
			return nil, fmt.Errorf("%w: segment %q under %q contains a dot", keypath.ErrInvalidKey, key, path)
		}
		if Get(ns, key) != nil {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrValidation, keypath.Child(path, key))
		}
		child, err := decodeValue(dec, keypath.Child(path, key))
		if err != nil {
			return nil, err
		}
		ns.put(key, child)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if path != "" && len(ns.Fields) == 0 {
		return nil, fmt.Errorf("%w: empty namespace %q", ErrValidation, path)
	}
	return ns, nil
}

func decodeValue(dec *json.Decoder, path string) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	switch v := tok.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("%w: empty value at %q", ErrValidation, path)
		}
		return FromString(v), nil
	case json.Delim:
		if v != '{' {
			return nil, fmt.Errorf("%w: array at %q", ErrValidation, path)
		}
		return decodeObject(dec, path)
	default:
		return nil, fmt.Errorf("%w: non-string leaf %v at %q", ErrValidation, tok, path)
	}
}

// Load reads and decodes the JSON document at path.
func Load(path string) (*Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	node, err := Decode(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}
