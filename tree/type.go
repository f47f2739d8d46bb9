package tree

import "fmt"

type Type int

const (
	LeafType Type = iota
	NamespaceType
)

func (t Type) String() string {
	switch t {
	case LeafType:
		return "Leaf"
	case NamespaceType:
		return "Namespace"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Leaf":
		*t = LeafType
	case "Namespace":
		*t = NamespaceType
	default:
		return fmt.Errorf("unrecognized type %q", d)
	}
	return nil
}

func Types() []Type {
	return []Type{LeafType, NamespaceType}
}
