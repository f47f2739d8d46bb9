package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/fablecraft/langman/tree"
)

// encodeYAML writes y as YAML. MapSlice keeps the document's insertion
// order through goccy's marshaller.
func encodeYAML(y *tree.Node, w io.Writer) error {
	d, err := yaml.Marshal(toMapSlice(y))
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func toMapSlice(y *tree.Node) any {
	if y.Type == tree.LeafType {
		return y.String
	}
	ms := make(yaml.MapSlice, 0, len(y.Fields))
	for i, f := range y.Fields {
		ms = append(ms, yaml.MapItem{Key: f, Value: toMapSlice(y.Values[i])})
	}
	return ms
}
