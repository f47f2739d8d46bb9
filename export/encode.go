package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fablecraft/langman/format"
	"github.com/fablecraft/langman/tree"
)

const defaultIndent = 2

type encState struct {
	format format.Format
	indent int
	wire   bool
	colors *Colors
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{indent: defaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes y to w in the configured format, JSON by default. JSON
// output preserves insertion order and, unless EncodeWire is set, is
// pretty-printed with a trailing newline.
func Encode(y *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsYAML() {
		return encodeYAML(y, w)
	}
	buf := bytes.NewBuffer(nil)
	es.encodeJSON(buf, y, 0)
	if !es.wire {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// MustString encodes y to a string, panicking on writer failure, which
// a bytes.Buffer does not produce.
func MustString(y *tree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// WriteFile encodes y and writes it to path in one shot.
func WriteFile(y *tree.Node, path string, opts ...EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func (es *encState) encodeJSON(buf *bytes.Buffer, y *tree.Node, depth int) {
	if y.Type == tree.LeafType {
		buf.WriteString(es.paint(tree.LeafType, ValueColor, jstr(y.String)))
		return
	}
	n := len(y.Fields)
	if n == 0 {
		buf.WriteString("{}")
		return
	}
	if es.wire {
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(jstr(f))
			buf.WriteByte(':')
			es.encodeJSON(buf, y.Values[i], depth+1)
		}
		buf.WriteByte('}')
		return
	}
	pad := strings.Repeat(" ", (depth+1)*es.indent)
	buf.WriteString("{\n")
	for i, f := range y.Fields {
		buf.WriteString(pad)
		buf.WriteString(es.paint(tree.NamespaceType, FieldColor, jstr(f)))
		buf.WriteString(es.paint(tree.NamespaceType, SepColor, ":"))
		buf.WriteByte(' ')
		es.encodeJSON(buf, y.Values[i], depth+1)
		if i != n-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
	buf.WriteByte('}')
}

// jstr renders a string as a JSON string literal.
func jstr(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}
