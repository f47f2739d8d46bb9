package export

import "github.com/fablecraft/langman/format"

type EncodeOption func(*encState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeWire selects compact single-line output with no trailing
// newline, suitable as patch input rather than for reading.
func EncodeWire(v bool) EncodeOption {
	return func(es *encState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
