package diff

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/fablecraft/langman/export"
	"github.com/fablecraft/langman/tree"
)

// MergePatch returns the pending changes between baseline and current as
// an RFC 7386 JSON merge patch: applying it to the baseline document
// yields the current one.
func MergePatch(baseline, current *tree.Node) ([]byte, error) {
	from := bytes.NewBuffer(nil)
	if err := export.Encode(baseline, from, export.EncodeWire(true)); err != nil {
		return nil, err
	}
	to := bytes.NewBuffer(nil)
	if err := export.Encode(current, to, export.EncodeWire(true)); err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(from.Bytes(), to.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error creating merge patch: %w", err)
	}
	return patch, nil
}
