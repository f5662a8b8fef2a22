package form

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// EditOp is one RFC 6902 operation against the accumulated values document.
// The summary screen's bulk-edit path applies these instead of issuing a
// SetValue per field.
type EditOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// ApplyEdits patches the accumulated values. Ops are normalized first:
// replacing an absent path becomes an add, removing an absent path is
// dropped. Errors cleared for every touched step; validation happens on the
// next advance, same as SetValue.
func (e *Engine) ApplyEdits(ops []EditOp) error {
	if len(ops) == 0 {
		return nil
	}
	currentJSON, err := sonic.Marshal(e.state.Values)
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}

	ops = normalizeOps(e.state.Values, ops)
	patchJSON, err := sonic.Marshal(ops)
	if err != nil {
		return fmt.Errorf("encode edit ops: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("decode edit ops: %w", err)
	}
	modified, err := patch.Apply(currentJSON)
	if err != nil {
		return fmt.Errorf("apply edits: %w", err)
	}

	var next map[string]any
	if err := sonic.Unmarshal(modified, &next); err != nil {
		return fmt.Errorf("edits produced an invalid values document: %w", err)
	}
	e.state.Values = next
	for _, op := range ops {
		delete(e.state.Errors, topLevelField(op.Path))
	}
	e.changed()
	return nil
}

// normalizeOps makes summary edits forgiving: a replace of a field the user
// never answered becomes an add, and removing an absent field is a no-op.
func normalizeOps(values map[string]any, ops []EditOp) []EditOp {
	fixed := make([]EditOp, 0, len(ops))
	for _, op := range ops {
		_, exists := values[topLevelField(op.Path)]
		switch op.Op {
		case "replace":
			if !exists {
				op.Op = "add"
			}
			fixed = append(fixed, op)
		case "remove":
			if exists {
				fixed = append(fixed, op)
			}
		default:
			fixed = append(fixed, op)
		}
	}
	return fixed
}

func topLevelField(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
