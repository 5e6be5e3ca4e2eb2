package patch

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-yaml"
)

// Patch is a slice of Operations that represents an RFC 6902 JSON Patch.
type Patch []Operation

// New creates a new empty Patch.
func New() Patch {
	return Patch{}
}

// Add creates a new operation to add a value at the specified path.
func (p Patch) Add(path string, value any) Patch {
	return append(p, Operation{
		Op:    OperationTypeAdd,
		Path:  path,
		Value: value,
	})
}

// Remove creates a new operation to remove the value at the specified path.
func (p Patch) Remove(path string) Patch {
	return append(p, Operation{
		Op:   OperationTypeRemove,
		Path: path,
	})
}

// Replace creates a new operation to replace the value at the specified path.
func (p Patch) Replace(path string, value any) Patch {
	return append(p, Operation{
		Op:    OperationTypeReplace,
		Path:  path,
		Value: value,
	})
}

// Move creates a new operation to move a value from one path to another.
func (p Patch) Move(from, to string) Patch {
	return append(p, Operation{
		Op:   OperationTypeMove,
		Path: to,
		From: from,
	})
}

// Copy creates a new operation to copy a value from one path to another.
func (p Patch) Copy(from, to string) Patch {
	return append(p, Operation{
		Op:   OperationTypeCopy,
		Path: to,
		From: from,
	})
}

// Test creates a new operation to test the value at the specified path.
func (p Patch) Test(path string, value any) Patch {
	return append(p, Operation{
		Op:    OperationTypeTest,
		Path:  path,
		Value: value,
	})
}

// MarshalJSON encodes the patch as a plain RFC 6902 JSON array.
func (p Patch) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Operation(p))
}

// Decode parses an RFC 6902 JSON document into a Patch.
//
// Every operation must carry a "path". A missing or null "value" decodes as
// nil and a missing "from" decodes as an empty string. Numbers decode as
// float64. Operation types are not validated, so unsupported or incomplete
// operations surface at translation time with their index.
func Decode(data []byte) (Patch, error) {
	// Unmarshalling directly skips the per-operation validation done by
	// jsonpatch.DecodePatch.
	var decoded jsonpatch.Patch
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}

	// Values are read separately so numbers use the encoding/json types.
	var values []struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}

	p := make(Patch, 0, len(decoded))
	for i, op := range decoded {
		path, err := op.Path()
		if err != nil {
			return nil, fmt.Errorf("decode patch: operation %d: %w", i, err)
		}

		var from string
		if f, err := op.From(); err == nil {
			from = f
		}

		p = append(p, Operation{
			Op:    OperationType(op.Kind()),
			Path:  path,
			Value: values[i].Value,
			From:  from,
		})
	}

	return p, nil
}

// DecodeYAML parses a JSON Patch written as YAML.
func DecodeYAML(data []byte) (Patch, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return Decode(j)
}
