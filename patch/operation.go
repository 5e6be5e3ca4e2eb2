package patch

// OperationType defines the allowed JSON Patch operation types.
type OperationType string

const (
	OperationTypeAdd     OperationType = "add"
	OperationTypeRemove  OperationType = "remove"
	OperationTypeReplace OperationType = "replace"
	OperationTypeMove    OperationType = "move"
	OperationTypeCopy    OperationType = "copy"
	OperationTypeTest    OperationType = "test"
)

// Valid reports whether t is one of the RFC 6902 operation types.
func (t OperationType) Valid() bool {
	switch t {
	case OperationTypeAdd, OperationTypeRemove, OperationTypeReplace,
		OperationTypeMove, OperationTypeCopy, OperationTypeTest:
		return true
	}
	return false
}

// Operation represents a single operation in a Patch.
type Operation struct {
	Op    OperationType `json:"op"`
	Path  string        `json:"path"`
	Value any           `json:"value,omitempty"` // Used for "add", "replace", "test"
	From  string        `json:"from,omitempty"`  // Used for "move", "copy"
}

// HasFrom reports whether the operation carries a source path.
func (o Operation) HasFrom() bool {
	return o.From != ""
}
