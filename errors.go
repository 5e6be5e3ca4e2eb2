package mongopatch

import (
	"errors"
	"fmt"

	"github.com/brunoga/mongopatch/patch"
)

// ErrUnsupportedOperation is matched (with errors.Is) by every error that
// rejects a patch because it cannot be expressed as a single update document.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Reasons reported by UnsupportedOperationError.
const (
	ReasonUnknownOperation  = "unsupported operation type"
	ReasonCopy              = "copy cannot be expressed without reading the document"
	ReasonMoveWithoutFrom   = "move requires a from path"
	ReasonAddWithoutIndex   = "can't use add op without position"
	ReasonMixedPositions    = "can't use add op with mixed positions"
	ReasonNonContiguousAdds = "can use add op only with contiguous positions"
)

// UnsupportedOperationError describes the operation that made a translation
// fail. No partial update is ever returned alongside it.
type UnsupportedOperationError struct {
	// Index is the position of the offending operation in the patch.
	Index  int
	Op     patch.OperationType
	Path   string
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %d (%s %s): %s", e.Index, e.Op, e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrUnsupportedOperation) hold.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

func unsupported(index int, op patch.Operation, reason string) error {
	return &UnsupportedOperationError{
		Index:  index,
		Op:     op.Op,
		Path:   op.Path,
		Reason: reason,
	}
}
