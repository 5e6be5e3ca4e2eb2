package mongopatch

import (
	clone "github.com/huandu/go-clone"
)

// copyValue returns a deep copy of a patch value. Scalars are returned as is.
func copyValue(v any) any {
	switch v.(type) {
	case nil, bool, string, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	}
	return clone.Clone(v)
}
