package core

import (
	"strconv"
	"strings"
)

// EndOfArray is the JSON Pointer token that addresses the position after the
// last element of an array.
const EndOfArray = "-"

// ToFieldPath converts a JSON Pointer (RFC 6901) into a dotted field path.
//
// A single leading "/" is stripped, separators become ".", and the "~1" and
// "~0" escapes are reversed, in that order, only after the separators were
// replaced so an escaped "/" is never mistaken for a separator.
func ToFieldPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	pointer = strings.ReplaceAll(pointer, "/", ".")
	pointer = strings.ReplaceAll(pointer, "~1", "/")
	return strings.ReplaceAll(pointer, "~0", "~")
}

// SplitFieldPath splits a field path at its last "." into the parent key and
// the final token. The key is empty for single segment paths.
func SplitFieldPath(field string) (key, token string) {
	i := strings.LastIndexByte(field, '.')
	if i < 0 {
		return "", field
	}
	return field[:i], field[i+1:]
}

// ParsePosition parses an array position token. Any decimal integer,
// including zero and negative values, is a position.
func ParsePosition(token string) (int, bool) {
	pos, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return pos, true
}

// EscapeKey escapes a single key so it can be used as a JSON Pointer segment.
func EscapeKey(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// JoinPointer builds a JSON Pointer out of raw (unescaped) keys.
func JoinPointer(keys ...string) string {
	var b strings.Builder
	for _, key := range keys {
		b.WriteByte('/')
		b.WriteString(EscapeKey(key))
	}
	return b.String()
}
