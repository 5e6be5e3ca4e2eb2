package mongopatch

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/copystructure"
)

// Update operator names.
const (
	OperatorSet    = "$set"
	OperatorUnset  = "$unset"
	OperatorPush   = "$push"
	OperatorRename = "$rename"
)

// unsetMarker is the value stored for every field in $unset.
const unsetMarker = 1

// Update is a MongoDB partial update document built from a JSON Patch.
//
// Every map is keyed by dotted field path. An operator without entries is
// kept nil and is omitted from every rendering of the update.
type Update struct {
	Set    map[string]any
	Unset  map[string]int
	Push   map[string]*Push
	Rename map[string]string
}

func newUpdate() *Update {
	return &Update{
		Set:    make(map[string]any),
		Unset:  make(map[string]int),
		Push:   make(map[string]*Push),
		Rename: make(map[string]string),
	}
}

// compact drops operators without entries.
func (u *Update) compact() {
	if len(u.Set) == 0 {
		u.Set = nil
	}
	if len(u.Unset) == 0 {
		u.Unset = nil
	}
	if len(u.Push) == 0 {
		u.Push = nil
	}
	if len(u.Rename) == 0 {
		u.Rename = nil
	}
}

// IsEmpty reports whether the update changes nothing.
func (u *Update) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.Unset) == 0 && len(u.Push) == 0 && len(u.Rename) == 0
}

// Operators returns the operators used by the update in rendering order.
func (u *Update) Operators() []string {
	var ops []string
	if len(u.Set) > 0 {
		ops = append(ops, OperatorSet)
	}
	if len(u.Unset) > 0 {
		ops = append(ops, OperatorUnset)
	}
	if len(u.Push) > 0 {
		ops = append(ops, OperatorPush)
	}
	if len(u.Rename) > 0 {
		ops = append(ops, OperatorRename)
	}
	return ops
}

// Map renders the update as a generic document such as
// {"$push": {"name": {"$each": ["a", "b"], "$position": 1}}}.
func (u *Update) Map() map[string]any {
	doc := make(map[string]any, 4)
	if len(u.Set) > 0 {
		set := make(map[string]any, len(u.Set))
		for field, value := range u.Set {
			set[field] = value
		}
		doc[OperatorSet] = set
	}
	if len(u.Unset) > 0 {
		unset := make(map[string]any, len(u.Unset))
		for field, marker := range u.Unset {
			unset[field] = marker
		}
		doc[OperatorUnset] = unset
	}
	if len(u.Push) > 0 {
		push := make(map[string]any, len(u.Push))
		for field, p := range u.Push {
			push[field] = p.Directive()
		}
		doc[OperatorPush] = push
	}
	if len(u.Rename) > 0 {
		rename := make(map[string]any, len(u.Rename))
		for from, to := range u.Rename {
			rename[from] = to
		}
		doc[OperatorRename] = rename
	}
	return doc
}

// MarshalJSON encodes the update document as plain JSON.
func (u *Update) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Map())
}

// String returns the JSON form of the update.
func (u *Update) String() string {
	data, err := u.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid update: %v>", err)
	}
	return string(data)
}

// Clone returns a deep copy of the update.
func (u *Update) Clone() (*Update, error) {
	dup, err := copystructure.Copy(u)
	if err != nil {
		return nil, fmt.Errorf("clone update: %w", err)
	}
	return dup.(*Update), nil
}
