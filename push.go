package mongopatch

import "errors"

// PushMode tells which form a Push directive currently has.
type PushMode uint8

const (
	// PushSingle is a bare value: {$push: {field: value}}.
	PushSingle PushMode = iota

	// PushEach is a batch appended at the end of the array:
	// {$push: {field: {$each: [...]}}}.
	PushEach

	// PushEachAt is a batch inserted at an explicit position:
	// {$push: {field: {$each: [...], $position: n}}}.
	PushEachAt
)

func (m PushMode) String() string {
	switch m {
	case PushSingle:
		return "single"
	case PushEach:
		return "each"
	case PushEachAt:
		return "each-at"
	}
	return "unknown"
}

var (
	errMixedPositions = errors.New(ReasonMixedPositions)
	errNonContiguous  = errors.New(ReasonNonContiguousAdds)
)

// Push is the $push directive accumulated for one array field.
type Push struct {
	Mode PushMode

	// Value holds the pushed value in PushSingle mode.
	Value any

	// Each holds the pushed values, in final array order, in PushEach and
	// PushEachAt modes.
	Each []any

	// Position is the array index of Each[0] in PushEachAt mode.
	Position int
}

// NewPush returns a directive pushing a single value at the end of the array.
func NewPush(value any) *Push {
	return &Push{Mode: PushSingle, Value: value}
}

// NewPushAt returns a directive inserting value at position.
func NewPushAt(position int, value any) *Push {
	return &Push{Mode: PushEachAt, Each: []any{value}, Position: position}
}

// Append adds value at the end of the array, after everything already
// accumulated. It fails if the directive inserts at an explicit position.
func (p *Push) Append(value any) error {
	switch p.Mode {
	case PushSingle:
		p.Each = []any{p.Value, value}
		p.Value = nil
		p.Mode = PushEach
	case PushEach:
		p.Each = append(p.Each, value)
	case PushEachAt:
		return errMixedPositions
	}
	return nil
}

// InsertAt inserts value so that it ends up at array index position. The
// position must fall inside the accumulated run or right after it.
func (p *Push) InsertAt(position int, value any) error {
	if p.Mode != PushEachAt {
		return errMixedPositions
	}

	// Inserting below the run start would leave untouched elements between
	// the new value and the run.
	offset := position - p.Position
	if offset < 0 || offset > len(p.Each) {
		return errNonContiguous
	}

	p.Each = append(p.Each, nil)
	copy(p.Each[offset+1:], p.Each[offset:])
	p.Each[offset] = value

	p.Position = min(position, p.Position)
	return nil
}

// Len returns the number of values pushed by the directive.
func (p *Push) Len() int {
	if p.Mode == PushSingle {
		return 1
	}
	return len(p.Each)
}

// Values returns the pushed values in final array order.
func (p *Push) Values() []any {
	if p.Mode == PushSingle {
		return []any{p.Value}
	}
	out := make([]any, len(p.Each))
	copy(out, p.Each)
	return out
}

// Directive returns the value to store under the field in a $push document.
func (p *Push) Directive() any {
	switch p.Mode {
	case PushEach:
		return map[string]any{"$each": p.Values()}
	case PushEachAt:
		return map[string]any{"$each": p.Values(), "$position": p.Position}
	}
	return p.Value
}
