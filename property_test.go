package mongopatch

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/brunoga/mongopatch/patch"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

// Property-based test: end-appends keep arrival order.
func TestTranslate_PropertyAppendOrder(t *testing.T) {
	properties := newProperties()

	properties.Property("end-appends keep arrival order", prop.ForAll(
		func(values []string) bool {
			p := patch.New()
			for _, v := range values {
				p = p.Add("/list/-", v)
			}
			u, err := Translate(p)
			if err != nil {
				return false
			}
			if len(values) == 0 {
				return u.IsEmpty()
			}
			push := u.Push["list"]
			if len(values) == 1 {
				return push.Mode == PushSingle && push.Value == values[0]
			}
			return push.Mode == PushEach && reflect.DeepEqual(push.Each, toAny(values))
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property-based test: repeated adds at one position come out reversed.
func TestTranslate_PropertySamePositionReverses(t *testing.T) {
	properties := newProperties()

	properties.Property("adds at one position reverse", prop.ForAll(
		func(position int, values []string) bool {
			p := patch.New()
			for _, v := range values {
				p = p.Add(fmt.Sprintf("/list/%d", position), v)
			}
			u, err := Translate(p)
			if err != nil {
				return false
			}
			if len(values) == 0 {
				return u.IsEmpty()
			}
			reversed := make([]any, len(values))
			for i, v := range values {
				reversed[len(values)-1-i] = v
			}
			push := u.Push["list"]
			return push.Mode == PushEachAt && push.Position == position &&
				reflect.DeepEqual(push.Each, reversed)
		},
		gen.IntRange(0, 50),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property-based test: adds at consecutive positions keep their order.
func TestTranslate_PropertyConsecutivePositions(t *testing.T) {
	properties := newProperties()

	properties.Property("consecutive positions keep order", prop.ForAll(
		func(start int, n int) bool {
			p := patch.New()
			values := make([]string, n)
			for i := range values {
				values[i] = fmt.Sprintf("v%d", i)
				p = p.Add(fmt.Sprintf("/list/%d", start+i), values[i])
			}
			u, err := Translate(p)
			if err != nil {
				return false
			}
			push := u.Push["list"]
			return push.Position == start && reflect.DeepEqual(push.Each, toAny(values))
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

// Property-based test: test operations never change the update.
func TestTranslate_PropertyTestIsNoop(t *testing.T) {
	properties := newProperties()

	properties.Property("test-only patches give an empty update", prop.ForAll(
		func(paths []string) bool {
			p := patch.New()
			for _, path := range paths {
				p = p.Test("/"+path, path)
			}
			u, err := Translate(p)
			return err == nil && u.IsEmpty() && len(u.Map()) == 0
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}

// Property-based test: a gap after the accumulated run is always rejected.
func TestTranslate_PropertyGapRejected(t *testing.T) {
	properties := newProperties()

	properties.Property("gaps are rejected", prop.ForAll(
		func(start int, n int, gap int) bool {
			p := patch.New()
			for i := 0; i < n; i++ {
				p = p.Add(fmt.Sprintf("/list/%d", start+i), i)
			}
			p = p.Add(fmt.Sprintf("/list/%d", start+n+gap), "late")
			_, err := Translate(p)
			return err != nil
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 10),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
