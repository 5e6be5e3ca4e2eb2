package mongopatch

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// BSON renders the update as an ordered document that can be passed as the
// update argument of a collection's UpdateOne or UpdateMany.
//
// Operators appear as $set, $unset, $push, $rename, fields are sorted and
// batched pushes list $each before $position, so the same update always
// yields the same bytes.
func (u *Update) BSON() bson.D {
	doc := bson.D{}
	if len(u.Set) > 0 {
		set := make(bson.D, 0, len(u.Set))
		for _, field := range sortedKeys(u.Set) {
			set = append(set, bson.E{Key: field, Value: u.Set[field]})
		}
		doc = append(doc, bson.E{Key: OperatorSet, Value: set})
	}
	if len(u.Unset) > 0 {
		unset := make(bson.D, 0, len(u.Unset))
		for _, field := range sortedKeys(u.Unset) {
			unset = append(unset, bson.E{Key: field, Value: u.Unset[field]})
		}
		doc = append(doc, bson.E{Key: OperatorUnset, Value: unset})
	}
	if len(u.Push) > 0 {
		push := make(bson.D, 0, len(u.Push))
		for _, field := range sortedKeys(u.Push) {
			push = append(push, bson.E{Key: field, Value: u.Push[field].bson()})
		}
		doc = append(doc, bson.E{Key: OperatorPush, Value: push})
	}
	if len(u.Rename) > 0 {
		rename := make(bson.D, 0, len(u.Rename))
		for _, from := range sortedKeys(u.Rename) {
			rename = append(rename, bson.E{Key: from, Value: u.Rename[from]})
		}
		doc = append(doc, bson.E{Key: OperatorRename, Value: rename})
	}
	return doc
}

// MarshalExtJSON encodes the update as MongoDB Extended JSON v2, in canonical
// or relaxed mode.
func (u *Update) MarshalExtJSON(canonical bool) ([]byte, error) {
	data, err := bson.MarshalExtJSON(u.BSON(), canonical, false)
	if err != nil {
		return nil, fmt.Errorf("marshal extended json: %w", err)
	}
	return data, nil
}

func (p *Push) bson() any {
	switch p.Mode {
	case PushEach:
		return bson.D{{Key: "$each", Value: bson.A(p.Values())}}
	case PushEachAt:
		return bson.D{
			{Key: "$each", Value: bson.A(p.Values())},
			{Key: "$position", Value: p.Position},
		}
	}
	return p.Value
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
