package mongopatch_test

import (
	"errors"
	"fmt"

	"github.com/brunoga/mongopatch"
	"github.com/brunoga/mongopatch/patch"
)

func ExampleTranslate() {
	p := patch.New().
		Replace("/profile/name", "dave").
		Remove("/profile/nickname").
		Add("/tags/-", "admin").
		Add("/tags/-", "ops")

	u, err := mongopatch.Translate(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: {"$push":{"tags":{"$each":["admin","ops"]}},"$set":{"profile.name":"dave"},"$unset":{"profile.nickname":1}}
}

func ExampleTranslate_positions() {
	p := patch.New().
		Add("/name/1", "dave").
		Add("/name/2", "bob").
		Add("/name/2", "john")

	u, err := mongopatch.Translate(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: {"$push":{"name":{"$each":["dave","john","bob"],"$position":1}}}
}

func ExampleTranslate_unsupported() {
	p := patch.New().
		Add("/name/1", "bob").
		Add("/name/3", "john")

	_, err := mongopatch.Translate(p)
	fmt.Println(errors.Is(err, mongopatch.ErrUnsupportedOperation))
	fmt.Println(err)
	// Output:
	// true
	// unsupported operation 1 (add /name/3): can use add op only with contiguous positions
}

func ExampleTranslateJSON() {
	u, err := mongopatch.TranslateJSON([]byte(`[
		{"op": "move", "path": "/name", "from": "/old_name"},
		{"op": "test", "path": "/name", "value": "dave"}
	]`))
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: {"$rename":{"old_name":"name"}}
}

func ExampleFieldPath() {
	fmt.Println(mongopatch.FieldPath("/a~1b~0c/d"))
	// Output: a/b~c.d
}
