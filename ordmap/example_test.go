package ordmap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/ordmap"
)

// ExampleAVL inserts a handful of keys out of order, overwrites one and
// walks the map from key 6 onwards.
func ExampleAVL() {
	m := ordmap.NewAVL[int, string]()
	for _, kv := range []struct {
		k int
		v string
	}{{8, "eight"}, {-2, "minus two"}, {3, "three"}, {10, "ten"}, {6, "six"}, {7, "seven"}} {
		m.Insert(kv.k, kv.v)
	}
	m.Insert(6, "SIX")

	it, ok := m.Find(6)
	if !ok {
		return
	}
	for k, v := range it.Seq() {
		fmt.Println(k, v)
	}
	// Output:
	// 6 SIX
	// 7 seven
	// 8 eight
	// 10 ten
}

// ExampleBTree shows the loud and the quiet lookups side by side.
func ExampleBTree() {
	b, err := ordmap.NewBTree[string, int](2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, w := range []string{"delta", "alpha", "charlie", "bravo", "echo"} {
		b.Insert(w, i)
	}

	v, ok := b.Get("charlie")
	fmt.Println(v, ok)

	_, err = b.At("zulu")
	fmt.Println(err)

	for k := range b.All() {
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output:
	// 2 true
	// ordmap: key out of bounds: zulu
	// alpha bravo charlie delta echo
}
