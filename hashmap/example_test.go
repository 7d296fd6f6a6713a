package hashmap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/hashmap"
)

// ExampleHashMap shows growth from two buckets as entries are added.
func ExampleHashMap() {
	m, err := hashmap.New[string, int](2, hashmap.WithMaxLoadFactor(1.0))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, w := range []string{"ant", "bee", "cat", "dog"} {
		m.Insert(w, i)
		fmt.Printf("len=%d buckets=%d\n", m.Len(), m.BucketCount())
	}

	v, _ := m.Remove("bee")
	fmt.Println("removed", v, "len", m.Len())
	// Output:
	// len=1 buckets=2
	// len=2 buckets=5
	// len=3 buckets=5
	// len=4 buckets=5
	// removed 1 len 3
}
