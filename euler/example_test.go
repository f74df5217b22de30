package euler_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynconn/euler"
)

// ExampleForest_Link demonstrates building a small chain, querying
// connectivity and component size, then cutting an edge to split it.
func ExampleForest_Link() {
	f := euler.New[string](rand.New(rand.NewSource(1)))
	for _, id := range []string{"a", "b", "c"} {
		_ = f.CreateVertex(id)
	}
	_ = f.Link("a", "b")
	_ = f.Link("b", "c")

	connected, _ := f.Connected("a", "c")
	size, _ := f.ComponentSize("a")
	fmt.Println(connected, size)

	_ = f.Cut("b", "c")
	connected, _ = f.Connected("a", "c")
	fmt.Println(connected)

	// Output:
	// true 3
	// false
}
