package treap_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynconn/treap"
)

// ExampleConcat builds an ordered sequence by repeatedly constructing a
// node and concatenating it onto the right, then walks it in order with
// FindMin/Next. The walk order and Size depend only on insertion order,
// never on the random priorities Construct draws.
func ExampleConcat() {
	rng := rand.New(rand.NewSource(1))
	var root *treap.Node
	for _, label := range []string{"a", "b", "c", "d"} {
		n := treap.Construct(label, rng)
		if root == nil {
			root = n
		} else {
			root = treap.Concat(root, n)
		}
	}

	fmt.Println("size:", treap.Size(root))
	for n := treap.FindMin(root); n != nil; n = treap.Next(n) {
		fmt.Println(n.Payload)
	}

	// Output:
	// size: 4
	// a
	// b
	// c
	// d
}

// ExampleSplitAfter demonstrates splitting a sequence at a node and
// rejoining it with Concat, recovering the original order.
func ExampleSplitAfter() {
	rng := rand.New(rand.NewSource(2))
	var nodes []*treap.Node
	var root *treap.Node
	for i := 0; i < 5; i++ {
		n := treap.Construct(i, rng)
		nodes = append(nodes, n)
		if root == nil {
			root = n
		} else {
			root = treap.Concat(root, n)
		}
	}

	right := treap.SplitAfter(nodes[1]) // nodes[1] keeps 0,1; right holds 2,3,4
	fmt.Println("left size:", treap.Size(nodes[1]))
	fmt.Println("right size:", treap.Size(right))

	rejoined := treap.Concat(nodes[1], right)
	for n := treap.FindMin(rejoined); n != nil; n = treap.Next(n) {
		fmt.Println(n.Payload)
	}

	// Output:
	// left size: 2
	// right size: 3
	// 0
	// 1
	// 2
	// 3
	// 4
}
