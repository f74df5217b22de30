package edgeset_test

import (
	"fmt"

	"github.com/katalvlaran/dynconn/edgeset"
)

// ExampleEdgeSet_Add demonstrates that an edge added once is retrievable
// from either endpoint, with the direction-specific value intact.
func ExampleEdgeSet_Add() {
	s := edgeset.New[string, string]()
	_ = s.Add("a", "b", "a->b", "b->a")

	fwd, _ := s.Get("a", "b")
	bwd, _ := s.Get("b", "a")
	fmt.Println(fwd)
	fmt.Println(bwd)
	fmt.Println(s.Has("a", "b"), s.Has("b", "a"))

	// Output:
	// a->b
	// b->a
	// true true
}

// ExampleEdgeSet_Delete demonstrates that deleting an edge clears both
// directions, and that the pair is safe to re-add afterward.
func ExampleEdgeSet_Delete() {
	s := edgeset.New[string, int]()
	_ = s.Add("a", "b", 1, 2)
	s.Delete("a", "b")

	fmt.Println(s.Has("a", "b"), s.Has("b", "a"))
	fmt.Println(s.Add("a", "b", 9, 10))

	// Output:
	// false false
	// <nil>
}
