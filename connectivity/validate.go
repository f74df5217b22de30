package connectivity

import (
	"fmt"

	"github.com/golang-collections/collections/stack"
)

// ErrInconsistent is returned by Validate when the spanning forest's
// claimed components disagree with a from-scratch recomputation over the
// current tree edges. A healthy Connectivity never returns this; Validate
// exists for tests, not for the hot path (see package doc).
var ErrInconsistent = fmt.Errorf("connectivity: inconsistent component state")

// Validate recomputes connected components from scratch, by an iterative
// (non-recursive) walk over tree edges, and cross-checks the result
// against what the spanning forest itself reports. It is the naive
// baseline the rest of this package exists to avoid paying for on every
// mutation — intended for tests and fuzz cross-checks, not production
// use.
func (c *Connectivity[K]) Validate() error {
	visited := make(map[K]struct{})
	var numComponents int
	reps := make(map[K]struct{})
	for _, r := range c.Components() {
		reps[r] = struct{}{}
	}

	for _, start := range c.forest.Vertices() {
		if _, ok := visited[start]; ok {
			continue
		}
		numComponents++

		var component []K
		st := &stack.Stack{}
		st.Push(start)
		visited[start] = struct{}{}
		for st.Len() > 0 {
			cur := st.Pop().(K)
			component = append(component, cur)
			for _, nbr := range c.forest.TreeNeighbors(cur) {
				if _, ok := visited[nbr]; ok {
					continue
				}
				visited[nbr] = struct{}{}
				st.Push(nbr)
			}
		}

		rep, err := c.ComponentOf(start)
		if err != nil {
			return err
		}
		if _, ok := reps[rep]; !ok {
			return fmt.Errorf("%w: representative %v of %v is not in the representative set", ErrInconsistent, rep, start)
		}
		size, err := c.forest.ComponentSize(start)
		if err != nil {
			return err
		}
		if size != len(component) {
			return fmt.Errorf("%w: tour of %v covers %d vertices, walk reached %d", ErrInconsistent, start, size, len(component))
		}
		for _, id := range component {
			gotRep, err := c.ComponentOf(id)
			if err != nil {
				return err
			}
			if gotRep != rep {
				return fmt.Errorf("%w: %v reports representative %v, expected %v", ErrInconsistent, id, gotRep, rep)
			}
			for _, other := range component {
				connected, err := c.Connected(id, other)
				if err != nil {
					return err
				}
				if !connected {
					return fmt.Errorf("%w: %v and %v share a walk but Connected returned false", ErrInconsistent, id, other)
				}
			}
		}
	}

	if numComponents != c.NumComponents() {
		return fmt.Errorf("%w: recomputed %d components, forest reports %d", ErrInconsistent, numComponents, c.NumComponents())
	}
	return nil
}
