package connectivity

import (
	"fmt"

	"github.com/katalvlaran/dynconn/edgeset"
	"github.com/katalvlaran/dynconn/euler"
)

// Connectivity answers connectivity queries over an undirected graph with
// an opaque, comparable node identity K, while nodes and edges come and
// go. It is the package's public facade: all mutation and query
// operations are methods on this type.
//
// Not safe for concurrent use by multiple goroutines without external
// synchronization — the same contract package euler documents for Forest,
// which this type wraps.
type Connectivity[K comparable] struct {
	forest       *euler.Forest[K]
	cfg          *config
	nonTreeEdges bool
	nonTree      *edgeset.EdgeSet[K, struct{}]
}

// New returns an empty Connectivity structure.
func New[K comparable](opts ...Option) *Connectivity[K] {
	cfg := newConfig(opts...)
	c := &Connectivity[K]{
		forest:       euler.New[K](cfg.rng),
		cfg:          cfg,
		nonTreeEdges: cfg.nonTreeEdges,
	}
	if c.nonTreeEdges {
		c.nonTree = edgeset.New[K, struct{}]()
	}
	return c
}

// AddNode registers id as a new isolated node.
func (c *Connectivity[K]) AddNode(id K) error {
	if err := c.forest.CreateVertex(id); err != nil {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, id)
	}
	if c.nonTreeEdges {
		c.nonTree.AddNode(id)
	}
	return nil
}

// RemoveNode unregisters id, which must have no incident edges (tree or
// non-tree).
func (c *Connectivity[K]) RemoveNode(id K) error {
	if !c.forest.HasVertex(id) {
		return fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	if c.nonTreeEdges && len(c.nonTree.IncidentNodes(id)) > 0 {
		return fmt.Errorf("%w: %v", ErrNotIsolated, id)
	}
	if err := c.forest.RemoveVertex(id); err != nil {
		return fmt.Errorf("%w: %v", ErrNotIsolated, id)
	}
	if c.nonTreeEdges {
		c.nonTree.RemoveNode(id)
	}
	return nil
}

// AddEdge adds the undirected edge {u, v}. The returned bool reports
// whether it became a new tree edge in the spanning forest (true), as
// opposed to a non-tree edge between two vertices already connected
// (false): by default a non-tree edge is a documented no-op — the forest
// already answers Connected(u, v) == true, and it carries no information
// the forest needs — but with WithNonTreeEdges it is instead recorded for
// RemoveEdge's replacement search (still reported as false, since it did
// not become a tree edge).
func (c *Connectivity[K]) AddEdge(u, v K) (bool, error) {
	if u == v {
		return false, ErrSelfLoop
	}
	if !c.forest.HasVertex(u) {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	if !c.forest.HasVertex(v) {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}
	if c.HasEdge(u, v) {
		return false, ErrEdgeExists
	}

	connected, err := c.forest.Connected(u, v)
	if err != nil {
		return false, err
	}
	if !connected {
		if err := c.forest.Link(u, v); err != nil {
			return false, err
		}
		return true, nil
	}

	if c.nonTreeEdges {
		if err := c.nonTree.Add(u, v, struct{}{}, struct{}{}); err != nil {
			return false, err
		}
	}
	return false, nil
}

// HasEdge reports whether {u, v} is currently recorded as an edge — a
// tree edge in the spanning forest, or (with WithNonTreeEdges) a recorded
// non-tree edge.
func (c *Connectivity[K]) HasEdge(u, v K) bool {
	return c.forest.HasEdge(u, v) || (c.nonTreeEdges && c.nonTree.Has(u, v))
}

// RemoveEdge removes the undirected edge {u, v}. If it was a non-tree
// edge, removal is immediate. If it was a tree edge, the forest splits
// into two components unless WithNonTreeEdges is enabled and a recorded
// non-tree edge can reconnect them — see RemoveEdge's replacement search.
func (c *Connectivity[K]) RemoveEdge(u, v K) error {
	if u == v {
		return ErrSelfLoop
	}
	if !c.forest.HasVertex(u) {
		return fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	if !c.forest.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}

	if c.nonTreeEdges && c.nonTree.Has(u, v) {
		c.nonTree.Delete(u, v)
		return nil
	}
	if !c.forest.HasEdge(u, v) {
		return fmt.Errorf("%w: (%v, %v)", ErrNoSuchEdge, u, v)
	}

	if err := c.forest.Cut(u, v); err != nil {
		return err
	}
	if !c.nonTreeEdges {
		return nil
	}
	return c.reconnect(u, v)
}

// reconnect runs the best-effort replacement search documented by
// WithNonTreeEdges, after Cut(u, v) has already split the component in
// two. It promotes the first recorded non-tree edge it finds crossing the
// new cut to a tree edge; if none exists, the components remain split.
func (c *Connectivity[K]) reconnect(u, v K) error {
	sideU, err := c.forest.NodesInComponent(u)
	if err != nil {
		return err
	}
	sideV, err := c.forest.NodesInComponent(v)
	if err != nil {
		return err
	}
	small, large := sideU, sideV
	if len(sideV) < len(sideU) {
		small, large = sideV, sideU
	}
	inLarge := make(map[K]struct{}, len(large))
	for _, id := range large {
		inLarge[id] = struct{}{}
	}

	for _, id := range small {
		for _, nbr := range c.nonTree.IncidentNodes(id) {
			if _, ok := inLarge[nbr]; ok {
				c.nonTree.Delete(id, nbr)
				return c.forest.Link(id, nbr)
			}
		}
	}
	return nil
}

// Connected reports whether u and v are in the same component.
func (c *Connectivity[K]) Connected(u, v K) (bool, error) {
	if !c.forest.HasVertex(u) {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	if !c.forest.HasVertex(v) {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}
	return c.forest.Connected(u, v)
}

// ComponentOf returns a representative id for id's component: two nodes
// are connected if and only if ComponentOf returns the same id for both.
// O(log n) expected.
func (c *Connectivity[K]) ComponentOf(id K) (K, error) {
	rep, err := c.forest.RepresentativeOf(id)
	if err != nil {
		return rep, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	return rep, nil
}

// NodesOf returns every node in id's component, in unspecified order.
func (c *Connectivity[K]) NodesOf(id K) ([]K, error) {
	if !c.forest.HasVertex(id) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	return c.forest.NodesInComponent(id)
}

// Components returns one representative id per component, in unspecified
// order.
func (c *Connectivity[K]) Components() []K {
	return c.forest.Representatives()
}

// NumComponents returns the current number of connected components.
func (c *Connectivity[K]) NumComponents() int {
	return c.forest.NumComponents()
}
