package euler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynconn/edgeset"
	"github.com/katalvlaran/dynconn/treap"
)

// Forest is an Euler-tour forest over an opaque, comparable node identity
// K. It maintains a spanning forest of a dynamic undirected graph: Link
// adds a tree edge, Cut removes one, and Connected/ComponentSize answer
// queries against the current spanning structure.
//
// A Forest is not safe for concurrent use; callers that need concurrency
// must serialize access themselves (see package connectivity).
type Forest[K comparable] struct {
	vertices        map[K]*vertex[K]
	edges           *edgeset.EdgeSet[K, *halfEdge[K]]
	representatives map[K]struct{}
	rng             *rand.Rand
}

// New returns an empty forest. rng may be nil, in which case each treap
// node draws its priority from the package-global random source.
func New[K comparable](rng *rand.Rand) *Forest[K] {
	return &Forest[K]{
		vertices:        make(map[K]*vertex[K]),
		edges:           edgeset.New[K, *halfEdge[K]](),
		representatives: make(map[K]struct{}),
		rng:             rng,
	}
}

// CreateVertex registers id as a new isolated singleton.
func (f *Forest[K]) CreateVertex(id K) error {
	if _, exists := f.vertices[id]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, id)
	}
	f.vertices[id] = &vertex[K]{id: id}
	f.representatives[id] = struct{}{}
	f.edges.AddNode(id)
	return nil
}

// RemoveVertex unregisters id, which must currently be an isolated
// singleton (no incident tree edges).
func (f *Forest[K]) RemoveVertex(id K) error {
	v, ok := f.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	if !f.isSingleton(v) {
		return fmt.Errorf("%w: %v", ErrNotSingleton, id)
	}
	delete(f.vertices, id)
	delete(f.representatives, id)
	f.edges.RemoveNode(id)
	return nil
}

// HasVertex reports whether id is registered.
func (f *Forest[K]) HasVertex(id K) bool {
	_, ok := f.vertices[id]
	return ok
}

// HasEdge reports whether there is currently a tree edge between u and v.
func (f *Forest[K]) HasEdge(u, v K) bool {
	return f.edges.Has(u, v)
}

// Vertices returns every registered id, in unspecified order.
func (f *Forest[K]) Vertices() []K {
	out := make([]K, 0, len(f.vertices))
	for id := range f.vertices {
		out = append(out, id)
	}
	return out
}

// TreeNeighbors returns the ids directly tree-edge-adjacent to id.
func (f *Forest[K]) TreeNeighbors(id K) []K {
	return f.edges.IncidentNodes(id)
}

func (f *Forest[K]) isSingleton(v *vertex[K]) bool {
	return v.leftOut == nil
}

func (f *Forest[K]) connectedVertices(a, b *vertex[K]) bool {
	if a == b {
		return true
	}
	if f.isSingleton(a) || f.isSingleton(b) {
		return false
	}
	return treap.FindRoot(a.leftOut.node) == treap.FindRoot(b.leftOut.node)
}

// Connected reports whether u and v lie in the same spanning tree.
func (f *Forest[K]) Connected(u, v K) (bool, error) {
	vu, ok := f.vertices[u]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	vv, ok := f.vertices[v]
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}
	return f.connectedVertices(vu, vv), nil
}

// ComponentSize returns the number of vertices in id's component.
func (f *Forest[K]) ComponentSize(id K) (int, error) {
	v, ok := f.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	if v.leftOut == nil {
		return 1, nil
	}
	return treap.Size(v.leftOut.node)/2 + 1, nil
}

// representativeID returns the id that currently names v's component: the
// from-vertex of the tour's minimum half-edge, or v's own id if v is a
// singleton.
func (f *Forest[K]) representativeID(v *vertex[K]) K {
	if v.leftOut == nil {
		return v.id
	}
	root := treap.FindRoot(v.leftOut.node)
	return payloadOf[K](treap.FindMin(root)).from.id
}

// RepresentativeOf returns the id that currently names id's component: two
// vertices are connected if and only if RepresentativeOf returns the same
// id for both. O(log n) expected.
func (f *Forest[K]) RepresentativeOf(id K) (K, error) {
	v, ok := f.vertices[id]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	return f.representativeID(v), nil
}

// Representatives returns one id per component, in unspecified order.
func (f *Forest[K]) Representatives() []K {
	out := make([]K, 0, len(f.representatives))
	for id := range f.representatives {
		out = append(out, id)
	}
	return out
}

// NumComponents returns the current number of connected components.
func (f *Forest[K]) NumComponents() int {
	return len(f.representatives)
}

// NodesInComponent returns every vertex id reachable from id in the
// spanning forest, in unspecified order. O(component size).
func (f *Forest[K]) NodesInComponent(id K) ([]K, error) {
	v, ok := f.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	if v.leftOut == nil {
		return []K{id}, nil
	}

	root := treap.FindRoot(v.leftOut.node)
	seen := make(map[K]struct{})
	var out []K
	add := func(id K) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	var last K
	for cur := treap.FindMin(root); cur != nil; cur = treap.Next(cur) {
		he := payloadOf[K](cur)
		add(he.from.id)
		last = he.to.id
	}
	add(last)
	return out, nil
}

// MakeRoot re-roots v's component's tour at v, without changing the set of
// edges or the component itself. Grounded on the three-case split-point
// selection of the original Euler-tour-tree implementation this package's
// algorithm descends from.
func (f *Forest[K]) MakeRoot(id K) error {
	v, ok := f.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	f.makeRoot(v)
	return nil
}

func (f *Forest[K]) makeRoot(v *vertex[K]) {
	if v.leftOut == nil {
		return
	}
	oldRep := f.representativeID(v)
	delete(f.representatives, oldRep)
	f.representatives[v.id] = struct{}{}

	if treap.Size(v.leftOut.node) == 2 {
		first := treap.FindMin(treap.FindRoot(v.leftOut.node))
		if payloadOf[K](first).from == v {
			return
		}
		second := treap.SplitAfter(first)
		treap.Concat(second, first)
		return
	}

	fNode, bNode := v.leftOut.node, v.rightIn.node
	if treap.Compare(fNode, bNode) > 0 {
		fNode, bNode = bNode, fNode
	}
	fEdge := payloadOf[K](fNode)
	other := fEdge.to
	if other == v {
		other = fEdge.from
	}

	nextNode := treap.Next(fNode)
	next := payloadOf[K](nextNode)

	switch {
	case !halfEdgeContains(next, v):
		prev := treap.Prev(fNode)
		if prev == nil {
			// v is already the tour root.
			return
		}
		fNode = prev
	case halfEdgeContains(next, other):
		nextNext := treap.Next(nextNode)
		if nextNext == nil {
			nextNext = treap.Prev(fNode)
		}
		if nextNext != nil && halfEdgeContains(payloadOf[K](nextNext), v) {
			fNode = nextNode
		}
	}

	if right := treap.SplitAfter(fNode); right != nil {
		treap.Concat(right, fNode)
	}
}

// Link adds a tree edge between u and v, merging their components. u and v
// must already be registered and must not already be connected (an
// Euler-tour forest stores spanning trees only; linking two already-
// connected vertices would close a cycle it cannot represent — see package
// connectivity for non-tree-edge handling).
func (f *Forest[K]) Link(u, v K) error {
	if u == v {
		return ErrSelfLoop
	}
	vu, ok := f.vertices[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	vv, ok := f.vertices[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}
	if f.connectedVertices(vu, vv) {
		return ErrAlreadyConnected
	}

	fwd := &halfEdge[K]{from: vu, to: vv, forward: true}
	bwd := &halfEdge[K]{from: vv, to: vu, forward: false}
	fwd.inverse, bwd.inverse = bwd, fwd
	fwd.node = treap.Construct(fwd, f.rng)
	bwd.node = treap.Construct(bwd, f.rng)
	if err := f.edges.Add(u, v, fwd, bwd); err != nil {
		return err
	}

	f.makeRoot(vu)
	f.makeRoot(vv)

	delete(f.representatives, f.representativeID(vu))
	delete(f.representatives, f.representativeID(vv))

	var savedMin *treap.Node
	if vu.leftOut != nil {
		savedMin = treap.FindMin(treap.FindRoot(vu.leftOut.node))
	}

	if savedMin != nil {
		treap.Concat(savedMin, fwd.node)
	} else {
		vu.leftOut = fwd
	}

	if vv.leftOut != nil {
		treap.Concat(fwd.node, vv.leftOut.node)
	} else {
		vv.leftOut = fwd
	}

	if vv.rightIn != nil {
		treap.Concat(vv.rightIn.node, bwd.node)
	} else {
		vv.rightIn = bwd
		treap.Concat(vu.leftOut.node, bwd.node)
	}
	vu.rightIn = bwd

	f.representatives[f.representativeID(vu)] = struct{}{}
	return nil
}

// reconcileNP fills in whichever of n, p is nil from the other's tree, so
// that a vertex losing its edge at a reconstructed tour can still recover
// both of its two new anchors. Left alone (both nil, or both already set)
// when there is nothing to reconcile.
func reconcileNP(n, p *treap.Node) (*treap.Node, *treap.Node) {
	if (n != nil || p != nil) && !(n != nil && p != nil) {
		if n == nil {
			n = treap.FindMin(treap.FindRoot(p))
		} else {
			p = treap.FindMax(treap.FindRoot(n))
		}
	}
	return n, p
}

// Cut removes the tree edge between u and v, splitting their component in
// two. Grounded on the four-case endpoint-pointer reassignment of the
// original Euler-tour-tree implementation.
func (f *Forest[K]) Cut(u, v K) error {
	vu, ok := f.vertices[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	vv, ok := f.vertices[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}
	fwdHE, ok := f.edges.Get(u, v)
	if !ok {
		return fmt.Errorf("%w: (%v, %v)", ErrNoSuchEdge, u, v)
	}
	bwdHE := fwdHE.inverse
	fromV, toV := fwdHE.from, fwdHE.to

	delete(f.representatives, f.representativeID(vu))

	fNode, bNode := fwdHE.node, bwdHE.node
	if treap.Compare(fNode, bNode) > 0 {
		fNode, bNode = bNode, fNode
	}

	p := treap.Prev(fNode)
	n := treap.Next(bNode)
	pn := treap.Next(fNode)
	nn := treap.Prev(bNode)

	tree1 := treap.SplitBefore(fNode)
	tree2 := treap.SplitAfter(bNode)
	if tree1 != nil && tree2 != nil {
		treap.Concat(tree1, tree2)
	}

	pnEdge := payloadOf[K](pn)

	switch {
	case halfEdgeContains(pnEdge, fromV) && halfEdgeContains(pnEdge, toV):
		n, p = reconcileNP(n, p)
		switch {
		case n == nil:
			fromV.leftOut, fromV.rightIn = nil, nil
			toV.leftOut, toV.rightIn = nil, nil
		case halfEdgeContains(payloadOf[K](n), fromV):
			fromV.leftOut, fromV.rightIn = payloadOf[K](n), payloadOf[K](p)
			toV.leftOut, toV.rightIn = nil, nil
		default:
			toV.leftOut, toV.rightIn = payloadOf[K](n), payloadOf[K](p)
			fromV.leftOut, fromV.rightIn = nil, nil
		}
	case halfEdgeContains(pnEdge, fromV):
		fromV.leftOut, fromV.rightIn = pnEdge, payloadOf[K](nn)
		n, p = reconcileNP(n, p)
		if n != nil {
			toV.leftOut, toV.rightIn = payloadOf[K](n), payloadOf[K](p)
		} else {
			toV.leftOut, toV.rightIn = nil, nil
		}
	case halfEdgeContains(pnEdge, toV):
		toV.leftOut, toV.rightIn = pnEdge, payloadOf[K](nn)
		n, p = reconcileNP(n, p)
		if n != nil {
			fromV.leftOut, fromV.rightIn = payloadOf[K](n), payloadOf[K](p)
		} else {
			fromV.leftOut, fromV.rightIn = nil, nil
		}
	}

	treap.SplitAfter(fNode)
	treap.SplitBefore(bNode)

	if fromV.leftOut != nil && treap.Size(fromV.leftOut.node) == 1 {
		fromV.leftOut, fromV.rightIn = nil, nil
	}
	if toV.leftOut != nil && treap.Size(toV.leftOut.node) == 1 {
		toV.leftOut, toV.rightIn = nil, nil
	}

	f.edges.Delete(u, v)

	f.representatives[f.representativeID(vu)] = struct{}{}
	f.representatives[f.representativeID(vv)] = struct{}{}
	return nil
}
