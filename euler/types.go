package euler

import "github.com/katalvlaran/dynconn/treap"

// vertex is one node of the forest. leftOut and rightIn are the two
// treap-node handles used to locate the vertex's position in its
// component's tour; both are nil iff the vertex is an isolated singleton.
// Which of the two half-edges a vertex's traversal happens to land on is
// not semantically fixed (see makeRoot) — they are simply two incident
// anchors from which FindRoot/FindMin/FindMax recover the tour.
type vertex[K comparable] struct {
	id               K
	leftOut, rightIn *halfEdge[K]
}

// halfEdge is one directed traversal of a tree edge. Every tree edge owns
// exactly two: a forward half-edge and its inverse. node is the treap.Node
// that places this half-edge within its component's tour.
type halfEdge[K comparable] struct {
	from, to *vertex[K]
	inverse  *halfEdge[K]
	forward  bool
	node     *treap.Node
}

func halfEdgeContains[K comparable](h *halfEdge[K], v *vertex[K]) bool {
	return h.from == v || h.to == v
}

func payloadOf[K comparable](n *treap.Node) *halfEdge[K] {
	return n.Payload.(*halfEdge[K])
}
