package treap

import "math/rand"

// Node is one element of an implicitly-ordered treap sequence.
//
// Priority obeys the max-heap property (a parent's priority is never less
// than either child's); Size is the exact count of nodes in the subtree
// rooted here, including this node. Payload is opaque to the treap — the
// euler package stores its unexported *halfEdge in it.
type Node struct {
	priority int64
	size     int
	Payload  any

	left, right, parent *Node
}

// Construct returns a new, detached node with a fresh random priority and
// size 1. rng may be nil, in which case the package-global source is used;
// pass an explicit, seeded *rand.Rand for reproducible tests (spec §5).
func Construct(payload any, rng *rand.Rand) *Node {
	n := &Node{size: 1, Payload: payload}
	if rng != nil {
		n.priority = rng.Int63()
	} else {
		n.priority = rand.Int63()
	}
	return n
}

func sizeOf(n *Node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func priorityOf(n *Node) int64 {
	if n == nil {
		return -1 // an absent child never outranks a real node
	}
	return n.priority
}

func (n *Node) recompute() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// FindRoot walks parent links to the root of n's tree. O(height).
func FindRoot(n *Node) *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// FindMin returns the leftmost descendant of n's tree (its in-order first
// element).
func FindMin(n *Node) *Node {
	n = FindRoot(n)
	for n.left != nil {
		n = n.left
	}
	return n
}

// FindMax returns the rightmost descendant of n's tree (its in-order last
// element).
func FindMax(n *Node) *Node {
	n = FindRoot(n)
	for n.right != nil {
		n = n.right
	}
	return n
}

// Size returns the number of nodes in n's tree. O(height): it walks to the
// root first, and is O(1) when n is already the root.
func Size(n *Node) int {
	return sizeOf(FindRoot(n))
}

// Next returns the in-order successor of n, or nil if n is the last
// element of its tree.
func Next(n *Node) *Node {
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return n
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n is the first
// element of its tree.
func Prev(n *Node) *Node {
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return n
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// rotateLeft performs a standard left rotation at u, promoting u.right.
// Preserves in-order traversal; recomputes sizes for the two nodes whose
// subtrees changed.
func rotateLeft(u *Node) *Node {
	w := u.right
	w.parent = u.parent
	if w.parent != nil {
		if w.parent.left == u {
			w.parent.left = w
		} else {
			w.parent.right = w
		}
	}
	u.right = w.left
	if u.right != nil {
		u.right.parent = u
	}
	u.parent = w
	w.left = u

	u.recompute()
	w.recompute()
	return w
}

// rotateRight performs a standard right rotation at u, promoting u.left.
func rotateRight(u *Node) *Node {
	w := u.left
	w.parent = u.parent
	if w.parent != nil {
		if w.parent.left == u {
			w.parent.left = w
		} else {
			w.parent.right = w
		}
	}
	u.left = w.right
	if u.left != nil {
		u.left.parent = u
	}
	u.parent = w
	w.right = u

	u.recompute()
	w.recompute()
	return w
}

// moveUp restores the heap property after n's priority has been raised,
// rotating n up past its parent until n's priority is below its parent's
// (an equal priority still rotates n up).
func moveUp(n *Node) {
	for n.parent != nil && n.priority >= n.parent.priority {
		if n.parent.left == n {
			rotateRight(n.parent)
		} else {
			rotateLeft(n.parent)
		}
	}
}

// moveDown is the dual of moveUp: rotates n's higher-priority child up
// repeatedly until n has no children, leaving n a leaf ready to detach.
func moveDown(n *Node) {
	for n.left != nil || n.right != nil {
		switch {
		case n.left == nil:
			rotateLeft(n)
		case n.right == nil:
			rotateRight(n)
		case n.left.priority > n.right.priority:
			rotateRight(n)
		default:
			rotateLeft(n)
		}
	}
}

// Compare returns a total order between a and b reflecting their in-order
// position within their common treap, without consulting any key.
//
// Precondition: FindRoot(a) == FindRoot(b). Violating it is a programmer
// error and Compare panics, per the treap's stated failure semantics:
// structural operations are total only within their documented
// preconditions.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if FindRoot(a) != FindRoot(b) {
		panic("treap: Compare called on nodes from different trees")
	}

	depthA, depthB := depth(a), depth(b)
	for depthA > depthB {
		if a.parent == b {
			if a == b.left {
				return -1
			}
			return 1
		}
		a = a.parent
		depthA--
	}
	for depthB > depthA {
		if b.parent == a {
			if b == a.left {
				return 1
			}
			return -1
		}
		b = b.parent
		depthB--
	}
	for a != b {
		if a.parent == b.parent {
			if a == a.parent.left {
				return -1
			}
			return 1
		}
		a = a.parent
		b = b.parent
	}
	return 0
}

func depth(n *Node) int {
	d := 0
	for n.parent != nil {
		n = n.parent
		d++
	}
	return d
}

// chooseNewPriority resets n's priority to one more than the larger of its
// (possibly nil) children's priorities, so it stays strictly above both,
// preserving a weak heap property locally after n has been forced to the
// root by SplitAfter/SplitBefore.
func chooseNewPriority(n *Node) {
	p := priorityOf(n.left)
	if q := priorityOf(n.right); q > p {
		p = q
	}
	n.priority = p + 1
}

// SplitAfter raises n to the root of its tree, detaches n's right
// subtree, and returns it. n remains the root of the left part, with n as
// its new maximum element.
func SplitAfter(n *Node) *Node {
	n.priority = maxPriority
	moveUp(n)
	right := n.right
	if right != nil {
		right.parent = nil
		n.right = nil
		n.recompute()
	}
	chooseNewPriority(n)
	return right
}

// SplitBefore raises n to the root of its tree, detaches n's left
// subtree, and returns it. n remains the root of the right part, with n
// as its new minimum element.
func SplitBefore(n *Node) *Node {
	n.priority = maxPriority
	moveUp(n)
	left := n.left
	if left != nil {
		left.parent = nil
		n.left = nil
		n.recompute()
	}
	chooseNewPriority(n)
	return left
}

// maxPriority is a sentinel temporarily assigned to a node being split so
// that moveUp raises it all the way to the root regardless of the
// priorities already present in the tree.
const maxPriority = int64(1<<63 - 1)

// Concat merges the trees rooted at a and b, where every element of a's
// tree precedes every element of b's tree in the desired order. Either
// argument may be nil. Returns the root of the merged tree.
func Concat(a, b *Node) *Node {
	if a == nil {
		if b != nil {
			return FindRoot(b)
		}
		return nil
	}
	if b == nil {
		return FindRoot(a)
	}
	a, b = FindRoot(a), FindRoot(b)
	r := concatRecurse(a, b)
	r.parent = nil
	return r
}

func concatRecurse(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority > b.priority {
		a.right = concatRecurse(a.right, b)
		a.right.parent = a
		a.recompute()
		return a
	}
	b.left = concatRecurse(a, b.left)
	b.left.parent = b
	b.recompute()
	return b
}

// Remove detaches n from its tree, leaving it a singleton. Used by
// callers that own a node by identity (no explicit key) and want to pull
// it out of a sequence without walking the tree by key.
func Remove(n *Node) {
	moveDown(n)
	if n.parent != nil {
		if n.parent.left == n {
			n.parent.left = nil
		} else {
			n.parent.right = nil
		}
		for p := n.parent; p != nil; p = p.parent {
			p.size--
		}
		n.parent = nil
	}
	n.size = 1
}
