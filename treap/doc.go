// Package treap implements a randomized balanced binary search tree with
// implicit (positional) order: an ordered sequence with O(log n) expected
// split, concat, and order comparison, and no stored keys.
//
// What:
//
//   - Node is a single element of the sequence. In-order traversal of the
//     tree rooted at any node yields the user's ordering.
//   - Split/Concat let callers cut and splice sequences at a node without
//     ever comparing keys: Compare answers "which of a, b comes first"
//     purely from tree shape.
//   - Every node keeps an exact subtree Size, so the tree also works as an
//     order-statistics structure if a caller wants positional ranks.
//
// Why:
//
//   - The euler package above this one needs exactly this: a sequence of
//     half-edges that can be cut and re-spliced at arbitrary points
//     (Link/Cut/MakeRoot) without a global key space to maintain.
//
// Complexity:
//
//   - FindRoot, Compare, SplitAfter/SplitBefore, Concat: O(log n) expected.
//   - Next, Prev: O(height), O(log n) expected (amortized O(1) over a full
//     walk).
//   - Size: O(height), since it walks to the root; O(1) on a root.
//
// Concurrency: a Node is not safe for concurrent use. Callers must
// serialize access to any tree that shares nodes across goroutines.
package treap
