// Package euler implements an Euler-tour forest: one treap per connected
// component, whose in-order traversal is the Euler tour of a rooted
// spanning tree of that component.
//
// What:
//
//   - Forest owns the vertex set and the tour treaps. Each undirected
//     spanning-tree edge contributes two treap nodes, one per traversal
//     direction (a forward and a backward half-edge); a singleton vertex
//     owns no treap at all.
//   - Link/Cut/MakeRoot are expressed entirely as treap split/concat —
//     see package treap — so every mutation costs expected O(log n).
//   - Connected is a single treap.FindRoot comparison.
//
// Why:
//
//   - This is the "tree" in dynamic connectivity's spanning forest: it
//     answers connectivity queries and supports link/cut without
//     recomputing components, at the cost of only maintaining a spanning
//     forest (no non-tree-edge replacement search — see package
//     connectivity for the opt-in best-effort version of that).
//
// Complexity: Link, Cut, Connected, ComponentSize: O(log n) expected.
// NodesInComponent: O(component size).
package euler
