// Package connectivity exposes the public dynamic-connectivity facade:
// Connectivity[K] answers "are u and v connected?" against a graph that
// gains and loses nodes and edges over time, without ever recomputing
// components from scratch.
//
// What:
//
//   - AddEdge/RemoveEdge mutate a spanning forest (package euler) in
//     O(log n) expected time. Connected, ComponentOf, NodesOf and
//     NumComponents all answer directly from that forest.
//   - A non-tree edge (one joining two vertices already connected) is, by
//     default, a silent no-op: the spanning forest already answers
//     Connected correctly for it, and it carries no information the forest
//     needs. WithNonTreeEdges opts into tracking it, so that RemoveEdge on
//     a tree edge can search recorded non-tree edges for a replacement —
//     at a cost this package does not attempt to keep polylogarithmic (see
//     options.go).
//
// Why:
//
//   - Recomputing connectivity from scratch after every mutation is the
//     naive baseline (see Validate, which does exactly that, for tests);
//     this package exists to avoid it.
//
// Complexity: AddNode, RemoveNode, AddEdge, RemoveEdge, HasEdge, Connected,
// ComponentOf: O(log n) expected, tree edges only. RemoveEdge on a tree
// edge with WithNonTreeEdges enabled additionally pays for a replacement
// search over recorded non-tree edges touching the severed component.
package connectivity
