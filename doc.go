// Package dynconn is your toolkit for online dynamic connectivity over
// undirected graphs.
//
// 🚀 What is dynconn?
//
//	A small, single-threaded library that answers "are u and v connected?"
//	while the graph is being edited — nodes and edges added and removed in
//	any order — without recomputing components from scratch:
//
//	  • Treaps: a randomized balanced BST with implicit (positional) order
//	  • Euler-tour trees: a spanning-forest representation built on treaps
//	  • A connectivity facade: Connected/AddEdge/RemoveEdge/component walks
//
// ✨ Why choose dynconn?
//
//   - Focused    — exactly the three subsystems a dynamic connectivity
//     core needs; no unrelated graph algorithms riding along.
//   - Polylog    — expected O(log n) per Link/Cut/Connected on the
//     spanning forest it maintains.
//   - Honest     — this core maintains a spanning forest only. It does not
//     implement the level-indexed replacement-edge search
//     (Holm-Lichtenberg-Thorup) needed for worst-case polylog bounds under
//     arbitrary deletion; see connectivity.WithNonTreeEdges for the opt-in
//     best-effort replacement search this core does support.
//
// Everything lives under four subpackages:
//
//	treap/        — implicit-order treap: split/merge/concat, no keys
//	edgeset/      — symmetric undirected edge container
//	euler/        — Euler-tour forest: Link, Cut, MakeRoot, Connected
//	connectivity/ — the public facade: Connectivity[K]
//
// Quick example:
//
//	c := connectivity.New[string]()
//	c.AddNode("a")
//	c.AddNode("b")
//	c.AddEdge("a", "b")
//	c.Connected("a", "b") // true, nil
package dynconn
