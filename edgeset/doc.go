// Package edgeset implements a symmetric container mapping unordered node
// pairs {u, v} to a value, with every entry installed under both u->v and
// v->u so a lookup never needs to try both orderings.
package edgeset
