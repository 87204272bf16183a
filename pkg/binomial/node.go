package binomial

import "cmp"

// Index of an absent link.
const none int32 = -1

// A node is a single slot in the arena. The links are arena indices
// and none when absent.
//
// The sibling link has two roles that must never be mixed: for a root
// it points to the next root in the heap root list, for any other
// node it points to the next child of the same parent.
type node[T cmp.Ordered] struct {
	value  T
	degree int

	parent  int32
	child   int32
	sibling int32

	// Bumped every time the slot is released, so handles issued
	// for a previous occupant no longer match.
	generation uint32
	live       bool
}

// Handle identifies a node position inside a heap. After a decrease-key
// the handle keeps pointing to the same position, not to the value that
// was moved up the tree.
type Handle[T cmp.Ordered] struct {
	arena      *Arena[T]
	index      int32
	generation uint32
}

// IsZero returns true if the handle was never issued by a heap.
func (h Handle[T]) IsZero() bool {
	return h.arena == nil
}

// Makes child the leftmost child of parent. Both must be roots of
// trees with the same degree, the caller decides which one becomes
// the parent by comparing values.
func (a *Arena[T]) link(parent, child int32) {
	p, c := &a.nodes[parent], &a.nodes[child]
	c.parent = parent
	c.sibling = p.child
	p.child = child
	p.degree++
}
