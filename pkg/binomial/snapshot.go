package binomial

import "cmp"

// Tree is a read-only copy of a binomial tree. Children are ordered
// from the highest degree to the lowest, as they are stored.
type Tree[T cmp.Ordered] struct {
	Value    T
	Degree   int
	Children []*Tree[T]
}

// Roots copies every tree of the root list, in root list order.
// Changing the returned trees does not affect the heap.
func (h *Heap[T]) Roots() []*Tree[T] {
	type item struct {
		index int32
		tree  *Tree[T]
	}

	if h.IsEmpty() {
		return nil
	}

	nodes := h.arena.nodes
	var roots []*Tree[T]
	var pending []item
	for r := h.head; r != none; r = nodes[r].sibling {
		tree := &Tree[T]{Value: nodes[r].value, Degree: nodes[r].degree}
		roots = append(roots, tree)
		pending = append(pending, item{index: r, tree: tree})
	}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for c := nodes[current.index].child; c != none; c = nodes[c].sibling {
			child := &Tree[T]{Value: nodes[c].value, Degree: nodes[c].degree}
			current.tree.Children = append(current.tree.Children, child)
			pending = append(pending, item{index: c, tree: child})
		}
	}
	return roots
}

// Size returns how many values the tree holds.
func (t *Tree[T]) Size() int {
	size := 0
	pending := []*Tree[T]{t}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		size++
		pending = append(pending, current.Children...)
	}
	return size
}
