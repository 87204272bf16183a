package binomial

import "cmp"

// Union absorbs other into h and returns h. After the call other is
// empty and can be reused. Both heaps must come from the same arena
// and must be different instances.
func (h *Heap[T]) Union(other *Heap[T]) (*Heap[T], error) {
	if other == nil {
		return h, nil
	}

	if h == other {
		h.rejected("union", "error", ErrAliasedUnion)
		return h, ErrAliasedUnion
	}

	if h.arena == nil || h.arena != other.arena {
		h.rejected("union", "error", ErrForeignArena)
		return h, ErrForeignArena
	}

	h.union(other)
	return h, nil
}

// Same as Union without the precondition checks.
func (h *Heap[T]) union(other *Heap[T]) {
	h.mergeRootLists(other)
	if h.head == none {
		return
	}
	h.consolidate()
}

// Interleaves both root lists by degree into h, like merging two
// sorted sequences. Roots of equal degree are kept side by side, with
// the one from h first. The other heap ends up empty.
func (h *Heap[T]) mergeRootLists(other *Heap[T]) {
	if other.head == none {
		return
	}

	if h.head == none {
		h.head = other.head
		other.head = none
		return
	}

	nodes := h.arena.nodes
	left, right := h.head, other.head
	other.head = none

	if nodes[left].degree <= nodes[right].degree {
		h.head = left
		left = nodes[left].sibling
	} else {
		h.head = right
		right = nodes[right].sibling
	}

	tail := h.head
	for left != none && right != none {
		if nodes[left].degree <= nodes[right].degree {
			nodes[tail].sibling = left
			left = nodes[left].sibling
		} else {
			nodes[tail].sibling = right
			right = nodes[right].sibling
		}
		tail = nodes[tail].sibling
	}

	if left != none {
		nodes[tail].sibling = left
	} else {
		nodes[tail].sibling = right
	}
}

// Walks the merged root list once, linking pairs of roots with the same
// degree, just like propagating the carry when adding two binary numbers.
// At most three consecutive roots share a degree, in which case the first
// one is kept and the next two are linked.
func (h *Heap[T]) consolidate() {
	a := h.arena
	previous, current := none, h.head
	next := a.nodes[current].sibling
	links := 0

	for next != none {
		c, n := &a.nodes[current], &a.nodes[next]
		switch {
		case c.degree != n.degree,
			n.sibling != none && a.nodes[n.sibling].degree == c.degree:
			previous, current = current, next

		case !cmp.Less(n.value, c.value):
			c.sibling = n.sibling
			a.link(current, next)
			links++

		default:
			if previous == none {
				h.head = next
			} else {
				a.nodes[previous].sibling = next
			}
			a.link(next, current)
			current = next
			links++
		}
		next = a.nodes[current].sibling
	}

	if links > 0 {
		a.log.Trace("consolidated root list", "links", links)
	}
}
