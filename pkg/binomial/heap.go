package binomial

import (
	"cmp"
	"fmt"
)

// Heap is a binomial heap, a root list of binomial trees with strictly
// increasing degrees. A heap is not safe for concurrent use, callers
// sharing one must serialize access themselves.
//
// Heaps must be created with Arena.NewHeap, Arena.NewSingleton or New.
// The zero value reports itself as empty and rejects every handle, but
// cannot hold values.
type Heap[T cmp.Ordered] struct {
	arena *Arena[T]

	// First root of the root list, none when empty.
	head int32
}

// Arena returns the arena holding the heap nodes.
func (h *Heap[T]) Arena() *Arena[T] {
	return h.arena
}

// Size returns the number of values in the heap. A root of degree k
// holds exactly 2^k values.
func (h *Heap[T]) Size() int {
	if h.IsEmpty() {
		return 0
	}

	size := 0
	for r := h.head; r != none; r = h.arena.nodes[r].sibling {
		size += 1 << uint(h.arena.nodes[r].degree)
	}
	return size
}

// IsEmpty returns true if the heap has no roots.
func (h *Heap[T]) IsEmpty() bool {
	return h.arena == nil || h.head == none
}

// Logs a refused operation, the zero value heap has no logger.
func (h *Heap[T]) rejected(op string, args ...interface{}) {
	if h.arena != nil {
		h.arena.log.Debug("rejected "+op, args...)
	}
}

// Returns the root holding the smallest value and its predecessor on
// the root list. Ties are won by the leftmost root.
func (h *Heap[T]) minimum() (min, previous int32) {
	nodes := h.arena.nodes
	min, previous = h.head, none
	for prev, r := h.head, nodes[h.head].sibling; r != none; prev, r = r, nodes[r].sibling {
		if cmp.Less(nodes[r].value, nodes[min].value) {
			min, previous = r, prev
		}
	}
	return min, previous
}

// Minimum returns the handle of the root holding the smallest value.
func (h *Heap[T]) Minimum() (Handle[T], error) {
	if h.IsEmpty() {
		return Handle[T]{}, ErrEmptyHeap
	}

	min, _ := h.minimum()
	return h.arena.handle(min), nil
}

// Peek returns the smallest value without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}

	min, _ := h.minimum()
	return h.arena.nodes[min].value, nil
}

// Insert adds the value and returns a handle to its node, to be used
// later with DecreaseKey or Delete.
func (h *Heap[T]) Insert(value T) (Handle[T], error) {
	if h.arena == nil {
		return Handle[T]{}, fmt.Errorf("%w: heap was not created from an arena", ErrForeignArena)
	}

	if !h.arena.admissible(value) {
		h.rejected("insert", "value", value, "error", ErrReservedKey)
		return Handle[T]{}, fmt.Errorf("%w: %v", ErrReservedKey, value)
	}

	index := h.arena.allocate(value)
	h.union(&Heap[T]{arena: h.arena, head: index})
	return h.arena.handle(index), nil
}

// ExtractMin removes the smallest value and returns it.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}

	a := h.arena
	min, previous := h.minimum()
	m := &a.nodes[min]
	if previous == none {
		h.head = m.sibling
	} else {
		a.nodes[previous].sibling = m.sibling
	}

	// Children are kept from degree k-1 down to 0, the root list needs
	// them the other way around.
	reversed := none
	for c := m.child; c != none; {
		next := a.nodes[c].sibling
		a.nodes[c].parent = none
		a.nodes[c].sibling = reversed
		reversed = c
		c = next
	}

	value := m.value
	a.release(min)
	h.union(&Heap[T]{arena: a, head: reversed})
	return value, nil
}

// Value returns the value currently stored at the handle position.
func (h *Heap[T]) Value(handle Handle[T]) (T, error) {
	index, err := h.resolve(handle)
	if err != nil {
		var zero T
		return zero, err
	}
	return h.arena.nodes[index].value, nil
}

// DecreaseKey stores a smaller value at the handle position and moves
// it up by swapping values with larger ancestors. Node positions never
// change, so the handle still points at the same position afterwards,
// which may now hold a different value.
func (h *Heap[T]) DecreaseKey(handle Handle[T], value T) error {
	index, err := h.resolve(handle)
	if err != nil {
		h.rejected("decrease-key", "error", err)
		return err
	}

	current := h.arena.nodes[index].value
	if cmp.Less(current, value) {
		h.rejected("decrease-key", "current", current, "value", value)
		return fmt.Errorf("%w: %v to %v", ErrInvalidKeyUpdate, current, value)
	}

	if !h.arena.admissible(value) {
		h.rejected("decrease-key", "value", value, "error", ErrReservedKey)
		return fmt.Errorf("%w: %v", ErrReservedKey, value)
	}

	h.decreaseKey(index, value)
	return nil
}

// Delete removes the value stored at the handle position. The position
// is moved to its root with the sentinel value and then extracted.
func (h *Heap[T]) Delete(handle Handle[T]) error {
	index, err := h.resolve(handle)
	if err != nil {
		h.rejected("delete", "error", err)
		return err
	}

	h.decreaseKey(index, h.arena.sentinel)
	_, err = h.ExtractMin()
	return err
}

func (h *Heap[T]) decreaseKey(index int32, value T) {
	nodes := h.arena.nodes
	nodes[index].value = value
	for parent := nodes[index].parent; parent != none; parent = nodes[index].parent {
		if !cmp.Less(nodes[index].value, nodes[parent].value) {
			break
		}
		nodes[index].value, nodes[parent].value = nodes[parent].value, nodes[index].value
		index = parent
	}
}

// Verifies the handle points to a live node reachable from the heap
// root list and returns its index.
func (h *Heap[T]) resolve(handle Handle[T]) (int32, error) {
	a := h.arena
	if a == nil || handle.arena != a {
		return none, ErrForeignNode
	}

	if handle.index < 0 || int(handle.index) >= len(a.nodes) {
		return none, fmt.Errorf("%w: unknown node %d", ErrForeignNode, handle.index)
	}

	n := a.nodes[handle.index]
	if !n.live || n.generation != handle.generation {
		return none, fmt.Errorf("%w: node %d was removed", ErrForeignNode, handle.index)
	}

	root := handle.index
	for a.nodes[root].parent != none {
		root = a.nodes[root].parent
	}

	for r := h.head; r != none; r = a.nodes[r].sibling {
		if r == root {
			return handle.index, nil
		}
	}
	return none, fmt.Errorf("%w: node %d is held by another heap", ErrForeignNode, handle.index)
}

// Clear removes every value, releasing nodes with an explicit worklist
// instead of recursion.
func (h *Heap[T]) Clear() {
	if h.IsEmpty() {
		return
	}

	a := h.arena
	var pending []int32
	for r := h.head; r != none; r = a.nodes[r].sibling {
		pending = append(pending, r)
	}
	h.head = none

	for len(pending) > 0 {
		index := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for c := a.nodes[index].child; c != none; c = a.nodes[c].sibling {
			pending = append(pending, c)
		}
		a.release(index)
	}
}
