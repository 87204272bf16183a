package binomial

import (
	"cmp"

	"github.com/hashicorp/go-hclog"
)

// Arena holds the nodes of every heap created from it. Heaps can only
// be unioned with heaps of the same arena, since a union moves node
// ownership without copying.
type Arena[T cmp.Ordered] struct {
	// Every slot ever allocated, live or not.
	nodes []node[T]

	// Released slots available for reuse.
	free []int32

	// Number of live slots.
	live int

	// Reserved minus infinity.
	sentinel T

	log hclog.Logger
}

// NewArena validates the configuration and creates an empty arena.
func NewArena[T cmp.Ordered](config *Configuration[T]) (*Arena[T], error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Arena[T]{
		nodes:    make([]node[T], 0, config.Capacity),
		sentinel: config.Sentinel,
		log:      config.Logger.Named("arena"),
	}, nil
}

// New creates a private arena and an empty heap inside it.
func New[T cmp.Ordered](config *Configuration[T]) (*Heap[T], error) {
	arena, err := NewArena(config)
	if err != nil {
		return nil, err
	}
	return arena.NewHeap(), nil
}

// NewHeap creates an empty heap.
func (a *Arena[T]) NewHeap() *Heap[T] {
	return &Heap[T]{
		arena: a,
		head:  none,
	}
}

// NewSingleton creates a heap holding only the given value.
func (a *Arena[T]) NewSingleton(value T) (*Heap[T], error) {
	if !a.admissible(value) {
		return nil, ErrReservedKey
	}

	h := a.NewHeap()
	h.head = a.allocate(value)
	return h, nil
}

// Live returns how many nodes are currently held by heaps of this arena.
func (a *Arena[T]) Live() int {
	return a.live
}

// Sentinel returns the reserved minus infinity value.
func (a *Arena[T]) Sentinel() T {
	return a.sentinel
}

// A value can be stored iff it is strictly above the sentinel. This also
// rejects NaN, which is never above anything.
func (a *Arena[T]) admissible(value T) bool {
	return cmp.Less(a.sentinel, value) && !isNaN(value)
}

// Creates a degree 0 node without links. Appending may move the
// backing array, so no node pointer can be held across this call.
func (a *Arena[T]) allocate(value T) int32 {
	var index int32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[T]{})
		index = int32(len(a.nodes) - 1)
	}

	n := &a.nodes[index]
	n.value = value
	n.degree = 0
	n.parent, n.child, n.sibling = none, none, none
	n.live = true
	a.live++
	return index
}

func (a *Arena[T]) release(index int32) {
	n := &a.nodes[index]
	var zero T
	n.value = zero
	n.degree = 0
	n.parent, n.child, n.sibling = none, none, none
	n.live = false
	n.generation++
	a.live--
	a.free = append(a.free, index)
}

func (a *Arena[T]) handle(index int32) Handle[T] {
	return Handle[T]{
		arena:      a,
		index:      index,
		generation: a.nodes[index].generation,
	}
}
