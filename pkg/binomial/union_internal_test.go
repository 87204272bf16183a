package binomial

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/goleak"
)

func newTestArena(t *testing.T) *Arena[int] {
	arena, err := NewArena(&Configuration[int]{
		Sentinel: 0,
		Logger:   hclog.NewNullLogger(),
	})
	if err != nil {
		t.Fatalf("failed creating arena: %v", err)
	}
	return arena
}

func heapFrom(t *testing.T, arena *Arena[int], values ...int) *Heap[int] {
	h := arena.NewHeap()
	for _, value := range values {
		if _, err := h.Insert(value); err != nil {
			t.Fatalf("failed inserting %d: %v", value, err)
		}
	}
	return h
}

func rootDegrees(h *Heap[int]) []int {
	var degrees []int
	for r := h.head; r != none; r = h.arena.nodes[r].sibling {
		degrees = append(degrees, h.arena.nodes[r].degree)
	}
	return degrees
}

func rootIndexes(h *Heap[int]) []int32 {
	var indexes []int32
	for r := h.head; r != none; r = h.arena.nodes[r].sibling {
		indexes = append(indexes, r)
	}
	return indexes
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func Test_LinkMakesLeftmostChild(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	first := arena.allocate(3)
	second := arena.allocate(7)
	third := arena.allocate(4)
	fourth := arena.allocate(9)

	arena.link(first, second)
	arena.link(third, fourth)
	arena.link(first, third)

	root := arena.nodes[first]
	if root.degree != 2 {
		t.Errorf("should have degree 2, found %d", root.degree)
	}

	if root.child != third {
		t.Errorf("leftmost child should be %d, found %d", third, root.child)
	}

	if arena.nodes[third].sibling != second {
		t.Errorf("old child chain should follow the new child")
	}

	if arena.nodes[third].parent != first || arena.nodes[second].parent != first {
		t.Errorf("children should point to the new parent")
	}

	if arena.nodes[fourth].parent != third {
		t.Errorf("grandchild should keep its parent")
	}
}

func Test_MergeRootListsOrdersByDegree(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	// 5 values hold trees of degree 0 and 2, 6 values of degree 1 and 2.
	receiver := heapFrom(t, arena, 1, 2, 3, 4, 5)
	donor := heapFrom(t, arena, 6, 7, 8, 9, 10, 11)

	receiverRoots := rootIndexes(receiver)
	donorRoots := rootIndexes(donor)

	receiver.mergeRootLists(donor)

	if !donor.IsEmpty() {
		t.Errorf("donor should be empty after merge")
	}

	if degrees := rootDegrees(receiver); !equalInts(degrees, []int{0, 1, 2, 2}) {
		t.Errorf("unexpected degrees %v", degrees)
	}

	merged := rootIndexes(receiver)
	if merged[2] != receiverRoots[1] || merged[3] != donorRoots[1] {
		t.Errorf("equal degrees should keep the receiver root first")
	}
}

func Test_MergeRootListsWithEmptyHeaps(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	empty := arena.NewHeap()
	h := heapFrom(t, arena, 1, 2, 3)

	empty.mergeRootLists(h)
	if !h.IsEmpty() || empty.Size() != 3 {
		t.Errorf("empty receiver should take the donor list")
	}

	empty.mergeRootLists(arena.NewHeap())
	if empty.Size() != 3 {
		t.Errorf("merging an empty donor should change nothing")
	}
}

func Test_ConsolidateThreeRootsWithSameDegree(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	// Both hold degrees 0 and 1, the merge gives 0 0 1 1 and linking
	// the first pair produces three trees of degree 1 in a row.
	receiver := heapFrom(t, arena, 10, 20, 30)
	donor := heapFrom(t, arena, 15, 25, 5)

	receiver.union(donor)

	if degrees := rootDegrees(receiver); !equalInts(degrees, []int{1, 2}) {
		t.Errorf("unexpected degrees %v", degrees)
	}

	if receiver.Size() != 6 {
		t.Errorf("should have size 6, found %d", receiver.Size())
	}

	// The leftmost of the three degree 1 trees is the one built from
	// both degree 0 roots, it is kept in place and the next two are linked.
	head := arena.nodes[receiver.head]
	if head.value != 5 || arena.nodes[head.child].value != 30 {
		t.Errorf("first root should link 5 and 30, found %d", head.value)
	}

	if last := arena.nodes[head.sibling]; last.value != 10 || last.degree != 2 {
		t.Errorf("second root should be 10 with degree 2, found %d with degree %d", last.value, last.degree)
	}
}

func Test_ConsolidateKeepsSmallerValueAsParent(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	h := heapFrom(t, arena, 9, 4)

	root := arena.nodes[h.head]
	if root.value != 4 || root.degree != 1 {
		t.Errorf("root should be 4 with degree 1, found %d with degree %d", root.value, root.degree)
	}

	if arena.nodes[root.child].value != 9 {
		t.Errorf("child should be 9")
	}
}

func Test_ConsolidateTieKeepsLeftRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	h := heapFrom(t, arena, 5)
	first := h.head
	if _, err := h.Insert(5); err != nil {
		t.Fatalf("failed inserting: %v", err)
	}

	if h.head != first {
		t.Errorf("with equal values the first root should stay the parent")
	}
}

func Test_ReleasedSlotIsReusedWithNewGeneration(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	h := arena.NewHeap()
	old, err := h.Insert(1)
	if err != nil {
		t.Fatalf("failed inserting: %v", err)
	}

	if _, err = h.ExtractMin(); err != nil {
		t.Fatalf("failed extracting: %v", err)
	}

	fresh, err := h.Insert(2)
	if err != nil {
		t.Fatalf("failed inserting: %v", err)
	}

	if fresh.index != old.index {
		t.Errorf("slot %d should be reused, found %d", old.index, fresh.index)
	}

	if fresh.generation == old.generation {
		t.Errorf("reused slot should have a new generation")
	}

	if _, err = h.resolve(old); err == nil {
		t.Errorf("stale handle should be rejected")
	}

	if _, err = h.resolve(fresh); err != nil {
		t.Errorf("fresh handle should be accepted: %v", err)
	}
}

func Test_ExtractMinClearsRemovedLinks(t *testing.T) {
	defer goleak.VerifyNone(t)

	arena := newTestArena(t)
	h := heapFrom(t, arena, 1, 2, 3, 4)
	min, _ := h.minimum()

	if _, err := h.ExtractMin(); err != nil {
		t.Fatalf("failed extracting: %v", err)
	}

	removed := arena.nodes[min]
	if removed.live || removed.child != none || removed.sibling != none || removed.parent != none {
		t.Errorf("removed slot should be released without links, found %#v", removed)
	}

	for r := h.head; r != none; r = arena.nodes[r].sibling {
		if arena.nodes[r].parent != none {
			t.Errorf("root %d should not have a parent", r)
		}
	}
}
