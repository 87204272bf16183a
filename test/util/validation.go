package util

import (
	"bytes"
	"cmp"
	"fmt"
	"testing"

	"github.com/jabolina/go-binomial/pkg/binomial"
	"github.com/jabolina/go-binomial/pkg/binomial/output"
	"github.com/prometheus/common/log"
)

// VerifyHeap checks every structural invariant of the heap and reports
// each violation on t. When something is wrong the whole heap is written
// to the log, returns true if the heap is well formed.
func VerifyHeap[T cmp.Ordered](t *testing.T, h *binomial.Heap[T]) bool {
	t.Helper()

	violations := Violations(h)
	for _, violation := range violations {
		t.Error(violation)
	}

	if len(violations) > 0 {
		outputHeap(h)
	}
	return len(violations) == 0
}

// Violations lists every broken invariant, using only the read-only
// snapshot of the heap.
func Violations[T cmp.Ordered](h *binomial.Heap[T]) []string {
	var violations []string
	total := 0
	previous := -1
	for i, root := range h.Roots() {
		if root.Degree <= previous {
			violations = append(violations, fmt.Sprintf("root %d has degree %d after degree %d", i, root.Degree, previous))
		}
		previous = root.Degree

		if size := root.Size(); size != 1<<uint(root.Degree) {
			violations = append(violations, fmt.Sprintf("root %d of degree %d holds %d values", i, root.Degree, size))
		}
		total += root.Size()
		violations = append(violations, treeViolations(root)...)
	}

	if total != h.Size() {
		violations = append(violations, fmt.Sprintf("heap reports size %d but holds %d values", h.Size(), total))
	}
	return violations
}

func treeViolations[T cmp.Ordered](root *binomial.Tree[T]) []string {
	var violations []string
	pending := []*binomial.Tree[T]{root}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if len(current.Children) != current.Degree {
			violations = append(violations, fmt.Sprintf("node %v of degree %d has %d children", current.Value, current.Degree, len(current.Children)))
		}

		for i, child := range current.Children {
			if expected := current.Degree - 1 - i; child.Degree != expected {
				violations = append(violations, fmt.Sprintf("child %d of %v has degree %d, expected %d", i, current.Value, child.Degree, expected))
			}

			if cmp.Less(child.Value, current.Value) {
				violations = append(violations, fmt.Sprintf("child %v is smaller than parent %v", child.Value, current.Value))
			}
		}
		pending = append(pending, current.Children...)
	}
	return violations
}

// RootDegrees returns the degree of each root in root list order.
func RootDegrees[T cmp.Ordered](h *binomial.Heap[T]) []int {
	var degrees []int
	for _, root := range h.Roots() {
		degrees = append(degrees, root.Degree)
	}
	return degrees
}

// Drain extracts every value from the heap, in extraction order.
func Drain[T cmp.Ordered](h *binomial.Heap[T]) ([]T, error) {
	var values []T
	for !h.IsEmpty() {
		value, err := h.ExtractMin()
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

func outputHeap[T cmp.Ordered](h *binomial.Heap[T]) {
	var buf bytes.Buffer
	if err := output.NewPrinter[T](&buf, false).Print(h); err != nil {
		log.Errorf("failed dumping heap. %v", err)
		return
	}
	log.Infof("--------------------heap-------------------------\n%s", buf.String())
}
