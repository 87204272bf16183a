package output

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jabolina/go-binomial/pkg/binomial"
)

// Source is anything that can expose a read-only view of its trees.
type Source[T cmp.Ordered] interface {
	Size() int
	Roots() []*binomial.Tree[T]
}

// Printer writes every binomial tree of a heap level by level. For
// a heap holding 1 to 4 it writes:
//
//	Heap size: 4
//	Tree of degree 2
//	1
//	3 2
//	4
type Printer[T cmp.Ordered] struct {
	out    io.Writer
	header func(a ...interface{}) string
}

// NewPrinter creates a printer writing into out. When colorize is set
// the headers are highlighted.
func NewPrinter[T cmp.Ordered](out io.Writer, colorize bool) *Printer[T] {
	header := fmt.Sprint
	if colorize {
		c := color.New(color.FgCyan, color.Bold)
		c.EnableColor()
		header = c.SprintFunc()
	}
	return &Printer[T]{out: out, header: header}
}

// Print dumps the given heap, never changing it.
func (p *Printer[T]) Print(source Source[T]) error {
	if _, err := fmt.Fprintln(p.out, p.header(fmt.Sprintf("Heap size: %d", source.Size()))); err != nil {
		return err
	}

	for _, root := range source.Roots() {
		if _, err := fmt.Fprintln(p.out, p.header(fmt.Sprintf("Tree of degree %d", root.Degree))); err != nil {
			return err
		}

		for _, level := range Levels(root) {
			values := make([]string, 0, len(level))
			for _, value := range level {
				values = append(values, fmt.Sprint(value))
			}
			if _, err := fmt.Fprintln(p.out, strings.Join(values, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// Levels groups the tree values by depth, left to right.
func Levels[T cmp.Ordered](root *binomial.Tree[T]) [][]T {
	var levels [][]T
	for current := []*binomial.Tree[T]{root}; len(current) > 0; {
		var next []*binomial.Tree[T]
		level := make([]T, 0, len(current))
		for _, tree := range current {
			level = append(level, tree.Value)
			next = append(next, tree.Children...)
		}
		levels = append(levels, level)
		current = next
	}
	return levels
}
