package util

import (
	"strconv"

	"github.com/wangjia184/sortedset"
)

// Oracle is an independent sorted reference used to cross check the
// values extracted from a heap.
type Oracle struct {
	set  *sortedset.SortedSet
	next int
}

// NewOracle creates an empty reference.
func NewOracle() *Oracle {
	return &Oracle{set: sortedset.New()}
}

// Add stores a value and returns the key used to remove it later.
// Equal values get distinct keys.
func (o *Oracle) Add(value int) string {
	key := strconv.Itoa(o.next)
	o.next++
	o.set.AddOrUpdate(key, sortedset.SCORE(value), value)
	return key
}

// Update replaces the value stored under key.
func (o *Oracle) Update(key string, value int) {
	o.set.AddOrUpdate(key, sortedset.SCORE(value), value)
}

// Remove deletes the value stored under key, returns false when the
// key is unknown.
func (o *Oracle) Remove(key string) bool {
	return o.set.Remove(key) != nil
}

// RemoveValue deletes one occurrence of the given value, returns false
// when the value is not stored.
func (o *Oracle) RemoveValue(value int) bool {
	nodes := o.set.GetByScoreRange(sortedset.SCORE(value), sortedset.SCORE(value), &sortedset.GetByScoreRangeOptions{
		Limit: 1,
	})
	if len(nodes) == 0 {
		return false
	}
	return o.Remove(nodes[0].Key())
}

// Get returns the value stored under key.
func (o *Oracle) Get(key string) (int, bool) {
	n := o.set.GetByKey(key)
	if n == nil {
		return 0, false
	}
	return n.Value.(int), true
}

// Min returns the smallest stored value.
func (o *Oracle) Min() (int, bool) {
	n := o.set.PeekMin()
	if n == nil {
		return 0, false
	}
	return int(n.Score()), true
}

// PopMin removes and returns the smallest stored value.
func (o *Oracle) PopMin() (int, bool) {
	n := o.set.PopMin()
	if n == nil {
		return 0, false
	}
	return int(n.Score()), true
}

// Len returns how many values are stored.
func (o *Oracle) Len() int {
	return o.set.GetCount()
}
