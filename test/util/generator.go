package util

import "math/rand"

// GenerateValues creates n pseudo random values in [1, max], with
// repetitions. The same seed always creates the same values.
func GenerateValues(seed int64, n, max int) []int {
	r := rand.New(rand.NewSource(seed))
	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, r.Intn(max)+1)
	}
	return values
}

// Sequence creates the values from start up to end, both included.
func Sequence(start, end int) []int {
	var values []int
	for i := start; i <= end; i++ {
		values = append(values, i)
	}
	return values
}
