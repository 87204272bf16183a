package binomial

import "errors"

var (
	// ErrEmptyHeap is returned when reading or removing the minimum
	// of a heap without roots.
	ErrEmptyHeap = errors.New("heap is empty")

	// ErrInvalidKeyUpdate is returned when a decrease-key would
	// increase the stored value.
	ErrInvalidKeyUpdate = errors.New("new key is greater than current key")

	// ErrForeignNode is returned when a handle does not point to a
	// live node of the heap it was passed to.
	ErrForeignNode = errors.New("node does not belong to heap")

	// ErrAliasedUnion is returned when a heap is unioned with itself.
	ErrAliasedUnion = errors.New("cannot union heap with itself")

	// ErrReservedKey is returned when a key is not strictly greater
	// than the configured sentinel.
	ErrReservedKey = errors.New("key must be greater than the reserved sentinel")

	// ErrForeignArena is returned when unioning heaps that were created
	// from different arenas.
	ErrForeignArena = errors.New("heaps belong to different arenas")
)
