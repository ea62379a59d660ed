package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// NodeID is a 1-based index into a Tree's arena. The zero value is NoNode.
// All cross-node links (owning children, weak parent back-references, weak
// typedef targets) are NodeIDs, never pointers, which keeps ownership a
// strict single-parent structure while still allowing O(1) upward traversal.
type NodeID uint32

const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// Arena is append-only node storage with 1-based indices.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena whose backing slice has capacity capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return idx
}

// Get returns the element at a 1-based index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Len returns the number of elements.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}

// Items returns the backing slice; index i holds the element with id i+1.
func (a *Arena[T]) Items() []T {
	return a.data
}
