package model

import "github.com/ifcreader/ifc/internal/prim"

// Sequence describes a contiguous run of homogeneous entities: Start is the
// index of the first element and Cardinality is the element count. The
// reader's SequenceDecl/SequenceType/SequenceExpr/SequenceStmt read every
// sequence as index words from the heap.generic partition; they do not
// consult Heap or HasHeap, and do not read elements from the partition of
// the element type's own sort.
type Sequence[T any] struct {
	Start       uint32
	Cardinality prim.Cardinality
	Heap        HeapSort
	HasHeap     bool
}

// End returns the exclusive end position of the sequence.
func (s Sequence[T]) End() uint32 { return s.Start + uint32(s.Cardinality) }

// Len returns the number of elements the sequence spans.
func (s Sequence[T]) Len() int { return int(s.Cardinality) }
