// Package ixsort implements the abstract-reference algebra: 32-bit tagged
// indices that pack a sort tag and a position, plus the unisorted and
// "pointed" (nullable) index flavors that ride on top of them.
//
// A C++ implementation gives every sort family its own compile-time tag
// width via a non-type template parameter. Go has no equivalent, so each
// family gets a Family value computed once from its sort Count sentinel,
// and every family-specific Index newtype (DeclIndex, TypeIndex, ...)
// delegates its Sort/Position/Make methods to that shared Family.
package ixsort

import (
	"fmt"

	"github.com/ifcreader/ifc/internal/prim"
)

// Index is the raw 32-bit representation shared by every tagged index.
type Index uint32

// Rep returns the 32-bit representation of v.
func Rep(v Index) uint32 { return uint32(v) }

// Per reinterprets a raw 32-bit value as an Index.
func Per(x uint32) Index { return Index(x) }

// Null is the zero bit-pattern, valid for every sort (a zero-initialized
// word is a well-formed null of sort 0).
const Null Index = 0

// IsNull reports whether v is the null index.
func IsNull(v Index) bool { return v == Null }

// Family describes the tag/position split for one sort family: tagBits is
// the minimum number of bits needed to represent the family's Count
// sentinel (bit_length(count)).
type Family struct {
	name    string
	tagBits uint32
	mask    uint32
}

// NewFamily builds the Family for a sort enum whose sentinel value is count
// (i.e. count == the family's "Count" entry, one past the last real sort).
func NewFamily(name string, count uint32) Family {
	bits := uint32(prim.BitLength(count))
	if bits == 0 {
		bits = 1
	}
	return Family{name: name, tagBits: bits, mask: (uint32(1) << bits) - 1}
}

// TagBits returns the number of low bits reserved for the sort tag.
func (f Family) TagBits() uint32 { return f.tagBits }

// Sort extracts the sort tag (low tagBits bits) from v.
func (f Family) Sort(v Index) uint32 { return uint32(v) & f.mask }

// Position extracts the partition-relative position (upper bits) from v.
func (f Family) Position(v Index) uint32 { return uint32(v) >> f.tagBits }

// Make constructs an Index from a sort tag and a position. It fails if the
// position does not fit in the bits left over after the tag, mirroring the
// precondition make(sort, n) requires bit_length(n) <= index_precision(sort).
func (f Family) Make(sort, position uint32) (Index, error) {
	available := 32 - f.tagBits
	if prim.BitLength(position) > int(available) {
		return 0, fmt.Errorf("ixsort: %s: position %d overflows %d available bits", f.name, position, available)
	}
	return Index((position << f.tagBits) | (sort & f.mask)), nil
}

// IndexPrecision returns 32 - tagBits, the number of bits available to a
// position value in this family.
func (f Family) IndexPrecision() uint32 { return 32 - f.tagBits }

// Pointed is the generic "nullable index" adapter described in spec.md
// §3.2/§4.1: external value 0 means "no entity"; internal position k is
// carried as external value k+1. The external value is stored as a uint32;
// T names the index type the value belongs to.
type Pointed[T ~uint32] uint32

// InjectPointed maps an internal position to its external Pointed form.
func InjectPointed[T ~uint32](position uint32) T { return T(position + 1) }

// RetractPointed maps an external Pointed value back to its internal
// position. Calling it on the null value (T(0)) is a programming error and
// panics, matching retract(T(0)) being undefined in the source algebra.
func RetractPointed[T ~uint32](v T) uint32 {
	if v == 0 {
		panic("ixsort: RetractPointed called on null pointed index")
	}
	return uint32(v) - 1
}

// PointedIsNull reports whether v is the "no entity" sentinel.
func PointedIsNull[T ~uint32](v T) bool { return v == 0 }

// Unisorted 32-bit indices that carry no sort tag — each addresses a single,
// homogeneously-typed sequence rather than a multi-sorted partition family.
type (
	LineIndex     uint32
	WordIndex     uint32
	SentenceIndex uint32
	SpecFormIndex uint32
	ScopeIndex    uint32
	UnitIndex     uint32
)
