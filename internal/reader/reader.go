// Package reader implements typed, zero-copy random access over a validated
// container: partition lookup by sort, bounds-checked entry decode, sequence
// slicing, trait lookup by key, and the total visitor dispatch of spec.md
// §4.4.
//
// Grounded on the teacher's internal/index/hnsw/persistence.go readNodes /
// readLinks decode loops (fixed-size records read in a tight bounds-checked
// loop via encoding/binary), generalized from one record shape to any
// partition's entry type via a generic decode helper.
package reader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"runtime"
	"sort"

	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/container"
	"github.com/ifcreader/ifc/internal/model"
	"github.com/ifcreader/ifc/internal/obs"
	"github.com/ifcreader/ifc/internal/prim"
)

// UnexpectedVisitorError is raised by Visit/VisitWithIndex when dispatch
// reaches a VendorExtension, a Count sentinel, or any reserved Unused slot
// (spec.md §4.4, §7).
type UnexpectedVisitorError struct {
	Category string
	Sort     uint32
}

func (e *UnexpectedVisitorError) Error() string {
	return fmt.Sprintf("reader: unexpected visitor: category=%s sort=%d", e.Category, e.Sort)
}

// OnUnexpectedFunc is the configurable replacement for the original
// process-wide assertion hook (spec.md §9 "Mutable global state"): it is
// invoked before Visit returns an *UnexpectedVisitorError, so a caller can
// log, capture in a test, or panic.
type OnUnexpectedFunc func(category string, sort uint32)

// Reader owns a decoded copy of the table of contents (indexed by catalog
// SortRef) and borrows the underlying container (spec.md §4.4, §3.7).
type Reader struct {
	c             *container.InputIfc
	byRef         map[catalog.SortRef]container.PartitionSummary
	onUnexpected  OnUnexpectedFunc
	metrics       *obs.Metrics
}

// SetMetrics attaches m so subsequent GetX/TryGetX/VisitXWithIndex calls
// increment its counters; nil detaches it. Kept as a post-construction
// setter (rather than a New parameter) so existing callers that build a
// Reader without metrics don't need updating.
func (r *Reader) SetMetrics(m *obs.Metrics) { r.metrics = m }

// New builds a Reader over an already-validated container, indexing its
// table of contents by catalog sort reference for O(1) partition lookup.
func New(c *container.InputIfc, onUnexpected OnUnexpectedFunc) (*Reader, error) {
	if onUnexpected == nil {
		onUnexpected = func(string, uint32) {}
	}
	r := &Reader{c: c, byRef: make(map[catalog.SortRef]container.PartitionSummary), onUnexpected: onUnexpected}
	for _, ps := range c.Toc {
		name := c.Get(ps.Name)
		if name == "" {
			continue
		}
		ref, err := catalog.SortOf(name)
		if err != nil {
			return nil, err
		}
		r.byRef[ref] = ps
	}
	return r, nil
}

// fail builds an AssertionError identifying the call site one frame above
// fail itself (the method/function where the assertion actually fired),
// rather than a hardcoded location within this file.
func (r *Reader) fail(expr string) error {
	file, line := "unknown", 0
	if _, callerFile, callerLine, ok := runtime.Caller(1); ok {
		file, line = callerFile, callerLine
	}
	return &AssertionError{File: file, Line: line, Expression: expr}
}

// partitionBytes returns the raw bytes of the partition registered under
// ref, or nil and ok=false if the container declares no such partition
// (an empty/absent partition reads as empty, per spec.md §8.3).
func (r *Reader) partitionBytes(ref catalog.SortRef) ([]byte, container.PartitionSummary, bool, error) {
	ps, ok := r.byRef[ref]
	if !ok {
		return nil, container.PartitionSummary{}, false, nil
	}
	b, err := r.c.ViewPartition(ps)
	if err != nil {
		return nil, ps, false, err
	}
	return b, ps, true, nil
}

// decodeEntry bounds-checks and decodes the entry at byte offset pos*entrySize
// within partition bytes b. It enforces the stricter bounds check spec.md
// §9/§8.3 mandates: offset+sizeof(T) <= len(b), including the exact
// boundary case the original's view_entry_at got wrong.
func decodeEntry[T any](b []byte, entrySize int, position uint32) (T, error) {
	var zero T
	offset := int(position) * entrySize
	want := binary.Size(zero)
	if want <= 0 {
		return zero, fmt.Errorf("reader: type %T has no fixed binary size", zero)
	}
	if offset < 0 || offset+want > len(b) {
		return zero, fmt.Errorf("reader: entry at offset %d (size %d) exceeds partition of %d bytes", offset, want, len(b))
	}
	var out T
	if err := binary.Read(bytes.NewReader(b[offset:offset+want]), binary.LittleEndian, &out); err != nil {
		return zero, fmt.Errorf("reader: decode entry: %w", err)
	}
	return out, nil
}

// GetDecl decodes the DeclIndex-addressed entity as type T, asserting the
// index's sort tag matches wantSort.
func GetDecl[T any](r *Reader, idx model.DeclIndex, wantSort model.DeclSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("DeclIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyDecl, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested decl sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("decl index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// GetType decodes the TypeIndex-addressed entity as type T, asserting sort.
func GetType[T any](r *Reader, idx model.TypeIndex, wantSort model.TypeSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("TypeIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyType, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested type sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("type index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// GetExpr decodes the ExprIndex-addressed entity as type T, asserting sort.
func GetExpr[T any](r *Reader, idx model.ExprIndex, wantSort model.ExprSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("ExprIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyExpr, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested expr sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("expr index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// GetStmt decodes the StmtIndex-addressed entity as type T, asserting sort.
func GetStmt[T any](r *Reader, idx model.StmtIndex, wantSort model.StmtSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("StmtIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyStmt, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested stmt sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("stmt index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// GetName decodes the NameIndex-addressed entity as type T, asserting sort.
func GetName[T any](r *Reader, idx model.NameIndex, wantSort model.NameSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("NameIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyName, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested name sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("name index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// GetChart decodes the ChartIndex-addressed entity as type T, asserting sort.
func GetChart[T any](r *Reader, idx model.ChartIndex, wantSort model.ChartSort) (T, error) {
	var zero T
	r.metrics.IncReaderGet()
	if idx.Sort() != wantSort {
		return zero, r.fail(fmt.Sprintf("ChartIndex sort mismatch: have=%d want=%d", idx.Sort(), wantSort))
	}
	ref := catalog.SortRef{Family: catalog.FamilyChart, Value: uint32(wantSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, r.fail("partition for requested chart sort is absent")
	}
	if idx.Position() >= uint32(ps.Cardinality) {
		return zero, r.fail("chart index position out of range")
	}
	return decodeEntry[T](b, int(ps.EntrySize), idx.Position())
}

// TryGetChart returns (zero, false) for ChartNone instead of failing, per
// spec.md §4.5 "try_get(ChartIndex)".
func TryGetChart[T any](r *Reader, idx model.ChartIndex) (T, bool, error) {
	var zero T
	if idx.Sort() == model.ChartNone {
		return zero, false, nil
	}
	v, err := GetChart[T](r, idx, idx.Sort())
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// GetText resolves a TextOffset into the string table (delegates to the
// container).
func (r *Reader) GetText(t prim.TextOffset) string { return r.c.Get(t) }

// Sequence slices a decoded, already bounds-checked partition []T down to
// [seq.Start, seq.Start+seq.Cardinality), matching spec.md §4.4's
// "sequence(seq) -> &[E]" with the `start+cardinality <= partition.len()`
// invariant.
func Sequence[T any](partition []T, start uint32, cardinality prim.Cardinality) ([]T, error) {
	end := uint64(start) + uint64(cardinality)
	if end > uint64(len(partition)) {
		return nil, fmt.Errorf("reader: sequence [%d, %d) exceeds partition of length %d", start, end, len(partition))
	}
	return partition[start:end], nil
}

// DecodePartition decodes every entry of the partition registered under ref
// as type T, matching spec.md §4.4's "partition<E>() -> &[E]".
func DecodePartition[T any](r *Reader, family catalog.FamilyID, sortValue uint32) ([]T, error) {
	ref := catalog.SortRef{Family: family, Value: sortValue}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	out := make([]T, ps.Cardinality)
	for i := range out {
		v, err := decodeEntry[T](b, int(ps.EntrySize), uint32(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// TraitEntryBinarySearch binary-searches a trait partition (already decoded
// as a key-sorted slice of TraitEntry[K,V]) for key, matching spec.md §4.4's
// "try_find<Trait>(key) -> Option<&Trait>" and the §3.5 ordering invariant.
func TraitEntryBinarySearch[K comparable, V any](entries []model.TraitEntry[K, V], key K, less func(a, b K) bool) (model.TraitEntry[K, V], bool) {
	i := sort.Search(len(entries), func(i int) bool { return !less(entries[i].Entity, key) })
	if i < len(entries) && entries[i].Entity == key {
		return entries[i], true
	}
	var zero model.TraitEntry[K, V]
	return zero, false
}

// IndexOfDecl computes the partition-relative position of an already-decoded
// entity by comparing pointer identity against a borrowed partition slice,
// matching spec.md §4.4's "index_of(&entity) -> Index".
func IndexOfDecl[T any](partition []T, entity *T) (uint32, error) {
	for i := range partition {
		if &partition[i] == entity {
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("reader: entity does not lie within the given partition")
}
