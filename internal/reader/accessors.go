package reader

import (
	"fmt"

	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/ixsort"
	"github.com/ifcreader/ifc/internal/model"
)

// GetLine resolves a LineIndex to its (file, line) pair (spec.md §4.4).
func (r *Reader) GetLine(idx ixsort.LineIndex) (model.FileAndLine, error) {
	r.metrics.IncReaderGet()
	ref := catalog.SortRef{Family: catalog.FamilyHeap, Value: uint32(model.HeapGenericSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return model.FileAndLine{}, err
	}
	if !ok {
		return model.FileAndLine{}, r.fail("line table partition is absent")
	}
	if uint32(idx) >= uint32(ps.Cardinality) {
		return model.FileAndLine{}, r.fail("line index out of range")
	}
	return decodeEntry[model.FileAndLine](b, int(ps.EntrySize), uint32(idx))
}

// GetSpecForm resolves a SpecFormIndex to its argument list.
func (r *Reader) GetSpecForm(idx ixsort.SpecFormIndex) (model.SpecializationForm, error) {
	r.metrics.IncReaderGet()
	ref := catalog.SortRef{Family: catalog.FamilyHeap, Value: uint32(model.HeapGenericSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return model.SpecializationForm{}, err
	}
	if !ok {
		return model.SpecializationForm{}, r.fail("specialization-form partition is absent")
	}
	if uint32(idx) >= uint32(ps.Cardinality) {
		return model.SpecializationForm{}, r.fail("spec-form index out of range")
	}
	return decodeEntry[model.SpecializationForm](b, int(ps.EntrySize), uint32(idx))
}

// GetStringLiteral resolves a StringIndex (the multi-sorted "string"
// partition family) to its StringLiteral entry.
func (r *Reader) GetStringLiteral(idx model.StringIndex) (model.StringLiteral, error) {
	r.metrics.IncReaderGet()
	s := idx.Sort()
	ref := catalog.SortRef{Family: catalog.FamilyString, Value: uint32(s)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return model.StringLiteral{}, err
	}
	if !ok {
		return model.StringLiteral{}, r.fail("string partition is absent")
	}
	pos := idx.Position()
	if pos >= uint32(ps.Cardinality) {
		return model.StringLiteral{}, r.fail("string index out of range")
	}
	return decodeEntry[model.StringLiteral](b, int(ps.EntrySize), pos)
}

// GetLit resolves a LitIndex to either an int64 or a float64, selected by
// its sort (spec.md §4.4 "get(LitIndex) -> i64 | f64"). LitImmediateSort
// values are small enough to live in the index's own position field.
func (r *Reader) GetLit(idx model.LitIndex) (asInt int64, asFloat float64, isFloat bool, err error) {
	r.metrics.IncReaderGet()
	switch idx.Sort() {
	case model.LitImmediateSort:
		return int64(idx.Position()), 0, false, nil
	case model.LitIntegerSort:
		ref := catalog.SortRef{Family: catalog.FamilyLit, Value: uint32(model.LitIntegerSort)}
		b, ps, ok, e := r.partitionBytes(ref)
		if e != nil {
			return 0, 0, false, e
		}
		if !ok {
			return 0, 0, false, r.fail("integer literal partition is absent")
		}
		v, e := decodeEntry[int64](b, int(ps.EntrySize), idx.Position())
		return v, 0, false, e
	case model.LitFloatingPointSort:
		ref := catalog.SortRef{Family: catalog.FamilyLit, Value: uint32(model.LitFloatingPointSort)}
		b, ps, ok, e := r.partitionBytes(ref)
		if e != nil {
			return 0, 0, false, e
		}
		if !ok {
			return 0, 0, false, r.fail("floating-point literal partition is absent")
		}
		v, e := decodeEntry[float64](b, int(ps.EntrySize), idx.Position())
		return 0, v, true, e
	default:
		return 0, 0, false, fmt.Errorf("reader: unrecognized literal sort %d", idx.Sort())
	}
}

// TryGetScope resolves a ScopeIndex to its DeclScope entity, returning
// ok=false for the null index (spec.md §4.4 "try_get(ScopeIndex)").
// ScopeIndex is unisorted: it addresses a position directly within the
// decl.scope partition rather than carrying its own sort tag.
func (r *Reader) TryGetScope(idx ixsort.ScopeIndex) (model.DeclScope, bool, error) {
	r.metrics.IncReaderGet()
	if idx == 0 {
		return model.DeclScope{}, false, nil
	}
	ref := catalogDeclRef(model.DeclScopeSort)
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return model.DeclScope{}, false, err
	}
	if !ok {
		return model.DeclScope{}, false, r.fail("decl.scope partition is absent")
	}
	pos := uint32(idx) - 1
	if pos >= uint32(ps.Cardinality) {
		return model.DeclScope{}, false, r.fail("scope index out of range")
	}
	v, err := decodeEntry[model.DeclScope](b, int(ps.EntrySize), pos)
	return v, true, err
}

// GlobalScope resolves the container header's global_scope field.
func (r *Reader) GlobalScope() (model.DeclScope, bool, error) {
	return r.TryGetScope(ixsort.ScopeIndex(r.c.Header.GlobalScope))
}

// heapWords decodes count raw 32-bit words from the heap partition starting
// at start. Sequences of heterogeneous-sort elements (scope members, tuple
// elements, call arguments, ...) are stored as arrays of fully-tagged index
// words in the heap partition rather than as contiguous same-sort entities;
// see DESIGN.md for why this implementation folds spec.md §3.4's two
// storage modes (same-partition vs. heap) into one uniform heap-array
// representation without changing any observable behavior.
func (r *Reader) heapWords(start uint32, count uint32) ([]uint32, error) {
	ref := catalog.SortRef{Family: catalog.FamilyHeap, Value: uint32(model.HeapGenericSort)}
	b, ps, ok, err := r.partitionBytes(ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		if count == 0 {
			return nil, nil
		}
		return nil, r.fail("heap partition is absent but a sequence needs it")
	}
	end := uint64(start) + uint64(count)
	if end > uint64(ps.Cardinality) {
		return nil, r.fail("sequence exceeds heap partition bounds")
	}
	out := make([]uint32, count)
	for i := range out {
		v, err := decodeEntry[uint32](b, int(ps.EntrySize), start+uint32(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SequenceDecl decodes a Sequence[model.DeclIndex] into its member indices.
func (r *Reader) SequenceDecl(seq model.Sequence[model.DeclIndex]) ([]model.DeclIndex, error) {
	words, err := r.heapWords(seq.Start, uint32(seq.Cardinality))
	if err != nil {
		return nil, err
	}
	out := make([]model.DeclIndex, len(words))
	for i, w := range words {
		out[i] = model.DeclIndex(w)
	}
	return out, nil
}

// SequenceType decodes a Sequence[model.TypeIndex] into its member indices.
func (r *Reader) SequenceType(seq model.Sequence[model.TypeIndex]) ([]model.TypeIndex, error) {
	words, err := r.heapWords(seq.Start, uint32(seq.Cardinality))
	if err != nil {
		return nil, err
	}
	out := make([]model.TypeIndex, len(words))
	for i, w := range words {
		out[i] = model.TypeIndex(w)
	}
	return out, nil
}

// SequenceExpr decodes a Sequence[model.ExprIndex] into its member indices.
func (r *Reader) SequenceExpr(seq model.Sequence[model.ExprIndex]) ([]model.ExprIndex, error) {
	words, err := r.heapWords(seq.Start, uint32(seq.Cardinality))
	if err != nil {
		return nil, err
	}
	out := make([]model.ExprIndex, len(words))
	for i, w := range words {
		out[i] = model.ExprIndex(w)
	}
	return out, nil
}

// SequenceStmt decodes a Sequence[model.StmtIndex] into its member indices.
func (r *Reader) SequenceStmt(seq model.Sequence[model.StmtIndex]) ([]model.StmtIndex, error) {
	words, err := r.heapWords(seq.Start, uint32(seq.Cardinality))
	if err != nil {
		return nil, err
	}
	out := make([]model.StmtIndex, len(words))
	for i, w := range words {
		out[i] = model.StmtIndex(w)
	}
	return out, nil
}
