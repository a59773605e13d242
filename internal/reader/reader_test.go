package reader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ifcreader/ifc/internal/bytespan"
	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/container"
	"github.com/ifcreader/ifc/internal/model"
)

// fixturePartition is one named partition's worth of already-encoded entry
// bytes, ready to be laid out into a synthetic .ifc image.
type fixturePartition struct {
	name        string
	cardinality uint32
	entrySize   uint32
	data        []byte
}

// buildIfc assembles a minimal but complete .ifc byte image: signature,
// zeroed digest, header, partition payloads, a table of contents, and a
// string table holding every partition name plus any extra interned
// strings the caller needs (e.g. spellings). It mirrors
// internal/container/container_test.go's buildMinimalIfc, extended with
// populated partitions.
func buildIfc(t *testing.T, globalScope uint32, extraStrings []string, parts []fixturePartition) []byte {
	t.Helper()
	const digestSize = 32
	const headerSize = 40
	const tocEntrySize = 16

	// String table: offset 0 is reserved for "no string"; every other
	// string (partition names first, then extras) gets interned in order.
	var strtab bytes.Buffer
	strtab.WriteByte(0)
	offsetOf := make(map[string]uint32)
	intern := func(s string) uint32 {
		if s == "" {
			return 0
		}
		if off, ok := offsetOf[s]; ok {
			return off
		}
		off := uint32(strtab.Len())
		strtab.WriteString(s)
		strtab.WriteByte(0)
		offsetOf[s] = off
		return off
	}
	for _, p := range parts {
		intern(p.name)
	}
	for _, s := range extraStrings {
		intern(s)
	}

	headerStart := 4 + digestSize
	stringTableBytes := uint32(headerStart + headerSize)
	stringTableSize := uint32(strtab.Len())

	partitionsStart := stringTableBytes + stringTableSize
	offsets := make([]uint32, len(parts))
	cursor := partitionsStart
	var partitionBytes bytes.Buffer
	for i, p := range parts {
		offsets[i] = cursor
		partitionBytes.Write(p.data)
		cursor += uint32(len(p.data))
	}
	tocStart := cursor

	header := make([]byte, headerSize)
	header[0] = byte(container.CurrentFormatVersion.Major)
	header[1] = byte(container.CurrentFormatVersion.Minor)
	header[2] = 0
	header[3] = byte(container.ArchX64)
	binary.LittleEndian.PutUint32(header[4:8], 202002)
	binary.LittleEndian.PutUint32(header[8:12], stringTableBytes)
	binary.LittleEndian.PutUint32(header[12:16], stringTableSize)
	binary.LittleEndian.PutUint32(header[16:20], 0) // unit: Primary, null name
	binary.LittleEndian.PutUint32(header[20:24], 0) // src_path
	binary.LittleEndian.PutUint32(header[24:28], globalScope)
	binary.LittleEndian.PutUint32(header[28:32], tocStart)
	binary.LittleEndian.PutUint32(header[32:36], uint32(len(parts)))
	header[36] = 0

	var buf bytes.Buffer
	buf.Write(container.Signature[:])
	buf.Write(make([]byte, digestSize))
	buf.Write(header)
	buf.Write(strtab.Bytes())
	buf.Write(partitionBytes.Bytes())
	for i, p := range parts {
		var ps [tocEntrySize]byte
		binary.LittleEndian.PutUint32(ps[0:4], offsetOf[p.name])
		binary.LittleEndian.PutUint32(ps[4:8], offsets[i])
		binary.LittleEndian.PutUint32(ps[8:12], p.cardinality)
		binary.LittleEndian.PutUint32(ps[12:16], p.entrySize)
		buf.Write(ps[:])
	}
	return buf.Bytes()
}

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	return buf.Bytes()
}

func openFixture(t *testing.T, data []byte) (*container.InputIfc, *Reader) {
	t.Helper()
	span := bytespan.FromBytes(data)
	c, err := container.Open("fixture.ifc", span, container.Options{})
	if err != nil {
		t.Fatalf("container.Open: %v", err)
	}
	r, err := New(c, nil)
	if err != nil {
		t.Fatalf("reader.New: %v", err)
	}
	return c, r
}

func TestGetDeclRoundTrip(t *testing.T) {
	fn := model.DeclFunction{
		Name:      model.NameIndex(0),
		HomeScope: 0,
		Chart:     model.ChartIndex(0),
		Traits:    model.TraitIndex(0),
		BasicSpec: model.TraitCxx | model.TraitExternal,
		Type:      model.TypeIndex(0),
		Loc:       model.Location{Line: 10, Column: 3},
	}
	entryBytes := encode(t, fn)
	data := buildIfc(t, 0, nil, []fixturePartition{
		{name: "decl.function", cardinality: 1, entrySize: uint32(len(entryBytes)), data: entryBytes},
	})
	_, r := openFixture(t, data)

	idx, err := model.NewDeclIndex(model.DeclFunctionSort, 0)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	got, err := GetDecl[model.DeclFunction](r, idx, model.DeclFunctionSort)
	if err != nil {
		t.Fatalf("GetDecl: %v", err)
	}
	if got.BasicSpec != fn.BasicSpec {
		t.Errorf("BasicSpec = %v, want %v", got.BasicSpec, fn.BasicSpec)
	}
	if got.Loc != fn.Loc {
		t.Errorf("Loc = %+v, want %+v", got.Loc, fn.Loc)
	}
}

func TestGetDeclSortMismatch(t *testing.T) {
	fn := model.DeclFunction{}
	entryBytes := encode(t, fn)
	data := buildIfc(t, 0, nil, []fixturePartition{
		{name: "decl.function", cardinality: 1, entrySize: uint32(len(entryBytes)), data: entryBytes},
	})
	_, r := openFixture(t, data)

	idx, err := model.NewDeclIndex(model.DeclFunctionSort, 0)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	if _, err := GetDecl[model.DeclFunction](r, idx, model.DeclVariableSort); err == nil {
		t.Fatal("expected a sort-mismatch error")
	}
}

func TestGetDeclPositionOutOfRange(t *testing.T) {
	fn := model.DeclFunction{}
	entryBytes := encode(t, fn)
	data := buildIfc(t, 0, nil, []fixturePartition{
		{name: "decl.function", cardinality: 1, entrySize: uint32(len(entryBytes)), data: entryBytes},
	})
	_, r := openFixture(t, data)

	idx, err := model.NewDeclIndex(model.DeclFunctionSort, 5)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	if _, err := GetDecl[model.DeclFunction](r, idx, model.DeclFunctionSort); err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

// TestDecodeEntryBoundsRegression is the spec.md §8.4 scenario 6 bounds-
// check regression: a partition whose declared entry_size understates the
// real entity size must fail cleanly instead of reading past the end of
// the partition's bytes (the classical off-by-one where offset < size but
// offset + sizeof(T) > size).
func TestDecodeEntryBoundsRegression(t *testing.T) {
	fn := model.DeclFunction{BasicSpec: model.TraitInline}
	fullBytes := encode(t, fn)
	// Declare an entry_size one byte short of the real encoded size, so the
	// partition's byte range (cardinality * entry_size) is one byte too
	// small for decodeEntry's actual read.
	truncated := fullBytes[:len(fullBytes)-1]
	data := buildIfc(t, 0, nil, []fixturePartition{
		{name: "decl.function", cardinality: 1, entrySize: uint32(len(truncated)), data: truncated},
	})
	_, r := openFixture(t, data)

	idx, err := model.NewDeclIndex(model.DeclFunctionSort, 0)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	if _, err := GetDecl[model.DeclFunction](r, idx, model.DeclFunctionSort); err == nil {
		t.Fatal("expected the undersized partition to fail the bounds check, not read past its end")
	}
}

func TestEmptyPartitionReadsAsEmptySlice(t *testing.T) {
	data := buildIfc(t, 0, nil, nil)
	_, r := openFixture(t, data)

	out, err := DecodePartition[model.DeclFunction](r, catalog.FamilyDecl, uint32(model.DeclFunctionSort))
	if err != nil {
		t.Fatalf("DecodePartition on an absent partition: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected an empty slice, got %d entries", len(out))
	}
}

func TestVisitDeclWithIndexRejectsVendorExtension(t *testing.T) {
	data := buildIfc(t, 0, nil, nil)
	c, err := container.Open("fixture.ifc", bytespan.FromBytes(data), container.Options{})
	if err != nil {
		t.Fatalf("container.Open: %v", err)
	}
	var captured []uint32
	r, err := New(c, func(category string, sort uint32) {
		if category != "decl" {
			t.Errorf("unexpected category %q", category)
		}
		captured = append(captured, sort)
	})
	if err != nil {
		t.Fatalf("reader.New: %v", err)
	}

	idx, err := model.NewDeclIndex(model.DeclVendorExtension, 0)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	err = r.VisitDeclWithIndex(idx, NoOpVisitor{})
	if err == nil {
		t.Fatal("expected *UnexpectedVisitorError for DeclVendorExtension")
	}
	if _, ok := err.(*UnexpectedVisitorError); !ok {
		t.Errorf("got %T, want *UnexpectedVisitorError", err)
	}
	if len(captured) != 1 || captured[0] != uint32(model.DeclVendorExtension) {
		t.Errorf("onUnexpected callback not invoked as expected: %v", captured)
	}
}

func TestSequenceBoundsCheck(t *testing.T) {
	partition := []model.TypeIndex{1, 2, 3}
	if _, err := Sequence(partition, 1, 2); err != nil {
		t.Fatalf("Sequence within bounds: %v", err)
	}
	if _, err := Sequence(partition, 2, 2); err == nil {
		t.Fatal("expected an error for a sequence exceeding the partition")
	}
}

func TestTraitEntryBinarySearch(t *testing.T) {
	entries := []model.TraitEntry[uint32, string]{
		{Entity: 1, Value: "a"},
		{Entity: 5, Value: "b"},
		{Entity: 9, Value: "c"},
	}
	less := func(a, b uint32) bool { return a < b }

	if v, ok := TraitEntryBinarySearch(entries, uint32(5), less); !ok || v.Value != "b" {
		t.Errorf("expected to find key 5, got %+v ok=%v", v, ok)
	}
	if _, ok := TraitEntryBinarySearch(entries, uint32(6), less); ok {
		t.Error("expected key 6 to be absent")
	}
}
