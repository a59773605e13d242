package dom

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ifcreader/ifc/internal/bytespan"
	"github.com/ifcreader/ifc/internal/container"
	"github.com/ifcreader/ifc/internal/model"
	"github.com/ifcreader/ifc/internal/reader"
)

type fixturePartition struct {
	name        string
	cardinality uint32
	entrySize   uint32
	data        []byte
}

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	return buf.Bytes()
}

// buildLoader assembles a synthetic .ifc image encoding one
// glb_void_void_func-shaped function: a DeclFunction naming a
// NameIdentifier whose spelling interns a string, typed as a
// TypeFunction(void -> void) over TypeFundamental{Void}. Mirrors spec.md
// §8.4 scenario 1.
func buildLoader(t *testing.T) *Loader {
	t.Helper()
	const digestSize = 32
	const headerSize = 40
	const tocEntrySize = 16

	const spelling = "glb_void_void_func"

	voidType := encode(t, model.TypeFundamental{Sign: model.SignDefault, Precision: model.PrecisionDefault, Basis: model.BasisVoid})
	funcType := encode(t, model.TypeFunction{Target: mustTypeIndex(t, model.TypeFundamentalSort, 0), Source: model.TypeIndex(0)})
	name := encode(t, model.NameIdentifier{Spelling: mustStringIndex(t, model.StringOrdinarySort, 0)})
	fn := encode(t, model.DeclFunction{
		Name:      mustNameIndex(t, model.NameIdentifierSort, 0),
		HomeScope: 0,
		Chart:     model.ChartIndex(0),
		Traits:    model.TraitIndex(0),
		BasicSpec: model.TraitCxx | model.TraitExternal,
		Type:      mustTypeIndex(t, model.TypeFunctionSort, 0),
		Loc:       model.Location{Line: 1, Column: 1},
	})
	str := encode(t, model.StringLiteral{Text: 0 /* patched below */, Length: uint32(len(spelling))})

	parts := []fixturePartition{
		{name: "decl.function", cardinality: 1, entrySize: uint32(len(fn)), data: fn},
		{name: "type.fundamental", cardinality: 1, entrySize: uint32(len(voidType)), data: voidType},
		{name: "type.function", cardinality: 1, entrySize: uint32(len(funcType)), data: funcType},
		{name: "name.identifier", cardinality: 1, entrySize: uint32(len(name)), data: name},
		{name: "string.ordinary", cardinality: 1, entrySize: uint32(len(str)), data: str},
	}

	data, spellingOffset := buildIfc(t, nil, []string{spelling}, parts)
	binary.LittleEndian.PutUint32(data.stringLiteralPatch, spellingOffset)

	span := bytespan.FromBytes(data.bytes)
	c, err := container.Open("fixture.ifc", span, container.Options{})
	if err != nil {
		t.Fatalf("container.Open: %v", err)
	}
	r, err := reader.New(c, nil)
	if err != nil {
		t.Fatalf("reader.New: %v", err)
	}
	return New(r)
}

func mustNameIndex(t *testing.T, s model.NameSort, p uint32) model.NameIndex {
	t.Helper()
	idx, err := model.NewNameIndex(s, p)
	if err != nil {
		t.Fatalf("NewNameIndex: %v", err)
	}
	return idx
}

func mustTypeIndex(t *testing.T, s model.TypeSort, p uint32) model.TypeIndex {
	t.Helper()
	idx, err := model.NewTypeIndex(s, p)
	if err != nil {
		t.Fatalf("NewTypeIndex: %v", err)
	}
	return idx
}

func mustStringIndex(t *testing.T, s model.StringSort, p uint32) model.StringIndex {
	t.Helper()
	idx, err := model.NewStringIndex(s, p)
	if err != nil {
		t.Fatalf("NewStringIndex: %v", err)
	}
	return idx
}

// builtIfc bundles the assembled byte image together with the byte range
// that needs patching with the now-known offset of an interned string
// (StringLiteral.Text), since that string is only appended to the table
// after the struct bytes encoding it have already been built.
type builtIfc struct {
	bytes              []byte
	stringLiteralPatch []byte
}

func buildIfc(t *testing.T, _ []string, extraStrings []string, parts []fixturePartition) (builtIfc, uint32) {
	t.Helper()
	const digestSize = 32
	const headerSize = 40
	const tocEntrySize = 16

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
	stringOrdinaryOffsetInFile := -1
	for i, p := range parts {
		offsets[i] = cursor
		if p.name == "string.ordinary" {
			stringOrdinaryOffsetInFile = partitionBytes.Len() + int(partitionsStart)
		}
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
	binary.LittleEndian.PutUint32(header[16:20], 0)
	binary.LittleEndian.PutUint32(header[20:24], 0)
	binary.LittleEndian.PutUint32(header[24:28], 0)
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

	out := buf.Bytes()
	if stringOrdinaryOffsetInFile < 0 {
		t.Fatal("string.ordinary partition not found among fixture parts")
	}
	// StringLiteral{Text, Length}: Text is the first 4 bytes of the entry.
	patch := out[stringOrdinaryOffsetInFile : stringOrdinaryOffsetInFile+4]
	var textOffset uint32
	if len(extraStrings) > 0 {
		textOffset = offsetOf[extraStrings[0]]
	}
	return builtIfc{bytes: out, stringLiteralPatch: patch}, textOffset
}

func TestLoaderGetMaterializesFunctionNode(t *testing.T) {
	l := buildLoader(t)

	n, err := l.Get(NodeKey{Kind: KindDecl, SortTag: uint32(model.DeclFunctionSort), Position: 0})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if kind, _ := n.Property("kind"); kind != "function" {
		t.Errorf("kind = %q, want %q", kind, "function")
	}
	if spec, _ := n.Property("basic-spec"); spec != "Cxx External" {
		t.Errorf("basic-spec = %q, want %q", spec, "Cxx External")
	}
}

func TestLoaderGetIsIdempotent(t *testing.T) {
	l := buildLoader(t)
	key := NodeKey{Kind: KindDecl, SortTag: uint32(model.DeclFunctionSort), Position: 0}
	a, err := l.Get(key)
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	b, err := l.Get(key)
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if a != b {
		t.Error("Get(key) called twice must return the identical *Node")
	}
}

func TestRefNullRendersNoKind(t *testing.T) {
	l := buildLoader(t)
	s, err := l.Ref(NodeKey{Kind: KindType}, true)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if s != "no-type" {
		t.Errorf("Ref(null type) = %q, want %q", s, "no-type")
	}
}

func TestShortFormFundamentalType(t *testing.T) {
	l := buildLoader(t)
	key := NodeKey{Kind: KindType, SortTag: uint32(model.TypeFundamentalSort), Position: 0}
	s, err := l.Ref(key, false)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if s != "void" {
		t.Errorf("Ref(fundamental void) = %q, want %q", s, "void")
	}
}

func TestShortFormStability(t *testing.T) {
	l := buildLoader(t)
	key := NodeKey{Kind: KindType, SortTag: uint32(model.TypeFundamentalSort), Position: 0}
	first, err := l.Ref(key, false)
	if err != nil {
		t.Fatalf("Ref (1st): %v", err)
	}
	second, err := l.Ref(key, false)
	if err != nil {
		t.Fatalf("Ref (2nd): %v", err)
	}
	if first != second {
		t.Errorf("short-form string changed across calls: %q vs %q", first, second)
	}
}

func TestFunctionTypeShortForm(t *testing.T) {
	l := buildLoader(t)
	key := NodeKey{Kind: KindType, SortTag: uint32(model.TypeFunctionSort), Position: 0}
	s, err := l.Ref(key, false)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if s != "void(no-type)" {
		t.Errorf("Ref(function type) = %q, want %q", s, "void(no-type)")
	}
}
