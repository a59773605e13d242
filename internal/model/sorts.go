// Package model holds the symbolic data model: the sort enums and entity
// variants for declarations, types, expressions, statements, names, syntax
// trees, forms, traits and the other families spec.md §3.3 enumerates, plus
// the sequence and trait-entry containers of §3.4/§3.5.
//
// Each family implements a representative, spec-faithful subset of its
// variants in full (the ones exercised by the end-to-end scenarios and
// invariants); the remaining named variants are declared as Sort constants
// only, so catalog and reader dispatch stay total over the declared sort
// space even though not every variant has a populated Go struct yet. See
// DESIGN.md for the exact coverage ledger.
package model

import "github.com/ifcreader/ifc/internal/ixsort"

// DeclSort identifies the variant of a Declaration entity.
type DeclSort uint32

const (
	DeclVendorExtension DeclSort = iota
	DeclFunctionSort
	DeclMethodSort
	DeclVariableSort
	DeclFieldSort
	DeclBitfieldSort
	DeclParameterSort
	DeclEnumeratorSort
	DeclScopeSort
	DeclEnumerationSort
	DeclAliasSort
	DeclTemplateSort
	DeclPartialSpecializationSort
	DeclSpecializationSort
	DeclConceptSort
	DeclDeductionGuideSort
	DeclUsingSort
	DeclFriendSort
	DeclBarrenSort
	DeclExpansionSort
	DeclReferenceSort
	DeclIntrinsicSort
	DeclPropertySort
	DeclSegmentSort
	DeclTupleSort
	DeclSyntaxTreeSort
	DeclUnused1Sort
	DeclCount
)

var declFamily = ixsort.NewFamily("decl", uint32(DeclCount))

// DeclIndex addresses an entity in the declaration partition family.
type DeclIndex ixsort.Index

// NewDeclIndex packs a sort and a partition-relative position into a DeclIndex.
func NewDeclIndex(sort DeclSort, position uint32) (DeclIndex, error) {
	idx, err := declFamily.Make(uint32(sort), position)
	return DeclIndex(idx), err
}

// Sort returns the declaration variant this index addresses.
func (d DeclIndex) Sort() DeclSort { return DeclSort(declFamily.Sort(ixsort.Index(d))) }

// Position returns the position within the variant's partition.
func (d DeclIndex) Position() uint32 { return declFamily.Position(ixsort.Index(d)) }

// IsNull reports whether d is the null declaration index.
func (d DeclIndex) IsNull() bool { return ixsort.IsNull(ixsort.Index(d)) }

// TypeSort identifies the variant of a Type entity.
type TypeSort uint32

const (
	TypeVendorExtension TypeSort = iota
	TypeFundamentalSort
	TypeDesignatedSort
	TypeTorSort
	TypeSyntacticSort
	TypeExpansionSort
	TypePointerSort
	TypePointerToMemberSort
	TypeLvalueReferenceSort
	TypeRvalueReferenceSort
	TypeFunctionSort
	TypeMethodSort
	TypeArraySort
	TypeTypenameSort
	TypeQualifiedSort
	TypeBaseSort
	TypeDecltypeSort
	TypePlaceholderSort
	TypeTupleSort
	TypeForallSort
	TypeUnalignedSort
	TypeSyntaxTreeSort
	TypeCount
)

var typeFamily = ixsort.NewFamily("type", uint32(TypeCount))

// TypeIndex addresses an entity in the type partition family.
type TypeIndex ixsort.Index

func NewTypeIndex(sort TypeSort, position uint32) (TypeIndex, error) {
	idx, err := typeFamily.Make(uint32(sort), position)
	return TypeIndex(idx), err
}

func (t TypeIndex) Sort() TypeSort  { return TypeSort(typeFamily.Sort(ixsort.Index(t))) }
func (t TypeIndex) Position() uint32 { return typeFamily.Position(ixsort.Index(t)) }
func (t TypeIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(t)) }

// ExprSort identifies the variant of an Expression entity.
type ExprSort uint32

const (
	ExprVendorExtension ExprSort = iota
	ExprLiteralSort
	ExprNullptrSort
	ExprThisSort
	ExprNamedDeclSort
	ExprTemplateIdSort
	ExprUnresolvedIdSort
	ExprPathSort
	ExprReadSort
	ExprMonadicSort
	ExprDyadicSort
	ExprTriadicSort
	ExprCallSort
	ExprCastSort
	ExprMemberInitializerSort
	ExprInitializerListSort
	ExprSizeofSort
	ExprAlignofSort
	ExprTypeidSort
	ExprFoldSort
	ExprRequiresSort
	ExprCount
)

var exprFamily = ixsort.NewFamily("expr", uint32(ExprCount))

// ExprIndex addresses an entity in the expression partition family.
type ExprIndex ixsort.Index

func NewExprIndex(sort ExprSort, position uint32) (ExprIndex, error) {
	idx, err := exprFamily.Make(uint32(sort), position)
	return ExprIndex(idx), err
}

func (e ExprIndex) Sort() ExprSort   { return ExprSort(exprFamily.Sort(ixsort.Index(e))) }
func (e ExprIndex) Position() uint32 { return exprFamily.Position(ixsort.Index(e)) }
func (e ExprIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(e)) }

// StmtSort identifies the variant of a Statement entity.
type StmtSort uint32

const (
	StmtVendorExtension StmtSort = iota
	StmtExpressionSort
	StmtBlockSort
	StmtIfSort
	StmtWhileSort
	StmtForSort
	StmtReturnSort
	StmtDeclSort
	StmtLabeledSort
	StmtTupleSort
	StmtCount
)

var stmtFamily = ixsort.NewFamily("stmt", uint32(StmtCount))

// StmtIndex addresses an entity in the statement partition family.
type StmtIndex ixsort.Index

func NewStmtIndex(sort StmtSort, position uint32) (StmtIndex, error) {
	idx, err := stmtFamily.Make(uint32(sort), position)
	return StmtIndex(idx), err
}

func (s StmtIndex) Sort() StmtSort   { return StmtSort(stmtFamily.Sort(ixsort.Index(s))) }
func (s StmtIndex) Position() uint32 { return stmtFamily.Position(ixsort.Index(s)) }
func (s StmtIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(s)) }

// NameSort identifies the variant of a Name entity.
type NameSort uint32

const (
	NameVendorExtension NameSort = iota
	NameIdentifierSort
	NameOperatorSort
	NameConversionSort
	NameLiteralSort
	NameTemplateIdSort
	NameSpecializationSort
	NameSourceFileSort
	NameGuideSort
	NameCount
)

var nameFamily = ixsort.NewFamily("name", uint32(NameCount))

// NameIndex addresses an entity in the name partition family.
type NameIndex ixsort.Index

func NewNameIndex(sort NameSort, position uint32) (NameIndex, error) {
	idx, err := nameFamily.Make(uint32(sort), position)
	return NameIndex(idx), err
}

func (n NameIndex) Sort() NameSort   { return NameSort(nameFamily.Sort(ixsort.Index(n))) }
func (n NameIndex) Position() uint32 { return nameFamily.Position(ixsort.Index(n)) }
func (n NameIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(n)) }

// SyntaxSort identifies the variant of a Syntax entity (syntactic forms
// retained for fidelity with the original source).
type SyntaxSort uint32

const (
	SyntaxVendorExtension SyntaxSort = iota
	SyntaxTreeSort
	SyntaxTypeSort
	SyntaxExpressionSort
	SyntaxCount
)

var syntaxFamily = ixsort.NewFamily("syntax", uint32(SyntaxCount))

// SyntaxIndex addresses an entity in the syntax partition family.
type SyntaxIndex ixsort.Index

func NewSyntaxIndex(sort SyntaxSort, position uint32) (SyntaxIndex, error) {
	idx, err := syntaxFamily.Make(uint32(sort), position)
	return SyntaxIndex(idx), err
}

func (s SyntaxIndex) Sort() SyntaxSort { return SyntaxSort(syntaxFamily.Sort(ixsort.Index(s))) }
func (s SyntaxIndex) Position() uint32 { return syntaxFamily.Position(ixsort.Index(s)) }
func (s SyntaxIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(s)) }

// ChartSort distinguishes a chart's arity: no parameters, a single level of
// template parameters, or several levels (a member template inside a
// template).
type ChartSort uint32

const (
	ChartNone ChartSort = iota
	ChartUnilevelSort
	ChartMultilevelSort
	ChartCount
)

var chartFamily = ixsort.NewFamily("chart", uint32(ChartCount))

// ChartIndex addresses an entity in the chart partition family.
type ChartIndex ixsort.Index

func NewChartIndex(sort ChartSort, position uint32) (ChartIndex, error) {
	idx, err := chartFamily.Make(uint32(sort), position)
	return ChartIndex(idx), err
}

func (c ChartIndex) Sort() ChartSort  { return ChartSort(chartFamily.Sort(ixsort.Index(c))) }
func (c ChartIndex) Position() uint32 { return chartFamily.Position(ixsort.Index(c)) }
func (c ChartIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(c)) }

// FormSort, AttrSort, DirSort: reserved families declared for dispatch
// completeness; no variant has a populated struct yet (see DESIGN.md).
type (
	FormSort uint32
	AttrSort uint32
	DirSort  uint32
)

const (
	FormVendorExtension FormSort = iota
	FormCount
)

const (
	AttrVendorExtension AttrSort = iota
	AttrCount
)

const (
	DirVendorExtension DirSort = iota
	DirCount
)

var (
	formFamily = ixsort.NewFamily("form", uint32(FormCount))
	attrFamily = ixsort.NewFamily("attr", uint32(AttrCount))
	dirFamily  = ixsort.NewFamily("dir", uint32(DirCount))
)

type FormIndex ixsort.Index
type AttrIndex ixsort.Index
type DirIndex ixsort.Index

func NewFormIndex(s FormSort, p uint32) (FormIndex, error) {
	idx, err := formFamily.Make(uint32(s), p)
	return FormIndex(idx), err
}
func (f FormIndex) Sort() FormSort  { return FormSort(formFamily.Sort(ixsort.Index(f))) }
func (f FormIndex) IsNull() bool    { return ixsort.IsNull(ixsort.Index(f)) }

func NewAttrIndex(s AttrSort, p uint32) (AttrIndex, error) {
	idx, err := attrFamily.Make(uint32(s), p)
	return AttrIndex(idx), err
}
func (a AttrIndex) Sort() AttrSort { return AttrSort(attrFamily.Sort(ixsort.Index(a))) }
func (a AttrIndex) IsNull() bool   { return ixsort.IsNull(ixsort.Index(a)) }

func NewDirIndex(s DirSort, p uint32) (DirIndex, error) {
	idx, err := dirFamily.Make(uint32(s), p)
	return DirIndex(idx), err
}
func (d DirIndex) Sort() DirSort { return DirSort(dirFamily.Sort(ixsort.Index(d))) }
func (d DirIndex) IsNull() bool  { return ixsort.IsNull(ixsort.Index(d)) }

// MacroSort and PragmaSort: preprocessing forms, declared for completeness.
type MacroSort uint32
type PragmaSort uint32

const (
	MacroVendorExtension MacroSort = iota
	MacroObjectLikeSort
	MacroFunctionLikeSort
	MacroCount
)

const (
	PragmaVendorExtension PragmaSort = iota
	PragmaCount
)

var (
	macroFamily  = ixsort.NewFamily("macro", uint32(MacroCount))
	pragmaFamily = ixsort.NewFamily("pragma", uint32(PragmaCount))
)

type MacroIndex ixsort.Index
type PragmaIndex ixsort.Index

func NewMacroIndex(s MacroSort, p uint32) (MacroIndex, error) {
	idx, err := macroFamily.Make(uint32(s), p)
	return MacroIndex(idx), err
}
func (m MacroIndex) Sort() MacroSort { return MacroSort(macroFamily.Sort(ixsort.Index(m))) }
func (m MacroIndex) IsNull() bool    { return ixsort.IsNull(ixsort.Index(m)) }

func NewPragmaIndex(s PragmaSort, p uint32) (PragmaIndex, error) {
	idx, err := pragmaFamily.Make(uint32(s), p)
	return PragmaIndex(idx), err
}
func (p PragmaIndex) Sort() PragmaSort { return PragmaSort(pragmaFamily.Sort(ixsort.Index(p))) }
func (p PragmaIndex) IsNull() bool     { return ixsort.IsNull(ixsort.Index(p)) }

// LitSort distinguishes the representation of a literal's value.
type LitSort uint32

const (
	LitImmediateSort LitSort = iota // fits in the index itself
	LitIntegerSort
	LitFloatingPointSort
	LitCount
)

var litFamily = ixsort.NewFamily("lit", uint32(LitCount))

type LitIndex ixsort.Index

func NewLitIndex(s LitSort, p uint32) (LitIndex, error) {
	idx, err := litFamily.Make(uint32(s), p)
	return LitIndex(idx), err
}
func (l LitIndex) Sort() LitSort  { return LitSort(litFamily.Sort(ixsort.Index(l))) }
func (l LitIndex) Position() uint32 { return litFamily.Position(ixsort.Index(l)) }
func (l LitIndex) IsNull() bool   { return ixsort.IsNull(ixsort.Index(l)) }

// StringSort, VendorSort, HeapSort, TraitSort, MsvcTraitSort: the remaining
// multi-sorted families.
type StringSort uint32
type VendorSort uint32
type HeapSort uint32
type TraitSort uint32
type MsvcTraitSort uint32

const (
	StringOrdinarySort StringSort = iota
	StringCount
)
const (
	VendorGenericSort VendorSort = iota
	VendorCount
)
const (
	HeapGenericSort HeapSort = iota
	HeapCount
)
const (
	TraitFunctionDefinitionSort TraitSort = iota
	TraitDeprecationMessageSort
	TraitScopeFriendsSort
	TraitTemplateSpecializationsSort
	TraitDeclAttributesSort
	TraitFileHashSort
	TraitCount
)
const (
	MsvcTraitUUIDSort MsvcTraitSort = iota
	MsvcTraitCount
)

var (
	stringFamily    = ixsort.NewFamily("string", uint32(StringCount))
	vendorFamily    = ixsort.NewFamily("vendor", uint32(VendorCount))
	heapFamily      = ixsort.NewFamily("heap", uint32(HeapCount))
	traitFamily     = ixsort.NewFamily("trait", uint32(TraitCount))
	msvcTraitFamily = ixsort.NewFamily("msvc-trait", uint32(MsvcTraitCount))
)

type StringIndex ixsort.Index
type VendorIndex ixsort.Index
type HeapIndex ixsort.Index
type TraitIndex ixsort.Index
type MsvcTraitIndex ixsort.Index

func NewStringIndex(s StringSort, p uint32) (StringIndex, error) {
	idx, err := stringFamily.Make(uint32(s), p)
	return StringIndex(idx), err
}
func (s StringIndex) Sort() StringSort  { return StringSort(stringFamily.Sort(ixsort.Index(s))) }
func (s StringIndex) Position() uint32  { return stringFamily.Position(ixsort.Index(s)) }

func NewVendorIndex(s VendorSort, p uint32) (VendorIndex, error) {
	idx, err := vendorFamily.Make(uint32(s), p)
	return VendorIndex(idx), err
}
func (v VendorIndex) Sort() VendorSort { return VendorSort(vendorFamily.Sort(ixsort.Index(v))) }

func NewHeapIndex(s HeapSort, p uint32) (HeapIndex, error) {
	idx, err := heapFamily.Make(uint32(s), p)
	return HeapIndex(idx), err
}
func (h HeapIndex) Sort() HeapSort { return HeapSort(heapFamily.Sort(ixsort.Index(h))) }

func NewTraitIndex(s TraitSort, p uint32) (TraitIndex, error) {
	idx, err := traitFamily.Make(uint32(s), p)
	return TraitIndex(idx), err
}
func (t TraitIndex) Sort() TraitSort { return TraitSort(traitFamily.Sort(ixsort.Index(t))) }
func (t TraitIndex) Position() uint32 { return traitFamily.Position(ixsort.Index(t)) }

func NewMsvcTraitIndex(s MsvcTraitSort, p uint32) (MsvcTraitIndex, error) {
	idx, err := msvcTraitFamily.Make(uint32(s), p)
	return MsvcTraitIndex(idx), err
}
func (m MsvcTraitIndex) Sort() MsvcTraitSort {
	return MsvcTraitSort(msvcTraitFamily.Sort(ixsort.Index(m)))
}
