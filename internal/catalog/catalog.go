// Package catalog implements the partition catalog (spec.md §4.2): the
// canonical, bijective mapping between partition names as they appear in an
// IFC file's string table and the (family, sort) pair that identifies what
// is stored in that partition.
//
// Grounded on the teacher's small registry/factory pattern
// (internal/index/registry.go, internal/quant/registry.go in the teacher
// repo): a package-level table built once, handed out through a handful of
// pure lookup functions rather than a stateful service.
package catalog

import (
	"fmt"
	"sort"

	"github.com/ifcreader/ifc/internal/model"
)

// FamilyID names one of the multi-sorted index families the catalog routes
// partition names to.
type FamilyID uint8

const (
	FamilyDecl FamilyID = iota
	FamilyType
	FamilyExpr
	FamilyStmt
	FamilyName
	FamilySyntax
	FamilyChart
	FamilyForm
	FamilyAttr
	FamilyDir
	FamilyMacro
	FamilyPragma
	FamilyLit
	FamilyString
	FamilyVendor
	FamilyHeap
	FamilyTrait
	FamilyMsvcTrait
)

// SortRef identifies a single partition: which family it belongs to, and
// the sort tag value within that family.
type SortRef struct {
	Family FamilyID
	Value  uint32
}

type entry struct {
	name string
	ref  SortRef
}

// ErrInvalidPartitionName is returned by SortOf when name is not a member of
// the canonical catalog and does not match the vendor fallback prefix.
type ErrInvalidPartitionName struct{ Name string }

func (e *ErrInvalidPartitionName) Error() string {
	return fmt.Sprintf("catalog: invalid partition name %q", e.Name)
}

// vendorFallbackPrefix is the one prefix spec.md §6.1 carves out: unknown
// names starting with it are accepted and routed to the vendor bucket
// instead of failing.
const vendorFallbackPrefix = ".msvc.code-analysis."

var (
	table       []entry
	byName      map[string]SortRef
	byFamilySort map[FamilyID]map[uint32]string
)

func register(name string, family FamilyID, value uint32) {
	e := entry{name: name, ref: SortRef{Family: family, Value: value}}
	table = append(table, e)
	byName[name] = e.ref
	if byFamilySort[family] == nil {
		byFamilySort[family] = make(map[uint32]string)
	}
	byFamilySort[family][value] = name
}

func init() {
	byName = make(map[string]SortRef)
	byFamilySort = make(map[FamilyID]map[uint32]string)

	register("decl.vendor-extension", FamilyDecl, uint32(model.DeclVendorExtension))
	register("decl.function", FamilyDecl, uint32(model.DeclFunctionSort))
	register("decl.method", FamilyDecl, uint32(model.DeclMethodSort))
	register("decl.variable", FamilyDecl, uint32(model.DeclVariableSort))
	register("decl.field", FamilyDecl, uint32(model.DeclFieldSort))
	register("decl.bitfield", FamilyDecl, uint32(model.DeclBitfieldSort))
	register("decl.parameter", FamilyDecl, uint32(model.DeclParameterSort))
	register("decl.enumerator", FamilyDecl, uint32(model.DeclEnumeratorSort))
	register("decl.scope", FamilyDecl, uint32(model.DeclScopeSort))
	register("decl.enumeration", FamilyDecl, uint32(model.DeclEnumerationSort))
	register("decl.alias", FamilyDecl, uint32(model.DeclAliasSort))
	register("decl.template", FamilyDecl, uint32(model.DeclTemplateSort))
	register("decl.partial-specialization", FamilyDecl, uint32(model.DeclPartialSpecializationSort))
	register("decl.specialization", FamilyDecl, uint32(model.DeclSpecializationSort))
	register("decl.concept", FamilyDecl, uint32(model.DeclConceptSort))
	register("decl.deduction-guide", FamilyDecl, uint32(model.DeclDeductionGuideSort))
	register("decl.using", FamilyDecl, uint32(model.DeclUsingSort))
	register("decl.friend", FamilyDecl, uint32(model.DeclFriendSort))
	register("decl.barren", FamilyDecl, uint32(model.DeclBarrenSort))
	register("decl.expansion", FamilyDecl, uint32(model.DeclExpansionSort))
	register("decl.reference", FamilyDecl, uint32(model.DeclReferenceSort))
	register("decl.intrinsic", FamilyDecl, uint32(model.DeclIntrinsicSort))
	register("decl.property", FamilyDecl, uint32(model.DeclPropertySort))
	register("decl.segment", FamilyDecl, uint32(model.DeclSegmentSort))
	register("decl.tuple", FamilyDecl, uint32(model.DeclTupleSort))
	register("decl.syntax-tree", FamilyDecl, uint32(model.DeclSyntaxTreeSort))

	register("type.vendor-extension", FamilyType, uint32(model.TypeVendorExtension))
	register("type.fundamental", FamilyType, uint32(model.TypeFundamentalSort))
	register("type.designated", FamilyType, uint32(model.TypeDesignatedSort))
	register("type.tor", FamilyType, uint32(model.TypeTorSort))
	register("type.syntactic", FamilyType, uint32(model.TypeSyntacticSort))
	register("type.expansion", FamilyType, uint32(model.TypeExpansionSort))
	register("type.pointer", FamilyType, uint32(model.TypePointerSort))
	register("type.pointer-to-member", FamilyType, uint32(model.TypePointerToMemberSort))
	register("type.lvalue-reference", FamilyType, uint32(model.TypeLvalueReferenceSort))
	register("type.rvalue-reference", FamilyType, uint32(model.TypeRvalueReferenceSort))
	register("type.function", FamilyType, uint32(model.TypeFunctionSort))
	register("type.method", FamilyType, uint32(model.TypeMethodSort))
	register("type.array", FamilyType, uint32(model.TypeArraySort))
	register("type.typename", FamilyType, uint32(model.TypeTypenameSort))
	register("type.qualified", FamilyType, uint32(model.TypeQualifiedSort))
	register("type.base", FamilyType, uint32(model.TypeBaseSort))
	register("type.decltype", FamilyType, uint32(model.TypeDecltypeSort))
	register("type.placeholder", FamilyType, uint32(model.TypePlaceholderSort))
	register("type.tuple", FamilyType, uint32(model.TypeTupleSort))
	register("type.forall", FamilyType, uint32(model.TypeForallSort))
	register("type.unaligned", FamilyType, uint32(model.TypeUnalignedSort))
	register("type.syntax-tree", FamilyType, uint32(model.TypeSyntaxTreeSort))

	register("expr.vendor-extension", FamilyExpr, uint32(model.ExprVendorExtension))
	register("expr.literal", FamilyExpr, uint32(model.ExprLiteralSort))
	register("expr.nullptr", FamilyExpr, uint32(model.ExprNullptrSort))
	register("expr.this", FamilyExpr, uint32(model.ExprThisSort))
	register("expr.named-decl", FamilyExpr, uint32(model.ExprNamedDeclSort))
	register("expr.template-id", FamilyExpr, uint32(model.ExprTemplateIdSort))
	register("expr.unresolved-id", FamilyExpr, uint32(model.ExprUnresolvedIdSort))
	register("expr.path", FamilyExpr, uint32(model.ExprPathSort))
	register("expr.read", FamilyExpr, uint32(model.ExprReadSort))
	register("expr.monadic", FamilyExpr, uint32(model.ExprMonadicSort))
	register("expr.dyadic", FamilyExpr, uint32(model.ExprDyadicSort))
	register("expr.triadic", FamilyExpr, uint32(model.ExprTriadicSort))
	register("expr.call", FamilyExpr, uint32(model.ExprCallSort))
	register("expr.cast", FamilyExpr, uint32(model.ExprCastSort))
	register("expr.member-initializer", FamilyExpr, uint32(model.ExprMemberInitializerSort))
	register("expr.initializer-list", FamilyExpr, uint32(model.ExprInitializerListSort))
	register("expr.sizeof", FamilyExpr, uint32(model.ExprSizeofSort))
	register("expr.alignof", FamilyExpr, uint32(model.ExprAlignofSort))
	register("expr.typeid", FamilyExpr, uint32(model.ExprTypeidSort))
	register("expr.fold", FamilyExpr, uint32(model.ExprFoldSort))
	register("expr.requires", FamilyExpr, uint32(model.ExprRequiresSort))

	register("stmt.vendor-extension", FamilyStmt, uint32(model.StmtVendorExtension))
	register("stmt.expression", FamilyStmt, uint32(model.StmtExpressionSort))
	register("stmt.block", FamilyStmt, uint32(model.StmtBlockSort))
	register("stmt.if", FamilyStmt, uint32(model.StmtIfSort))
	register("stmt.while", FamilyStmt, uint32(model.StmtWhileSort))
	register("stmt.for", FamilyStmt, uint32(model.StmtForSort))
	register("stmt.return", FamilyStmt, uint32(model.StmtReturnSort))
	register("stmt.decl", FamilyStmt, uint32(model.StmtDeclSort))
	register("stmt.labeled", FamilyStmt, uint32(model.StmtLabeledSort))
	register("stmt.tuple", FamilyStmt, uint32(model.StmtTupleSort))

	register("name.vendor-extension", FamilyName, uint32(model.NameVendorExtension))
	register("name.identifier", FamilyName, uint32(model.NameIdentifierSort))
	register("name.operator", FamilyName, uint32(model.NameOperatorSort))
	register("name.conversion", FamilyName, uint32(model.NameConversionSort))
	register("name.literal", FamilyName, uint32(model.NameLiteralSort))
	register("name.template-id", FamilyName, uint32(model.NameTemplateIdSort))
	register("name.specialization", FamilyName, uint32(model.NameSpecializationSort))
	register("name.source-file", FamilyName, uint32(model.NameSourceFileSort))
	register("name.guide", FamilyName, uint32(model.NameGuideSort))

	register("syntax.vendor-extension", FamilySyntax, uint32(model.SyntaxVendorExtension))
	register("syntax.tree", FamilySyntax, uint32(model.SyntaxTreeSort))
	register("syntax.type", FamilySyntax, uint32(model.SyntaxTypeSort))
	register("syntax.expression", FamilySyntax, uint32(model.SyntaxExpressionSort))

	register("chart.none", FamilyChart, uint32(model.ChartNone))
	register("chart.unilevel", FamilyChart, uint32(model.ChartUnilevelSort))
	register("chart.multilevel", FamilyChart, uint32(model.ChartMultilevelSort))

	register("form.vendor-extension", FamilyForm, uint32(model.FormVendorExtension))
	register("attr.vendor-extension", FamilyAttr, uint32(model.AttrVendorExtension))
	register("dir.vendor-extension", FamilyDir, uint32(model.DirVendorExtension))

	register("macro.vendor-extension", FamilyMacro, uint32(model.MacroVendorExtension))
	register("macro.object-like", FamilyMacro, uint32(model.MacroObjectLikeSort))
	register("macro.function-like", FamilyMacro, uint32(model.MacroFunctionLikeSort))

	register("pragma.vendor-extension", FamilyPragma, uint32(model.PragmaVendorExtension))

	register("lit.immediate", FamilyLit, uint32(model.LitImmediateSort))
	register("lit.integer", FamilyLit, uint32(model.LitIntegerSort))
	register("lit.floating-point", FamilyLit, uint32(model.LitFloatingPointSort))

	register("string.ordinary", FamilyString, uint32(model.StringOrdinarySort))
	register("vendor.generic", FamilyVendor, uint32(model.VendorGenericSort))
	register("heap.generic", FamilyHeap, uint32(model.HeapGenericSort))

	register("trait.function-definition", FamilyTrait, uint32(model.TraitFunctionDefinitionSort))
	register("trait.deprecation-message", FamilyTrait, uint32(model.TraitDeprecationMessageSort))
	register("trait.scope-friends", FamilyTrait, uint32(model.TraitScopeFriendsSort))
	register("trait.template-specializations", FamilyTrait, uint32(model.TraitTemplateSpecializationsSort))
	register("trait.decl-attributes", FamilyTrait, uint32(model.TraitDeclAttributesSort))
	register("trait.file-hash", FamilyTrait, uint32(model.TraitFileHashSort))

	register(".msvc.trait.uuid", FamilyMsvcTrait, uint32(model.MsvcTraitUUIDSort))

	sort.Slice(table, func(i, j int) bool { return table[i].name < table[j].name })
}

// SortOf resolves a partition name to its (family, sort) reference. Unknown
// names beginning with the MSVC code-analysis vendor prefix resolve to the
// vendor family instead of failing, per spec.md §6.1; any other unknown name
// yields ErrInvalidPartitionName.
func SortOf(name string) (SortRef, error) {
	// Binary search over the name-sorted table for logarithmic lookup.
	i := sort.Search(len(table), func(i int) bool { return table[i].name >= name })
	if i < len(table) && table[i].name == name {
		return table[i].ref, nil
	}
	if len(name) > len(vendorFallbackPrefix) && name[:len(vendorFallbackPrefix)] == vendorFallbackPrefix {
		return SortRef{Family: FamilyVendor, Value: uint32(model.VendorGenericSort)}, nil
	}
	return SortRef{}, &ErrInvalidPartitionName{Name: name}
}

// NameOf returns the canonical partition name for a (family, sort) pair, or
// false if no such entry was registered.
func NameOf(family FamilyID, value uint32) (string, bool) {
	bySort, ok := byFamilySort[family]
	if !ok {
		return "", false
	}
	name, ok := bySort[value]
	return name, ok
}
