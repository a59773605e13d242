package model

import "github.com/ifcreader/ifc/internal/prim"

// DeclTraits is the "yes/no enum" bundle of boolean declaration properties
// (§9 Design Notes: these cross an API boundary, so they are named bits
// rather than loose booleans). basic_spec in spec.md §8.4 is this bitset.
type DeclTraits uint32

const (
	TraitCxx DeclTraits = 1 << iota
	TraitExternal
	TraitNonExported
	TraitInline
	TraitConstexpr
	TraitNoReturn
	TraitDeleted
	TraitConstrained
	TraitImmediate
	TraitExplicit
	TraitVirtual
	TraitPureVirtual
	TraitDefaulted
	TraitFinal
	TraitOverride
)

// Has reports whether all bits in want are set in d.
func (d DeclTraits) Has(want DeclTraits) bool { return d&want == want }

// Location is the source position carried by entities for which it is
// meaningful (declarations, expressions, statements); types carry none.
type Location struct {
	Line   prim.LineNumber
	Column prim.ColumnNumber
}

// ParameterSort distinguishes an ordinary object parameter from a template
// type parameter within a Chart.
type ParameterSort uint32

const (
	ParameterObject ParameterSort = iota
	ParameterType
)

// DeclFunction is a non-member function declaration or definition.
type DeclFunction struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Chart     ChartIndex
	Traits    TraitIndex // null TraitIndex -> "traits == None"
	BasicSpec DeclTraits
	Type      TypeIndex
	Loc       Location
}

// ScopeIndexOrNull carries a home-scope back-reference; zero is null.
type ScopeIndexOrNull uint32

func (s ScopeIndexOrNull) IsNull() bool { return s == 0 }

// DeclMethod is a member function declaration. This model has no dedicated
// constructor or destructor variant.
type DeclMethod struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Chart     ChartIndex
	Traits    TraitIndex
	BasicSpec DeclTraits
	Type      TypeIndex
	Loc       Location
}

// DeclVariable is a namespace-scope or block-scope variable.
type DeclVariable struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	BasicSpec DeclTraits
	Type      TypeIndex
	Initializer ExprIndex // zero ExprIndex => no initializer
	Loc       Location
}

// DeclField is a non-static data member.
type DeclField struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Type      TypeIndex
	BasicSpec DeclTraits
	Loc       Location
}

// DeclParameter is a function or template parameter, addressed by its
// position within a Chart level (spec.md §8.4 scenario 3: level, position,
// sort).
type DeclParameter struct {
	Name  NameIndex
	Level uint32
	Index uint32
	Sort  ParameterSort
	Type  TypeIndex
	Loc   Location
}

// DeclEnumerator is one enumerator of an enumeration.
type DeclEnumerator struct {
	Name  NameIndex
	Value int64
	Loc   Location
}

// DeclScope introduces a new scope (namespace, class, or similar):
// Members lists the scope's direct declarations in declaration order.
type DeclScope struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Members   Sequence[DeclIndex]
	BasicSpec DeclTraits
	Loc       Location
}

// DeclEnumeration declares an enum or enum class.
type DeclEnumeration struct {
	Name       NameIndex
	HomeScope  ScopeIndexOrNull
	Underlying TypeIndex
	Enumerators Sequence[DeclIndex]
	BasicSpec  DeclTraits
	Loc        Location
}

// DeclAlias is a type alias (using X = Y; or typedef).
type DeclAlias struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Aliasee   TypeIndex
	Loc       Location
}

// DeclTemplate wraps a chart of template parameters around an entity.
type DeclTemplate struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Chart     ChartIndex
	Entity    DeclIndex
	Loc       Location
}

// DeclSpecialization records one specialization of a template.
type DeclSpecialization struct {
	Primary   DeclIndex
	Arguments Sequence[TypeIndex]
	Entity    DeclIndex
	Loc       Location
}

// DeclBarren is a declaration form carrying no further payload beyond its
// name and home scope (an intentionally minimal placeholder variant in the
// original format).
type DeclBarren struct {
	Name      NameIndex
	HomeScope ScopeIndexOrNull
	Loc       Location
}

// DeclReference is a reference to a declaration defined in another
// translation unit's IFC.
type DeclReference struct {
	Name NameIndex
	Unit UnitIndexOrNull
}

// UnitIndexOrNull addresses another translation unit; zero is null.
type UnitIndexOrNull uint32

func (u UnitIndexOrNull) IsNull() bool { return u == 0 }
