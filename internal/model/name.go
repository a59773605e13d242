package model

// NameIdentifier is a plain spelled identifier.
type NameIdentifier struct {
	Spelling StringIndex
}

// OperatorKind enumerates the operator a NameOperator names (operator+,
// operator(), ...).
type OperatorKind uint8

const (
	OperatorPlus OperatorKind = iota
	OperatorMinus
	OperatorCall
	OperatorSubscript
	OperatorNew
	OperatorDelete
)

// NameOperator is an operator-function-id ("operator+").
type NameOperator struct {
	Operator OperatorKind
}

// NameConversion is a conversion-function-id ("operator T").
type NameConversion struct {
	Target TypeIndex
}

// NameTemplateID is a template-id name ("Foo<int>").
type NameTemplateID struct {
	Primary   NameIndex
	Arguments Sequence[TypeIndex]
}

// NameSourceFile is the distinguished name of a source-file-scope entity,
// used for the header's own src_path-rooted designators.
type NameSourceFile struct {
	Path StringIndex
}
