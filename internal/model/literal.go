package model

import "github.com/ifcreader/ifc/internal/prim"

// FileAndLine is the entry addressed by a LineIndex: a source file name
// paired with a line number, used to expand the compact line-table
// representation shared across many declarations (spec.md §4.4
// "get(LineIndex) -> &FileAndLine").
type FileAndLine struct {
	File prim.TextOffset
	Line prim.LineNumber
}

// SpecializationForm is the entry addressed by a SpecFormIndex: the
// argument list a template specialization was instantiated with (spec.md
// §4.4 "get(SpecFormIndex) -> &SpecializationForm").
type SpecializationForm struct {
	Arguments Sequence[TypeIndex]
}

// StringLiteral is the entry stored in the "string" partition family and
// addressed by a StringIndex: an interned ordinary string literal's
// location and length in the string table.
type StringLiteral struct {
	Text   prim.TextOffset
	Length uint32
}
