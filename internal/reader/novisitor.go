package reader

import "github.com/ifcreader/ifc/internal/model"

// NoOpVisitor implements Visitor with empty bodies for every method. Callers
// that only care about a handful of variants embed it and override just
// those methods, rather than hand-writing 40-odd empty stubs each time.
type NoOpVisitor struct{}

func (NoOpVisitor) VisitDeclFunction(model.DeclFunction)             {}
func (NoOpVisitor) VisitDeclMethod(model.DeclMethod)                 {}
func (NoOpVisitor) VisitDeclVariable(model.DeclVariable)             {}
func (NoOpVisitor) VisitDeclField(model.DeclField)                   {}
func (NoOpVisitor) VisitDeclParameter(model.DeclParameter)           {}
func (NoOpVisitor) VisitDeclEnumerator(model.DeclEnumerator)         {}
func (NoOpVisitor) VisitDeclScope(model.DeclScope)                   {}
func (NoOpVisitor) VisitDeclEnumeration(model.DeclEnumeration)       {}
func (NoOpVisitor) VisitDeclAlias(model.DeclAlias)                   {}
func (NoOpVisitor) VisitDeclTemplate(model.DeclTemplate)             {}
func (NoOpVisitor) VisitDeclSpecialization(model.DeclSpecialization) {}
func (NoOpVisitor) VisitDeclBarren(model.DeclBarren)                 {}
func (NoOpVisitor) VisitDeclReference(model.DeclReference)           {}
func (NoOpVisitor) VisitDeclOther(model.DeclSort, []byte)             {}

func (NoOpVisitor) VisitTypeFundamental(model.TypeFundamental)         {}
func (NoOpVisitor) VisitTypePointer(model.TypePointer)                 {}
func (NoOpVisitor) VisitTypeLvalueReference(model.TypeLvalueReference) {}
func (NoOpVisitor) VisitTypeRvalueReference(model.TypeRvalueReference) {}
func (NoOpVisitor) VisitTypeFunction(model.TypeFunction)               {}
func (NoOpVisitor) VisitTypeMethod(model.TypeMethod)                   {}
func (NoOpVisitor) VisitTypeArray(model.TypeArray)                     {}
func (NoOpVisitor) VisitTypeQualified(model.TypeQualified)             {}
func (NoOpVisitor) VisitTypeTuple(model.TypeTuple)                     {}
func (NoOpVisitor) VisitTypeTypename(model.TypeTypename)               {}
func (NoOpVisitor) VisitTypeBase(model.TypeBase)                       {}
func (NoOpVisitor) VisitTypeDecltype(model.TypeDecltype)               {}
func (NoOpVisitor) VisitTypePlaceholder(model.TypePlaceholder)         {}
func (NoOpVisitor) VisitTypeForall(model.TypeForall)                   {}
func (NoOpVisitor) VisitTypeOther(model.TypeSort, []byte)              {}

func (NoOpVisitor) VisitExprLiteral(model.ExprLiteral)                 {}
func (NoOpVisitor) VisitExprNullptr(model.ExprNullptr)                 {}
func (NoOpVisitor) VisitExprThis(model.ExprThis)                       {}
func (NoOpVisitor) VisitExprNamedDecl(model.ExprNamedDecl)             {}
func (NoOpVisitor) VisitExprRead(model.ExprRead)                       {}
func (NoOpVisitor) VisitExprMonadic(model.ExprMonadic)                 {}
func (NoOpVisitor) VisitExprDyadic(model.ExprDyadic)                   {}
func (NoOpVisitor) VisitExprCall(model.ExprCall)                       {}
func (NoOpVisitor) VisitExprCast(model.ExprCast)                       {}
func (NoOpVisitor) VisitExprInitializerList(model.ExprInitializerList) {}
func (NoOpVisitor) VisitExprOther(model.ExprSort, []byte)              {}

func (NoOpVisitor) VisitStmtExpression(model.StmtExpression) {}
func (NoOpVisitor) VisitStmtBlock(model.StmtBlock)           {}
func (NoOpVisitor) VisitStmtIf(model.StmtIf)                 {}
func (NoOpVisitor) VisitStmtWhile(model.StmtWhile)           {}
func (NoOpVisitor) VisitStmtFor(model.StmtFor)               {}
func (NoOpVisitor) VisitStmtReturn(model.StmtReturn)         {}
func (NoOpVisitor) VisitStmtDecl(model.StmtDecl)             {}
func (NoOpVisitor) VisitStmtOther(model.StmtSort, []byte)    {}

func (NoOpVisitor) VisitNameIdentifier(model.NameIdentifier)   {}
func (NoOpVisitor) VisitNameOperator(model.NameOperator)       {}
func (NoOpVisitor) VisitNameConversion(model.NameConversion)   {}
func (NoOpVisitor) VisitNameTemplateID(model.NameTemplateID)   {}
func (NoOpVisitor) VisitNameSourceFile(model.NameSourceFile)   {}
func (NoOpVisitor) VisitNameOther(model.NameSort, []byte)      {}
