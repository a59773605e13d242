package dom

import (
	"fmt"
	"strconv"

	"github.com/ifcreader/ifc/internal/model"
	"github.com/ifcreader/ifc/internal/reader"
)

// visitor adapts a single Node's worth of reader.Visitor callbacks: each
// Visit* method fills the node's properties and children, capturing the
// first error encountered (the Visitor interface itself is error-free, to
// keep reader.Visit's switch readable).
type visitor struct {
	reader.NoOpVisitor
	l    *Loader
	n    *Node
	err  error
}

func (v *visitor) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

func (v *visitor) VisitDeclFunction(e model.DeclFunction) {
	v.n.SetProperty("kind", "function")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refChart(v.n, "chart", e.Chart))
	v.n.SetProperty("traits", traitRefString(e.Traits))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitDeclMethod(e model.DeclMethod) {
	v.n.SetProperty("kind", "method")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refChart(v.n, "chart", e.Chart))
	v.n.SetProperty("traits", traitRefString(e.Traits))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitDeclVariable(e model.DeclVariable) {
	v.n.SetProperty("kind", "variable")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
	v.fail(v.l.refType(v.n, "type", e.Type))
	v.fail(v.l.refExpr(v.n, "initializer", e.Initializer))
}

func (v *visitor) VisitDeclField(e model.DeclField) {
	v.n.SetProperty("kind", "field")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refType(v.n, "type", e.Type))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
}

func (v *visitor) VisitDeclParameter(e model.DeclParameter) {
	v.n.SetProperty("kind", "parameter")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("level", strconv.FormatUint(uint64(e.Level), 10))
	v.n.SetProperty("index", strconv.FormatUint(uint64(e.Index), 10))
	v.n.SetProperty("sort", parameterSortString(e.Sort))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitDeclEnumerator(e model.DeclEnumerator) {
	v.n.SetProperty("kind", "enumerator")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("value", strconv.FormatInt(e.Value, 10))
}

func (v *visitor) VisitDeclScope(e model.DeclScope) {
	v.n.SetProperty("kind", "scope")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
	v.fail(v.l.refDeclSequence(v.n, "members", e.Members))
}

func (v *visitor) VisitDeclEnumeration(e model.DeclEnumeration) {
	v.n.SetProperty("kind", "enumeration")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refType(v.n, "underlying", e.Underlying))
	v.n.SetProperty("basic-spec", basicSpecString(e.BasicSpec))
	v.fail(v.l.refDeclSequence(v.n, "enumerators", e.Enumerators))
}

func (v *visitor) VisitDeclAlias(e model.DeclAlias) {
	v.n.SetProperty("kind", "alias")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refType(v.n, "aliasee", e.Aliasee))
}

func (v *visitor) VisitDeclTemplate(e model.DeclTemplate) {
	v.n.SetProperty("kind", "template")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
	v.fail(v.l.refChart(v.n, "chart", e.Chart))
	v.fail(v.l.refDecl(v.n, "entity", e.Entity))
}

func (v *visitor) VisitDeclSpecialization(e model.DeclSpecialization) {
	v.n.SetProperty("kind", "specialization")
	v.fail(v.l.refDecl(v.n, "primary", e.Primary))
	v.fail(v.l.refDecl(v.n, "entity", e.Entity))
}

func (v *visitor) VisitDeclBarren(e model.DeclBarren) {
	v.n.SetProperty("kind", "barren")
	v.fail(v.l.refName(v.n, "name", e.Name))
	v.n.SetProperty("home-scope", scopeRefString(e.HomeScope))
}

func (v *visitor) VisitDeclReference(e model.DeclReference) {
	v.n.SetProperty("kind", "reference")
	v.fail(v.l.refName(v.n, "name", e.Name))
}

func (v *visitor) VisitDeclOther(sort model.DeclSort, raw []byte) {
	v.n.SetProperty("kind", "decl-other")
	v.n.SetProperty("sort", strconv.FormatUint(uint64(sort), 10))
	v.n.SetProperty("raw-bytes", strconv.Itoa(len(raw)))
}

func (v *visitor) VisitTypeFundamental(e model.TypeFundamental) {
	v.n.SetProperty("kind", "fundamental")
	v.n.SetProperty("spelling", fundamentalKeyword(e))
}

func (v *visitor) VisitTypePointer(e model.TypePointer) {
	v.n.SetProperty("kind", "pointer")
	v.fail(v.l.refType(v.n, "pointee", e.Pointee))
}

func (v *visitor) VisitTypeLvalueReference(e model.TypeLvalueReference) {
	v.n.SetProperty("kind", "lvalue-reference")
	v.fail(v.l.refType(v.n, "referent", e.Referent))
}

func (v *visitor) VisitTypeRvalueReference(e model.TypeRvalueReference) {
	v.n.SetProperty("kind", "rvalue-reference")
	v.fail(v.l.refType(v.n, "referent", e.Referent))
}

func (v *visitor) VisitTypeFunction(e model.TypeFunction) {
	v.n.SetProperty("kind", "function-type")
	v.fail(v.l.refType(v.n, "target", e.Target))
	v.fail(v.l.refType(v.n, "source", e.Source))
}

func (v *visitor) VisitTypeMethod(e model.TypeMethod) {
	v.n.SetProperty("kind", "method-type")
	v.fail(v.l.refType(v.n, "target", e.Target))
	v.fail(v.l.refType(v.n, "class", e.Class))
	v.fail(v.l.refType(v.n, "source", e.Source))
}

func (v *visitor) VisitTypeArray(e model.TypeArray) {
	v.n.SetProperty("kind", "array")
	v.fail(v.l.refType(v.n, "element", e.Element))
	v.n.SetProperty("bound", strconv.FormatUint(uint64(e.Bound), 10))
}

func (v *visitor) VisitTypeQualified(e model.TypeQualified) {
	v.n.SetProperty("kind", "qualified")
	v.fail(v.l.refType(v.n, "unqualified", e.Unqualified))
	v.n.SetProperty("qualifiers", qualifiersString(e.Qualifiers))
}

func (v *visitor) VisitTypeTuple(e model.TypeTuple) {
	v.n.SetProperty("kind", "tuple")
	v.fail(v.l.refTypeSequence(v.n, "elements", e.Elements))
}

func (v *visitor) VisitTypeTypename(e model.TypeTypename) {
	v.n.SetProperty("kind", "typename")
	v.fail(v.l.refName(v.n, "name", e.Name))
}

func (v *visitor) VisitTypeBase(e model.TypeBase) {
	v.n.SetProperty("kind", "base")
	v.fail(v.l.refType(v.n, "base-type", e.BaseType))
	v.n.SetProperty("is-virtual", strconv.FormatBool(e.IsVirtual))
}

func (v *visitor) VisitTypeDecltype(e model.TypeDecltype) {
	v.n.SetProperty("kind", "decltype")
	v.fail(v.l.refExpr(v.n, "operand", e.Operand))
}

func (v *visitor) VisitTypePlaceholder(e model.TypePlaceholder) {
	v.n.SetProperty("kind", "placeholder")
	v.fail(v.l.refType(v.n, "constraint", e.Constraint))
}

func (v *visitor) VisitTypeForall(e model.TypeForall) {
	v.n.SetProperty("kind", "forall")
	v.fail(v.l.refChart(v.n, "chart", e.Chart))
	v.fail(v.l.refType(v.n, "body", e.Body))
}

func (v *visitor) VisitTypeOther(sort model.TypeSort, raw []byte) {
	v.n.SetProperty("kind", "type-other")
	v.n.SetProperty("sort", strconv.FormatUint(uint64(sort), 10))
	v.n.SetProperty("raw-bytes", strconv.Itoa(len(raw)))
}

func (v *visitor) VisitExprLiteral(e model.ExprLiteral) {
	v.n.SetProperty("kind", "literal")
	switch e.Kind {
	case model.LiteralInteger:
		v.n.SetProperty("value", strconv.FormatInt(e.Integer, 10))
	case model.LiteralFloatingPoint:
		v.n.SetProperty("value", strconv.FormatFloat(e.Float, 'g', -1, 64))
	default:
		lit, err := v.l.r.GetStringLiteral(e.Text)
		if err != nil {
			v.fail(err)
			return
		}
		v.n.SetProperty("value", v.l.r.GetText(lit.Text))
	}
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprNullptr(e model.ExprNullptr) {
	v.n.SetProperty("kind", "nullptr")
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprThis(e model.ExprThis) {
	v.n.SetProperty("kind", "this")
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprNamedDecl(e model.ExprNamedDecl) {
	v.n.SetProperty("kind", "named-decl")
	v.fail(v.l.refDecl(v.n, "decl", e.Decl))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprRead(e model.ExprRead) {
	v.n.SetProperty("kind", "read")
	v.fail(v.l.refExpr(v.n, "operand", e.Operand))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprMonadic(e model.ExprMonadic) {
	v.n.SetProperty("kind", "monadic")
	v.fail(v.l.refExpr(v.n, "operand", e.Operand))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprDyadic(e model.ExprDyadic) {
	v.n.SetProperty("kind", "dyadic")
	v.fail(v.l.refExpr(v.n, "left", e.Left))
	v.fail(v.l.refExpr(v.n, "right", e.Right))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprCall(e model.ExprCall) {
	v.n.SetProperty("kind", "call")
	v.fail(v.l.refExpr(v.n, "function", e.Function))
	v.fail(v.l.refExprSequence(v.n, "arguments", e.Arguments))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprCast(e model.ExprCast) {
	v.n.SetProperty("kind", "cast")
	v.fail(v.l.refExpr(v.n, "operand", e.Operand))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprInitializerList(e model.ExprInitializerList) {
	v.n.SetProperty("kind", "initializer-list")
	v.fail(v.l.refExprSequence(v.n, "elements", e.Elements))
	v.fail(v.l.refType(v.n, "type", e.Type))
}

func (v *visitor) VisitExprOther(sort model.ExprSort, raw []byte) {
	v.n.SetProperty("kind", "expr-other")
	v.n.SetProperty("sort", strconv.FormatUint(uint64(sort), 10))
	v.n.SetProperty("raw-bytes", strconv.Itoa(len(raw)))
}

func (v *visitor) VisitStmtExpression(e model.StmtExpression) {
	v.n.SetProperty("kind", "expr-statement")
	v.fail(v.l.refExpr(v.n, "expr", e.Expr))
}

func (v *visitor) VisitStmtBlock(e model.StmtBlock) {
	v.n.SetProperty("kind", "block")
	v.fail(v.l.refStmtSequence(v.n, "statements", e.Statements))
}

func (v *visitor) VisitStmtIf(e model.StmtIf) {
	v.n.SetProperty("kind", "if")
	v.fail(v.l.refExpr(v.n, "condition", e.Condition))
	v.fail(v.l.refStmt(v.n, "then", e.Then))
	v.fail(v.l.refStmt(v.n, "else", e.Else))
}

func (v *visitor) VisitStmtWhile(e model.StmtWhile) {
	v.n.SetProperty("kind", "while")
	v.fail(v.l.refExpr(v.n, "condition", e.Condition))
	v.fail(v.l.refStmt(v.n, "body", e.Body))
}

func (v *visitor) VisitStmtFor(e model.StmtFor) {
	v.n.SetProperty("kind", "for")
	v.fail(v.l.refStmt(v.n, "init", e.Init))
	v.fail(v.l.refExpr(v.n, "condition", e.Condition))
	v.fail(v.l.refExpr(v.n, "increment", e.Increment))
	v.fail(v.l.refStmt(v.n, "body", e.Body))
}

func (v *visitor) VisitStmtReturn(e model.StmtReturn) {
	v.n.SetProperty("kind", "return")
	v.fail(v.l.refExpr(v.n, "value", e.Value))
}

func (v *visitor) VisitStmtDecl(e model.StmtDecl) {
	v.n.SetProperty("kind", "decl-statement")
	v.fail(v.l.refDecl(v.n, "decl", e.Decl))
}

func (v *visitor) VisitStmtOther(sort model.StmtSort, raw []byte) {
	v.n.SetProperty("kind", "stmt-other")
	v.n.SetProperty("sort", strconv.FormatUint(uint64(sort), 10))
	v.n.SetProperty("raw-bytes", strconv.Itoa(len(raw)))
}

func (v *visitor) VisitNameIdentifier(e model.NameIdentifier) {
	v.n.SetProperty("kind", "identifier")
	lit, err := v.l.r.GetStringLiteral(e.Spelling)
	if err != nil {
		v.fail(err)
		return
	}
	v.n.SetProperty("spelling", v.l.r.GetText(lit.Text))
}

func (v *visitor) VisitNameOperator(e model.NameOperator) {
	v.n.SetProperty("kind", "operator")
	v.n.SetProperty("operator", strconv.Itoa(int(e.Operator)))
}

func (v *visitor) VisitNameConversion(e model.NameConversion) {
	v.n.SetProperty("kind", "conversion")
	v.fail(v.l.refType(v.n, "target", e.Target))
}

func (v *visitor) VisitNameTemplateID(e model.NameTemplateID) {
	v.n.SetProperty("kind", "template-id")
	v.fail(v.l.refName(v.n, "primary", e.Primary))
	v.fail(v.l.refTypeSequence(v.n, "arguments", e.Arguments))
}

func (v *visitor) VisitNameSourceFile(e model.NameSourceFile) {
	v.n.SetProperty("kind", "source-file")
	lit, err := v.l.r.GetStringLiteral(e.Path)
	if err != nil {
		v.fail(err)
		return
	}
	v.n.SetProperty("path", v.l.r.GetText(lit.Text))
}

func (v *visitor) VisitNameOther(sort model.NameSort, raw []byte) {
	v.n.SetProperty("kind", "name-other")
	v.n.SetProperty("sort", strconv.FormatUint(uint64(sort), 10))
	v.n.SetProperty("raw-bytes", strconv.Itoa(len(raw)))
}

// load dispatches n.Key to the matching reader Visit call and fills n via
// the visitor adapter above.
func (l *Loader) load(n *Node) error {
	adapter := &visitor{l: l, n: n}
	var dispatchErr error
	switch n.Key.Kind {
	case KindDecl:
		idx, err := model.NewDeclIndex(model.DeclSort(n.Key.SortTag), n.Key.Position)
		if err != nil {
			return loadError(n.Key, err)
		}
		dispatchErr = l.r.VisitDeclWithIndex(idx, adapter)
	case KindType:
		idx, err := model.NewTypeIndex(model.TypeSort(n.Key.SortTag), n.Key.Position)
		if err != nil {
			return loadError(n.Key, err)
		}
		dispatchErr = l.r.VisitTypeWithIndex(idx, adapter)
	case KindExpr:
		idx, err := model.NewExprIndex(model.ExprSort(n.Key.SortTag), n.Key.Position)
		if err != nil {
			return loadError(n.Key, err)
		}
		dispatchErr = l.r.VisitExprWithIndex(idx, adapter)
	case KindStmt:
		idx, err := model.NewStmtIndex(model.StmtSort(n.Key.SortTag), n.Key.Position)
		if err != nil {
			return loadError(n.Key, err)
		}
		dispatchErr = l.r.VisitStmtWithIndex(idx, adapter)
	case KindName:
		idx, err := model.NewNameIndex(model.NameSort(n.Key.SortTag), n.Key.Position)
		if err != nil {
			return loadError(n.Key, err)
		}
		dispatchErr = l.r.VisitNameWithIndex(idx, adapter)
	case KindChart:
		n.SetProperty("kind", "chart")
	default:
		return loadError(n.Key, fmt.Errorf("unsupported node kind %v", n.Key.Kind))
	}
	if dispatchErr != nil {
		return loadError(n.Key, dispatchErr)
	}
	if adapter.err != nil {
		return loadError(n.Key, adapter.err)
	}
	return nil
}
