package reader

import "github.com/ifcreader/ifc/internal/model"

// Visitor receives one call per entity visited by Visit/VisitWithIndex.
// Every family has a typed method per populated struct variant (§3.3's
// "representative groups"), plus a catch-all "Other" method for declared
// sorts that carry no populated Go struct yet: dispatch stays total over
// the declared sort space (spec.md §4.4) without requiring every one of the
// 50+ variants per family to have a hand-written record type.
type Visitor interface {
	VisitDeclFunction(model.DeclFunction)
	VisitDeclMethod(model.DeclMethod)
	VisitDeclVariable(model.DeclVariable)
	VisitDeclField(model.DeclField)
	VisitDeclParameter(model.DeclParameter)
	VisitDeclEnumerator(model.DeclEnumerator)
	VisitDeclScope(model.DeclScope)
	VisitDeclEnumeration(model.DeclEnumeration)
	VisitDeclAlias(model.DeclAlias)
	VisitDeclTemplate(model.DeclTemplate)
	VisitDeclSpecialization(model.DeclSpecialization)
	VisitDeclBarren(model.DeclBarren)
	VisitDeclReference(model.DeclReference)
	VisitDeclOther(sort model.DeclSort, raw []byte)

	VisitTypeFundamental(model.TypeFundamental)
	VisitTypePointer(model.TypePointer)
	VisitTypeLvalueReference(model.TypeLvalueReference)
	VisitTypeRvalueReference(model.TypeRvalueReference)
	VisitTypeFunction(model.TypeFunction)
	VisitTypeMethod(model.TypeMethod)
	VisitTypeArray(model.TypeArray)
	VisitTypeQualified(model.TypeQualified)
	VisitTypeTuple(model.TypeTuple)
	VisitTypeTypename(model.TypeTypename)
	VisitTypeBase(model.TypeBase)
	VisitTypeDecltype(model.TypeDecltype)
	VisitTypePlaceholder(model.TypePlaceholder)
	VisitTypeForall(model.TypeForall)
	VisitTypeOther(sort model.TypeSort, raw []byte)

	VisitExprLiteral(model.ExprLiteral)
	VisitExprNullptr(model.ExprNullptr)
	VisitExprThis(model.ExprThis)
	VisitExprNamedDecl(model.ExprNamedDecl)
	VisitExprRead(model.ExprRead)
	VisitExprMonadic(model.ExprMonadic)
	VisitExprDyadic(model.ExprDyadic)
	VisitExprCall(model.ExprCall)
	VisitExprCast(model.ExprCast)
	VisitExprInitializerList(model.ExprInitializerList)
	VisitExprOther(sort model.ExprSort, raw []byte)

	VisitStmtExpression(model.StmtExpression)
	VisitStmtBlock(model.StmtBlock)
	VisitStmtIf(model.StmtIf)
	VisitStmtWhile(model.StmtWhile)
	VisitStmtFor(model.StmtFor)
	VisitStmtReturn(model.StmtReturn)
	VisitStmtDecl(model.StmtDecl)
	VisitStmtOther(sort model.StmtSort, raw []byte)

	VisitNameIdentifier(model.NameIdentifier)
	VisitNameOperator(model.NameOperator)
	VisitNameConversion(model.NameConversion)
	VisitNameTemplateID(model.NameTemplateID)
	VisitNameSourceFile(model.NameSourceFile)
	VisitNameOther(sort model.NameSort, raw []byte)
}

// isReservedDeclSort reports whether sort is one of the sentinels spec.md §4.4
// and §7 require Visit to reject: VendorExtension, Count, or an UnusedN slot.
func isReservedDeclSort(s model.DeclSort) bool {
	return s == model.DeclVendorExtension || s == model.DeclCount || s == model.DeclUnused1Sort
}

func isReservedTypeSort(s model.TypeSort) bool {
	return s == model.TypeVendorExtension || s == model.TypeCount
}

func isReservedExprSort(s model.ExprSort) bool {
	return s == model.ExprVendorExtension || s == model.ExprCount
}

func isReservedStmtSort(s model.StmtSort) bool {
	return s == model.StmtVendorExtension || s == model.StmtCount
}

func isReservedNameSort(s model.NameSort) bool {
	return s == model.NameVendorExtension || s == model.NameCount
}

// VisitDeclWithIndex dispatches idx to the matching Visitor method, reading
// its backing entry first. Reserved sorts trigger onUnexpected and return
// *UnexpectedVisitorError rather than entering v.
func (r *Reader) VisitDeclWithIndex(idx model.DeclIndex, v Visitor) error {
	s := idx.Sort()
	r.metrics.IncReaderVisit()
	if isReservedDeclSort(s) {
		r.onUnexpected("decl", uint32(s))
		return &UnexpectedVisitorError{Category: "decl", Sort: uint32(s)}
	}
	switch s {
	case model.DeclFunctionSort:
		e, err := GetDecl[model.DeclFunction](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclFunction(e)
	case model.DeclMethodSort:
		e, err := GetDecl[model.DeclMethod](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclMethod(e)
	case model.DeclVariableSort:
		e, err := GetDecl[model.DeclVariable](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclVariable(e)
	case model.DeclFieldSort:
		e, err := GetDecl[model.DeclField](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclField(e)
	case model.DeclParameterSort:
		e, err := GetDecl[model.DeclParameter](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclParameter(e)
	case model.DeclEnumeratorSort:
		e, err := GetDecl[model.DeclEnumerator](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclEnumerator(e)
	case model.DeclScopeSort:
		e, err := GetDecl[model.DeclScope](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclScope(e)
	case model.DeclEnumerationSort:
		e, err := GetDecl[model.DeclEnumeration](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclEnumeration(e)
	case model.DeclAliasSort:
		e, err := GetDecl[model.DeclAlias](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclAlias(e)
	case model.DeclTemplateSort:
		e, err := GetDecl[model.DeclTemplate](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclTemplate(e)
	case model.DeclSpecializationSort:
		e, err := GetDecl[model.DeclSpecialization](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclSpecialization(e)
	case model.DeclBarrenSort:
		e, err := GetDecl[model.DeclBarren](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclBarren(e)
	case model.DeclReferenceSort:
		e, err := GetDecl[model.DeclReference](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitDeclReference(e)
	default:
		ref := catalogDeclRef(s)
		b, ps, ok, err := r.partitionBytes(ref)
		if err != nil {
			return err
		}
		if !ok {
			return r.fail("partition for requested decl sort is absent")
		}
		if idx.Position() >= uint32(ps.Cardinality) {
			return r.fail("decl index position out of range")
		}
		offset := int(idx.Position()) * int(ps.EntrySize)
		v.VisitDeclOther(s, b[offset:offset+int(ps.EntrySize)])
	}
	return nil
}

// VisitDecl is VisitDeclWithIndex without handing the index back to the caller.
func (r *Reader) VisitDecl(idx model.DeclIndex, v Visitor) error { return r.VisitDeclWithIndex(idx, v) }

func (r *Reader) VisitTypeWithIndex(idx model.TypeIndex, v Visitor) error {
	s := idx.Sort()
	r.metrics.IncReaderVisit()
	if isReservedTypeSort(s) {
		r.onUnexpected("type", uint32(s))
		return &UnexpectedVisitorError{Category: "type", Sort: uint32(s)}
	}
	switch s {
	case model.TypeFundamentalSort:
		e, err := GetType[model.TypeFundamental](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeFundamental(e)
	case model.TypePointerSort:
		e, err := GetType[model.TypePointer](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypePointer(e)
	case model.TypeLvalueReferenceSort:
		e, err := GetType[model.TypeLvalueReference](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeLvalueReference(e)
	case model.TypeRvalueReferenceSort:
		e, err := GetType[model.TypeRvalueReference](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeRvalueReference(e)
	case model.TypeFunctionSort:
		e, err := GetType[model.TypeFunction](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeFunction(e)
	case model.TypeMethodSort:
		e, err := GetType[model.TypeMethod](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeMethod(e)
	case model.TypeArraySort:
		e, err := GetType[model.TypeArray](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeArray(e)
	case model.TypeQualifiedSort:
		e, err := GetType[model.TypeQualified](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeQualified(e)
	case model.TypeTupleSort:
		e, err := GetType[model.TypeTuple](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeTuple(e)
	case model.TypeTypenameSort:
		e, err := GetType[model.TypeTypename](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeTypename(e)
	case model.TypeBaseSort:
		e, err := GetType[model.TypeBase](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeBase(e)
	case model.TypeDecltypeSort:
		e, err := GetType[model.TypeDecltype](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeDecltype(e)
	case model.TypePlaceholderSort:
		e, err := GetType[model.TypePlaceholder](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypePlaceholder(e)
	case model.TypeForallSort:
		e, err := GetType[model.TypeForall](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitTypeForall(e)
	default:
		ref := catalogTypeRef(s)
		b, ps, ok, err := r.partitionBytes(ref)
		if err != nil {
			return err
		}
		if !ok {
			return r.fail("partition for requested type sort is absent")
		}
		if idx.Position() >= uint32(ps.Cardinality) {
			return r.fail("type index position out of range")
		}
		offset := int(idx.Position()) * int(ps.EntrySize)
		v.VisitTypeOther(s, b[offset:offset+int(ps.EntrySize)])
	}
	return nil
}

func (r *Reader) VisitExprWithIndex(idx model.ExprIndex, v Visitor) error {
	s := idx.Sort()
	r.metrics.IncReaderVisit()
	if isReservedExprSort(s) {
		r.onUnexpected("expr", uint32(s))
		return &UnexpectedVisitorError{Category: "expr", Sort: uint32(s)}
	}
	switch s {
	case model.ExprLiteralSort:
		e, err := GetExpr[model.ExprLiteral](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprLiteral(e)
	case model.ExprNullptrSort:
		e, err := GetExpr[model.ExprNullptr](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprNullptr(e)
	case model.ExprThisSort:
		e, err := GetExpr[model.ExprThis](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprThis(e)
	case model.ExprNamedDeclSort:
		e, err := GetExpr[model.ExprNamedDecl](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprNamedDecl(e)
	case model.ExprReadSort:
		e, err := GetExpr[model.ExprRead](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprRead(e)
	case model.ExprMonadicSort:
		e, err := GetExpr[model.ExprMonadic](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprMonadic(e)
	case model.ExprDyadicSort:
		e, err := GetExpr[model.ExprDyadic](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprDyadic(e)
	case model.ExprCallSort:
		e, err := GetExpr[model.ExprCall](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprCall(e)
	case model.ExprCastSort:
		e, err := GetExpr[model.ExprCast](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprCast(e)
	case model.ExprInitializerListSort:
		e, err := GetExpr[model.ExprInitializerList](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitExprInitializerList(e)
	default:
		ref := catalogExprRef(s)
		b, ps, ok, err := r.partitionBytes(ref)
		if err != nil {
			return err
		}
		if !ok {
			return r.fail("partition for requested expr sort is absent")
		}
		if idx.Position() >= uint32(ps.Cardinality) {
			return r.fail("expr index position out of range")
		}
		offset := int(idx.Position()) * int(ps.EntrySize)
		v.VisitExprOther(s, b[offset:offset+int(ps.EntrySize)])
	}
	return nil
}

func (r *Reader) VisitStmtWithIndex(idx model.StmtIndex, v Visitor) error {
	s := idx.Sort()
	r.metrics.IncReaderVisit()
	if isReservedStmtSort(s) {
		r.onUnexpected("stmt", uint32(s))
		return &UnexpectedVisitorError{Category: "stmt", Sort: uint32(s)}
	}
	switch s {
	case model.StmtExpressionSort:
		e, err := GetStmt[model.StmtExpression](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtExpression(e)
	case model.StmtBlockSort:
		e, err := GetStmt[model.StmtBlock](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtBlock(e)
	case model.StmtIfSort:
		e, err := GetStmt[model.StmtIf](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtIf(e)
	case model.StmtWhileSort:
		e, err := GetStmt[model.StmtWhile](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtWhile(e)
	case model.StmtForSort:
		e, err := GetStmt[model.StmtFor](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtFor(e)
	case model.StmtReturnSort:
		e, err := GetStmt[model.StmtReturn](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtReturn(e)
	case model.StmtDeclSort:
		e, err := GetStmt[model.StmtDecl](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitStmtDecl(e)
	default:
		ref := catalogStmtRef(s)
		b, ps, ok, err := r.partitionBytes(ref)
		if err != nil {
			return err
		}
		if !ok {
			return r.fail("partition for requested stmt sort is absent")
		}
		if idx.Position() >= uint32(ps.Cardinality) {
			return r.fail("stmt index position out of range")
		}
		offset := int(idx.Position()) * int(ps.EntrySize)
		v.VisitStmtOther(s, b[offset:offset+int(ps.EntrySize)])
	}
	return nil
}

func (r *Reader) VisitNameWithIndex(idx model.NameIndex, v Visitor) error {
	s := idx.Sort()
	r.metrics.IncReaderVisit()
	if isReservedNameSort(s) {
		r.onUnexpected("name", uint32(s))
		return &UnexpectedVisitorError{Category: "name", Sort: uint32(s)}
	}
	switch s {
	case model.NameIdentifierSort:
		e, err := GetName[model.NameIdentifier](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitNameIdentifier(e)
	case model.NameOperatorSort:
		e, err := GetName[model.NameOperator](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitNameOperator(e)
	case model.NameConversionSort:
		e, err := GetName[model.NameConversion](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitNameConversion(e)
	case model.NameTemplateIdSort:
		e, err := GetName[model.NameTemplateID](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitNameTemplateID(e)
	case model.NameSourceFileSort:
		e, err := GetName[model.NameSourceFile](r, idx, s)
		if err != nil {
			return err
		}
		v.VisitNameSourceFile(e)
	default:
		ref := catalogNameRef(s)
		b, ps, ok, err := r.partitionBytes(ref)
		if err != nil {
			return err
		}
		if !ok {
			return r.fail("partition for requested name sort is absent")
		}
		if idx.Position() >= uint32(ps.Cardinality) {
			return r.fail("name index position out of range")
		}
		offset := int(idx.Position()) * int(ps.EntrySize)
		v.VisitNameOther(s, b[offset:offset+int(ps.EntrySize)])
	}
	return nil
}
