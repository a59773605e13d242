package reader

import (
	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/model"
)

func catalogDeclRef(s model.DeclSort) catalog.SortRef {
	return catalog.SortRef{Family: catalog.FamilyDecl, Value: uint32(s)}
}

func catalogTypeRef(s model.TypeSort) catalog.SortRef {
	return catalog.SortRef{Family: catalog.FamilyType, Value: uint32(s)}
}

func catalogExprRef(s model.ExprSort) catalog.SortRef {
	return catalog.SortRef{Family: catalog.FamilyExpr, Value: uint32(s)}
}

func catalogStmtRef(s model.StmtSort) catalog.SortRef {
	return catalog.SortRef{Family: catalog.FamilyStmt, Value: uint32(s)}
}

func catalogNameRef(s model.NameSort) catalog.SortRef {
	return catalog.SortRef{Family: catalog.FamilyName, Value: uint32(s)}
}
