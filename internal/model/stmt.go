package model

// StmtExpression is a bare expression-statement ("e;").
type StmtExpression struct {
	Expr ExprIndex
	Loc  Location
}

// StmtBlock is a compound statement ("{ ... }").
type StmtBlock struct {
	Statements Sequence[StmtIndex]
	Loc        Location
}

// StmtIf is an if/else statement; Else is the null StmtIndex when absent.
type StmtIf struct {
	Condition ExprIndex
	Then      StmtIndex
	Else      StmtIndex
	Loc       Location
}

// StmtWhile is a while loop.
type StmtWhile struct {
	Condition ExprIndex
	Body      StmtIndex
	Loc       Location
}

// StmtFor is a for loop; any of Init/Condition/Increment may be null.
type StmtFor struct {
	Init      StmtIndex
	Condition ExprIndex
	Increment ExprIndex
	Body      StmtIndex
	Loc       Location
}

// StmtReturn is a return statement; Value is the null ExprIndex for
// "return;".
type StmtReturn struct {
	Value ExprIndex
	Loc   Location
}

// StmtDecl wraps a declaration appearing in statement position.
type StmtDecl struct {
	Decl DeclIndex
	Loc  Location
}
