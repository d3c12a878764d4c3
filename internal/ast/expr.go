package ast

type Expr interface {
	Stmt
	isExpr()
}

// Stmt is anything that may appear in a block: a local declaration or an
// expression. Expressions are not wrapped, so the parent of a statement
// expression is the block itself.
type Stmt interface {
	Node
	isStmt()
}

func (*PropertyDecl) isStmt() {}

func (*BadExpr) isExpr()    {}
func (*Block) isExpr()      {}
func (*NameRef) isExpr()    {}
func (*Literal) isExpr()    {}
func (*BinaryExpr) isExpr() {}
func (*UnaryExpr) isExpr()  {}
func (*IsExpr) isExpr()     {}
func (*ParenExpr) isExpr()  {}
func (*DotExpr) isExpr()    {}
func (*CallExpr) isExpr()   {}
func (*LambdaExpr) isExpr() {}
func (*IfExpr) isExpr()     {}
func (*WhenExpr) isExpr()   {}
func (*TryExpr) isExpr()    {}
func (*WhileExpr) isExpr()  {}
func (*ReturnExpr) isExpr() {}
func (*ThrowExpr) isExpr()  {}
func (*BuildExpr) isExpr()  {}

func (*BadExpr) isStmt()    {}
func (*Block) isStmt()      {}
func (*NameRef) isStmt()    {}
func (*Literal) isStmt()    {}
func (*BinaryExpr) isStmt() {}
func (*UnaryExpr) isStmt()  {}
func (*IsExpr) isStmt()     {}
func (*ParenExpr) isStmt()  {}
func (*DotExpr) isStmt()    {}
func (*CallExpr) isStmt()   {}
func (*LambdaExpr) isStmt() {}
func (*IfExpr) isStmt()     {}
func (*WhenExpr) isStmt()   {}
func (*TryExpr) isStmt()    {}
func (*WhileExpr) isStmt()  {}
func (*ReturnExpr) isStmt() {}
func (*ThrowExpr) isStmt()  {}
func (*BuildExpr) isStmt()  {}

// BadExpr stands in for an expression that failed to parse.
type BadExpr struct {
	Pos     Position
	EndPos  Position
	Message string
	parentLink
}

// Block: "{ stmt; stmt }". Used for function bodies, branches, loop bodies
// and the bodies of lambdas.
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
	parentLink
}

// NameRef is a simple name reference: "content", "println", "RED".
type NameRef struct {
	Pos    Position
	EndPos Position
	Name   string
	parentLink
}

// Literal: 42, "text", true, null. String values are stored unquoted.
type Literal struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
	parentLink
}

// BinaryExpr covers arithmetic, comparison, logical operators and the
// assignment operators "=", "+=" and "-=".
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	OpPos  Position
	Left   Expr
	Right  Expr
	parentLink
}

type UnaryExpr struct {
	Pos     Position
	EndPos  Position
	Op      string
	Operand Expr
	parentLink
}

// IsExpr: "pet is Dog", "pet !is Dog"
type IsExpr struct {
	Pos     Position
	EndPos  Position
	Operand Expr
	Type    *TypeRef
	Negated bool
	parentLink
}

type ParenExpr struct {
	Pos    Position
	EndPos Position
	Inner  Expr
	parentLink
}

// DotExpr: "Color.RED", "box.content"
type DotExpr struct {
	Pos      Position
	EndPos   Position
	Receiver Expr
	Selector *NameRef
	parentLink
}

// CallExpr: "println(x)", "run { ... }", "Dog()"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
	Lambda *LambdaExpr
	parentLink
}

// LambdaExpr: "{ ... }" or "outer@{ ... }"
type LambdaExpr struct {
	Pos    Position
	EndPos Position
	Label  *Ident
	Body   *Block
	parentLink
}

type IfExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
	parentLink
}

type WhenExpr struct {
	Pos      Position
	EndPos   Position
	Subject  Expr
	Branches []*WhenBranch
	// RBrace is the position of the closing brace, used to insert branches.
	RBrace Position
	parentLink
}

// WhenBranch: "is Dog, is Cat -> ...", "Color.RED -> ...", "else -> ..."
type WhenBranch struct {
	Pos        Position
	EndPos     Position
	Conditions []*WhenCondition
	Else       bool
	Body       Expr
	parentLink
}

// WhenCondition is either a type check ("is T") or a value to compare the
// subject against.
type WhenCondition struct {
	Pos     Position
	EndPos  Position
	IsType  *TypeRef
	Negated bool
	Value   Expr
	parentLink
}

type TryExpr struct {
	Pos     Position
	EndPos  Position
	Body    *Block
	Catches []*CatchClause
	Finally *Block
	parentLink
}

type CatchClause struct {
	Pos    Position
	EndPos Position
	Param  *Param
	Body   *Block
	parentLink
}

type WhileExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Expr
	parentLink
}

// ReturnExpr: "return", "return x", "return@outer x"
type ReturnExpr struct {
	Pos    Position
	EndPos Position
	Label  *Ident
	Value  Expr
	parentLink
}

type ThrowExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
	parentLink
}

// BuildExpr: "build Box { content = Dog() }" or "build Box<Dog> { ... }".
// Without an explicit type argument the builder's type parameter is inferred
// from the lambda body.
type BuildExpr struct {
	Pos     Position
	EndPos  Position
	Builder Ident
	TypeArg *TypeRef
	Lambda  *LambdaExpr
	parentLink
}
