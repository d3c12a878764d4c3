package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignment(op string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func TestLinkSetsParents(t *testing.T) {
	x := &NameRef{Name: "x"}
	one := &Literal{Kind: IntLiteral, Value: "1"}
	bin := assignment("=", x, one)
	block := &Block{Stmts: []Stmt{bin}}

	Link(block)

	assert.Same(t, bin, x.Parent())
	assert.Same(t, bin, one.Parent())
	assert.Same(t, block, bin.Parent())
	assert.Nil(t, block.Parent())
}

func TestParentOfTypeIsNearestStrictAncestor(t *testing.T) {
	x := &NameRef{Name: "x"}
	inner := &BinaryExpr{Op: "+", Left: x, Right: &Literal{Kind: IntLiteral, Value: "1"}}
	outer := assignment("=", &NameRef{Name: "y"}, inner)
	Link(outer)

	found, ok := ParentOfType[*BinaryExpr](x, true)
	require.True(t, ok)
	assert.Same(t, inner, found)

	self, ok := ParentOfType[*BinaryExpr](inner, false)
	require.True(t, ok)
	assert.Same(t, inner, self)

	_, ok = ParentOfType[*WhenExpr](x, true)
	assert.False(t, ok)
}

func TestIsLValue(t *testing.T) {
	x := &NameRef{Name: "x"}
	y := &NameRef{Name: "y"}
	bin := assignment("=", x, y)
	Link(bin)

	assert.True(t, IsLValue(x, bin))
	assert.False(t, IsLValue(y, bin), "right operand is never an lvalue")

	parenTarget := &NameRef{Name: "x"}
	paren := assignment("=", &ParenExpr{Inner: &ParenExpr{Inner: parenTarget}}, y)
	assert.True(t, IsLValue(parenTarget, paren))

	member := &NameRef{Name: "content"}
	dotted := assignment("=", &DotExpr{Receiver: &NameRef{Name: "box"}, Selector: member}, y)
	assert.True(t, IsLValue(member, dotted))

	eq := &NameRef{Name: "x"}
	assert.False(t, IsLValue(eq, &BinaryExpr{Op: "==", Left: eq, Right: y}))

	compound := &NameRef{Name: "x"}
	assert.False(t, IsLValue(compound, assignment("+=", compound, y)))
	assert.True(t, IsAssignmentTarget(compound, assignment("+=", compound, y)))
	assert.False(t, IsAssignmentTarget(eq, &BinaryExpr{Op: "==", Left: eq, Right: y}))
}

func TestDeparenthesize(t *testing.T) {
	x := &NameRef{Name: "x"}
	assert.Same(t, x, Deparenthesize(&ParenExpr{Inner: &ParenExpr{Inner: x}}))
	assert.Same(t, x, Deparenthesize(x))
}

func TestExprAtFindsInnermost(t *testing.T) {
	x := &NameRef{Pos: Position{Line: 1, Column: 1}, EndPos: Position{Line: 1, Column: 2}, Name: "x"}
	one := &Literal{Pos: Position{Line: 1, Column: 5}, EndPos: Position{Line: 1, Column: 6}, Kind: IntLiteral, Value: "1"}
	bin := &BinaryExpr{Pos: x.Pos, EndPos: one.EndPos, Op: "=", Left: x, Right: one}
	file := &File{Decls: []Decl{&PropertyDecl{Pos: x.Pos, EndPos: one.EndPos, Init: bin}}}
	Link(file)

	assert.Same(t, one, ExprAt(file, 1, 5))
	assert.Same(t, bin, ExprAt(file, 1, 3))
	assert.Nil(t, ExprAt(file, 3, 1))
}

func TestPrinter(t *testing.T) {
	call := &CallExpr{
		Callee: &NameRef{Name: "println"},
		Args:   []Expr{&Literal{Kind: StringLiteral, Value: "hi"}},
	}
	assert.Equal(t, `println("hi")`, call.String())

	ret := &ReturnExpr{Label: &Ident{Value: "outer"}, Value: &NameRef{Name: "x"}}
	assert.Equal(t, "return@outer x", ret.String())

	ref := &TypeRef{Name: Ident{Value: "Box"}, Args: []*TypeRef{{Name: Ident{Value: "Dog"}}}, Nullable: true}
	assert.Equal(t, "Box<Dog>?", ref.String())
}
