package parser

import (
	"testing"

	"brick/internal/ast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClean(t *testing.T, source string) *ast.File {
	t.Helper()
	file, parseErrors, scanErrors := ParseSource("test.brick", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, file)
	return file
}

func funBody(t *testing.T, file *ast.File, index int) []ast.Stmt {
	t.Helper()
	fn, ok := file.Decls[index].(*ast.FunDecl)
	require.True(t, ok, "declaration %d should be a function", index)
	require.NotNil(t, fn.Body)
	return fn.Body.Stmts
}

func TestParseDeclarations(t *testing.T) {
	source := `enum Color { RED, GREEN, BLUE }
sealed class Shape
class Circle : Shape
open class Animal
builder Box<T> {
    var content: T
    val label: String
}
fun area(s: Shape): Int { return 1 }
fun twice(x: Int) = x * 2
var pet: Animal? = null`

	file := parseClean(t, source)
	require.Len(t, file.Decls, 8)

	enum := file.Decls[0].(*ast.EnumDecl)
	assert.Equal(t, "Color", enum.Name.Value)
	require.Len(t, enum.Entries, 3)
	assert.Equal(t, "BLUE", enum.Entries[2].Value)

	shape := file.Decls[1].(*ast.ClassDecl)
	assert.Equal(t, ast.SealedClass, shape.Modifier)

	circle := file.Decls[2].(*ast.ClassDecl)
	require.NotNil(t, circle.Super)
	assert.Equal(t, "Shape", circle.Super.Value)

	box := file.Decls[4].(*ast.BuilderDecl)
	assert.Equal(t, "T", box.TypeParam.Value)
	require.Len(t, box.Members, 2)
	assert.True(t, box.Members[0].Mutable)
	assert.False(t, box.Members[1].Mutable)
	assert.Equal(t, "T", box.Members[0].Type.Name.Value)

	twice := file.Decls[6].(*ast.FunDecl)
	assert.Nil(t, twice.Body)
	assert.IsType(t, &ast.BinaryExpr{}, twice.ExprBody)

	pet := file.Decls[7].(*ast.PropertyDecl)
	assert.True(t, pet.Type.Nullable)
	assert.Equal(t, "Animal?", pet.Type.String())
}

func TestParsePrecedence(t *testing.T) {
	file := parseClean(t, `fun f() {
    x = a + b * c == d && e
}`)
	stmts := funBody(t, file, 0)
	require.Len(t, stmts, 1)

	assign := stmts[0].(*ast.BinaryExpr)
	assert.Equal(t, "=", assign.Op)

	and := assign.Right.(*ast.BinaryExpr)
	assert.Equal(t, "&&", and.Op)

	eq := and.Left.(*ast.BinaryExpr)
	assert.Equal(t, "==", eq.Op)

	plus := eq.Left.(*ast.BinaryExpr)
	assert.Equal(t, "+", plus.Op)
	assert.Equal(t, "*", plus.Right.(*ast.BinaryExpr).Op)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	file := parseClean(t, `fun f() { a = b = c }`)
	assign := funBody(t, file, 0)[0].(*ast.BinaryExpr)
	assert.Equal(t, "a", assign.Left.(*ast.NameRef).Name)
	assert.Equal(t, "=", assign.Right.(*ast.BinaryExpr).Op)
}

func TestParseIsChecks(t *testing.T) {
	file := parseClean(t, `fun f() {
    a is Dog && b !is Cat
}`)
	and := funBody(t, file, 0)[0].(*ast.BinaryExpr)
	left := and.Left.(*ast.IsExpr)
	assert.False(t, left.Negated)
	assert.Equal(t, "Dog", left.Type.Name.Value)
	right := and.Right.(*ast.IsExpr)
	assert.True(t, right.Negated)
}

func TestParseNewlineEndsStatement(t *testing.T) {
	file := parseClean(t, `fun f() {
    x
    -y
    foo
    (z)
}`)
	stmts := funBody(t, file, 0)
	require.Len(t, stmts, 4)
	assert.IsType(t, &ast.NameRef{}, stmts[0])
	assert.IsType(t, &ast.UnaryExpr{}, stmts[1])
	assert.IsType(t, &ast.NameRef{}, stmts[2])
	assert.IsType(t, &ast.ParenExpr{}, stmts[3])
}

func TestParseTrailingAndLabeledLambdas(t *testing.T) {
	file := parseClean(t, `fun f() {
    run { println(1) }
    outer@{ return@outer 1 }
    foo(1) { 2 }
}`)
	stmts := funBody(t, file, 0)
	require.Len(t, stmts, 3)

	run := stmts[0].(*ast.CallExpr)
	assert.Equal(t, "run", run.Callee.(*ast.NameRef).Name)
	require.NotNil(t, run.Lambda)
	assert.Nil(t, run.Lambda.Label)

	labeled := stmts[1].(*ast.LambdaExpr)
	require.NotNil(t, labeled.Label)
	assert.Equal(t, "outer", labeled.Label.Value)
	ret := labeled.Body.Stmts[0].(*ast.ReturnExpr)
	require.NotNil(t, ret.Label)
	assert.Equal(t, "outer", ret.Label.Value)
	assert.Equal(t, "1", ret.Value.(*ast.Literal).Value)

	foo := stmts[2].(*ast.CallExpr)
	assert.Len(t, foo.Args, 1)
	assert.NotNil(t, foo.Lambda)
}

func TestParseWhen(t *testing.T) {
	file := parseClean(t, `fun f(s: Shape, c: Color) {
    when (s) {
        is Circle -> 1
        is Square -> 2
        else -> 3
    }
    when (c) { Color.RED, Color.GREEN -> 1; Color.BLUE -> 2 }
    when { else -> 0 }
}`)
	stmts := funBody(t, file, 0)
	require.Len(t, stmts, 3)

	first := stmts[0].(*ast.WhenExpr)
	require.Len(t, first.Branches, 3)
	assert.Equal(t, "Circle", first.Branches[0].Conditions[0].IsType.Name.Value)
	assert.True(t, first.Branches[2].Else)
	assert.Equal(t, 6, first.RBrace.Line)

	second := stmts[1].(*ast.WhenExpr)
	require.Len(t, second.Branches, 2)
	require.Len(t, second.Branches[0].Conditions, 2)
	dot := second.Branches[0].Conditions[1].Value.(*ast.DotExpr)
	assert.Equal(t, "GREEN", dot.Selector.Name)

	third := stmts[2].(*ast.WhenExpr)
	assert.Nil(t, third.Subject)
}

func TestParseIfTryWhile(t *testing.T) {
	file := parseClean(t, `fun f() {
    val x = if (a) 1
        else 2
    try { risky() } catch (e: Exception) { 0 } finally { done() }
    while (x < 10) { x += 1 }
}`)
	stmts := funBody(t, file, 0)
	require.Len(t, stmts, 3)

	x := stmts[0].(*ast.PropertyDecl)
	ifExpr := x.Init.(*ast.IfExpr)
	assert.NotNil(t, ifExpr.Else)

	try := stmts[1].(*ast.TryExpr)
	require.Len(t, try.Catches, 1)
	assert.Equal(t, "Exception", try.Catches[0].Param.Type.Name.Value)
	assert.NotNil(t, try.Finally)

	loop := stmts[2].(*ast.WhileExpr)
	assert.Equal(t, "+=", loop.Body.(*ast.Block).Stmts[0].(*ast.BinaryExpr).Op)
}

func TestParseBuild(t *testing.T) {
	file := parseClean(t, `val a = build Box { content = Dog() }
val b: Box<Animal> = build Box<Animal> {
    content = Dog()
    label = "pets"
}`)
	a := file.Decls[0].(*ast.PropertyDecl).Init.(*ast.BuildExpr)
	assert.Equal(t, "Box", a.Builder.Value)
	assert.Nil(t, a.TypeArg)
	require.Len(t, a.Lambda.Body.Stmts, 1)

	b := file.Decls[1].(*ast.PropertyDecl).Init.(*ast.BuildExpr)
	require.NotNil(t, b.TypeArg)
	assert.Equal(t, "Animal", b.TypeArg.Name.Value)
	assert.Len(t, b.Lambda.Body.Stmts, 2)
}

func TestParseSetsParentLinks(t *testing.T) {
	file := parseClean(t, `val a = build Box { content = Dog() }`)
	build := file.Decls[0].(*ast.PropertyDecl).Init.(*ast.BuildExpr)
	assign := build.Lambda.Body.Stmts[0].(*ast.BinaryExpr)
	content := assign.Left.(*ast.NameRef)

	assert.Same(t, assign, content.Parent())
	assert.Same(t, build.Lambda.Body, assign.Parent())
	assert.Same(t, build, build.Lambda.Parent())

	found, ok := ast.ParentOfType[*ast.BinaryExpr](content, true)
	require.True(t, ok)
	assert.True(t, ast.IsLValue(content, found))
}

func TestParsePositions(t *testing.T) {
	file := parseClean(t, "fun f() {\n    content = 1\n}")
	assign := funBody(t, file, 0)[0].(*ast.BinaryExpr)
	assert.Equal(t, 2, assign.Pos.Line)
	assert.Equal(t, 5, assign.Pos.Column)
	assert.Equal(t, 16, assign.EndPos.Column)
	assert.Equal(t, 13, assign.OpPos.Column)
}

func TestParseErrorsAreReported(t *testing.T) {
	file, parseErrors, _ := ParseSource("test.brick", `fun f( { }
val ok = 1`)
	require.NotNil(t, file)
	assert.NotEmpty(t, parseErrors)

	var names []string
	for _, d := range file.Decls {
		if p, ok := d.(*ast.PropertyDecl); ok {
			names = append(names, p.Name.Value)
		}
	}
	assert.Contains(t, names, "ok", "parser should recover at the next declaration")
}

func TestScanErrorOnInvalidCharacter(t *testing.T) {
	_, _, scanErrors := ParseSource("test.brick", "val x = 1 # 2")
	require.NotEmpty(t, scanErrors)
	assert.Equal(t, 1, scanErrors[0].Position.Line)
}
