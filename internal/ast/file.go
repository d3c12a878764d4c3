package ast

import "fmt"

// Position tracks location information for error reporting and tooling.
// Lines and columns are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Before reports whether p starts strictly before other in the same file.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Ident is a name as written in the source, e.g. "Box", "content", "run".
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// File is a parsed source file: a sequence of top-level declarations.
type File struct {
	Pos    Position
	EndPos Position
	Decls  []Decl
	parentLink
}

type Decl interface {
	Node
	isDecl()
}

func (*EnumDecl) isDecl()     {}
func (*ClassDecl) isDecl()    {}
func (*BuilderDecl) isDecl()  {}
func (*FunDecl) isDecl()      {}
func (*PropertyDecl) isDecl() {}

// EnumDecl: "enum Color { RED, GREEN, BLUE }"
type EnumDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Entries []Ident
	parentLink
}

// ClassModifier is the inheritance modifier written in front of "class".
type ClassModifier int

const (
	FinalClass ClassModifier = iota
	OpenClass
	SealedClass
)

// ClassDecl: "sealed class Shape", "class Circle : Shape"
type ClassDecl struct {
	Pos      Position
	EndPos   Position
	Modifier ClassModifier
	Name     Ident
	Super    *Ident
	parentLink
}

// BuilderDecl: "builder Box<T> { var content: T; var label: String }"
type BuilderDecl struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	TypeParam Ident
	Members   []*PropertyDecl
	parentLink
}

// FunDecl: "fun area(s: Shape): Int { ... }" or "fun twice(x: Int) = x * 2"
type FunDecl struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Params   []*Param
	Return   *TypeRef
	Body     *Block
	ExprBody Expr
	parentLink
}

type Param struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
	parentLink
}

// PropertyDecl is used for top-level properties, builder members and local
// variables: "val x: Int = 1", "var pet: Animal? = null"
type PropertyDecl struct {
	Pos     Position
	EndPos  Position
	Mutable bool
	Name    Ident
	Type    *TypeRef
	Init    Expr
	parentLink
}

// TypeRef: "Int", "Animal?", "Box<Dog>"
type TypeRef struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Args     []*TypeRef
	Nullable bool
	parentLink
}
