package descriptors

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/types"
)

// Descriptor is a resolved symbol: what a name in the source refers to.
type Descriptor interface {
	GetName() string
	// Declaration is the declaring node, or nil for built-ins.
	Declaration() ast.Node
	String() string
}

// PropertyDescriptor describes a top-level property or a builder member.
// Only properties are eligible for the builder assignment check.
type PropertyDescriptor struct {
	Name       string
	Decl       *ast.PropertyDecl
	ReturnType *types.Type
	Mutable    bool
	// Owner is set for builder members.
	Owner *BuilderDescriptor
}

// LocalVariableDescriptor describes a val/var declared inside a function,
// lambda or other block.
type LocalVariableDescriptor struct {
	Name    string
	Decl    *ast.PropertyDecl
	Type    *types.Type
	Mutable bool
	// Container is the function or lambda the local is declared in.
	Container Descriptor
}

type ValueParameterDescriptor struct {
	Name      string
	Decl      *ast.Param
	Type      *types.Type
	Container Descriptor
}

type FunctionDescriptor struct {
	Name       string
	Decl       *ast.FunDecl
	Params     []*ValueParameterDescriptor
	ReturnType *types.Type
	// AcceptsLambda is set for built-ins like run that take a trailing lambda.
	AcceptsLambda bool
}

// AnonymousFunctionDescriptor describes a lambda. Labels lists the names a
// labeled return can use to target it: the explicit label and the name of
// the call it is passed to.
type AnonymousFunctionDescriptor struct {
	Decl   *ast.LambdaExpr
	Labels []string
}

type ClassKind int

const (
	FinalClass ClassKind = iota
	OpenClass
	SealedClass
	EnumClass
)

func (k ClassKind) String() string {
	switch k {
	case OpenClass:
		return "open class"
	case SealedClass:
		return "sealed class"
	case EnumClass:
		return "enum class"
	}
	return "class"
}

type ClassDescriptor struct {
	Name  string
	Decl  ast.Node
	Kind  ClassKind
	Super *ClassDescriptor
	// Entries holds enum entries in declaration order.
	Entries []*EnumEntryDescriptor
	// Subclasses holds direct subclasses in declaration order.
	Subclasses []*ClassDescriptor
}

type EnumEntryDescriptor struct {
	Name  string
	Decl  *ast.Ident
	Class *ClassDescriptor
}

// BuilderDescriptor describes "builder Box<T> { ... }".
type BuilderDescriptor struct {
	Name          string
	Decl          *ast.BuilderDecl
	TypeParameter string
	Members       []*PropertyDescriptor
}

func (d *PropertyDescriptor) GetName() string          { return d.Name }
func (d *LocalVariableDescriptor) GetName() string     { return d.Name }
func (d *ValueParameterDescriptor) GetName() string    { return d.Name }
func (d *FunctionDescriptor) GetName() string          { return d.Name }
func (d *ClassDescriptor) GetName() string             { return d.Name }
func (d *EnumEntryDescriptor) GetName() string         { return d.Name }
func (d *BuilderDescriptor) GetName() string           { return d.Name }
func (d *AnonymousFunctionDescriptor) GetName() string {
	if len(d.Labels) > 0 {
		return d.Labels[0]
	}
	return "<anonymous>"
}

func (d *PropertyDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *LocalVariableDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *ValueParameterDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *FunctionDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *AnonymousFunctionDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *ClassDescriptor) Declaration() ast.Node     { return d.Decl }
func (d *EnumEntryDescriptor) Declaration() ast.Node { return nil }

func (d *BuilderDescriptor) Declaration() ast.Node {
	if d.Decl == nil {
		return nil
	}
	return d.Decl
}

func (d *PropertyDescriptor) String() string {
	kw := "val"
	if d.Mutable {
		kw = "var"
	}
	if d.Owner != nil {
		return fmt.Sprintf("%s %s.%s: %s", kw, d.Owner.Name, d.Name, d.ReturnType)
	}
	return fmt.Sprintf("%s %s: %s", kw, d.Name, d.ReturnType)
}

func (d *LocalVariableDescriptor) String() string {
	kw := "val"
	if d.Mutable {
		kw = "var"
	}
	return fmt.Sprintf("local %s %s: %s", kw, d.Name, d.Type)
}

func (d *ValueParameterDescriptor) String() string {
	return fmt.Sprintf("parameter %s: %s", d.Name, d.Type)
}

func (d *FunctionDescriptor) String() string {
	params := ""
	for i, p := range d.Params {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	return fmt.Sprintf("fun %s(%s): %s", d.Name, params, d.ReturnType)
}

func (d *AnonymousFunctionDescriptor) String() string {
	if len(d.Labels) > 0 {
		return "lambda@" + d.Labels[0]
	}
	return "lambda"
}

func (d *ClassDescriptor) String() string {
	return d.Kind.String() + " " + d.Name
}

func (d *EnumEntryDescriptor) String() string {
	return fmt.Sprintf("enum entry %s.%s", d.Class.Name, d.Name)
}

func (d *BuilderDescriptor) String() string {
	return fmt.Sprintf("builder %s<%s>", d.Name, d.TypeParameter)
}

// DefaultType is the type of a value of the class.
func (d *ClassDescriptor) DefaultType() *types.Type {
	return types.NewConcrete(d.Name)
}

func (d *ClassDescriptor) Entry(name string) *EnumEntryDescriptor {
	for _, e := range d.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (d *BuilderDescriptor) Member(name string) *PropertyDescriptor {
	for _, m := range d.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// WithTypeArgument returns the member with the builder's type parameter
// replaced by arg. The declaration stays shared.
func (d *PropertyDescriptor) WithTypeArgument(arg *types.Type) *PropertyDescriptor {
	if d.Owner == nil {
		return d
	}
	c := *d
	c.ReturnType = types.SubstituteParameter(d.ReturnType, d.Owner.TypeParameter, arg)
	return &c
}

// HasLabel reports whether a return@label may target the lambda.
func (d *AnonymousFunctionDescriptor) HasLabel(label string) bool {
	for _, l := range d.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// ReturnTypeOf is the type a reference to d evaluates to, or nil when d has
// no value (classes, builders, lambdas).
func ReturnTypeOf(d Descriptor) *types.Type {
	switch d := d.(type) {
	case *PropertyDescriptor:
		return d.ReturnType
	case *LocalVariableDescriptor:
		return d.Type
	case *ValueParameterDescriptor:
		return d.Type
	case *FunctionDescriptor:
		return d.ReturnType
	case *EnumEntryDescriptor:
		return d.Class.DefaultType()
	}
	return nil
}

// IsMutable reports whether d may be reassigned.
func IsMutable(d Descriptor) bool {
	switch d := d.(type) {
	case *PropertyDescriptor:
		return d.Mutable
	case *LocalVariableDescriptor:
		return d.Mutable
	}
	return false
}
