// Package stdlib describes the declarations every Brick file can use
// without importing anything.
package stdlib

import (
	"sort"

	"brick/internal/types"
)

// ModuleDefinition defines a set of built-in declarations
type ModuleDefinition struct {
	Name      string                        // Module name, e.g. "brick.core"
	Classes   map[string]ClassDefinition    // Built-in classes beyond the primitive types
	Functions map[string]FunctionDefinition // Built-in functions
}

// ClassDefinition defines a built-in class
type ClassDefinition struct {
	Name  string
	Super string // Supertype name; empty means Any
	Open  bool
}

// FunctionDefinition defines a built-in function signature
type FunctionDefinition struct {
	Name       string
	Parameters []ParameterDefinition
	ReturnType *TypeRef // nil when the result is the value of the trailing lambda
	// TrailingLambda is set for functions like run that take a block.
	TrailingLambda bool
}

// ParameterDefinition defines a function parameter
type ParameterDefinition struct {
	Name string
	Type *TypeRef
}

// TypeRef names a type used in a built-in signature
type TypeRef struct {
	Name     string
	Nullable bool
}

func NewTypeRef(name string) *TypeRef {
	return &TypeRef{Name: name}
}

func NewNullableTypeRef(name string) *TypeRef {
	return &TypeRef{Name: name, Nullable: true}
}

// Type converts the reference into a type.
func (r *TypeRef) Type() *types.Type {
	if r == nil {
		return nil
	}
	if r.Nullable {
		return types.NewNullable(r.Name)
	}
	return types.NewConcrete(r.Name)
}

func NewFunction(name string, returnType *TypeRef, params ...ParameterDefinition) FunctionDefinition {
	return FunctionDefinition{Name: name, Parameters: params, ReturnType: returnType}
}

// NewLambdaFunction defines a function called with a trailing lambda.
func NewLambdaFunction(name string, returnType *TypeRef, params ...ParameterDefinition) FunctionDefinition {
	return FunctionDefinition{Name: name, Parameters: params, ReturnType: returnType, TrailingLambda: true}
}

func NewParam(name string, typeRef *TypeRef) ParameterDefinition {
	return ParameterDefinition{Name: name, Type: typeRef}
}

var prelude = &ModuleDefinition{
	Name: "brick.core",
	Classes: map[string]ClassDefinition{
		"Exception":             {Name: "Exception", Super: string(types.Throwable), Open: true},
		"IllegalStateException": {Name: "IllegalStateException", Super: "Exception", Open: true},
	},
	Functions: map[string]FunctionDefinition{
		"println": NewFunction("println", NewTypeRef(string(types.Unit)),
			NewParam("message", NewNullableTypeRef(string(types.Any)))),
		"print": NewFunction("print", NewTypeRef(string(types.Unit)),
			NewParam("message", NewNullableTypeRef(string(types.Any)))),
		"error": NewFunction("error", NewTypeRef(string(types.Nothing)),
			NewParam("message", NewTypeRef(string(types.String)))),
		"require": NewFunction("require", NewTypeRef(string(types.Unit)),
			NewParam("condition", NewTypeRef(string(types.Boolean)))),
		"run":    NewLambdaFunction("run", nil),
		"repeat": NewLambdaFunction("repeat", NewTypeRef(string(types.Unit)), NewParam("times", NewTypeRef(string(types.Int)))),
	},
}

// Prelude returns the declarations visible in every file.
func Prelude() *ModuleDefinition {
	return prelude
}

// ClassOrder returns the prelude classes so that every supertype comes
// before its subclasses.
func (m *ModuleDefinition) ClassOrder() []ClassDefinition {
	names := make([]string, 0, len(m.Classes))
	for name := range m.Classes {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []ClassDefinition
	done := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		c, ok := m.Classes[name]
		if !ok || done[name] {
			return
		}
		done[name] = true
		visit(c.Super)
		out = append(out, c)
	}
	for _, name := range names {
		visit(name)
	}
	return out
}

// FunctionNames returns the prelude function names in sorted order.
func (m *ModuleDefinition) FunctionNames() []string {
	names := make([]string, 0, len(m.Functions))
	for name := range m.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
