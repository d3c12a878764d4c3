package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the three forms a Type can take.
type Kind int

const (
	// KindConcrete is an ordinary classifier type such as Int, Animal? or Box<Dog>.
	KindConcrete Kind = iota
	// KindStub stands for a builder type parameter that is still being
	// inferred from the builder lambda.
	KindStub
	// KindError marks a type that could not be resolved. Diagnostics for it
	// have already been reported.
	KindError
)

// Type is immutable once constructed; the helpers below return new values.
type Type struct {
	Kind     Kind
	Name     string
	Args     []*Type
	Nullable bool
	// Origin identifies the build expression a stub belongs to, so stubs of
	// nested builders with the same parameter name stay distinct.
	Origin string
}

func NewConcrete(name string, args ...*Type) *Type {
	return &Type{Kind: KindConcrete, Name: name, Args: args}
}

func NewNullable(name string, args ...*Type) *Type {
	return &Type{Kind: KindConcrete, Name: name, Args: args, Nullable: true}
}

func NewStub(variable, origin string) *Type {
	return &Type{Kind: KindStub, Name: variable, Origin: origin}
}

func NewError(reason string) *Type {
	return &Type{Kind: KindError, Name: reason}
}

func (t *Type) IsStub() bool {
	return t != nil && t.Kind == KindStub
}

func (t *Type) IsError() bool {
	return t != nil && t.Kind == KindError
}

func (t *Type) IsConcrete() bool {
	return t != nil && t.Kind == KindConcrete
}

// IsNothing reports whether t is Nothing or Nothing?.
func (t *Type) IsNothing() bool {
	return t.IsConcrete() && t.Name == string(Nothing)
}

func (t *Type) MakeNullable() *Type {
	if t == nil || t.Kind != KindConcrete || t.Nullable {
		return t
	}
	c := *t
	c.Nullable = true
	return &c
}

func (t *Type) MakeNotNull() *Type {
	if t == nil || !t.Nullable {
		return t
	}
	c := *t
	c.Nullable = false
	return &c
}

func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind || t.Name != other.Name || t.Nullable != other.Nullable ||
		t.Origin != other.Origin || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equals(other.Args[i]) {
			return false
		}
	}
	return true
}

// Hash identifies a type structurally. Equal types hash equally.
func (t *Type) Hash() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindStub:
		return "stub:" + t.Name + "@" + t.Origin
	case KindError:
		return "error:" + t.Name
	}
	return t.String()
}

func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}
	switch t.Kind {
	case KindStub:
		return fmt.Sprintf("Stub(%s)", t.Name)
	case KindError:
		return "<error>"
	}

	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		b.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	if t.Nullable {
		b.WriteString("?")
	}
	return b.String()
}

// ContainsStub reports whether t is, or has an argument that is, a stub.
func (t *Type) ContainsStub() bool {
	if t == nil {
		return false
	}
	if t.Kind == KindStub {
		return true
	}
	for _, a := range t.Args {
		if a.ContainsStub() {
			return true
		}
	}
	return false
}

// Substitute replaces every occurrence of the stub from with to. A nullable
// use of a type variable keeps its nullability after substitution.
func Substitute(t, from, to *Type) *Type {
	if t == nil || from == nil || to == nil {
		return t
	}
	if t.Kind == KindStub && t.Name == from.Name && t.Origin == from.Origin {
		return to
	}
	if len(t.Args) == 0 {
		return t
	}
	args := make([]*Type, len(t.Args))
	changed := false
	for i, a := range t.Args {
		args[i] = Substitute(a, from, to)
		changed = changed || args[i] != a
	}
	if !changed {
		return t
	}
	c := *t
	c.Args = args
	return &c
}

// SubstituteParameter replaces the declared type parameter name in a member
// type with replacement, e.g. T -> Stub(T) or T? -> Dog?.
func SubstituteParameter(t *Type, param string, replacement *Type) *Type {
	if t == nil || replacement == nil {
		return t
	}
	if t.Kind == KindConcrete && t.Name == param && len(t.Args) == 0 {
		if t.Nullable {
			return replacement.MakeNullable()
		}
		return replacement
	}
	if len(t.Args) == 0 {
		return t
	}
	c := *t
	c.Args = make([]*Type, len(t.Args))
	for i, a := range t.Args {
		c.Args[i] = SubstituteParameter(a, param, replacement)
	}
	return &c
}
