package types

import (
	"fmt"
	"sort"
)

type classifier struct {
	name       string
	super      string
	typeParams int
}

// Hierarchy knows every classifier of a program and answers subtype
// queries. It is filled while declarations are collected and only read
// afterwards, so concurrent readers need no locking.
type Hierarchy struct {
	classifiers map[string]*classifier
}

func NewHierarchy() *Hierarchy {
	h := &Hierarchy{classifiers: make(map[string]*classifier)}
	for name := range BuiltinTypes {
		super := string(Any)
		if name == string(Any) || name == string(Nothing) {
			super = ""
		}
		h.classifiers[name] = &classifier{name: name, super: super}
	}
	return h
}

// Declare registers a classifier. An empty super means Any.
func (h *Hierarchy) Declare(name, super string, typeParams int) error {
	if _, exists := h.classifiers[name]; exists {
		return fmt.Errorf("type %s is already declared", name)
	}
	if super == "" {
		super = string(Any)
	}
	h.classifiers[name] = &classifier{name: name, super: super, typeParams: typeParams}
	return nil
}

func (h *Hierarchy) IsValidType(name string) bool {
	_, ok := h.classifiers[name]
	return ok
}

// TypeParameterCount returns how many type arguments name expects.
func (h *Hierarchy) TypeParameterCount(name string) int {
	if c, ok := h.classifiers[name]; ok {
		return c.typeParams
	}
	return 0
}

// Supertypes returns the chain of declared supertypes of name, nearest
// first, ending in Any.
func (h *Hierarchy) Supertypes(name string) []string {
	var chain []string
	seen := map[string]bool{name: true}
	c := h.classifiers[name]
	for c != nil && c.super != "" && !seen[c.super] {
		chain = append(chain, c.super)
		seen[c.super] = true
		c = h.classifiers[c.super]
	}
	return chain
}

// Names returns all classifier names in sorted order.
func (h *Hierarchy) Names() []string {
	names := make([]string, 0, len(h.classifiers))
	for name := range h.classifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSubtypeOf reports whether every value of sub is also a value of sup.
//
// Nothing is below everything, T is below T?, the null type is below every
// nullable type, classes follow their declared supertype chain, and type
// arguments are invariant. A stub is only a subtype of itself and of Any?.
// Error types are never subtypes of anything.
func (h *Hierarchy) IsSubtypeOf(sub, sup *Type) bool {
	if sub == nil || sup == nil || sub.IsError() || sup.IsError() {
		return false
	}
	if sup.IsConcrete() && sup.Name == string(Any) && sup.Nullable {
		return true
	}
	if sub.IsStub() || sup.IsStub() {
		return sub.Equals(sup)
	}
	if sub.Nullable && !sup.Nullable {
		return false
	}
	if sub.Name == string(Nothing) {
		return true
	}
	if sup.Name == string(Any) {
		return true
	}
	if sub.Name == sup.Name {
		return argumentsEqual(sub, sup)
	}
	for _, name := range h.Supertypes(sub.Name) {
		if name == sup.Name {
			return len(sup.Args) == 0
		}
	}
	return false
}

func argumentsEqual(a, b *Type) bool {
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equals(b.Args[i]) {
			return false
		}
	}
	return true
}

// CommonSupertype returns the most specific type both a and b are subtypes
// of. Error types absorb everything.
func (h *Hierarchy) CommonSupertype(a, b *Type) *Type {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.IsError():
		return a
	case b.IsError():
		return b
	case h.IsSubtypeOf(a, b):
		return b
	case h.IsSubtypeOf(b, a):
		return a
	}

	nullable := a.Nullable || b.Nullable
	if a.IsNothing() {
		return b.MakeNullable()
	}
	if b.IsNothing() {
		return a.MakeNullable()
	}
	if a.IsConcrete() && b.IsConcrete() {
		candidates := append([]string{a.Name}, h.Supertypes(a.Name)...)
		for _, name := range candidates {
			if h.TypeParameterCount(name) > 0 {
				continue
			}
			candidate := NewConcrete(name)
			if nullable {
				candidate = candidate.MakeNullable()
			}
			if h.IsSubtypeOf(b, candidate) && h.IsSubtypeOf(a, candidate) {
				return candidate
			}
		}
	}
	if nullable {
		return NullableAnyType
	}
	return AnyType
}
