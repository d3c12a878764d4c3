package flow

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/language"
	"brick/internal/types"
)

// Kind says how far facts about a value can be trusted at a later point.
type Kind int

const (
	// StableValue never changes: a val, a parameter, an enum entry.
	StableValue Kind = iota
	// StableVariable is a local var that no lambda writes to.
	StableVariable
	// CapturedVariable is a local var written from inside a lambda.
	CapturedVariable
	// MutableProperty is a var property; any call may change it.
	MutableProperty
	// Other covers expressions without an identity, like calls.
	Other
)

func (k Kind) String() string {
	switch k {
	case StableValue:
		return "stable value"
	case StableVariable:
		return "stable variable"
	case CapturedVariable:
		return "captured variable"
	case MutableProperty:
		return "mutable property"
	}
	return "other"
}

// IsStable reports whether facts about a value of this kind may be used
// under the given language settings.
func (k Kind) IsStable(settings language.Settings) bool {
	switch k {
	case StableValue:
		return true
	case StableVariable:
		return settings.Supports(language.LocalVariableSmartCasts)
	case CapturedVariable:
		return settings.Supports(language.CapturedVariableSmartCasts)
	}
	return false
}

// Value is the flow identity of an expression: which symbol it reads, its
// static type and its stability.
type Value struct {
	Identity descriptors.Descriptor
	Type     *types.Type
	Kind     Kind
}

// HasIdentity reports whether facts can be recorded for the value.
func (v Value) HasIdentity() bool {
	return v.Identity != nil && v.Kind != Other
}

// ValueFactory maps an expression to its flow value.
type ValueFactory interface {
	CreateValue(expr ast.Expr, staticType *types.Type) Value
}

// Facts binds the flow information at one program point to the factory
// that interprets expressions there.
type Facts struct {
	Info   *Info
	Values ValueFactory
}

// StableTypes returns the narrowed types known for expr that may be relied
// on under settings. The result never contains staticType itself.
func (f Facts) StableTypes(expr ast.Expr, staticType *types.Type, settings language.Settings) []*types.Type {
	if f.Info == nil || f.Values == nil || expr == nil {
		return nil
	}
	return f.Info.StableTypes(f.Values.CreateValue(expr, staticType), settings)
}
