package semantic

import (
	"sort"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/flow"
	"brick/internal/language"
	"brick/internal/types"
)

// BindingContext holds everything the analyzer learned about a file: the
// static type of every expression, what every name resolved to and the flow
// facts in effect before each expression. It is written only while the
// analyzer runs; afterwards all methods are safe for concurrent use.
type BindingContext struct {
	types          map[ast.Expr]*types.Type
	calls          map[*ast.NameRef]*descriptors.ResolvedCall
	flowBefore     map[ast.Expr]*flow.Info
	returnTargets  map[*ast.ReturnExpr]descriptors.Descriptor
	declarations   map[ast.Node]descriptors.Descriptor
	typeRefs       map[*ast.TypeRef]*types.Type
	capturedWrites map[*descriptors.LocalVariableDescriptor]bool
	classes        map[string]*descriptors.ClassDescriptor
	builders       map[string]*descriptors.BuilderDescriptor
	hierarchy      *types.Hierarchy
}

func newBindingContext(h *types.Hierarchy) *BindingContext {
	return &BindingContext{
		types:          make(map[ast.Expr]*types.Type),
		calls:          make(map[*ast.NameRef]*descriptors.ResolvedCall),
		flowBefore:     make(map[ast.Expr]*flow.Info),
		returnTargets:  make(map[*ast.ReturnExpr]descriptors.Descriptor),
		declarations:   make(map[ast.Node]descriptors.Descriptor),
		typeRefs:       make(map[*ast.TypeRef]*types.Type),
		capturedWrites: make(map[*descriptors.LocalVariableDescriptor]bool),
		classes:        make(map[string]*descriptors.ClassDescriptor),
		builders:       make(map[string]*descriptors.BuilderDescriptor),
		hierarchy:      h,
	}
}

// TypeOf returns the static type of expr, or nil if it was never analyzed.
func (b *BindingContext) TypeOf(expr ast.Expr) *types.Type {
	if b == nil || expr == nil {
		return nil
	}
	return b.types[expr]
}

func (b *BindingContext) ResolvedCallOf(name *ast.NameRef) *descriptors.ResolvedCall {
	if b == nil {
		return nil
	}
	return b.calls[name]
}

// ResolvedCalls returns every resolved call ordered by source position.
func (b *BindingContext) ResolvedCalls() []*descriptors.ResolvedCall {
	if b == nil {
		return nil
	}
	out := make([]*descriptors.ResolvedCall, 0, len(b.calls))
	for _, c := range b.calls {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Element.Pos.Before(out[j].Element.Pos)
	})
	return out
}

// DataFlowInfoBefore is the flow information in effect when expr is
// evaluated.
func (b *BindingContext) DataFlowInfoBefore(expr ast.Expr) *flow.Info {
	if b == nil {
		return flow.Empty
	}
	if info, ok := b.flowBefore[expr]; ok {
		return info
	}
	return flow.Empty
}

// ReturnTarget is the function or lambda ret leaves, or nil when it could
// not be resolved.
func (b *BindingContext) ReturnTarget(ret *ast.ReturnExpr) descriptors.Descriptor {
	if b == nil {
		return nil
	}
	return b.returnTargets[ret]
}

// DescriptorOf returns the descriptor declared by node: functions,
// parameters, properties, locals, lambdas, classes, enums and builders.
func (b *BindingContext) DescriptorOf(node ast.Node) descriptors.Descriptor {
	if b == nil {
		return nil
	}
	return b.declarations[node]
}

// ResolvedType is the type a type reference in the source denotes.
func (b *BindingContext) ResolvedType(ref *ast.TypeRef) *types.Type {
	if b == nil {
		return nil
	}
	return b.typeRefs[ref]
}

func (b *BindingContext) Class(name string) *descriptors.ClassDescriptor {
	if b == nil {
		return nil
	}
	return b.classes[name]
}

func (b *BindingContext) Builder(name string) *descriptors.BuilderDescriptor {
	if b == nil {
		return nil
	}
	return b.builders[name]
}

func (b *BindingContext) Hierarchy() *types.Hierarchy {
	if b == nil {
		return nil
	}
	return b.hierarchy
}

// IsCapturedWrite reports whether local is assigned from inside a lambda
// other than the one declaring it.
func (b *BindingContext) IsCapturedWrite(local *descriptors.LocalVariableDescriptor) bool {
	if b == nil {
		return false
	}
	return b.capturedWrites[local]
}

// CreateValue implements flow.ValueFactory. Only references to variables,
// parameters, properties and enum entries have an identity.
func (b *BindingContext) CreateValue(expr ast.Expr, staticType *types.Type) flow.Value {
	var name *ast.NameRef
	switch e := ast.Deparenthesize(expr).(type) {
	case *ast.NameRef:
		name = e
	case *ast.DotExpr:
		name = e.Selector
	}
	call := b.calls[name]
	if name == nil || call == nil {
		return flow.Value{Type: staticType, Kind: flow.Other}
	}
	return b.valueOf(call.Resulting, staticType)
}

func (b *BindingContext) valueOf(d descriptors.Descriptor, staticType *types.Type) flow.Value {
	v := flow.Value{Identity: d, Type: staticType, Kind: flow.Other}
	switch d := d.(type) {
	case *descriptors.LocalVariableDescriptor:
		switch {
		case !d.Mutable:
			v.Kind = flow.StableValue
		case b.capturedWrites[d]:
			v.Kind = flow.CapturedVariable
		default:
			v.Kind = flow.StableVariable
		}
	case *descriptors.ValueParameterDescriptor:
		v.Kind = flow.StableValue
	case *descriptors.PropertyDescriptor:
		v.Identity = identityOf(d)
		if d.Mutable {
			v.Kind = flow.MutableProperty
		} else {
			v.Kind = flow.StableValue
		}
	case *descriptors.EnumEntryDescriptor:
		v.Kind = flow.StableValue
	}
	return v
}

// identityOf maps a builder member specialised for one build back to the
// declared member, so facts about it survive substitution.
func identityOf(d descriptors.Descriptor) descriptors.Descriptor {
	if p, ok := d.(*descriptors.PropertyDescriptor); ok && p.Owner != nil {
		if m := p.Owner.Member(p.Name); m != nil {
			return m
		}
	}
	return d
}

// StableTypes implements checkers.FlowFacts using the facts recorded before
// expr.
func (b *BindingContext) StableTypes(expr ast.Expr, staticType *types.Type, settings language.Settings) []*types.Type {
	if b == nil {
		return nil
	}
	return flow.Facts{Info: b.flowBefore[expr], Values: b}.StableTypes(expr, staticType, settings)
}
