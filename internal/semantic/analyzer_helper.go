package semantic

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/flow"
	"brick/internal/types"
)

// frame is the analyzer state saved when a body is entered.
type frame struct {
	scope     *Scope
	info      *flow.Info
	callables []descriptors.Descriptor
	builds    []*buildState
}

// enter starts analyzing a declaration body. callable may be nil for
// property initializers.
func (a *Analyzer) enter(callable descriptors.Descriptor, scope *Scope, info *flow.Info) {
	a.frames = append(a.frames, frame{scope: a.scope, info: a.info, callables: a.callables, builds: a.builds})
	a.scope = scope
	a.info = info
	a.callables = nil
	a.builds = nil
	if callable != nil {
		a.callables = []descriptors.Descriptor{callable}
	}
}

func (a *Analyzer) leave() {
	f := a.frames[len(a.frames)-1]
	a.frames = a.frames[:len(a.frames)-1]
	a.scope = f.scope
	a.info = f.info
	a.callables = f.callables
	a.builds = f.builds
}

func (a *Analyzer) pushScope() {
	a.scope = NewScope(a.scope)
}

func (a *Analyzer) popScope() {
	a.scope = a.scope.parent
}

// currentCallable is the innermost function or lambda, or nil at the top
// level.
func (a *Analyzer) currentCallable() descriptors.Descriptor {
	if len(a.callables) == 0 {
		return nil
	}
	return a.callables[len(a.callables)-1]
}

func (a *Analyzer) record(e ast.Expr, t *types.Type) {
	a.binding.types[e] = t
}

func (a *Analyzer) recordCall(n *ast.NameRef, candidate, resulting descriptors.Descriptor) {
	a.binding.calls[n] = &descriptors.ResolvedCall{Element: n, Candidate: candidate, Resulting: resulting}
}

// expect records that expr must have a subtype of t. The check runs after
// inference, when stub types have been replaced.
func (a *Analyzer) expect(e ast.Expr, t *types.Type) {
	if e == nil || t == nil || t.IsError() {
		return
	}
	a.expectations = append(a.expectations, expectation{expr: e, expected: t})
}

// isJump reports whether a value of type t can never be produced, i.e. the
// expression always returns or throws.
func isJump(t *types.Type) bool {
	return t.IsNothing() && !t.Nullable
}

func (a *Analyzer) commonType(x, y *types.Type) *types.Type {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	case isJump(x):
		return y
	case isJump(y):
		return x
	}
	return a.hierarchy.CommonSupertype(x, y)
}

type branch struct {
	typ  *types.Type
	info *flow.Info
}

// mergeBranches keeps the facts that hold at the end of every branch that
// can complete normally.
func mergeBranches(branches []branch) *flow.Info {
	var merged *flow.Info
	for _, b := range branches {
		if isJump(b.typ) {
			continue
		}
		if merged == nil {
			merged = b.info
			continue
		}
		merged = merged.Or(b.info)
	}
	if merged == nil {
		if len(branches) == 0 {
			return flow.Empty
		}
		return branches[len(branches)-1].info
	}
	return merged
}

// nodeLength is the width to underline for n.
func nodeLength(n ast.Node) int {
	start, end := n.NodePos(), n.NodeEndPos()
	if start.Line == end.Line && end.Column > start.Column {
		return end.Column - start.Column
	}
	return 1
}

func (a *Analyzer) resolveTypeRef(ref *ast.TypeRef) *types.Type {
	return a.resolveTypeRefWith(ref, "")
}

// resolveTypeRefWith resolves ref with param in scope as a type parameter.
func (a *Analyzer) resolveTypeRefWith(ref *ast.TypeRef, param string) *types.Type {
	if ref == nil {
		return nil
	}
	name := ref.Name.Value
	var t *types.Type
	switch {
	case param != "" && name == param:
		t = types.NewConcrete(name)
		if len(ref.Args) > 0 {
			a.addError(errors.ErrorUnresolvedType, fmt.Sprintf("type parameter '%s' takes no type arguments", name), ref.Pos)
			t = types.NewError("type parameter with arguments")
		}
	case a.hierarchy.IsValidType(name):
		args := make([]*types.Type, len(ref.Args))
		for i, arg := range ref.Args {
			args[i] = a.resolveTypeRefWith(arg, param)
		}
		if want := a.hierarchy.TypeParameterCount(name); want != len(args) {
			a.addError(errors.ErrorUnresolvedType,
				fmt.Sprintf("type '%s' expects %d type argument(s) but %d were given", name, want, len(args)), ref.Pos)
			t = types.NewError("wrong number of type arguments")
			break
		}
		t = types.NewConcrete(name, args...)
	default:
		a.addCompilerError(errors.UnresolvedType(name, ref.Name.Pos, errors.FindSimilarNames(name, a.hierarchy.Names())))
		t = types.NewError("unresolved type " + name)
	}
	if ref.Nullable {
		t = t.MakeNullable()
	}
	a.binding.typeRefs[ref] = t
	return t
}

// ensureTyped analyzes the declaration of d when its type depends on a body
// that has not been looked at yet.
func (a *Analyzer) ensureTyped(d descriptors.Descriptor) {
	switch d := d.(type) {
	case *descriptors.FunctionDescriptor:
		if d.ReturnType == nil && d.Decl != nil {
			a.analyzeFunction(d.Decl)
		}
	case *descriptors.PropertyDescriptor:
		if d.ReturnType == nil && d.Decl != nil && d.Owner == nil {
			a.analyzeProperty(d.Decl)
		}
	}
}
