package semantic

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/types"
)

// buildState tracks one "build B { ... }" while its lambda is analyzed.
//
// With a known type argument (written explicitly or taken from the expected
// type) members are specialised right away. Otherwise they are resolved
// against stub, the first assignment of a concrete value to a member typed
// with the bare type parameter fixes inferred, and every type mentioning the
// stub is rewritten once the lambda is done.
type buildState struct {
	expr     *ast.BuildExpr
	builder  *descriptors.BuilderDescriptor
	argument *types.Type
	stub     *types.Type
	inferred *types.Type
}

// typeArgument is what members are specialised with during the lambda.
func (s *buildState) typeArgument() *types.Type {
	if s.stub != nil {
		return s.stub
	}
	return s.argument
}

func (s *buildState) inferring() bool {
	return s.stub != nil && s.inferred == nil
}

func (a *Analyzer) build(e *ast.BuildExpr, expected *types.Type) *types.Type {
	builder := a.binding.builders[e.Builder.Value]
	if builder == nil {
		names := make([]string, 0, len(a.binding.builders))
		for name := range a.binding.builders {
			names = append(names, name)
		}
		a.addCompilerError(errors.UnresolvedReference(e.Builder.Value, e.Builder.Pos, errors.FindSimilarNames(e.Builder.Value, names)))
		if e.Lambda != nil {
			a.lambda(e.Lambda, "build", nil)
		}
		return types.NewError("unresolved builder")
	}

	state := &buildState{expr: e, builder: builder}
	switch {
	case e.TypeArg != nil:
		state.argument = a.resolveTypeRef(e.TypeArg)
	case expected != nil && expected.IsConcrete() && expected.Name == builder.Name &&
		len(expected.Args) == 1 && !expected.Args[0].ContainsStub():
		state.argument = expected.Args[0]
	default:
		origin := fmt.Sprintf("build@%d:%d", e.Pos.Line, e.Pos.Column)
		state.stub = types.NewStub(builder.TypeParameter, origin)
	}

	a.builds = append(a.builds, state)
	if e.Lambda != nil {
		a.lambda(e.Lambda, "build", state)
	}
	a.builds = a.builds[:len(a.builds)-1]

	if state.stub != nil {
		state.argument = a.completeInference(state)
	}
	return types.NewConcrete(builder.Name, state.argument)
}

// builderMember resolves a member referenced by its simple name inside a
// build lambda.
func (a *Analyzer) builderMember(n *ast.NameRef, member *descriptors.PropertyDescriptor, state *buildState) *types.Type {
	arg := state.typeArgument()
	resolved := member.WithTypeArgument(arg)
	a.recordCall(n, resolved, resolved)
	a.memberArgs[n] = arg
	if resolved.ReturnType == nil {
		return types.NewError("untyped member")
	}
	return resolved.ReturnType
}

// inferFromAssignment fixes the type argument of the enclosing build from
// "member = value" when member is typed with the bare type parameter and no
// argument has been inferred yet. null and Nothing carry no information.
func (a *Analyzer) inferFromAssignment(name *ast.NameRef, value *types.Type) {
	call := a.binding.calls[name]
	if call == nil || !call.CandidateReturnType().IsStub() {
		return
	}
	if value == nil || !value.IsConcrete() || value.IsNothing() || value.ContainsStub() {
		return
	}
	stub := call.CandidateReturnType()
	for i := len(a.builds) - 1; i >= 0; i-- {
		state := a.builds[i]
		if state.stub == nil || !state.stub.Equals(stub) {
			continue
		}
		if state.inferring() {
			state.inferred = value
			log.Debugf("inferred %s of %s as %s from %s", state.builder.TypeParameter, state.builder.Name, value, name.Pos)
		}
		return
	}
}

// completeInference picks the final type argument of a build and replaces
// its stub everywhere it was recorded.
func (a *Analyzer) completeInference(state *buildState) *types.Type {
	final := state.inferred
	if final == nil {
		final = types.NewError("cannot infer " + state.builder.TypeParameter)
		a.addCompilerError(errors.CannotInferParameterType(state.builder.TypeParameter, state.builder.Name, state.expr.Pos))
	}
	a.substituteStub(state.stub, final)
	return final
}

func (a *Analyzer) substituteStub(stub, final *types.Type) {
	for e, t := range a.binding.types {
		if t.ContainsStub() {
			a.binding.types[e] = types.Substitute(t, stub, final)
		}
	}

	for name, call := range a.binding.calls {
		property, ok := call.Resulting.(*descriptors.PropertyDescriptor)
		if !ok || !property.ReturnType.ContainsStub() {
			continue
		}
		var resulting *descriptors.PropertyDescriptor
		if arg, ok := a.memberArgs[name]; ok && arg.ContainsStub() && property.Owner != nil {
			declared := property.Owner.Member(property.Name)
			a.memberArgs[name] = types.Substitute(arg, stub, final)
			resulting = declared.WithTypeArgument(a.memberArgs[name])
		} else {
			c := *property
			c.ReturnType = types.Substitute(property.ReturnType, stub, final)
			resulting = &c
		}
		a.binding.calls[name] = &descriptors.ResolvedCall{Element: call.Element, Candidate: call.Candidate, Resulting: resulting}
		if _, typed := a.binding.types[name]; typed {
			a.binding.types[name] = resulting.ReturnType
		}
	}

	for _, local := range a.stubbedLocals {
		local.Type = types.Substitute(local.Type, stub, final)
	}
	for l, t := range a.lambdaResults {
		a.lambdaResults[l] = types.Substitute(t, stub, final)
	}
}
