package checkers

import (
	"testing"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/language"
	"brick/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	animal = types.NewConcrete("Animal")
	dog    = types.NewConcrete("Dog")
	cat    = types.NewConcrete("Cat")
	stubT  = types.NewStub("T", "build@3:15")
)

func hierarchy(t *testing.T) *types.Hierarchy {
	h := types.NewHierarchy()
	require.NoError(t, h.Declare("Animal", "", 0))
	require.NoError(t, h.Declare("Dog", "Animal", 0))
	require.NoError(t, h.Declare("Cat", "Animal", 0))
	return h
}

type staticTypes map[ast.Expr]*types.Type

func (s staticTypes) TypeOf(expr ast.Expr) *types.Type { return s[expr] }

type fakeFlow struct {
	stable   map[ast.Expr][]*types.Type
	queries  int
	settings []language.Settings
}

func (f *fakeFlow) StableTypes(expr ast.Expr, _ *types.Type, settings language.Settings) []*types.Type {
	f.queries++
	f.settings = append(f.settings, settings)
	return f.stable[expr]
}

type countingOracle struct {
	SubtypeOracle
	calls int
}

func (o *countingOracle) IsSubtypeOf(sub, sup *types.Type) bool {
	o.calls++
	return o.SubtypeOracle.IsSubtypeOf(sub, sup)
}

// assignmentSite builds "content = value" at line 4 and returns the pieces.
type assignmentSite struct {
	target *ast.NameRef
	value  *ast.NameRef
	binary *ast.BinaryExpr
}

func newAssignment(op string) assignmentSite {
	target := &ast.NameRef{
		Pos:    ast.Position{Line: 4, Column: 9},
		EndPos: ast.Position{Line: 4, Column: 16},
		Name:   "content",
	}
	value := &ast.NameRef{
		Pos:    ast.Position{Line: 4, Column: 19},
		EndPos: ast.Position{Line: 4, Column: 25},
		Name:   "animal",
	}
	binary := &ast.BinaryExpr{Pos: target.Pos, EndPos: value.EndPos, Op: op, Left: target, Right: value}
	block := &ast.Block{Stmts: []ast.Stmt{binary}}
	ast.Link(block)
	return assignmentSite{target: target, value: value, binary: binary}
}

func boxContent() *descriptors.PropertyDescriptor {
	box := &descriptors.BuilderDescriptor{Name: "Box", TypeParameter: "T"}
	content := &descriptors.PropertyDescriptor{Name: "content", ReturnType: types.NewConcrete("T"), Mutable: true, Owner: box}
	box.Members = append(box.Members, content)
	return content
}

// inferredCall is a member call resolved against Stub(T) whose result was
// later substituted with inferred.
func inferredCall(element *ast.NameRef, inferred *types.Type) *descriptors.ResolvedCall {
	content := boxContent()
	return &descriptors.ResolvedCall{
		Element:   element,
		Candidate: content.WithTypeArgument(stubT),
		Resulting: content.WithTypeArgument(inferred),
	}
}

func checkOnce(t *testing.T, call *descriptors.ResolvedCall, reportOn ast.Node, typesOf staticTypes, flow *fakeFlow) []errors.CompilerError {
	sink := errors.NewCollector()
	ctx := CallCheckerContext{
		Types:    typesOf,
		Subtypes: hierarchy(t),
		Flow:     flow,
		Sink:     sink,
		Settings: language.NewSettings(language.Version2_0),
	}
	BuilderInferenceAssignment{}.Check(call, reportOn, ctx)
	return sink.Diagnostics()
}

func TestStaticSubtypeIsAccepted(t *testing.T) {
	site := newAssignment("=")
	flow := &fakeFlow{}
	diags := checkOnce(t, inferredCall(site.target, animal), site.target, staticTypes{site.value: dog}, flow)

	assert.Empty(t, diags)
	assert.Zero(t, flow.queries, "flow facts are only consulted after a static mismatch")
}

func TestMismatchIsReportedAtRightOperand(t *testing.T) {
	site := newAssignment("=")
	diags := checkOnce(t, inferredCall(site.target, dog), site.target, staticTypes{site.value: animal}, &fakeFlow{})

	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, "TYPE_MISMATCH", d.Factory)
	assert.Equal(t, errors.ErrorTypeMismatch, d.Code)
	assert.Equal(t, site.value.Pos, d.Position)
	assert.Equal(t, 6, d.Length)
	assert.Equal(t, []string{"Dog", "Animal"}, d.Params, "expected is the member type, actual the static type of the value")
}

func TestNarrowedTypeIsAccepted(t *testing.T) {
	site := newAssignment("=")
	flow := &fakeFlow{stable: map[ast.Expr][]*types.Type{site.value: {cat, dog}}}
	diags := checkOnce(t, inferredCall(site.target, dog), site.target, staticTypes{site.value: animal}, flow)

	assert.Empty(t, diags)
	assert.Equal(t, 1, flow.queries)
	assert.Equal(t, language.Version2_0, flow.settings[0].Version, "the active settings reach the flow store")
}

func TestUnrelatedNarrowedTypesStillMismatch(t *testing.T) {
	site := newAssignment("=")
	flow := &fakeFlow{stable: map[ast.Expr][]*types.Type{site.value: {cat}}}
	diags := checkOnce(t, inferredCall(site.target, dog), site.target, staticTypes{site.value: animal}, flow)

	require.Len(t, diags, 1)
	assert.Equal(t, []string{"Dog", "Animal"}, diags[0].Params)
}

func TestNonPropertyTargetsAreNeverChecked(t *testing.T) {
	site := newAssignment("=")
	typesOf := staticTypes{site.value: animal}

	local := &descriptors.LocalVariableDescriptor{Name: "content", Type: stubT, Mutable: true}
	call := &descriptors.ResolvedCall{Element: site.target, Candidate: local, Resulting: &descriptors.LocalVariableDescriptor{Name: "content", Type: dog, Mutable: true}}
	assert.Empty(t, checkOnce(t, call, site.target, typesOf, &fakeFlow{}))

	fn := &descriptors.FunctionDescriptor{Name: "content", ReturnType: stubT}
	call = &descriptors.ResolvedCall{Element: site.target, Candidate: fn, Resulting: fn}
	assert.Empty(t, checkOnce(t, call, site.target, typesOf, &fakeFlow{}))

	assert.Empty(t, checkOnce(t, nil, site.target, typesOf, &fakeFlow{}))
}

func TestNonStubCandidatesAreLeftToTheGeneralCheck(t *testing.T) {
	site := newAssignment("=")
	content := boxContent()
	call := &descriptors.ResolvedCall{
		Element:   site.target,
		Candidate: content.WithTypeArgument(dog),
		Resulting: content.WithTypeArgument(dog),
	}
	assert.Empty(t, checkOnce(t, call, site.target, staticTypes{site.value: animal}, &fakeFlow{}))
}

func TestSyntacticGuards(t *testing.T) {
	typesFor := func(site assignmentSite) staticTypes { return staticTypes{site.value: animal} }

	t.Run("report target is not a name", func(t *testing.T) {
		site := newAssignment("=")
		assert.Empty(t, checkOnce(t, inferredCall(site.target, dog), site.binary, typesFor(site), &fakeFlow{}))
	})

	t.Run("no enclosing binary expression", func(t *testing.T) {
		lone := &ast.NameRef{Name: "content"}
		ast.Link(&ast.Block{Stmts: []ast.Stmt{lone}})
		assert.Empty(t, checkOnce(t, inferredCall(lone, dog), lone, staticTypes{}, &fakeFlow{}))
	})

	t.Run("name on the right side", func(t *testing.T) {
		site := newAssignment("=")
		assert.Empty(t, checkOnce(t, inferredCall(site.value, dog), site.value, staticTypes{site.value: animal}, &fakeFlow{}))
	})

	t.Run("comparison is not an assignment", func(t *testing.T) {
		site := newAssignment("==")
		assert.Empty(t, checkOnce(t, inferredCall(site.target, dog), site.target, typesFor(site), &fakeFlow{}))
	})

	t.Run("nearest binary ancestor decides", func(t *testing.T) {
		// (content == other) = animal is not an assignment to content.
		target := &ast.NameRef{Name: "content"}
		inner := &ast.BinaryExpr{Op: "==", Left: target, Right: &ast.NameRef{Name: "other"}}
		value := &ast.NameRef{Name: "animal"}
		outer := &ast.BinaryExpr{Op: "=", Left: &ast.ParenExpr{Inner: inner}, Right: value}
		ast.Link(outer)
		assert.Empty(t, checkOnce(t, inferredCall(target, dog), target, staticTypes{value: animal}, &fakeFlow{}))
	})

	t.Run("parenthesized and member targets", func(t *testing.T) {
		target := &ast.NameRef{Name: "content"}
		value := &ast.NameRef{Name: "animal"}
		left := &ast.ParenExpr{Inner: &ast.DotExpr{Receiver: &ast.NameRef{Name: "box"}, Selector: target}}
		ast.Link(&ast.BinaryExpr{Op: "=", Left: left, Right: value})
		assert.Len(t, checkOnce(t, inferredCall(target, dog), target, staticTypes{value: animal}, &fakeFlow{}), 1)
	})
}

func TestUnresolvedTypesAreSilent(t *testing.T) {
	site := newAssignment("=")

	broken := inferredCall(site.target, types.NewError("cannot infer T"))
	assert.Empty(t, checkOnce(t, broken, site.target, staticTypes{site.value: animal}, &fakeFlow{}))

	content := boxContent()
	untyped := &descriptors.ResolvedCall{Element: site.target, Candidate: content.WithTypeArgument(stubT), Resulting: &descriptors.PropertyDescriptor{Name: "content"}}
	assert.Empty(t, checkOnce(t, untyped, site.target, staticTypes{site.value: animal}, &fakeFlow{}))

	assert.Empty(t, checkOnce(t, inferredCall(site.target, dog), site.target, staticTypes{}, &fakeFlow{}), "right side without a static type")
	assert.Empty(t, checkOnce(t, inferredCall(site.target, dog), site.target, staticTypes{site.value: types.NewError("x")}, &fakeFlow{}))

	missingRight := newAssignment("=")
	missingRight.binary.Right = nil
	assert.Empty(t, checkOnce(t, inferredCall(missingRight.target, dog), missingRight.target, staticTypes{}, &fakeFlow{}))
}

func TestCheckIsIdempotent(t *testing.T) {
	site := newAssignment("=")
	call := inferredCall(site.target, dog)
	sink := errors.NewCollector()
	ctx := CallCheckerContext{
		Types:    staticTypes{site.value: animal},
		Subtypes: hierarchy(t),
		Flow:     &fakeFlow{},
		Sink:     sink,
	}

	checker := BuilderInferenceAssignment{}
	checker.Check(call, site.target, ctx)
	assert.Equal(t, 1, sink.Len())
	checker.Check(call, site.target, ctx)
	assert.Equal(t, 2, sink.Len(), "each invocation reports at most once")

	diags := sink.Diagnostics()
	assert.Equal(t, diags[0], diags[1])
}

func TestNilFlowStoreMeansNoFacts(t *testing.T) {
	site := newAssignment("=")
	sink := errors.NewCollector()
	oracle := &countingOracle{SubtypeOracle: hierarchy(t)}
	BuilderInferenceAssignment{}.Check(inferredCall(site.target, dog), site.target, CallCheckerContext{
		Types:    staticTypes{site.value: animal},
		Subtypes: oracle,
		Sink:     sink,
	})
	assert.Equal(t, 1, sink.Len())
	assert.Equal(t, 1, oracle.calls)
}
