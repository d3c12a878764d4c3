package descriptors

import (
	"testing"

	"brick/internal/types"

	"github.com/stretchr/testify/assert"
)

func boxBuilder() *BuilderDescriptor {
	box := &BuilderDescriptor{Name: "Box", TypeParameter: "T"}
	box.Members = []*PropertyDescriptor{
		{Name: "content", ReturnType: types.NewConcrete("T"), Mutable: true, Owner: box},
		{Name: "label", ReturnType: types.StringType, Mutable: true, Owner: box},
	}
	return box
}

func TestWithTypeArgumentSubstitutesOnlyTheParameter(t *testing.T) {
	box := boxBuilder()
	stub := types.NewStub("T", "build@1:1")

	content := box.Member("content").WithTypeArgument(stub)
	assert.True(t, content.ReturnType.IsStub())
	assert.Equal(t, "T", box.Member("content").ReturnType.Name, "the declared member is left alone")

	label := box.Member("label").WithTypeArgument(stub)
	assert.Equal(t, "String", label.ReturnType.String())
	assert.Nil(t, box.Member("missing"))
}

func TestResolvedCallTypes(t *testing.T) {
	box := boxBuilder()
	stub := types.NewStub("T", "build@1:1")
	call := &ResolvedCall{
		Candidate: box.Member("content").WithTypeArgument(stub),
		Resulting: box.Member("content").WithTypeArgument(types.NewConcrete("Dog")),
	}

	assert.True(t, call.CandidateReturnType().IsStub())
	assert.Equal(t, "Dog", call.ResultingReturnType().String())

	var missing *ResolvedCall
	assert.Nil(t, missing.CandidateReturnType())
}

func TestReturnTypeOf(t *testing.T) {
	color := &ClassDescriptor{Name: "Color", Kind: EnumClass}
	red := &EnumEntryDescriptor{Name: "RED", Class: color}
	color.Entries = append(color.Entries, red)

	assert.Equal(t, "Color", ReturnTypeOf(red).String())
	assert.Nil(t, ReturnTypeOf(color))
	assert.Same(t, red, color.Entry("RED"))
	assert.Equal(t, "Int", ReturnTypeOf(&LocalVariableDescriptor{Name: "x", Type: types.IntType}).String())
}

func TestIsMutable(t *testing.T) {
	assert.True(t, IsMutable(&LocalVariableDescriptor{Mutable: true}))
	assert.False(t, IsMutable(&PropertyDescriptor{Mutable: false}))
	assert.False(t, IsMutable(&ValueParameterDescriptor{}))
}

func TestLambdaLabels(t *testing.T) {
	lambda := &AnonymousFunctionDescriptor{Labels: []string{"outer", "run"}}
	assert.True(t, lambda.HasLabel("run"))
	assert.False(t, lambda.HasLabel("inner"))
	assert.Equal(t, "outer", lambda.GetName())
	assert.Equal(t, "<anonymous>", (&AnonymousFunctionDescriptor{}).GetName())
}
