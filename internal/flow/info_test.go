package flow

import (
	"testing"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/language"
	"brick/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	animal = types.NewConcrete("Animal")
	dog    = types.NewConcrete("Dog")
	cat    = types.NewConcrete("Cat")
)

func valueOf(name string, kind Kind, t *types.Type) Value {
	return Value{Identity: &descriptors.LocalVariableDescriptor{Name: name, Type: t}, Type: t, Kind: kind}
}

func names(ts []*types.Type) []string {
	var out []string
	for _, t := range ts {
		out = append(out, t.String())
	}
	return out
}

func TestNarrowIsImmutable(t *testing.T) {
	pet := valueOf("pet", StableValue, animal)
	narrowed := Empty.Narrow(pet, dog)

	assert.Empty(t, Empty.CollectedTypes(pet))
	assert.Equal(t, []string{"Dog"}, names(narrowed.CollectedTypes(pet)))

	again := narrowed.Narrow(pet, dog)
	assert.Same(t, narrowed, again, "adding a known fact returns the same snapshot")
}

func TestNarrowIgnoresValuesWithoutIdentity(t *testing.T) {
	call := Value{Type: animal, Kind: Other}
	assert.Same(t, Empty, Empty.Narrow(call, dog))
	assert.Same(t, Empty, Empty.Narrow(valueOf("pet", StableValue, animal), animal), "the static type is not a fact")
	assert.Same(t, Empty, Empty.Narrow(valueOf("pet", StableValue, animal), types.NewError("x")))
}

func TestStableTypesRespectFeatureGates(t *testing.T) {
	local := valueOf("pet", StableVariable, animal)
	captured := valueOf("shared", CapturedVariable, animal)
	property := valueOf("global", MutableProperty, animal)
	info := Empty.Narrow(local, dog).Narrow(captured, dog).Narrow(property, dog)

	v10 := language.NewSettings(language.Version1_0)
	v11 := language.NewSettings(language.Version1_1)
	v20 := language.NewSettings(language.Version2_0)

	assert.Empty(t, info.StableTypes(local, v10))
	assert.Equal(t, []string{"Dog"}, names(info.StableTypes(local, v11)))

	assert.Empty(t, info.StableTypes(captured, v11))
	assert.Equal(t, []string{"Dog"}, names(info.StableTypes(captured, v20)))

	assert.Empty(t, info.StableTypes(property, v20), "mutable properties are never stable")
	assert.Equal(t, []string{"Dog"}, names(info.CollectedTypes(property)))
}

func TestAssignReplacesFacts(t *testing.T) {
	pet := valueOf("pet", StableVariable, animal.MakeNullable())
	info := Empty.Narrow(pet, dog)

	reassigned := info.Assign(pet, cat)
	assert.Equal(t, []string{"Cat"}, names(reassigned.CollectedTypes(pet)))

	widened := info.Assign(pet, animal.MakeNullable())
	assert.Empty(t, widened.CollectedTypes(pet))

	stubbed := info.Assign(pet, types.NewStub("T", "o"))
	assert.Empty(t, stubbed.CollectedTypes(pet))
}

func TestAndOr(t *testing.T) {
	a := valueOf("a", StableValue, animal)
	b := valueOf("b", StableValue, animal)

	left := Empty.Narrow(a, dog)
	right := Empty.Narrow(a, types.NewConcrete("Pet")).Narrow(b, cat)

	both := left.And(right)
	assert.Equal(t, []string{"Dog", "Pet"}, names(both.CollectedTypes(a)))
	assert.Equal(t, []string{"Cat"}, names(both.CollectedTypes(b)))

	either := left.Or(both)
	assert.Equal(t, []string{"Dog"}, names(either.CollectedTypes(a)))
	assert.Empty(t, either.CollectedTypes(b))

	assert.Equal(t, 0, left.Or(Empty).Len())
	assert.Same(t, left, left.And(Empty))
}

type fixedFactory struct {
	values map[ast.Expr]Value
}

func (f fixedFactory) CreateValue(expr ast.Expr, staticType *types.Type) Value {
	if v, ok := f.values[expr]; ok {
		return v
	}
	return Value{Type: staticType, Kind: Other}
}

func TestFactsLookUpThroughFactory(t *testing.T) {
	ref := &ast.NameRef{Name: "pet"}
	pet := valueOf("pet", StableValue, animal)
	facts := Facts{
		Info:   Empty.Narrow(pet, dog),
		Values: fixedFactory{values: map[ast.Expr]Value{ref: pet}},
	}

	stable := facts.StableTypes(ref, animal, language.Settings{})
	require.Len(t, stable, 1)
	assert.Equal(t, "Dog", stable[0].String())

	assert.Empty(t, facts.StableTypes(&ast.NameRef{Name: "other"}, animal, language.Settings{}))
	assert.Empty(t, Facts{}.StableTypes(ref, animal, language.Settings{}))
}
