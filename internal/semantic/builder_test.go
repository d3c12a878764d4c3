package semantic

import (
	"testing"

	"brick/internal/descriptors"
	"brick/internal/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfersFromFirstAssignment(t *testing.T) {
	r := analyze(t, animals+`
fun main() {
    val box = build Box {
        content = Dog()
        val current = content
    }
    val pet: Dog = box.content
}
`)
	require.Empty(t, r.Diagnostics)

	box := r.Binding.DescriptorOf(localNamed(t, r, "box")).(*descriptors.LocalVariableDescriptor)
	assert.Equal(t, "Box<Dog>", box.Type.String())

	current := r.Binding.DescriptorOf(localNamed(t, r, "current")).(*descriptors.LocalVariableDescriptor)
	assert.Equal(t, "Dog", current.Type.String(), "locals typed with the stub are rewritten")

	content := nameRefs(r.File, "content")
	require.Len(t, content, 3)
	call := r.Binding.ResolvedCallOf(content[0])
	require.NotNil(t, call)
	assert.True(t, call.CandidateReturnType().IsStub(), "the candidate keeps the stub")
	assert.Equal(t, "Dog", call.ResultingReturnType().String())
	assert.Equal(t, "Dog", r.Binding.TypeOf(content[1]).String())
}

func TestBuildUsesExpectedType(t *testing.T) {
	r := analyze(t, animals+`
fun main(animal: Animal) {
    val box: Box<Dog> = build Box {
        content = animal
    }
}
`)
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "TYPE_MISMATCH", d.Factory)
	assert.Equal(t, []string{"Dog", "Animal"}, d.Params)
	assert.Equal(t, 10, d.Position.Line)
	assert.Equal(t, 19, d.Position.Column)

	call := r.Binding.ResolvedCallOf(nameRefs(r.File, "content")[0])
	require.NotNil(t, call)
	assert.False(t, call.CandidateReturnType().IsStub(), "no stub when the argument is known up front")
}

func TestBuildWithExplicitTypeArgument(t *testing.T) {
	r := analyze(t, animals+`
fun main() {
    val box = build Box<Cat> {
        content = Dog()
    }
}
`)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, "TYPE_MISMATCH", r.Diagnostics[0].Factory)
	assert.Equal(t, []string{"Cat", "Dog"}, r.Diagnostics[0].Params)
}

func TestBuildReportsAssignmentsAfterInference(t *testing.T) {
	r := analyze(t, animals+`
fun main() {
    val box = build Box {
        content = Dog()
        content = Cat()
    }
}
`)
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "TYPE_MISMATCH", d.Factory)
	assert.Equal(t, []string{"Dog", "Cat"}, d.Params)
	assert.Equal(t, 11, d.Position.Line)
	assert.Equal(t, 19, d.Position.Column)
}

func TestBuildWithoutInformation(t *testing.T) {
	for name, body := range map[string]string{
		"no assignment":   `println("nothing")`,
		"null assignment": `content = null`,
	} {
		t.Run(name, func(t *testing.T) {
			r := analyze(t, animals+`
fun main() {
    val box = build Box {
        `+body+`
    }
}
`)
			require.Len(t, r.Diagnostics, 1)
			d := r.Diagnostics[0]
			assert.Equal(t, "CANNOT_INFER_PARAMETER_TYPE", d.Factory)
			assert.Equal(t, []string{"T", "Box"}, d.Params)
			assert.Equal(t, 9, d.Position.Line)
			assert.Equal(t, 15, d.Position.Column)
		})
	}
}

func TestBuildAcceptsSmartCastParameter(t *testing.T) {
	r := analyze(t, animals+`
fun main(pet: Animal) {
    val box = build Box {
        content = Dog()
        if (pet is Dog) {
            content = pet
        }
    }
}
`)
	assert.Empty(t, r.Diagnostics)
}

func TestBuildSmartCastOfLocalVariableDependsOnVersion(t *testing.T) {
	source := animals + `
fun main(animal: Animal) {
    var pet: Animal = animal
    val box = build Box {
        content = Dog()
        if (pet is Dog) {
            content = pet
        }
    }
}
`
	old := analyzeWith(t, source, language.NewSettings(language.Version1_0))
	require.Len(t, old.Diagnostics, 1)
	assert.Equal(t, "TYPE_MISMATCH", old.Diagnostics[0].Factory)
	assert.Equal(t, []string{"Dog", "Animal"}, old.Diagnostics[0].Params)
	assert.Equal(t, 13, old.Diagnostics[0].Position.Line)

	current := analyzeWith(t, source, language.NewSettings(language.Version1_1))
	assert.Empty(t, current.Diagnostics)

	disabled := analyzeWith(t, source, language.NewSettings(language.Version2_0).With(language.LocalVariableSmartCasts, false))
	assert.Equal(t, []string{"TYPE_MISMATCH"}, factories(disabled.Diagnostics))
}

func TestBuildSmartCastOfCapturedVariable(t *testing.T) {
	source := animals + `
fun main(animal: Animal) {
    var pet: Animal = animal
    run {
        pet = animal
    }
    val box = build Box {
        content = Dog()
        if (pet is Dog) {
            content = pet
        }
    }
}
`
	old := analyzeWith(t, source, language.NewSettings(language.Version1_1))
	assert.Equal(t, []string{"TYPE_MISMATCH"}, factories(old.Diagnostics))

	current := analyzeWith(t, source, language.NewSettings(language.Version2_0))
	assert.Empty(t, current.Diagnostics)
}

func TestBuildLambdaWriteDropsEarlierSmartCast(t *testing.T) {
	r := analyzeWith(t, animals+`
fun main() {
    var v: Animal = Dog()
    if (v is Dog) {
        run {
            v = Cat()
        }
        val box = build Box {
            content = Dog()
            content = v
        }
    }
}
`, language.NewSettings(language.Latest))
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "TYPE_MISMATCH", d.Factory)
	assert.Equal(t, []string{"Dog", "Animal"}, d.Params)
	assert.Equal(t, 16, d.Position.Line)
	assert.Equal(t, 23, d.Position.Column)
}

func TestBuildNestedBuildsInferIndependently(t *testing.T) {
	r := analyze(t, animals+`
fun main() {
    val outer = build Box {
        content = build Box {
            content = Cat()
        }
    }
}
`)
	require.Empty(t, r.Diagnostics)
	outer := r.Binding.DescriptorOf(localNamed(t, r, "outer")).(*descriptors.LocalVariableDescriptor)
	assert.Equal(t, "Box<Box<Cat>>", outer.Type.String())
}

func TestBuildUnknownBuilder(t *testing.T) {
	r := analyze(t, animals+`
fun main() {
    val box = build Bx {
        content = Dog()
    }
}
`)
	assert.Contains(t, factories(r.Diagnostics), "UNRESOLVED_REFERENCE")
}
