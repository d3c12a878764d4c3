package semantic

import (
	"testing"

	"brick/internal/ast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapes = `enum Color { RED, GREEN, BLUE }
sealed class Shape
class Circle : Shape
sealed class Polygon : Shape
class Square : Polygon
class Triangle : Polygon
`

func caseNames(cases []MissingCase) []string {
	var out []string
	for _, c := range cases {
		out = append(out, c.BranchConditionText())
	}
	return out
}

func TestMissingCases(t *testing.T) {
	r := analyze(t, shapes+`
fun describe(c: Color, s: Shape, flag: Boolean, maybe: Color?, n: Int) {
    when (c) {
        Color.RED -> println("red")
    }
    when (s) {
        is Square -> println("square")
    }
    when (flag) {
        true -> println("yes")
    }
    when (maybe) {
        Color.RED, Color.GREEN, Color.BLUE -> println("color")
    }
    when {
        flag -> println("flag")
    }
    when (n) {
        1 -> println("one")
    }
    when (s) {
        is Circle -> println("circle")
        is Polygon -> println("polygon")
    }
    when (c) {
        Color.RED -> println("red")
        else -> println("other")
    }
    when (maybe) {
        null -> println("none")
        is Color -> println("some")
    }
}
`)
	require.Empty(t, r.Diagnostics)

	whens := collect[*ast.WhenExpr](r.File)
	require.Len(t, whens, 9)

	expected := [][]string{
		{"Color.GREEN", "Color.BLUE"},
		{"is Circle", "is Triangle"},
		{"false"},
		{"null"},
		{"else"},
		{"else"},
		nil,
		nil,
		nil,
	}
	for i, w := range whens {
		assert.Equal(t, expected[i], caseNames(r.Binding.MissingCases(w)), "when #%d", i)
	}

	kinds := r.Binding.MissingCases(whens[1])
	assert.Equal(t, SubclassCase, kinds[0].Kind)
	assert.Equal(t, "Circle", kinds[0].Name)
	assert.Equal(t, NullCase, r.Binding.MissingCases(whens[3])[0].Kind)
	assert.Equal(t, UnknownCase, r.Binding.MissingCases(whens[4])[0].Kind)
}

func TestMissingCasesIgnoresUnresolvedSubject(t *testing.T) {
	r := analyze(t, `
fun main() {
    when (unknown) {
        1 -> println("one")
    }
}
`)
	assert.Equal(t, []string{"UNRESOLVED_REFERENCE"}, factories(r.Diagnostics))
	w := collect[*ast.WhenExpr](r.File)[0]
	assert.Empty(t, r.Binding.MissingCases(w))
}

func TestExhaustiveWhenAsValue(t *testing.T) {
	r := analyze(t, shapes+`
fun name(c: Color): String {
    return when (c) {
        Color.RED -> "red"
        Color.GREEN -> "green"
        Color.BLUE -> "blue"
    }
}
`)
	assert.Empty(t, r.Diagnostics)
	w := collect[*ast.WhenExpr](r.File)[0]
	assert.Equal(t, "String", r.Binding.TypeOf(w).String())
}

func TestMissingCaseKindString(t *testing.T) {
	assert.Equal(t, "enum entry", EnumEntryCase.String())
	assert.Equal(t, "unknown", UnknownCase.String())
	assert.Equal(t, "else", MissingCase{Kind: UnknownCase, Name: "else"}.String())
	assert.Equal(t, "null", MissingCase{Kind: NullCase, Name: "null"}.String())
}
