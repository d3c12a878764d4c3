package errors

import (
	"strings"
	"testing"

	"brick/internal/ast"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `builder Box<T> { var content: T }
fun main() {
    val box = build Box {
        content = conten
    }
}`

	reporter := NewErrorReporter("test.brick", source)

	err := UnresolvedReference("conten", ast.Position{Line: 4, Column: 19}, []string{"content"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnresolvedReference+"]")
	assert.Contains(t, formatted, "unresolved reference 'conten'")
	assert.Contains(t, formatted, "test.brick:4:19")
	assert.Contains(t, formatted, "did you mean 'content'?")
	assert.Contains(t, formatted, strings.Repeat(" ", 18)+"^^^^^^")
}

func TestUnresolvedReferenceError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := UnresolvedReference("pritnln", pos, []string{"println"})
	assert.Equal(t, ErrorUnresolvedReference, err.Code)
	assert.Equal(t, "UNRESOLVED_REFERENCE", err.Factory)
	assert.Equal(t, 7, err.Length)
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'println'")

	err = UnresolvedReference("xyz", pos, nil)
	assert.Empty(t, err.Suggestions)
	assert.Len(t, err.Notes, 1)
}

func TestTypeMismatchError(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 9}

	err := TypeMismatch("Dog", "Animal", pos, 3)
	assert.Equal(t, ErrorTypeMismatch, err.Code)
	assert.Equal(t, "TYPE_MISMATCH", err.Factory)
	assert.Equal(t, []string{"Dog", "Animal"}, err.Params)
	assert.Equal(t, 3, err.Length)
	assert.Contains(t, err.Message, "expected Dog, found Animal")
	assert.Empty(t, err.Suggestions)

	err = TypeMismatch("Dog", "Dog?", pos, 3)
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "null")
}

func TestWarningFormatting(t *testing.T) {
	source := `fun f() { 42 }`
	reporter := NewErrorReporter("test.brick", source)

	err := UnusedExpression("42", ast.Position{Line: 1, Column: 11})
	formatted := reporter.FormatError(err)

	assert.True(t, IsWarning(err.Code))
	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "the expression is unused")
	assert.Contains(t, formatted, strings.Repeat(" ", 10)+"^^")
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.brick", `val variable = value`)

	marker := reporter.createMarker(5, 8, Error)
	assert.Equal(t, 4, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))

	marker = reporter.createMarker(1, 0, Warning)
	assert.Equal(t, "^", marker)
}

func TestMarkerIsClampedToLine(t *testing.T) {
	reporter := NewErrorReporter("test.brick", "val s = x")
	formatted := reporter.FormatError(CompilerError{
		Level:    Error,
		Message:  "long span",
		Position: ast.Position{Line: 1, Column: 9},
		Length:   40,
	})
	assert.Contains(t, formatted, strings.Repeat(" ", 8)+"^\n")
}

func TestTextWidthCountsGraphemes(t *testing.T) {
	assert.Equal(t, 5, TextWidth("héllo"))
	assert.Equal(t, 1, TextWidth("🇩🇪"))
	assert.Equal(t, 0, TextWidth(""))

	err := UnresolvedReference("größe", ast.Position{Line: 1, Column: 1}, nil)
	assert.Equal(t, 5, err.Length)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"content", "contents", "label", "println", "xy"}

	similar := FindSimilarNames("conten", candidates)
	assert.Equal(t, []string{"content", "contents"}, similar)

	assert.Empty(t, FindSimilarNames("verydifferent", candidates))
	assert.Empty(t, FindSimilarNames("x", candidates), "short candidates are skipped")
	assert.Empty(t, FindSimilarNames("label", []string{"label"}), "the name itself is not a suggestion")
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.brick", "test")
	pos := ast.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestCodesHaveFactoriesAndDescriptions(t *testing.T) {
	for code, factory := range factories {
		assert.NotEmpty(t, factory, code)
		assert.NotEqual(t, "Unknown error code", GetErrorDescription(code), code)
		assert.NotEqual(t, "Unknown", GetErrorCategory(code), code)
	}
	assert.Equal(t, "Flow Control", GetErrorCategory(ErrorMissingReturn))
	assert.Equal(t, "Warning", GetErrorCategory(WarningUnreachableCode))
	assert.False(t, IsWarning(""))
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Report(UnreachableCode(ast.Position{Line: 3, Column: 1}))
	assert.False(t, c.HasErrors())

	c.Report(ValReassignment("x", ast.Position{Line: 1, Column: 5}))
	assert.True(t, c.HasErrors())
	assert.Equal(t, 2, c.Len())

	diags := c.Diagnostics()
	SortByPosition(diags)
	assert.Equal(t, ErrorValReassignment, diags[0].Code)
	assert.Equal(t, WarningUnreachableCode, c.Diagnostics()[0].Code, "the collector keeps report order")

	reporter := NewErrorReporter("a.brick", "")
	assert.Equal(t, "a.brick: 1 error(s), 1 warning(s) emitted\n", reporter.FormatSummary(diags))
	assert.Empty(t, reporter.FormatSummary(nil))
}
