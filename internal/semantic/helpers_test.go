package semantic

import (
	"testing"

	"brick/internal/ast"
	"brick/internal/errors"
	"brick/internal/language"
	"brick/internal/parser"

	"github.com/stretchr/testify/require"
)

const animals = `open class Animal
class Dog : Animal
class Cat : Animal
builder Box<T> {
    var content: T
}
`

func analyze(t *testing.T, source string) *Result {
	t.Helper()
	return analyzeWith(t, source, language.NewSettings(language.Latest))
}

func analyzeWith(t *testing.T, source string, settings language.Settings) *Result {
	t.Helper()
	file, parseErrors, scanErrors := parser.ParseSource("test.brick", source)
	require.Empty(t, scanErrors, "scan errors")
	require.Empty(t, parseErrors, "parse errors")
	return NewAnalyzer(settings).Analyze(file)
}

func factories(diags []errors.CompilerError) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Factory)
	}
	return out
}

func collect[T ast.Node](root ast.Node) []T {
	var out []T
	ast.Inspect(root, func(n ast.Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// nameRefs returns the references to name in source order.
func nameRefs(root ast.Node, name string) []*ast.NameRef {
	var out []*ast.NameRef
	for _, n := range collect[*ast.NameRef](root) {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}

func localNamed(t *testing.T, r *Result, name string) *ast.PropertyDecl {
	t.Helper()
	for _, d := range collect[*ast.PropertyDecl](r.File) {
		if d.Name.Value == name {
			return d
		}
	}
	require.FailNow(t, "no declaration named "+name)
	return nil
}
