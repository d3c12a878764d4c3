package analysis

import (
	"testing"

	"brick/internal/ast"
	"brick/internal/errors"
	"brick/internal/language"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string) *Snapshot {
	t.Helper()
	s := Run("test.brick", source, language.NewSettings(language.Latest))
	for _, d := range s.Diagnostics {
		require.NotEqual(t, errors.ErrorSyntax, d.Code, "unexpected syntax error: %s", d.Message)
	}
	return s
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

func nameRefs(root ast.Node, name string) []*ast.NameRef {
	var out []*ast.NameRef
	for _, n := range collect[*ast.NameRef](root) {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}
