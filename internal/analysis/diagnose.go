package analysis

import (
	"brick/internal/ast"
	"brick/internal/errors"
	"brick/internal/semantic"
)

// Diagnose reports the problems that depend on whether values are used:
// a when used as a value must be exhaustive, a when statement over a finite
// set of values should be, and side-effect free statements are flagged.
func Diagnose(file *ast.File, result *semantic.Result, sink errors.Sink) {
	if file == nil || result == nil {
		return
	}
	info := NewExpressionInfo(result.Binding)
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.WhenExpr:
			checkWhen(info, n, sink)
		case *ast.Block:
			for _, stmt := range n.Stmts {
				checkUnused(info, result.Binding, stmt, sink)
			}
		}
		return true
	})
}

func checkWhen(info *ExpressionInfo, w *ast.WhenExpr, sink errors.Sink) {
	missing := info.WhenMissingCases(w)
	if len(missing) == 0 {
		return
	}
	names := make([]string, len(missing))
	finite := true
	for i, c := range missing {
		names[i] = c.BranchConditionText()
		if c.Kind == semantic.UnknownCase {
			finite = false
		}
	}

	if info.IsUsedAsExpression(w) {
		sink.Report(errors.NoElseInWhen(names, w.Pos))
		return
	}
	if finite && w.Subject != nil {
		sink.Report(errors.NonExhaustiveWhenStatement(w.Subject.String(), names, w.Pos))
	}
}

func checkUnused(info *ExpressionInfo, binding *semantic.BindingContext, stmt ast.Stmt, sink errors.Sink) {
	expr, ok := stmt.(ast.Expr)
	if !ok || !sideEffectFree(expr) || info.IsUsedAsExpression(expr) {
		return
	}
	if t := binding.TypeOf(expr); t == nil || t.IsError() {
		return
	}
	sink.Report(errors.UnusedExpression(expr.String(), expr.NodePos()))
}

// sideEffectFree is true for expressions whose only effect is their value.
func sideEffectFree(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Literal, *ast.NameRef:
		return true
	case *ast.IsExpr:
		return sideEffectFree(e.Operand)
	case *ast.ParenExpr:
		return sideEffectFree(e.Inner)
	case *ast.BinaryExpr:
		return !ast.IsAssignmentOp(e.Op) && sideEffectFree(e.Left) && sideEffectFree(e.Right)
	case *ast.UnaryExpr:
		return sideEffectFree(e.Operand)
	case *ast.DotExpr:
		return sideEffectFree(e.Receiver)
	}
	return false
}
