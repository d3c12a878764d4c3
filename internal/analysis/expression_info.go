// Package analysis answers questions about expressions of an analyzed file
// and reports the diagnostics that depend on how values are used.
package analysis

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/semantic"
)

// ExpressionInfo reads an analyzed file. It never changes the binding
// context, so one value may be shared by concurrent readers.
type ExpressionInfo struct {
	binding *semantic.BindingContext
}

func NewExpressionInfo(binding *semantic.BindingContext) *ExpressionInfo {
	return &ExpressionInfo{binding: binding}
}

// ReturnExpressionTargetSymbol is the function or lambda ret returns from, or
// nil when the target could not be resolved.
func (i *ExpressionInfo) ReturnExpressionTargetSymbol(ret *ast.ReturnExpr) descriptors.Descriptor {
	if ret == nil {
		return nil
	}
	return i.binding.ReturnTarget(ret)
}

// WhenMissingCases lists the cases w does not handle. See
// semantic.BindingContext.MissingCases for the order.
func (i *ExpressionInfo) WhenMissingCases(w *ast.WhenExpr) []semantic.MissingCase {
	return i.binding.MissingCases(w)
}

// IsUsedAsExpression reports whether the value of expr may be used.
//
// The answer is conservative: false only when the position of expr makes
// the value unreachable for anyone, for example a statement that is not the
// last in its block, the left side of "=", or the subject of a when whose
// only branch is else. It does not follow control flow, so the x in
// "x + run { return }" counts as used.
func (i *ExpressionInfo) IsUsedAsExpression(expr ast.Expr) bool {
	if expr == nil {
		return false
	}
	return i.used(expr)
}

func (i *ExpressionInfo) used(n ast.Node) bool {
	switch p := n.Parent().(type) {
	case nil:
		return true

	case *ast.Block:
		if len(p.Stmts) == 0 || p.Stmts[len(p.Stmts)-1] != n {
			return false
		}
		// The last statement is the value of the block.
		return i.used(p)

	case *ast.FunDecl:
		// A block body only returns through return.
		return p.ExprBody == n

	case *ast.LambdaExpr:
		return i.lambdaResultUsed(p)

	case *ast.BinaryExpr:
		return !(p.Op == "=" && p.Left == n)

	case *ast.ParenExpr:
		return i.used(p)

	case *ast.IfExpr:
		if p.Cond == n {
			return true
		}
		return i.used(p)

	case *ast.WhenExpr:
		if p.Subject == n {
			return !onlyElse(p)
		}
		return true

	case *ast.WhenBranch:
		if p.Body != n {
			return true
		}
		if w := p.Parent(); w != nil {
			return i.used(w)
		}
		return true

	case *ast.WhileExpr:
		return p.Cond == n

	case *ast.TryExpr:
		if p.Finally != nil && p.Finally == n {
			return false
		}
		return i.used(p)

	case *ast.CatchClause:
		if p.Body != n {
			return true
		}
		if try := p.Parent(); try != nil {
			return i.used(try)
		}
		return true
	}
	return true
}

// lambdaResultUsed reports whether the value of the last statement of l can
// flow out of the lambda. Build lambdas never return a value, and neither do
// lambdas passed to functions with a declared return type.
func (i *ExpressionInfo) lambdaResultUsed(l *ast.LambdaExpr) bool {
	switch p := l.Parent().(type) {
	case *ast.BuildExpr:
		return false
	case *ast.CallExpr:
		name, ok := ast.Deparenthesize(p.Callee).(*ast.NameRef)
		if !ok || p.Lambda != l {
			return true
		}
		call := i.binding.ResolvedCallOf(name)
		if call == nil {
			return true
		}
		if fd, ok := call.Resulting.(*descriptors.FunctionDescriptor); ok && fd.ReturnType != nil {
			return false
		}
		return i.used(p)
	}
	return true
}

// onlyElse reports whether no branch of w looks at the subject.
func onlyElse(w *ast.WhenExpr) bool {
	for _, b := range w.Branches {
		if !b.Else {
			return false
		}
	}
	return true
}
