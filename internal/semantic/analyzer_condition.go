package semantic

import (
	"brick/internal/ast"
	"brick/internal/flow"
	"brick/internal/types"
)

// cond analyzes a Boolean expression and returns the facts that hold when it
// evaluates to true and when it evaluates to false.
func (a *Analyzer) cond(e ast.Expr) (onTrue, onFalse *flow.Info) {
	if e == nil {
		return a.info, a.info
	}
	a.binding.flowBefore[e] = a.info

	switch e := e.(type) {
	case *ast.ParenExpr:
		onTrue, onFalse = a.cond(e.Inner)
		a.record(e, a.binding.types[e.Inner])
		return onTrue, onFalse

	case *ast.UnaryExpr:
		if e.Op == "!" {
			onTrue, onFalse = a.cond(e.Operand)
			a.record(e, types.BooleanType)
			return onFalse, onTrue
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case "&&":
			leftTrue, leftFalse := a.cond(e.Left)
			a.info = leftTrue
			rightTrue, rightFalse := a.cond(e.Right)
			a.record(e, types.BooleanType)
			return rightTrue, leftFalse.Or(rightFalse)
		case "||":
			leftTrue, leftFalse := a.cond(e.Left)
			a.info = leftFalse
			rightTrue, rightFalse := a.cond(e.Right)
			a.record(e, types.BooleanType)
			return leftTrue.Or(rightTrue), rightFalse
		case "==", "!=":
			return a.equality(e)
		}

	case *ast.IsExpr:
		return a.isCheck(e)
	}

	a.expr(e, types.BooleanType)
	a.expect(e, types.BooleanType)
	return a.info, a.info
}

// equality narrows "x != null" and "x == null" comparisons.
func (a *Analyzer) equality(e *ast.BinaryExpr) (onTrue, onFalse *flow.Info) {
	lt := a.expr(e.Left, nil)
	rt := a.expr(e.Right, nil)
	a.record(e, types.BooleanType)

	equal, notEqual := a.info, a.info
	var subject ast.Expr
	var subjectType *types.Type
	switch {
	case isNullLiteral(e.Right):
		subject, subjectType = e.Left, lt
	case isNullLiteral(e.Left):
		subject, subjectType = e.Right, rt
	}
	if subject != nil && subjectType != nil && subjectType.Nullable {
		v := a.binding.CreateValue(subject, subjectType)
		notEqual = a.info.Narrow(v, subjectType.MakeNotNull())
	}

	if e.Op == "!=" {
		return notEqual, equal
	}
	return equal, notEqual
}

func (a *Analyzer) isCheck(e *ast.IsExpr) (onTrue, onFalse *flow.Info) {
	operandType := a.expr(e.Operand, nil)
	target := a.resolveTypeRef(e.Type)
	a.record(e, types.BooleanType)

	before := a.info
	narrowed := before.Narrow(a.binding.CreateValue(e.Operand, operandType), target)
	if e.Negated {
		return before, narrowed
	}
	return narrowed, before
}
