// Package checkers holds the per-call checks that run after name
// resolution. Each checker sees one resolved call at a time together with
// read-only views of the analysis results, and reports through a sink.
package checkers

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/language"
	"brick/internal/types"
)

// SubtypeOracle answers subtype queries. Implementations must be total and
// free of side effects.
type SubtypeOracle interface {
	IsSubtypeOf(sub, sup *types.Type) bool
}

// TypeInfo exposes the static type recorded for an expression, or nil when
// the expression was never typed.
type TypeInfo interface {
	TypeOf(expr ast.Expr) *types.Type
}

// FlowFacts returns the stable narrowed types known for expr at the point
// where it is evaluated.
type FlowFacts interface {
	StableTypes(expr ast.Expr, staticType *types.Type, settings language.Settings) []*types.Type
}

// CallCheckerContext carries everything a checker may consult. None of it is
// modified by checkers except through Sink.
type CallCheckerContext struct {
	Types    TypeInfo
	Subtypes SubtypeOracle
	Flow     FlowFacts
	Sink     errors.Sink
	Settings language.Settings
}

// CallChecker is a check run once per resolved call.
type CallChecker interface {
	// Check inspects call and reports at most one diagnostic per problem
	// found. reportOn is the syntax element the call was resolved from.
	Check(call *descriptors.ResolvedCall, reportOn ast.Node, ctx CallCheckerContext)
}

// Default returns the registered call checkers in the order they run.
func Default() []CallChecker {
	return []CallChecker{
		BuilderInferenceAssignment{},
		ValReassignment{},
	}
}

// Run invokes every checker for every call, calls in the given order. With
// no checkers given, Default() is used.
func Run(calls []*descriptors.ResolvedCall, ctx CallCheckerContext, checkers ...CallChecker) {
	if len(checkers) == 0 {
		checkers = Default()
	}
	for _, call := range calls {
		if call == nil {
			continue
		}
		var reportOn ast.Node
		if call.Element != nil {
			reportOn = call.Element
		}
		for _, c := range checkers {
			c.Check(call, reportOn, ctx)
		}
	}
}

// spanLength is the width to underline for n: its extent on a single line,
// or 1 when it spans lines.
func spanLength(n ast.Node) int {
	start, end := n.NodePos(), n.NodeEndPos()
	if start.Line == end.Line && end.Column > start.Column {
		return end.Column - start.Column
	}
	return 1
}
