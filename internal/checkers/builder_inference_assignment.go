package checkers

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
)

// BuilderInferenceAssignment checks assignments to builder members whose
// type was a stub when the assignment was resolved.
//
// Inside "build Box { content = x }" the member content has the stub type
// Stub(T) during resolution, so the general assignment check cannot compare
// x against it. Once T is inferred the resulting descriptor carries the real
// type, and this checker verifies x against it. A smart cast on x is
// accepted when one of its stable narrowed types fits.
type BuilderInferenceAssignment struct{}

// Check reports a TYPE_MISMATCH at the assigned value when neither its
// static type nor a stable narrowed type fits the inferred member type.
func (BuilderInferenceAssignment) Check(call *descriptors.ResolvedCall, reportOn ast.Node, ctx CallCheckerContext) {
	if call == nil {
		return
	}
	property, ok := call.Resulting.(*descriptors.PropertyDescriptor)
	if !ok {
		return
	}
	if !call.CandidateReturnType().IsStub() {
		return
	}
	name, ok := reportOn.(*ast.NameRef)
	if !ok {
		return
	}
	binary, ok := ast.ParentOfType[*ast.BinaryExpr](name, true)
	if !ok || !ast.IsLValue(name, binary) {
		return
	}

	leftType := property.ReturnType
	if leftType == nil || leftType.IsError() {
		return
	}
	right := binary.Right
	if right == nil || ctx.Types == nil || ctx.Subtypes == nil {
		return
	}
	rightType := ctx.Types.TypeOf(right)
	if rightType == nil || rightType.IsError() {
		return
	}

	if ctx.Subtypes.IsSubtypeOf(rightType, leftType) {
		return
	}
	if ctx.Flow != nil {
		for _, narrowed := range ctx.Flow.StableTypes(right, rightType, ctx.Settings) {
			if ctx.Subtypes.IsSubtypeOf(narrowed, leftType) {
				return
			}
		}
	}

	if ctx.Sink != nil {
		ctx.Sink.Report(errors.TypeMismatch(leftType.String(), rightType.String(), right.NodePos(), spanLength(right)))
	}
}
