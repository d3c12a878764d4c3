package checkers

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
)

// ValReassignment reports assignments to vals, parameters and read-only
// builder members.
type ValReassignment struct{}

// Check reports VAL_REASSIGNMENT when reportOn is the target of an assignment
// to a read-only declaration.
func (ValReassignment) Check(call *descriptors.ResolvedCall, reportOn ast.Node, ctx CallCheckerContext) {
	if call == nil || ctx.Sink == nil {
		return
	}
	switch call.Resulting.(type) {
	case *descriptors.PropertyDescriptor, *descriptors.LocalVariableDescriptor, *descriptors.ValueParameterDescriptor:
	default:
		return
	}
	if descriptors.IsMutable(call.Resulting) {
		return
	}
	name, ok := reportOn.(*ast.NameRef)
	if !ok {
		return
	}
	binary, ok := ast.ParentOfType[*ast.BinaryExpr](name, true)
	if !ok || !ast.IsAssignmentTarget(name, binary) {
		return
	}
	ctx.Sink.Report(errors.ValReassignment(name.Name, name.Pos))
}
