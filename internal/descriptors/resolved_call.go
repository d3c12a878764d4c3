package descriptors

import (
	"brick/internal/ast"
	"brick/internal/types"
)

// ResolvedCall records what a name reference resolved to.
//
// Candidate is the descriptor as seen during resolution. Inside a builder
// lambda whose type argument is still being inferred, a member typed with the
// builder's type parameter has a stub return type there. Resulting is the same
// descriptor after inference has substituted the real type.
type ResolvedCall struct {
	Element   *ast.NameRef
	Candidate Descriptor
	Resulting Descriptor
}

// CandidateReturnType is the type of the call before inference results were
// applied. It may be a stub.
func (c *ResolvedCall) CandidateReturnType() *types.Type {
	if c == nil {
		return nil
	}
	return ReturnTypeOf(c.Candidate)
}

// ResultingReturnType is the type of the call after substitution.
func (c *ResolvedCall) ResultingReturnType() *types.Type {
	if c == nil {
		return nil
	}
	return ReturnTypeOf(c.Resulting)
}
