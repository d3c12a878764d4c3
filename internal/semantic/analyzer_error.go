package semantic

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
)

func (a *Analyzer) addError(code, message string, pos ast.Position) {
	a.addCompilerError(errors.NewSemanticError(code, message, pos).Build())
}

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) addUnresolvedReferenceError(n *ast.NameRef) {
	similar := errors.FindSimilarNames(n.Name, a.scope.Names())
	a.addCompilerError(errors.UnresolvedReference(n.Name, n.Pos, similar))
}

func (a *Analyzer) addUnresolvedMemberError(n *ast.NameRef, candidates []string) {
	a.addCompilerError(errors.UnresolvedReference(n.Name, n.Pos, errors.FindSimilarNames(n.Name, candidates)))
}

func (a *Analyzer) addDuplicateDeclarationError(name ast.Ident) {
	a.addCompilerError(errors.DuplicateDeclaration(name.Value, name.Pos))
}

func (a *Analyzer) addNotAValueError(n *ast.NameRef, d descriptors.Descriptor) {
	a.addError(errors.ErrorInvalidOperation, fmt.Sprintf("%s cannot be used as a value", d), n.Pos)
}

func (a *Analyzer) addUntypedReferenceError(n *ast.NameRef) {
	a.addError(errors.ErrorUnresolvedType,
		fmt.Sprintf("type of '%s' cannot be inferred here because it depends on itself", n.Name), n.Pos)
}

func (a *Analyzer) addInvalidOperationError(op, left, right string, pos ast.Position) {
	operands := fmt.Sprintf("'%s'", left)
	if right != "" {
		operands = fmt.Sprintf("'%s' and '%s'", left, right)
	}
	a.addCompilerError(errors.InvalidOperation(op, operands, pos))
}
