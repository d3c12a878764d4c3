package semantic

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/types"
)

// FlowAnalyzer looks for statements that can never run and for functions
// that can finish without returning a value. It runs after typing, since a
// statement jumps exactly when its type is Nothing.
type FlowAnalyzer struct {
	analyzer *Analyzer // Reference to main analyzer for error reporting
}

func NewFlowAnalyzer(analyzer *Analyzer) *FlowAnalyzer {
	return &FlowAnalyzer{analyzer: analyzer}
}

func (fa *FlowAnalyzer) AnalyzeFile(file *ast.File) {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FunDecl); ok && fn.Body != nil {
			fa.checkReturns(fn)
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		if b, ok := n.(*ast.Block); ok {
			fa.checkUnreachable(b)
		}
		return true
	})
}

// checkUnreachable reports the first statement after one that always jumps.
// Only one warning is given per block.
func (fa *FlowAnalyzer) checkUnreachable(b *ast.Block) {
	for i := 0; i < len(b.Stmts)-1; i++ {
		if fa.jumps(b.Stmts[i]) {
			fa.analyzer.addCompilerError(errors.UnreachableCode(b.Stmts[i+1].NodePos()))
			return
		}
	}
}

func (fa *FlowAnalyzer) checkReturns(fn *ast.FunDecl) {
	fd, ok := fa.analyzer.binding.declarations[fn].(*descriptors.FunctionDescriptor)
	if !ok {
		return
	}
	rt := fd.ReturnType
	if rt == nil || rt.IsError() || rt.Equals(types.UnitType) {
		return
	}
	stmts := fn.Body.Stmts
	if len(stmts) > 0 && fa.jumps(stmts[len(stmts)-1]) {
		return
	}
	fa.analyzer.addCompilerError(errors.MissingReturn(fd.Name, rt.String(), fn.Name.Pos))
}

func (fa *FlowAnalyzer) jumps(stmt ast.Stmt) bool {
	binding := fa.analyzer.binding
	switch s := stmt.(type) {
	case *ast.PropertyDecl:
		return s.Init != nil && isJump(binding.TypeOf(s.Init))
	case ast.Expr:
		return isJump(binding.TypeOf(s))
	}
	return false
}
