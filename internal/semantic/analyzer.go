// Package semantic resolves names, computes static types and flow facts,
// and performs builder inference for a parsed Brick file.
package semantic

import (
	"brick/internal/ast"
	"brick/internal/checkers"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/flow"
	"brick/internal/language"
	"brick/internal/types"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("brick.semantic")

// expectation is a type requirement checked once all inference is done.
type expectation struct {
	expr     ast.Expr
	expected *types.Type
}

type Analyzer struct {
	settings  language.Settings
	file      *ast.File
	binding   *BindingContext
	hierarchy *types.Hierarchy
	errors    []errors.CompilerError // All diagnostics, in report order

	prelude *Scope
	globals *Scope
	scope   *Scope

	frames    []frame
	callables []descriptors.Descriptor // Enclosing functions and lambdas, innermost last
	builds    []*buildState            // Enclosing build expressions, innermost last
	info      *flow.Info               // Flow facts at the current point

	expectations  []expectation
	lambdaResults map[*ast.LambdaExpr]*types.Type
	memberArgs    map[*ast.NameRef]*types.Type // Type argument a builder member was resolved with
	stubbedLocals []*descriptors.LocalVariableDescriptor
	analyzed      map[ast.Node]bool
}

// Result is everything one analysis produced.
type Result struct {
	File        *ast.File
	Binding     *BindingContext
	Hierarchy   *types.Hierarchy
	Settings    language.Settings
	Diagnostics []errors.CompilerError
}

func NewAnalyzer(settings language.Settings) *Analyzer {
	return &Analyzer{settings: settings}
}

// Analyze runs all passes over file. Problems in the program are reported
// as diagnostics; Analyze itself never fails.
func (a *Analyzer) Analyze(file *ast.File) *Result {
	a.reset(file)
	log.Debugf("analyzing %s: %d declarations", file.Pos.Filename, len(file.Decls))

	// Pass 1: every declaration is known before any body is looked at, so
	// declarations may refer to each other in any order.
	a.declarePrelude()
	a.collectDeclarations(file)

	// Pass 2: bodies and initializers. Expression-bodied functions without a
	// declared type go first so callers see their inferred type.
	a.inferExpressionBodies(file)
	a.analyzeBodies(file)

	// Pass 3: checks that need inference to be complete.
	a.checkExpectations()
	a.runCallCheckers()
	NewFlowAnalyzer(a).AnalyzeFile(file)

	errors.SortByPosition(a.errors)
	log.Debugf("analyzed %s: %d resolved calls, %d diagnostics", file.Pos.Filename, len(a.binding.calls), len(a.errors))

	return &Result{
		File:        file,
		Binding:     a.binding,
		Hierarchy:   a.hierarchy,
		Settings:    a.settings,
		Diagnostics: a.errors,
	}
}

// GetErrors returns the diagnostics of the last analysis.
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

func (a *Analyzer) reset(file *ast.File) {
	a.file = file
	a.hierarchy = types.NewHierarchy()
	a.binding = newBindingContext(a.hierarchy)
	a.errors = make([]errors.CompilerError, 0)
	a.prelude = NewScope(nil)
	a.globals = NewScope(a.prelude)
	a.scope = a.globals
	a.frames = nil
	a.callables = nil
	a.builds = nil
	a.info = flow.Empty
	a.expectations = nil
	a.lambdaResults = make(map[*ast.LambdaExpr]*types.Type)
	a.memberArgs = make(map[*ast.NameRef]*types.Type)
	a.stubbedLocals = nil
	a.analyzed = make(map[ast.Node]bool)
}

func (a *Analyzer) runCallCheckers() {
	checkers.Run(a.binding.ResolvedCalls(), checkers.CallCheckerContext{
		Types:    a.binding,
		Subtypes: a.hierarchy,
		Flow:     a.binding,
		Sink:     errors.SinkFunc(a.addCompilerError),
		Settings: a.settings,
	})
}

// checkExpectations verifies every recorded type requirement. Types that
// still mention a stub, or that failed to resolve, are skipped; the builder
// checker and the original diagnostics cover those.
func (a *Analyzer) checkExpectations() {
	for _, exp := range a.expectations {
		actual := a.binding.types[exp.expr]
		expected := exp.expected
		if actual == nil || expected == nil || actual.IsError() || expected.IsError() ||
			actual.ContainsStub() || expected.ContainsStub() {
			continue
		}
		if a.hierarchy.IsSubtypeOf(actual, expected) {
			continue
		}
		if a.narrowedFits(exp.expr, actual, expected) {
			continue
		}
		a.addCompilerError(errors.TypeMismatch(expected.String(), actual.String(), exp.expr.NodePos(), nodeLength(exp.expr)))
	}
}

func (a *Analyzer) narrowedFits(expr ast.Expr, actual, expected *types.Type) bool {
	for _, t := range a.binding.StableTypes(expr, actual, a.settings) {
		if a.hierarchy.IsSubtypeOf(t, expected) {
			return true
		}
	}
	return false
}
