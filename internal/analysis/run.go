package analysis

import (
	"time"

	"brick/internal/ast"
	"brick/internal/errors"
	"brick/internal/language"
	"brick/internal/parser"
	"brick/internal/semantic"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("brick.analysis")

// Snapshot is one analyzed version of a source file.
type Snapshot struct {
	Path        string
	Source      string
	File        *ast.File
	Result      *semantic.Result
	Info        *ExpressionInfo
	Diagnostics []errors.CompilerError // Syntax, semantic and usage diagnostics by position
}

// Run parses and analyzes source. Syntax errors do not stop the analysis;
// the parser recovers and the rest of the file is still checked.
func Run(path, source string, settings language.Settings) *Snapshot {
	start := time.Now()
	file, parseErrors, scanErrors := parser.ParseSource(path, source)

	collector := errors.NewCollector()
	for _, e := range scanErrors {
		d := errors.SyntaxError(e.Message, e.Position)
		d.Length = e.Length
		collector.Report(d)
	}
	for _, e := range parseErrors {
		collector.Report(errors.SyntaxError(e.Message, e.Position))
	}

	result := semantic.NewAnalyzer(settings).Analyze(file)
	for _, d := range result.Diagnostics {
		collector.Report(d)
	}
	Diagnose(file, result, collector)

	diagnostics := collector.Diagnostics()
	errors.SortByPosition(diagnostics)
	log.Debugf("%s: %d diagnostics in %s", path, len(diagnostics), time.Since(start))

	return &Snapshot{
		Path:        path,
		Source:      source,
		File:        file,
		Result:      result,
		Info:        NewExpressionInfo(result.Binding),
		Diagnostics: diagnostics,
	}
}

// ExprAt returns the innermost expression covering the 1-based position.
func (s *Snapshot) ExprAt(line, column int) ast.Expr {
	return ast.ExprAt(s.File, line, column)
}

// WhenAt returns the innermost when covering the 1-based position, or nil.
func (s *Snapshot) WhenAt(line, column int) *ast.WhenExpr {
	expr := s.ExprAt(line, column)
	if expr == nil {
		return nil
	}
	if w, ok := expr.(*ast.WhenExpr); ok {
		return w
	}
	w, _ := ast.ParentOfType[*ast.WhenExpr](expr, true)
	return w
}
