package lsp

import (
	"fmt"
	"strings"

	"brick/internal/analysis"
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/semantic"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentHover shows the static type of the expression under the
// cursor, whether its value is used, and for returns the function or lambda
// they leave.
func (h *BrickHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	expr := doc.snapshot.ExprAt(int(params.Position.Line)+1, int(params.Position.Character)+1)
	if expr == nil {
		return nil, nil
	}
	rng := nodeRange(expr)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: describe(doc.snapshot, expr),
		},
		Range: &rng,
	}, nil
}

func describe(s *analysis.Snapshot, expr ast.Expr) string {
	binding := s.Result.Binding
	var lines []string

	if t := binding.TypeOf(expr); t != nil {
		lines = append(lines, fmt.Sprintf("`%s`", t))
	}
	if name, ok := expr.(*ast.NameRef); ok {
		if call := binding.ResolvedCallOf(name); call != nil && call.CandidateReturnType().IsStub() {
			lines = append(lines, fmt.Sprintf("inferred from `%s` while the builder was analyzed", call.CandidateReturnType()))
		}
	}

	if s.Info.IsUsedAsExpression(expr) {
		lines = append(lines, "value used")
	} else {
		lines = append(lines, "value discarded")
	}

	switch e := expr.(type) {
	case *ast.ReturnExpr:
		lines = append(lines, "returns from "+describeTarget(s.Info.ReturnExpressionTargetSymbol(e)))
	case *ast.WhenExpr:
		if missing := s.Info.WhenMissingCases(e); len(missing) > 0 {
			lines = append(lines, "missing: "+strings.Join(conditionTexts(missing), ", "))
		}
	}
	return strings.Join(lines, "\n\n")
}

func describeTarget(d descriptors.Descriptor) string {
	switch d := d.(type) {
	case *descriptors.FunctionDescriptor:
		return fmt.Sprintf("function `%s`", d.Name)
	case *descriptors.AnonymousFunctionDescriptor:
		if len(d.Labels) > 0 {
			return fmt.Sprintf("lambda `@%s`", d.Labels[0])
		}
		return "lambda"
	}
	return "nothing (unresolved)"
}

func conditionTexts(cases []semantic.MissingCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.BranchConditionText()
	}
	return out
}

// TextDocumentCodeAction offers "Add remaining branches" for a when at the
// start of the requested range.
func (h *BrickHandler) TextDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	w := doc.snapshot.WhenAt(int(params.Range.Start.Line)+1, int(params.Range.Start.Character)+1)
	if w == nil {
		return []protocol.CodeAction{}, nil
	}
	missing := doc.snapshot.Info.WhenMissingCases(w)
	if len(missing) == 0 {
		return []protocol.CodeAction{}, nil
	}

	kind := protocol.CodeActionKind(protocol.CodeActionKindQuickFix)
	return []protocol.CodeAction{{
		Title: "Add remaining branches",
		Kind:  &kind,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				params.TextDocument.URI: {remainingBranchesEdit(doc.snapshot.Source, w, missing)},
			},
		},
	}}, nil
}

// remainingBranchesEdit inserts one branch per missing case before the
// closing brace of w, indented one level deeper than the when itself.
func remainingBranchesEdit(source string, w *ast.WhenExpr, missing []semantic.MissingCase) protocol.TextEdit {
	lines := strings.Split(source, "\n")
	indent := ""
	if w.Pos.Line-1 < len(lines) {
		line := lines[w.Pos.Line-1]
		indent = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	}

	var b strings.Builder
	for _, c := range missing {
		fmt.Fprintf(&b, "%s    %s -> error(\"not implemented\")\n", indent, c.BranchConditionText())
	}

	at := toProtocolPosition(w.RBrace)
	closingOnOwnLine := false
	if w.RBrace.Line-1 < len(lines) {
		line := lines[w.RBrace.Line-1]
		col := min(max(w.RBrace.Column-1, 0), len(line))
		closingOnOwnLine = strings.TrimSpace(line[:col]) == ""
	}
	if closingOnOwnLine {
		at.Character = 0
		return protocol.TextEdit{Range: protocol.Range{Start: at, End: at}, NewText: b.String()}
	}
	return protocol.TextEdit{Range: protocol.Range{Start: at, End: at}, NewText: "\n" + b.String() + indent}
}
