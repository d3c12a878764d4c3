package lsp

import (
	"strings"

	"brick/internal/ast"
	"brick/internal/errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ConvertDiagnostics transforms compiler diagnostics into LSP diagnostics.
// Suggestions and notes are appended to the message, since clients show
// related information inconsistently.
func ConvertDiagnostics(diags []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(diags))

	for _, d := range diags {
		message := d.Message
		var extra []string
		for _, s := range d.Suggestions {
			extra = append(extra, "help: "+s.Message)
		}
		for _, n := range d.Notes {
			extra = append(extra, "note: "+n)
		}
		if len(extra) > 0 {
			message += "\n" + strings.Join(extra, "\n")
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(d.Position, d.Length),
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString("brick"),
			Message:  message,
		})
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

// spanRange converts a 1-based position and a length into a 0-based range on
// one line.
func spanRange(pos ast.Position, length int) protocol.Range {
	start := toProtocolPosition(pos)
	if length < 1 {
		length = 1
	}
	return protocol.Range{
		Start: start,
		End:   protocol.Position{Line: start.Line, Character: start.Character + uint32(length)},
	}
}

func nodeRange(n ast.Node) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(n.NodePos()),
		End:   toProtocolPosition(n.NodeEndPos()),
	}
}

func toProtocolPosition(pos ast.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
