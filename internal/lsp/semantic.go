package lsp

import (
	"brick/internal/analysis"
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/semantic"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies declared names by their declaration and
// references by what they resolved to. Unresolved references get no token.
func collectSemanticTokens(snapshot *analysis.Snapshot) []SemanticToken {
	var tokens []SemanticToken
	if snapshot == nil || snapshot.File == nil {
		return tokens
	}
	binding := snapshot.Result.Binding

	ast.Inspect(snapshot.File, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.EnumDecl:
			tokens = append(tokens, makeToken(v.Name, "type", "declaration")...)
			for _, entry := range v.Entries {
				tokens = append(tokens, makeToken(entry, "enumMember", "declaration", "readonly")...)
			}
		case *ast.ClassDecl:
			tokens = append(tokens, makeToken(v.Name, "type", "declaration")...)
			if v.Super != nil {
				tokens = append(tokens, makeToken(*v.Super, "type")...)
			}
		case *ast.BuilderDecl:
			tokens = append(tokens, makeToken(v.Name, "type", "declaration")...)
			tokens = append(tokens, makeToken(v.TypeParam, "typeParameter", "declaration")...)
		case *ast.FunDecl:
			tokens = append(tokens, makeToken(v.Name, "function", "declaration")...)
		case *ast.Param:
			tokens = append(tokens, makeToken(v.Name, "parameter", "declaration")...)
		case *ast.PropertyDecl:
			tokens = append(tokens, walkProperty(v)...)
		case *ast.TypeRef:
			tokens = append(tokens, walkTypeRef(v)...)
		case *ast.BuildExpr:
			tokens = append(tokens, makeToken(v.Builder, "type")...)
		case *ast.NameRef:
			tokens = append(tokens, walkNameRef(binding, v)...)
		}
		return true
	})

	return tokens
}

func walkProperty(p *ast.PropertyDecl) []SemanticToken {
	tokenType := "variable"
	switch p.Parent().(type) {
	case *ast.BuilderDecl, *ast.File:
		tokenType = "property"
	}
	if p.Mutable {
		return makeToken(p.Name, tokenType, "declaration")
	}
	return makeToken(p.Name, tokenType, "declaration", "readonly")
}

func walkTypeRef(ref *ast.TypeRef) []SemanticToken {
	if b, ok := ast.ParentOfType[*ast.BuilderDecl](ref, true); ok && b.TypeParam.Value == ref.Name.Value {
		return makeToken(ref.Name, "typeParameter")
	}
	return makeToken(ref.Name, "type")
}

func walkNameRef(binding *semantic.BindingContext, n *ast.NameRef) []SemanticToken {
	call := binding.ResolvedCallOf(n)
	if call == nil {
		return nil
	}
	name := ast.Ident{Pos: n.Pos, EndPos: n.EndPos, Value: n.Name}

	switch d := call.Resulting.(type) {
	case *descriptors.FunctionDescriptor:
		return makeToken(name, "function")
	case *descriptors.ClassDescriptor, *descriptors.BuilderDescriptor:
		return makeToken(name, "type")
	case *descriptors.EnumEntryDescriptor:
		return makeToken(name, "enumMember", "readonly")
	case *descriptors.ValueParameterDescriptor:
		return makeToken(name, "parameter")
	case *descriptors.LocalVariableDescriptor:
		if d.Mutable {
			return makeToken(name, "variable")
		}
		return makeToken(name, "variable", "readonly")
	case *descriptors.PropertyDescriptor:
		modifiers := []string{}
		if !d.Mutable {
			modifiers = append(modifiers, "readonly")
		}
		if call.CandidateReturnType().IsStub() {
			modifiers = append(modifiers, "stub")
		}
		return makeToken(name, "property", modifiers...)
	}
	return nil
}

// makeToken creates a semantic token for an identifier. Identifiers are
// ASCII, so their byte length is their length in UTF-16 code units.
func makeToken(name ast.Ident, tokenType string, modifiers ...string) []SemanticToken {
	if name.Value == "" || name.Pos.Line < 1 || name.Pos.Column < 1 {
		return nil
	}

	mask := 0
	for _, m := range modifiers {
		mask |= 1 << indexOf(m, SemanticTokenModifiers)
	}

	return []SemanticToken{{
		Line:           uint32(name.Pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(name.Pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(name.Value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: mask,
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
