package parser

import (
	"fmt"

	"brick/internal/ast"
)

type ParseError struct {
	Message  string
	Position ast.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseFile parses a whole source file. The returned tree is always non-nil
// and linked; declarations that failed to parse are dropped.
func (p *Parser) ParseFile() *ast.File {
	file := &ast.File{Pos: p.peek().Position}

	for !p.isAtEnd() {
		p.skipSemicolons()
		if p.isAtEnd() {
			break
		}
		before := p.current
		decl := p.parseDecl()
		if decl != nil {
			file.Decls = append(file.Decls, decl)
		}
		if decl == nil || p.current == before {
			p.synchronize()
		}
	}

	file.EndPos = p.peek().Position
	ast.Link(file)
	return file
}

func (p *Parser) parseDecl() ast.Decl {
	switch p.peek().Type {
	case ENUM:
		return p.parseEnum()
	case CLASS, OPEN, SEALED:
		return p.parseClass()
	case BUILDER:
		return p.parseBuilder()
	case FUN:
		return p.parseFunction()
	case VAL, VAR:
		return p.parseProperty()
	}
	p.errorAtCurrent(fmt.Sprintf("expected declaration, found '%s'", p.peek().Lexeme))
	return nil
}
