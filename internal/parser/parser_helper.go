package parser

import "brick/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkNext(tt TokenType) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{Type: ILLEGAL, Position: p.peek().Position}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAt(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// adjacent reports whether b starts right where a ends, as in "return@outer".
func adjacent(a, b Token) bool {
	return a.Position.Offset+len(a.Lexeme) == b.Position.Offset
}

func (p *Parser) errorAtCurrent(message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.peek().Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return tok.Position
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: tok.Position.Filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) endOfPrevious() ast.Position {
	return p.makeEndPos(p.previous())
}

// synchronize skips tokens until something that can start a declaration or
// a statement on a fresh line.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON {
			return
		}

		switch p.peek().Type {
		case FUN, VAL, VAR, CLASS, OPEN, SEALED, ENUM, BUILDER, RIGHT_BRACE:
			return
		}
		if p.peek().NewlineBefore {
			return
		}

		p.advance()
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Pos: tok.Position, EndPos: tok.Position, Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

func (p *Parser) skipSemicolons() {
	for p.match(SEMICOLON) {
	}
}
