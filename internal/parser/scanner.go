package parser

import (
	"errors"

	"brick/grammar"
	"brick/internal/ast"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position ast.Position
	// NewlineBefore is set when at least one line break separates this token
	// from the previous significant token.
	NewlineBefore bool
}

type ScanError struct {
	Message  string
	Position ast.Position
	Length   int
}

// Scanner turns source text into parser tokens using the participle lexer
// from the grammar package.
type Scanner struct {
	filename string
	source   string
	errors   []ScanError
}

func NewScanner(filename, source string) *Scanner {
	return &Scanner{filename: filename, source: source}
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	eof := ast.Position{Filename: s.filename, Line: 1, Column: 1}

	lex, err := grammar.BrickLexer.LexString(s.filename, s.source)
	if err != nil {
		s.addError(err)
		return append(tokens, Token{Type: EOF, Position: eof})
	}

	symbols := lexer.SymbolsByRune(grammar.BrickLexer)
	newline := false
	for {
		tok, err := lex.Next()
		if err != nil {
			s.addError(err)
			break
		}
		pos := ast.Position{
			Filename: s.filename,
			Offset:   tok.Pos.Offset,
			Line:     tok.Pos.Line,
			Column:   tok.Pos.Column,
		}
		if tok.EOF() {
			eof = pos
			break
		}

		switch symbols[tok.Type] {
		case "Whitespace", "Comment":
			continue
		case "Newline":
			newline = true
			continue
		case "Ident":
			tt, ok := KEYWORDS[tok.Value]
			if !ok {
				tt = IDENTIFIER
			}
			tokens = append(tokens, Token{Type: tt, Lexeme: tok.Value, Position: pos, NewlineBefore: newline})
		case "Int":
			tokens = append(tokens, Token{Type: NUMBER, Lexeme: tok.Value, Position: pos, NewlineBefore: newline})
		case "String":
			tokens = append(tokens, Token{Type: STRING, Lexeme: tok.Value, Position: pos, NewlineBefore: newline})
		default:
			tt, ok := punctuators[tok.Value]
			if !ok {
				s.errors = append(s.errors, ScanError{Message: "unexpected character " + tok.Value, Position: pos, Length: len(tok.Value)})
				tt = ILLEGAL
			}
			tokens = append(tokens, Token{Type: tt, Lexeme: tok.Value, Position: pos, NewlineBefore: newline})
		}
		newline = false
	}

	return append(tokens, Token{Type: EOF, Position: eof, NewlineBefore: true})
}

func (s *Scanner) addError(err error) {
	var perr participle.Error
	if errors.As(err, &perr) {
		p := perr.Position()
		s.errors = append(s.errors, ScanError{
			Message:  perr.Message(),
			Position: ast.Position{Filename: s.filename, Offset: p.Offset, Line: p.Line, Column: p.Column},
			Length:   1,
		})
		return
	}
	s.errors = append(s.errors, ScanError{Message: err.Error(), Position: ast.Position{Filename: s.filename, Line: 1, Column: 1}})
}
