package parser

import (
	"strconv"

	"brick/internal/ast"
)

const assignmentPrecedence = 1

var binaryPrecedence = map[string]int{
	"=": assignmentPrecedence, "+=": assignmentPrecedence, "-=": assignmentPrecedence,
	"||": 2,
	"&&": 3,
	"==": 4, "!=": 4,
	"<": 5, "<=": 5, ">": 5, ">=": 5,
	"is": 6, "!is": 6,
	"+": 7, "-": 7,
	"*": 8, "/": 8, "%": 8,
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parsePrattExpr(assignmentPrecedence)
}

// parsePrattExpr folds binary operators by precedence. An operator that
// starts a new line ends the expression, so statements need no separator.
func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		if tok.NewlineBefore {
			break
		}

		op := tok.Lexeme
		if tok.Type == BANG && p.checkNext(IS) {
			op = "!is"
		}
		prec, ok := binaryPrecedence[op]
		if !ok || prec < minPrec || (tok.Type != IS && tok.Type != BANG && !isOperatorToken(tok.Type)) {
			break
		}

		p.advance()
		if op == "!is" {
			p.advance()
		}

		if op == "is" || op == "!is" {
			typ := p.parseType()
			expr = &ast.IsExpr{
				Pos:     expr.NodePos(),
				EndPos:  typ.EndPos,
				Operand: expr,
				Type:    typ,
				Negated: op == "!is",
			}
			continue
		}

		next := prec + 1
		if prec == assignmentPrecedence {
			next = prec
		}
		right := p.parsePrattExpr(next)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op,
			OpPos:  p.makePos(tok),
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func isOperatorToken(tt TokenType) bool {
	switch tt {
	case EQUAL, PLUS_EQUAL, MINUS_EQUAL, OR, AND, EQUAL_EQUAL, BANG_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, PLUS, MINUS, STAR, SLASH, PERCENT:
		return true
	}
	return false
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.check(BANG) || p.check(MINUS) {
		op := p.advance()
		operand := p.parsePrefixExpr()
		return &ast.UnaryExpr{
			Pos:     p.makePos(op),
			EndPos:  operand.NodeEndPos(),
			Op:      op.Lexeme,
			Operand: operand,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePostfixExpr handles member access, call arguments and trailing
// lambdas. Member access may continue on the next line; calls may not.
func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		tok := p.peek()
		switch {
		case tok.Type == DOT:
			p.advance()
			nameTok := p.consume(IDENTIFIER, "expected member name after '.'")
			selector := &ast.NameRef{Pos: p.makePos(nameTok), EndPos: p.makeEndPos(nameTok), Name: nameTok.Lexeme}
			expr = &ast.DotExpr{
				Pos:      expr.NodePos(),
				EndPos:   selector.EndPos,
				Receiver: expr,
				Selector: selector,
			}

		case tok.Type == LEFT_PAREN && !tok.NewlineBefore:
			args := p.parseCallArgs()
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.endOfPrevious(),
				Callee: expr,
				Args:   args,
			}

		case !tok.NewlineBefore && acceptsTrailingLambda(expr) && p.startsLambda():
			lambda := p.parseLambda()
			if call, ok := expr.(*ast.CallExpr); ok {
				call.Lambda = lambda
				call.EndPos = lambda.EndPos
			} else {
				expr = &ast.CallExpr{
					Pos:    expr.NodePos(),
					EndPos: lambda.EndPos,
					Callee: expr,
					Lambda: lambda,
				}
			}

		default:
			return expr
		}
	}
}

func acceptsTrailingLambda(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.NameRef, *ast.DotExpr:
		return true
	case *ast.CallExpr:
		return e.Lambda == nil
	}
	return false
}

func (p *Parser) startsLambda() bool {
	if p.check(LEFT_BRACE) {
		return true
	}
	return p.check(IDENTIFIER) && p.checkNext(AT) && adjacent(p.peek(), p.peekAt(1)) &&
		p.peekAt(2).Type == LEFT_BRACE
}

func (p *Parser) parseCallArgs() []ast.Expr {
	p.consume(LEFT_PAREN, "expected '('")
	var args []ast.Expr
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		args = append(args, p.parseExpression())
		if !p.match(COMMA) {
			break
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after arguments")
	return args
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case NUMBER:
		p.advance()
		return p.literal(tok, ast.IntLiteral, tok.Lexeme)
	case STRING:
		p.advance()
		value, err := strconv.Unquote(tok.Lexeme)
		if err != nil {
			value = tok.Lexeme
		}
		return p.literal(tok, ast.StringLiteral, value)
	case TRUE, FALSE:
		p.advance()
		return p.literal(tok, ast.BoolLiteral, tok.Lexeme)
	case NULL:
		p.advance()
		return p.literal(tok, ast.NullLiteral, "null")

	case IDENTIFIER:
		if p.startsLambda() {
			return p.parseLambda()
		}
		p.advance()
		return &ast.NameRef{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}

	case LEFT_BRACE:
		return p.parseLambda()

	case LEFT_PAREN:
		p.advance()
		inner := p.parseExpression()
		p.consume(RIGHT_PAREN, "expected ')' after expression")
		return &ast.ParenExpr{Pos: p.makePos(tok), EndPos: p.endOfPrevious(), Inner: inner}

	case IF:
		return p.parseIf()
	case WHEN:
		return p.parseWhen()
	case TRY:
		return p.parseTry()
	case WHILE:
		return p.parseWhile()
	case RETURN:
		return p.parseReturn()
	case THROW:
		return p.parseThrow()
	case BUILD:
		return p.parseBuild()
	}

	p.errorAtCurrent("expected expression")
	if !p.isAtEnd() && !p.check(RIGHT_BRACE) {
		p.advance()
	}
	return &ast.BadExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Message: "expected expression"}
}

func (p *Parser) literal(tok Token, kind ast.LiteralKind, value string) *ast.Literal {
	return &ast.Literal{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Kind: kind, Value: value}
}
