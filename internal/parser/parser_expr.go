package parser

import "brick/internal/ast"

// parseBlock parses "{ stmt* }". Statements are separated by newlines or
// semicolons.
func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(LEFT_BRACE, "expected '{'")
	block := &ast.Block{Pos: p.makePos(start)}
	block.Stmts = p.parseStatements()
	p.consume(RIGHT_BRACE, "expected '}' to close block")
	block.EndPos = p.endOfPrevious()
	return block
}

func (p *Parser) parseStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		p.skipSemicolons()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			return stmts
		}
		before := p.current
		stmts = append(stmts, p.parseStatement())
		if p.current == before {
			p.synchronize()
			continue
		}
		next := p.peek()
		if !next.NewlineBefore && next.Type != SEMICOLON && next.Type != RIGHT_BRACE && next.Type != EOF {
			p.errorAtCurrent("expected newline or ';' after statement")
			p.synchronize()
		}
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	if p.check(VAL) || p.check(VAR) {
		return p.parseProperty()
	}
	return p.parseExpression()
}

// parseLambda parses "{ ... }" and "label@{ ... }".
func (p *Parser) parseLambda() *ast.LambdaExpr {
	start := p.peek()
	lambda := &ast.LambdaExpr{Pos: p.makePos(start)}
	if p.check(IDENTIFIER) {
		label := p.makeIdent(p.advance())
		lambda.Label = &label
		p.consume(AT, "expected '@' after label")
	}
	lambda.Body = p.parseBlock()
	lambda.EndPos = lambda.Body.EndPos
	return lambda
}

// parseControlBody parses the body of if/when/while: a block or a single
// expression.
func (p *Parser) parseControlBody() ast.Expr {
	if p.check(LEFT_BRACE) {
		return p.parseBlock()
	}
	return p.parseExpression()
}

func (p *Parser) parseCondition(construct string) ast.Expr {
	p.consume(LEFT_PAREN, "expected '(' after '"+construct+"'")
	cond := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after condition")
	return cond
}

func (p *Parser) parseIf() ast.Expr {
	start := p.advance()
	expr := &ast.IfExpr{Pos: p.makePos(start)}
	expr.Cond = p.parseCondition("if")
	expr.Then = p.parseControlBody()

	// "else" may sit on the next line, possibly after a ';'.
	save := p.current
	p.skipSemicolons()
	if p.match(ELSE) {
		expr.Else = p.parseControlBody()
	} else {
		p.current = save
	}
	expr.EndPos = p.endOfPrevious()
	return expr
}

func (p *Parser) parseWhen() ast.Expr {
	start := p.advance()
	expr := &ast.WhenExpr{Pos: p.makePos(start)}
	if p.check(LEFT_PAREN) {
		p.advance()
		expr.Subject = p.parseExpression()
		p.consume(RIGHT_PAREN, "expected ')' after when subject")
	}
	p.consume(LEFT_BRACE, "expected '{' after when")

	for {
		p.skipSemicolons()
		if p.check(RIGHT_BRACE) || p.isAtEnd() {
			break
		}
		before := p.current
		expr.Branches = append(expr.Branches, p.parseWhenBranch())
		if p.current == before {
			p.synchronize()
		}
	}

	expr.RBrace = p.peek().Position
	p.consume(RIGHT_BRACE, "expected '}' to close when")
	expr.EndPos = p.endOfPrevious()
	return expr
}

func (p *Parser) parseWhenBranch() *ast.WhenBranch {
	start := p.peek()
	branch := &ast.WhenBranch{Pos: p.makePos(start)}

	if p.match(ELSE) {
		branch.Else = true
	} else {
		for {
			branch.Conditions = append(branch.Conditions, p.parseWhenCondition())
			if !p.match(COMMA) {
				break
			}
		}
	}

	p.consume(ARROW, "expected '->' in when branch")
	branch.Body = p.parseControlBody()
	branch.EndPos = p.endOfPrevious()
	return branch
}

func (p *Parser) parseWhenCondition() *ast.WhenCondition {
	start := p.peek()
	cond := &ast.WhenCondition{Pos: p.makePos(start)}
	switch {
	case p.match(IS):
		cond.IsType = p.parseType()
	case p.check(BANG) && p.checkNext(IS):
		p.advance()
		p.advance()
		cond.IsType = p.parseType()
		cond.Negated = true
	default:
		cond.Value = p.parseExpression()
	}
	cond.EndPos = p.endOfPrevious()
	return cond
}

func (p *Parser) parseTry() ast.Expr {
	start := p.advance()
	expr := &ast.TryExpr{Pos: p.makePos(start)}
	expr.Body = p.parseBlock()

	for p.check(CATCH) {
		catchTok := p.advance()
		p.consume(LEFT_PAREN, "expected '(' after 'catch'")
		param := p.parseParam()
		p.consume(RIGHT_PAREN, "expected ')' after catch parameter")
		body := p.parseBlock()
		expr.Catches = append(expr.Catches, &ast.CatchClause{
			Pos:    p.makePos(catchTok),
			EndPos: body.EndPos,
			Param:  param,
			Body:   body,
		})
	}
	if p.match(FINALLY) {
		expr.Finally = p.parseBlock()
	}
	if len(expr.Catches) == 0 && expr.Finally == nil {
		p.errorAtCurrent("expected 'catch' or 'finally' after try block")
	}
	expr.EndPos = p.endOfPrevious()
	return expr
}

func (p *Parser) parseWhile() ast.Expr {
	start := p.advance()
	expr := &ast.WhileExpr{Pos: p.makePos(start)}
	expr.Cond = p.parseCondition("while")
	expr.Body = p.parseControlBody()
	expr.EndPos = p.endOfPrevious()
	return expr
}

func (p *Parser) parseReturn() ast.Expr {
	start := p.advance()
	expr := &ast.ReturnExpr{Pos: p.makePos(start)}

	if p.check(AT) && adjacent(start, p.peek()) {
		p.advance()
		label, ok := p.consumeIdent("expected label after '@'")
		if ok {
			expr.Label = &label
		}
	}
	if p.startsValue() {
		expr.Value = p.parseExpression()
	}
	expr.EndPos = p.endOfPrevious()
	return expr
}

// startsValue reports whether the next token, on the same line, can begin
// the value of a return.
func (p *Parser) startsValue() bool {
	tok := p.peek()
	if tok.NewlineBefore {
		return false
	}
	switch tok.Type {
	case RIGHT_BRACE, RIGHT_PAREN, SEMICOLON, COMMA, ELSE, ARROW, EOF:
		return false
	}
	return true
}

func (p *Parser) parseThrow() ast.Expr {
	start := p.advance()
	value := p.parseExpression()
	return &ast.ThrowExpr{Pos: p.makePos(start), EndPos: value.NodeEndPos(), Value: value}
}

func (p *Parser) parseBuild() ast.Expr {
	start := p.advance()
	name, _ := p.consumeIdent("expected builder name after 'build'")
	expr := &ast.BuildExpr{Pos: p.makePos(start), Builder: name}

	if p.match(LESS) {
		expr.TypeArg = p.parseType()
		p.consume(GREATER, "expected '>' after type argument")
	}
	if !p.check(LEFT_BRACE) {
		p.errorAtCurrent("expected '{' to start build body")
		expr.Lambda = &ast.LambdaExpr{Pos: p.peek().Position, EndPos: p.peek().Position, Body: &ast.Block{Pos: p.peek().Position, EndPos: p.peek().Position}}
		expr.EndPos = p.endOfPrevious()
		return expr
	}
	expr.Lambda = p.parseLambda()
	expr.EndPos = expr.Lambda.EndPos
	return expr
}
