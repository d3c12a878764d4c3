package parser

import "brick/internal/ast"

func (p *Parser) parseEnum() *ast.EnumDecl {
	start := p.consume(ENUM, "expected 'enum'")
	name, _ := p.consumeIdent("expected enum name")
	decl := &ast.EnumDecl{Pos: p.makePos(start), Name: name}

	p.consume(LEFT_BRACE, "expected '{' after enum name")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		entry, ok := p.consumeIdent("expected enum entry")
		if !ok {
			break
		}
		decl.Entries = append(decl.Entries, entry)
		if !p.match(COMMA) {
			break
		}
	}
	p.match(SEMICOLON)
	p.consume(RIGHT_BRACE, "expected '}' after enum entries")
	decl.EndPos = p.endOfPrevious()
	return decl
}

func (p *Parser) parseClass() *ast.ClassDecl {
	start := p.peek()
	modifier := ast.FinalClass
	switch {
	case p.match(OPEN):
		modifier = ast.OpenClass
	case p.match(SEALED):
		modifier = ast.SealedClass
	}
	p.consume(CLASS, "expected 'class'")
	name, _ := p.consumeIdent("expected class name")
	decl := &ast.ClassDecl{Pos: p.makePos(start), Modifier: modifier, Name: name}

	if p.match(COLON) {
		super, ok := p.consumeIdent("expected supertype name after ':'")
		if ok {
			decl.Super = &super
		}
	}
	decl.EndPos = p.endOfPrevious()
	return decl
}

func (p *Parser) parseBuilder() *ast.BuilderDecl {
	start := p.consume(BUILDER, "expected 'builder'")
	name, _ := p.consumeIdent("expected builder name")
	decl := &ast.BuilderDecl{Pos: p.makePos(start), Name: name}

	p.consume(LESS, "expected '<' after builder name")
	decl.TypeParam, _ = p.consumeIdent("expected type parameter name")
	p.consume(GREATER, "expected '>' after type parameter")
	p.consume(LEFT_BRACE, "expected '{' to start builder body")

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		p.skipSemicolons()
		if p.check(RIGHT_BRACE) {
			break
		}
		if !p.check(VAL) && !p.check(VAR) {
			p.errorAtCurrent("expected 'val' or 'var' in builder body")
			p.synchronize()
			continue
		}
		decl.Members = append(decl.Members, p.parseProperty())
	}
	p.consume(RIGHT_BRACE, "expected '}' to close builder body")
	decl.EndPos = p.endOfPrevious()
	return decl
}

func (p *Parser) parseFunction() *ast.FunDecl {
	start := p.consume(FUN, "expected 'fun' keyword")
	name, _ := p.consumeIdent("expected function name")
	decl := &ast.FunDecl{Pos: p.makePos(start), Name: name}

	decl.Params = p.parseFunctionParameters()
	if p.match(COLON) {
		decl.Return = p.parseType()
	}

	switch {
	case p.check(LEFT_BRACE):
		decl.Body = p.parseBlock()
	case p.match(EQUAL):
		decl.ExprBody = p.parseExpression()
	default:
		p.errorAtCurrent("expected function body")
	}
	decl.EndPos = p.endOfPrevious()
	return decl
}

func (p *Parser) parseFunctionParameters() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	var params []*ast.Param

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		param := p.parseParam()
		if param == nil {
			break
		}
		params = append(params, param)
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameters")
	return params
}

func (p *Parser) parseParam() *ast.Param {
	name, ok := p.consumeIdent("expected parameter name")
	if !ok {
		return nil
	}
	p.consume(COLON, "expected ':' after parameter name")
	typ := p.parseType()
	return &ast.Param{Pos: name.Pos, EndPos: typ.EndPos, Name: name, Type: typ}
}

// parseProperty parses "val|var name[: Type] [= expr]".
func (p *Parser) parseProperty() *ast.PropertyDecl {
	start := p.advance()
	name, _ := p.consumeIdent("expected property name")
	decl := &ast.PropertyDecl{Pos: p.makePos(start), Mutable: start.Type == VAR, Name: name}

	if p.match(COLON) {
		decl.Type = p.parseType()
	}
	if p.match(EQUAL) {
		decl.Init = p.parseExpression()
	}
	decl.EndPos = p.endOfPrevious()
	return decl
}

// parseType parses "Name", "Name<Arg, ...>" and a trailing "?".
func (p *Parser) parseType() *ast.TypeRef {
	name, _ := p.consumeIdent("expected type name")
	ref := &ast.TypeRef{Pos: name.Pos, Name: name}

	if p.match(LESS) {
		for !p.check(GREATER) && !p.isAtEnd() {
			ref.Args = append(ref.Args, p.parseType())
			if !p.match(COMMA) {
				break
			}
		}
		p.consume(GREATER, "expected '>' after type arguments")
	}
	if p.check(QUESTION) && adjacent(p.previous(), p.peek()) {
		p.advance()
		ref.Nullable = true
	}
	ref.EndPos = p.endOfPrevious()
	return ref
}
