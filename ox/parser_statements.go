package ox

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenFunc:
		return p.parseFuncStatement()
	case tokenStruct:
		return p.parseStructStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenFor:
		return p.parseForStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenBreak:
		return p.parseBreakStatement()
	case tokenContinue:
		return p.parseContinueStatement()
	case tokenImport:
		return p.parseImportStatement()
	default:
		return p.parseSimpleStatement()
	}
}

// parseBlock parses the statements between the current "{" and its
// matching "}". It leaves the parser on the closing brace.
func (p *parser) parseBlock() []Statement {
	stmts := []Statement{}

	p.nextToken()
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	if p.curToken.Type != tokenRBrace && len(p.errors) == 0 {
		p.errorExpected(p.curToken, "}")
	}

	return stmts
}

func (p *parser) parseFuncStatement() Statement {
	stmt := &FuncStmt{Kind: FuncFree, position: p.curToken.Pos}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	switch p.peekToken.Type {
	case tokenDot:
		stmt.Kind = FuncStatic
	case tokenColon:
		stmt.Kind = FuncInstance
	}
	if stmt.Kind != FuncFree {
		stmt.Struct = stmt.Name
		p.nextToken()
		if !p.expectPeek(tokenIdent) {
			return nil
		}
		stmt.Name = p.curToken.Literal
	}

	if !p.expectPeek(tokenLParen) {
		return nil
	}
	stmt.Params = p.parseParameterList()

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	// break and continue do not cross a function boundary.
	depth := p.loopDepth
	p.loopDepth = 0
	stmt.Body = p.parseBlock()
	p.loopDepth = depth

	return stmt
}

// parseParameterList parses a comma-separated identifier list. The
// parser sits on "(" when called and on ")" when it returns.
func (p *parser) parseParameterList() []string {
	params := []string{}

	if p.peekToken.Type == tokenRParen {
		p.nextToken()
		return params
	}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	params = append(params, p.curToken.Literal)
	for p.peekToken.Type == tokenComma {
		p.nextToken()
		if !p.expectPeek(tokenIdent) {
			return nil
		}
		params = append(params, p.curToken.Literal)
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	return params
}

func (p *parser) parseStructStatement() Statement {
	stmt := &StructStmt{position: p.curToken.Pos}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if p.peekToken.Type == tokenInherits {
		p.nextToken()
		if !p.expectPeek(tokenIdent) {
			return nil
		}
		stmt.Parent = p.curToken.Literal
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	stmt.Fields = append(stmt.Fields, p.curToken.Literal)
	for p.peekToken.Type == tokenComma {
		p.nextToken()
		if !p.expectPeek(tokenIdent) {
			return nil
		}
		stmt.Fields = append(stmt.Fields, p.curToken.Literal)
	}
	if !p.expectPeek(tokenRBrace) {
		return nil
	}

	return stmt
}

func (p *parser) parseIfStatement() Statement {
	stmt := &IfStmt{position: p.curToken.Pos}

	p.nextToken()
	stmt.Condition = p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	stmt.Consequent = p.parseBlock()

	for p.peekToken.Type == tokenElse {
		p.nextToken()
		if p.peekToken.Type == tokenIf {
			p.nextToken()
			branch := &IfStmt{position: p.curToken.Pos}
			p.nextToken()
			branch.Condition = p.parseExpression(lowestPrec)
			if !p.expectPeek(tokenLBrace) {
				return stmt
			}
			branch.Consequent = p.parseBlock()
			stmt.ElseIf = append(stmt.ElseIf, branch)
			continue
		}
		if !p.expectPeek(tokenLBrace) {
			return stmt
		}
		stmt.Alternate = p.parseBlock()
		break
	}

	return stmt
}

func (p *parser) parseWhileStatement() Statement {
	stmt := &WhileStmt{position: p.curToken.Pos}

	p.nextToken()
	stmt.Condition = p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	p.loopDepth++
	stmt.Body = p.parseBlock()
	p.loopDepth--

	return stmt
}

func (p *parser) parseForStatement() Statement {
	stmt := &ForStmt{position: p.curToken.Pos}

	p.nextToken()
	stmt.Init = p.parseAssignClause()
	if stmt.Init == nil {
		return nil
	}
	if !p.expectPeek(tokenComma) {
		return nil
	}

	p.nextToken()
	stmt.Condition = p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenComma) {
		return nil
	}

	p.nextToken()
	stmt.Post = p.parseAssignClause()
	if stmt.Post == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	p.loopDepth++
	stmt.Body = p.parseBlock()
	p.loopDepth--

	return stmt
}

// parseAssignClause parses the init and post clauses of a for loop,
// which must be assignments to a plain identifier.
func (p *parser) parseAssignClause() *AssignStmt {
	if p.curToken.Type != tokenIdent {
		p.errorExpected(p.curToken, "identifier")
		return nil
	}
	target := &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}

	if p.peekToken.Type != tokenAssign && p.peekToken.Type != tokenPlusAssign {
		p.errorExpected(p.peekToken, "assignment")
		return nil
	}
	p.nextToken()
	op := p.curToken.Type

	p.nextToken()
	value := p.parseExpression(lowestPrec)

	return &AssignStmt{Target: target, Op: op, Value: value, position: target.position}
}

func (p *parser) parseReturnStatement() Statement {
	stmt := &ReturnStmt{position: p.curToken.Pos}

	if p.peekToken.Type == tokenRBrace || p.peekToken.Type == tokenEOF {
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(lowestPrec)
	return stmt
}

func (p *parser) parseBreakStatement() Statement {
	if p.loopDepth == 0 {
		p.errors = append(p.errors, newParseErrorf(p.curToken.Pos, "break used outside of a loop"))
		return nil
	}
	return &BreakStmt{position: p.curToken.Pos}
}

func (p *parser) parseContinueStatement() Statement {
	if p.loopDepth == 0 {
		p.errors = append(p.errors, newParseErrorf(p.curToken.Pos, "continue used outside of a loop"))
		return nil
	}
	return &ContinueStmt{position: p.curToken.Pos}
}

func (p *parser) parseImportStatement() Statement {
	stmt := &ImportStmt{position: p.curToken.Pos}
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	stmt.Name = p.curToken.Literal
	return stmt
}

// parseSimpleStatement parses either a bare expression statement or an
// assignment to an identifier, member, or index target.
func (p *parser) parseSimpleStatement() Statement {
	pos := p.curToken.Pos
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}

	if p.peekToken.Type == tokenAssign || p.peekToken.Type == tokenPlusAssign {
		if !assignable(expr) {
			p.errors = append(p.errors, newParseErrorf(p.peekToken.Pos, "invalid assignment target"))
			return nil
		}
		p.nextToken()
		op := p.curToken.Type
		p.nextToken()
		value := p.parseExpression(lowestPrec)
		return &AssignStmt{Target: expr, Op: op, Value: value, position: pos}
	}

	return &ExprStmt{Expr: expr, position: pos}
}

func assignable(expr Expression) bool {
	switch expr.(type) {
	case *Identifier, *MemberExpr, *IndexExpr:
		return true
	}
	return false
}
