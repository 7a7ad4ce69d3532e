package ox

import (
	"strconv"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

type parser struct {
	l *lexer

	curToken  Token
	peekToken Token

	errors []error

	loopDepth int

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(input string) *parser {
	l := newLexer(input)
	p := &parser{l: l}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(tokenIdent, p.parseIdentifier)
	p.registerPrefix(tokenNumber, p.parseNumberLiteral)
	p.registerPrefix(tokenString, p.parseStringLiteral)
	p.registerPrefix(tokenTrue, p.parseBooleanLiteral)
	p.registerPrefix(tokenFalse, p.parseBooleanLiteral)
	p.registerPrefix(tokenNil, p.parseNilLiteral)
	p.registerPrefix(tokenLParen, p.parseGroupedExpression)
	p.registerPrefix(tokenLBracket, p.parseArrayLiteral)
	p.registerPrefix(tokenBang, p.parsePrefixExpression)
	p.registerPrefix(tokenMinus, p.parsePrefixExpression)

	p.infixFns[tokenPlus] = p.parseInfixExpression
	p.infixFns[tokenMinus] = p.parseInfixExpression
	p.infixFns[tokenAsterisk] = p.parseInfixExpression
	p.infixFns[tokenSlash] = p.parseInfixExpression
	p.infixFns[tokenCaret] = p.parseInfixExpression
	p.infixFns[tokenEQ] = p.parseInfixExpression
	p.infixFns[tokenNotEQ] = p.parseInfixExpression
	p.infixFns[tokenLT] = p.parseInfixExpression
	p.infixFns[tokenLTE] = p.parseInfixExpression
	p.infixFns[tokenGT] = p.parseInfixExpression
	p.infixFns[tokenGTE] = p.parseInfixExpression
	p.infixFns[tokenAnd] = p.parseInfixExpression
	p.infixFns[tokenOr] = p.parseInfixExpression
	p.infixFns[tokenLParen] = p.parseCallExpression
	p.infixFns[tokenDot] = p.parseMemberExpression
	p.infixFns[tokenColon] = p.parseMethodExpression
	p.infixFns[tokenLBracket] = p.parseIndexExpression

	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	tok := p.l.NextToken()
	if tok.Type == tokenIllegal {
		p.errors = append(p.errors, newLexErrorf(tok.Pos, "unrecognized character %q", tok.Literal))
		tok = Token{Type: tokenEOF, Pos: tok.Pos}
	}
	p.peekToken = tok
}

// Parse converts source text into a program. Parsing stops at the first
// lex or parse error; no partial AST is produced.
func Parse(source string) (*Program, error) {
	p := newParser(source)

	program := &Program{}
	for p.curToken.Type != tokenEOF && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return program, nil
}

const (
	lowestPrec = iota
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
	precPower
	precPrefix
	precCall
)

var precedences = map[TokenType]int{
	tokenOr:       precOr,
	tokenAnd:      precAnd,
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenLT:       precComparison,
	tokenLTE:      precComparison,
	tokenGT:       precComparison,
	tokenGTE:      precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
	tokenCaret:    precPower,
	tokenLParen:   precCall,
	tokenDot:      precCall,
	tokenColon:    precCall,
	tokenLBracket: precCall,
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorUnexpected(p.curToken)
		return nil
	}

	left := prefix()

	for left != nil && p.peekToken.Type != tokenEOF && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		if p.peekStartsStatement() {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

// A `(` or `[` on a later line than the expression parsed so far opens a
// new statement, not a call or index on that expression. `.` and `:`
// cannot begin a statement, so chains may continue across lines.
func (p *parser) peekStartsStatement() bool {
	if p.peekToken.Type != tokenLParen && p.peekToken.Type != tokenLBracket {
		return false
	}
	return p.peekToken.Pos.Line > p.curToken.Pos.Line
}

func (p *parser) parseIdentifier() Expression {
	return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *parser) parseNumberLiteral() Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, newParseErrorf(p.curToken.Pos, "invalid number literal %q", p.curToken.Literal))
		return nil
	}
	return &NumberLiteral{Value: value, position: p.curToken.Pos}
}

func (p *parser) parseStringLiteral() Expression {
	return &StringLiteral{Value: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *parser) parseBooleanLiteral() Expression {
	return &BoolLiteral{Value: p.curToken.Type == tokenTrue, position: p.curToken.Pos}
}

func (p *parser) parseNilLiteral() Expression {
	return &NilLiteral{position: p.curToken.Pos}
}

func (p *parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseArrayLiteral() Expression {
	pos := p.curToken.Pos
	elements := []Expression{}

	if p.peekToken.Type == tokenRBracket {
		p.nextToken()
		return &ArrayLiteral{Elements: elements, position: pos}
	}

	p.nextToken()
	elements = append(elements, p.parseExpression(lowestPrec))
	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		elements = append(elements, p.parseExpression(lowestPrec))
	}
	if !p.expectPeek(tokenRBracket) {
		return nil
	}

	return &ArrayLiteral{Elements: elements, position: pos}
}

func (p *parser) parsePrefixExpression() Expression {
	op := p.curToken.Type
	pos := p.curToken.Pos
	p.nextToken()
	right := p.parseExpression(precPrefix)
	return &UnaryExpr{Operator: op, Right: right, position: pos}
}

func (p *parser) parseInfixExpression(left Expression) Expression {
	op := p.curToken.Type
	pos := p.curToken.Pos
	precedence := p.curPrecedence()
	if op == tokenCaret {
		// Exponentiation associates right-to-left.
		precedence--
	}
	p.nextToken()
	right := p.parseExpression(precedence)
	return &BinaryExpr{Left: left, Operator: op, Right: right, position: pos}
}

func (p *parser) parseCallExpression(callee Expression) Expression {
	pos := p.curToken.Pos
	args := []Expression{}

	if p.peekToken.Type == tokenRParen {
		p.nextToken()
		return &CallExpr{Callee: callee, Args: args, position: pos}
	}

	p.nextToken()
	args = append(args, p.parseExpression(lowestPrec))
	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(lowestPrec))
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	return &CallExpr{Callee: callee, Args: args, position: pos}
}

func (p *parser) parseMemberExpression(left Expression) Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	return &MemberExpr{Object: left, Property: p.curToken.Literal, position: pos}
}

func (p *parser) parseMethodExpression(left Expression) Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	return &MethodExpr{Object: left, Name: p.curToken.Literal, position: pos}
}

func (p *parser) parseIndexExpression(left Expression) Expression {
	pos := p.curToken.Pos
	p.nextToken()
	index := p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return &IndexExpr{Object: left, Index: index, position: pos}
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorExpected(p.peekToken, string(tt))
	return false
}

func (p *parser) errorExpected(found Token, expected string) {
	got := string(found.Type)
	if found.Type == tokenIdent || found.Type == tokenNumber || found.Type == tokenString {
		got = found.Literal
	}
	p.errors = append(p.errors, newParseErrorf(found.Pos, "expected %s, found %q", expected, got))
}

func (p *parser) errorUnexpected(found Token) {
	got := found.Literal
	if got == "" {
		got = string(found.Type)
	}
	p.errors = append(p.errors, newParseErrorf(found.Pos, "unexpected token %q", got))
}
