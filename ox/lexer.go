package ox

import (
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := Position{Line: l.line, Column: l.column}
	tok := Token{Pos: pos}

	switch l.ch {
	case 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case '+':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenPlusAssign, "+=")
		} else {
			tok = l.makeToken(tokenPlus, "+")
		}
		l.readRune()
	case '-':
		tok = l.makeToken(tokenMinus, "-")
		l.readRune()
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
		l.readRune()
	case '/':
		tok = l.makeToken(tokenSlash, "/")
		l.readRune()
	case '^':
		tok = l.makeToken(tokenCaret, "^")
		l.readRune()
	case '=':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenEQ, "==")
		} else {
			tok = l.makeToken(tokenAssign, "=")
		}
		l.readRune()
	case '!':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenNotEQ, "!=")
		} else {
			tok = l.makeToken(tokenBang, "!")
		}
		l.readRune()
	case '<':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenLTE, "<=")
		} else {
			tok = l.makeToken(tokenLT, "<")
		}
		l.readRune()
	case '>':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenGTE, ">=")
		} else {
			tok = l.makeToken(tokenGT, ">")
		}
		l.readRune()
	case '&':
		if l.peekRune() == '&' {
			l.readRune()
			tok = l.makeToken(tokenAnd, "&&")
			l.readRune()
		} else {
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	case '|':
		if l.peekRune() == '|' {
			l.readRune()
			tok = l.makeToken(tokenOr, "||")
			l.readRune()
		} else {
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	case ',':
		tok = l.makeToken(tokenComma, ",")
		l.readRune()
	case ':':
		tok = l.makeToken(tokenColon, ":")
		l.readRune()
	case '.':
		tok = l.makeToken(tokenDot, ".")
		l.readRune()
	case '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
		l.readRune()
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
		l.readRune()
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
		l.readRune()
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
		l.readRune()
	case '"', '\'':
		return l.readStringToken(l.ch)
	default:
		switch {
		case isDigit(l.ch):
			return l.readNumberToken()
		case isIdentStart(l.ch):
			return l.readIdentToken()
		default:
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	}

	tok.Pos = pos
	return tok
}

// makeToken leaves Pos unset; NextToken stamps the position it captured
// before consuming the operator's first rune.
func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		for l.ch != 0 && unicode.IsSpace(l.ch) {
			l.readRune()
		}
		if l.ch == '/' && l.peekRune() == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.readRune()
			}
			continue
		}
		return
	}
}

// Strings are delimited by either quote character; the opposite quote may
// appear unescaped inside.
func (l *lexer) readStringToken(quote rune) Token {
	pos := Position{Line: l.line, Column: l.column}
	l.readRune()

	start := l.offset - l.width
	for l.ch != quote {
		if l.ch == 0 {
			return Token{Type: tokenIllegal, Literal: string(quote), Pos: pos}
		}
		l.readRune()
	}
	literal := l.input[start : l.offset-l.width]
	l.readRune()

	return Token{Type: tokenString, Literal: literal, Pos: pos}
}

func (l *lexer) readNumberToken() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.offset - l.width

	for isDigit(l.ch) {
		l.readRune()
	}
	if l.ch == '.' && isDigit(l.peekRune()) {
		l.readRune()
		for isDigit(l.ch) {
			l.readRune()
		}
	}

	end := l.offset - l.width
	if l.ch == 0 {
		end = len(l.input)
	}
	return Token{Type: tokenNumber, Literal: l.input[start:end], Pos: pos}
}

func (l *lexer) readIdentToken() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.offset - l.width

	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readRune()
	}

	end := l.offset - l.width
	if l.ch == 0 {
		end = len(l.input)
	}
	literal := l.input[start:end]
	return Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// Tokenize converts source text into its full token sequence, excluding the
// terminating EOF token. Repeated calls over the same text yield identical
// sequences.
func Tokenize(source string) ([]Token, error) {
	l := newLexer(source)

	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case tokenEOF:
			return tokens, nil
		case tokenIllegal:
			return nil, newLexErrorf(tok.Pos, "unrecognized character %q", tok.Literal)
		}
		tokens = append(tokens, tok)
	}
}
