package ox

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	tokenAssign     TokenType = "="
	tokenPlusAssign TokenType = "+="
	tokenPlus       TokenType = "+"
	tokenMinus      TokenType = "-"
	tokenBang       TokenType = "!"
	tokenAsterisk   TokenType = "*"
	tokenSlash      TokenType = "/"
	tokenCaret      TokenType = "^"
	tokenLT         TokenType = "<"
	tokenGT         TokenType = ">"
	tokenLTE        TokenType = "<="
	tokenGTE        TokenType = ">="
	tokenEQ         TokenType = "=="
	tokenNotEQ      TokenType = "!="
	tokenAnd        TokenType = "&&"
	tokenOr         TokenType = "||"

	tokenComma    TokenType = ","
	tokenColon    TokenType = ":"
	tokenDot      TokenType = "."
	tokenLParen   TokenType = "("
	tokenRParen   TokenType = ")"
	tokenLBrace   TokenType = "{"
	tokenRBrace   TokenType = "}"
	tokenLBracket TokenType = "["
	tokenRBracket TokenType = "]"

	tokenFunc     TokenType = "FUNC"
	tokenStruct   TokenType = "STRUCT"
	tokenInherits TokenType = "INHERITS"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenWhile    TokenType = "WHILE"
	tokenFor      TokenType = "FOR"
	tokenReturn   TokenType = "RETURN"
	tokenBreak    TokenType = "BREAK"
	tokenContinue TokenType = "CONTINUE"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"
	tokenNil      TokenType = "NIL"
	tokenImport   TokenType = "IMPORT"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"func":     tokenFunc,
	"struct":   tokenStruct,
	"inherits": tokenInherits,
	"if":       tokenIf,
	"else":     tokenElse,
	"while":    tokenWhile,
	"for":      tokenFor,
	"return":   tokenReturn,
	"break":    tokenBreak,
	"continue": tokenContinue,
	"true":     tokenTrue,
	"false":    tokenFalse,
	"nil":      tokenNil,
	"import":   tokenImport,
}

func lookupIdent(literal string) TokenType {
	if tok, ok := keywords[literal]; ok {
		return tok
	}
	return tokenIdent
}
