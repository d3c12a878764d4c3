package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Keywords
	VAL
	VAR
	FUN
	CLASS
	OPEN
	SEALED
	ENUM
	BUILDER
	BUILD
	IF
	ELSE
	WHEN
	IS
	TRY
	CATCH
	FINALLY
	WHILE
	RETURN
	THROW
	TRUE
	FALSE
	NULL

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	ARROW
	QUESTION

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON
	AT

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var punctuators = map[string]TokenType{
	"+":  PLUS,
	"-":  MINUS,
	"*":  STAR,
	"/":  SLASH,
	"%":  PERCENT,
	"!":  BANG,
	"!=": BANG_EQUAL,
	"=":  EQUAL,
	"==": EQUAL_EQUAL,
	"<":  LESS,
	"<=": LESS_EQUAL,
	">":  GREATER,
	">=": GREATER_EQUAL,
	"&&": AND,
	"||": OR,
	"->": ARROW,
	"?":  QUESTION,
	"+=": PLUS_EQUAL,
	"-=": MINUS_EQUAL,
	",":  COMMA,
	".":  DOT,
	";":  SEMICOLON,
	":":  COLON,
	"@":  AT,
	"(":  LEFT_PAREN,
	")":  RIGHT_PAREN,
	"{":  LEFT_BRACE,
	"}":  RIGHT_BRACE,
}

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of file"
	case IDENTIFIER:
		return "identifier"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	}
	for word, tt := range KEYWORDS {
		if tt == t {
			return word
		}
	}
	for lexeme, tt := range punctuators {
		if tt == t {
			return lexeme
		}
	}
	return "illegal"
}
