package parser

var KEYWORDS = map[string]TokenType{
	"val":     VAL,
	"var":     VAR,
	"fun":     FUN,
	"class":   CLASS,
	"open":    OPEN,
	"sealed":  SEALED,
	"enum":    ENUM,
	"builder": BUILDER,
	"build":   BUILD,
	"if":      IF,
	"else":    ELSE,
	"when":    WHEN,
	"is":      IS,
	"try":     TRY,
	"catch":   CATCH,
	"finally": FINALLY,
	"while":   WHILE,
	"return":  RETURN,
	"throw":   THROW,
	"true":    TRUE,
	"false":   FALSE,
	"null":    NULL,
}
