package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// BrickLexer tokenizes Brick source. Newlines are kept as tokens because
// they terminate statements; the parser decides where they matter.
var BrickLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Literals
		{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`, Action: nil},
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Keywords and Identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Operators (longest first)
		{Name: "Operator", Pattern: `(->|\+=|-=|==|!=|<=|>=|&&|\|\||[-+*/%=<>!?])`, Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[{}():,;.@]`, Action: nil},

		// Whitespace
		{Name: "Newline", Pattern: `\n`, Action: nil},
		{Name: "Whitespace", Pattern: `[ \t\r]+`, Action: nil},
	},
})
