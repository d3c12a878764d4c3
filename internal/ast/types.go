package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR

	// Declarations
	FILE
	ENUM_DECL
	CLASS_DECL
	BUILDER_DECL
	FUN_DECL
	PROPERTY_DECL
	PARAM
	TYPE_REF

	// Blocks and control flow
	BLOCK
	IF_EXPR
	WHEN_EXPR
	WHEN_BRANCH
	WHEN_CONDITION
	TRY_EXPR
	CATCH_CLAUSE
	WHILE_EXPR
	RETURN_EXPR
	THROW_EXPR

	// Expressions
	NAME_REF
	LITERAL
	BINARY_EXPR
	UNARY_EXPR
	IS_EXPR
	PAREN_EXPR
	DOT_EXPR
	CALL_EXPR
	LAMBDA_EXPR
	BUILD_EXPR
)

var nodeTypeNames = map[NodeType]string{
	ILLEGAL:        "ILLEGAL",
	BAD_EXPR:       "BAD_EXPR",
	FILE:           "FILE",
	ENUM_DECL:      "ENUM_DECL",
	CLASS_DECL:     "CLASS_DECL",
	BUILDER_DECL:   "BUILDER_DECL",
	FUN_DECL:       "FUN_DECL",
	PROPERTY_DECL:  "PROPERTY_DECL",
	PARAM:          "PARAM",
	TYPE_REF:       "TYPE_REF",
	BLOCK:          "BLOCK",
	IF_EXPR:        "IF_EXPR",
	WHEN_EXPR:      "WHEN_EXPR",
	WHEN_BRANCH:    "WHEN_BRANCH",
	WHEN_CONDITION: "WHEN_CONDITION",
	TRY_EXPR:       "TRY_EXPR",
	CATCH_CLAUSE:   "CATCH_CLAUSE",
	WHILE_EXPR:     "WHILE_EXPR",
	RETURN_EXPR:    "RETURN_EXPR",
	THROW_EXPR:     "THROW_EXPR",
	NAME_REF:       "NAME_REF",
	LITERAL:        "LITERAL",
	BINARY_EXPR:    "BINARY_EXPR",
	UNARY_EXPR:     "UNARY_EXPR",
	IS_EXPR:        "IS_EXPR",
	PAREN_EXPR:     "PAREN_EXPR",
	DOT_EXPR:       "DOT_EXPR",
	CALL_EXPR:      "CALL_EXPR",
	LAMBDA_EXPR:    "LAMBDA_EXPR",
	BUILD_EXPR:     "BUILD_EXPR",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "ILLEGAL"
}

// LiteralKind distinguishes the literal forms the language supports.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	StringLiteral
	BoolLiteral
	NullLiteral
)
