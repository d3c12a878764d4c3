package errors

// Error codes for the Brick toolchain.
// Each code has a stable factory name (TYPE_MISMATCH, ...) that tools and
// tests match on, since messages may change.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0600-E0699: Flow control errors
// W0001-W0099: Warnings

const (
	// E0001: Name resolution errors
	ErrorUnresolvedReference = "E0001"

	// E0002: Unknown type in a type reference
	ErrorUnresolvedType = "E0002"

	// E0003: Type compatibility errors
	ErrorTypeMismatch = "E0003"

	// E0004: Assignment to a val
	ErrorValReassignment = "E0004"

	// E0005: Builder type parameter could not be inferred
	ErrorCannotInferParameterType = "E0005"

	// E0006: when used as an expression is not exhaustive
	ErrorNoElseInWhen = "E0006"

	// E0007: Name declared twice in one scope
	ErrorDuplicateDeclaration = "E0007"

	// E0008: Wrong number of call arguments
	ErrorInvalidArguments = "E0008"

	// E0009: Operator not defined for the operand types
	ErrorInvalidOperation = "E0009"

	// E0010: Callee is not a function
	ErrorNotCallable = "E0010"

	// E0100: Syntax errors from the scanner and parser
	ErrorSyntax = "E0100"

	// E0600: Missing return statement
	ErrorMissingReturn = "E0600"

	// E0601: return outside of a function
	ErrorReturnNotAllowed = "E0601"

	// E0602: return@label with no matching function or lambda
	ErrorUnresolvedLabel = "E0602"

	// W0001: Expression value is never used
	WarningUnusedExpression = "W0001"

	// W0002: Unreachable code warning
	WarningUnreachableCode = "W0002"

	// W0003: when statement over an enum or sealed class misses cases
	WarningNonExhaustiveWhenStatement = "W0003"
)

var factories = map[string]string{
	ErrorUnresolvedReference:          "UNRESOLVED_REFERENCE",
	ErrorUnresolvedType:               "UNRESOLVED_TYPE",
	ErrorTypeMismatch:                 "TYPE_MISMATCH",
	ErrorValReassignment:              "VAL_REASSIGNMENT",
	ErrorCannotInferParameterType:     "CANNOT_INFER_PARAMETER_TYPE",
	ErrorNoElseInWhen:                 "NO_ELSE_IN_WHEN",
	ErrorDuplicateDeclaration:         "DUPLICATE_DECLARATION",
	ErrorInvalidArguments:             "INVALID_ARGUMENTS",
	ErrorInvalidOperation:             "INVALID_OPERATION",
	ErrorNotCallable:                  "NOT_CALLABLE",
	ErrorSyntax:                       "SYNTAX_ERROR",
	ErrorMissingReturn:                "MISSING_RETURN",
	ErrorReturnNotAllowed:             "RETURN_NOT_ALLOWED",
	ErrorUnresolvedLabel:              "UNRESOLVED_LABEL",
	WarningUnusedExpression:           "UNUSED_EXPRESSION",
	WarningUnreachableCode:            "UNREACHABLE_CODE",
	WarningNonExhaustiveWhenStatement: "NON_EXHAUSTIVE_WHEN_STATEMENT",
}

// FactoryName returns the symbolic name for a code, e.g. TYPE_MISMATCH.
func FactoryName(code string) string {
	return factories[code]
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnresolvedReference:
		return "Name does not refer to any declaration in scope"
	case ErrorUnresolvedType:
		return "Type reference names an unknown classifier"
	case ErrorTypeMismatch:
		return "Expression type does not match expected type"
	case ErrorValReassignment:
		return "Read-only property or variable is assigned"
	case ErrorCannotInferParameterType:
		return "Builder type argument could not be inferred from its lambda"
	case ErrorNoElseInWhen:
		return "'when' used as an expression must be exhaustive"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorInvalidArguments:
		return "Function call has invalid arguments"
	case ErrorInvalidOperation:
		return "Invalid unary or binary operation"
	case ErrorNotCallable:
		return "Expression cannot be invoked"
	case ErrorSyntax:
		return "Source could not be parsed"
	case ErrorMissingReturn:
		return "Function declares return type but has no return statement"
	case ErrorReturnNotAllowed:
		return "'return' is only allowed inside a function or lambda"
	case ErrorUnresolvedLabel:
		return "Return label does not match an enclosing function or lambda"
	case WarningUnusedExpression:
		return "Expression is evaluated but its value is never used"
	case WarningUnreachableCode:
		return "Code is unreachable"
	case WarningNonExhaustiveWhenStatement:
		return "'when' statement does not cover every case"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0600" && code < "E0700":
		return "Flow Control"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
