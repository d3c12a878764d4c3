package errors

import (
	"fmt"
	"sort"
	"strings"

	"brick/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return newBuilder(Error, code, message, pos)
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return newBuilder(Warning, code, message, pos)
}

func newBuilder(level ErrorLevel, code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    level,
			Code:     code,
			Factory:  FactoryName(code),
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSpan sets the length from the source text the error points at.
func (b *SemanticErrorBuilder) WithSpan(text string) *SemanticErrorBuilder {
	if w := TextWidth(text); w > 0 {
		b.err.Length = w
	}
	return b
}

// WithParams records the rendered diagnostic parameters.
func (b *SemanticErrorBuilder) WithParams(params ...string) *SemanticErrorBuilder {
	b.err.Params = append(b.err.Params, params...)
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

func didYouMean(builder *SemanticErrorBuilder, similarNames []string) *SemanticErrorBuilder {
	switch len(similarNames) {
	case 0:
		return builder
	case 1:
		return builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
	default:
		return builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
	}
}

// UnresolvedReference creates an error for a name that does not resolve, with suggestions
func UnresolvedReference(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewSemanticError(ErrorUnresolvedReference, fmt.Sprintf("unresolved reference '%s'", name), pos).
		WithSpan(name).
		WithParams(name)
	builder = didYouMean(builder, similarNames)
	if len(similarNames) == 0 {
		builder = builder.WithNote("names must be declared before use, with 'val', 'var', 'fun', 'class' or 'enum'")
	}
	return builder.Build()
}

// UnresolvedType creates an error for an unknown type name
func UnresolvedType(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewSemanticError(ErrorUnresolvedType, fmt.Sprintf("unresolved type '%s'", name), pos).
		WithSpan(name).
		WithParams(name)
	return didYouMean(builder, similarNames).Build()
}

// TypeMismatch creates an error for type mismatches. Params are expected then actual.
func TypeMismatch(expected, actual string, pos ast.Position, length int) CompilerError {
	builder := NewSemanticError(ErrorTypeMismatch, fmt.Sprintf("type mismatch: expected %s, found %s", expected, actual), pos).
		WithLength(length).
		WithParams(expected, actual)

	if strings.HasSuffix(actual, "?") && strings.TrimSuffix(actual, "?") == expected {
		builder = builder.WithSuggestion("check the value for null before using it").
			WithNote("a smart cast applies after 'if (x != null)' when x is a stable value")
	}
	return builder.Build()
}

// ValReassignment creates an error for assignments to read-only declarations
func ValReassignment(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorValReassignment, fmt.Sprintf("val '%s' cannot be reassigned", name), pos).
		WithSpan(name).
		WithParams(name).
		WithSuggestion(fmt.Sprintf("declare '%s' with 'var' to make it mutable", name)).
		Build()
}

// CannotInferParameterType creates an error for a builder type argument that
// nothing in the lambda determines
func CannotInferParameterType(param, builder string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorCannotInferParameterType,
		fmt.Sprintf("not enough information to infer type parameter %s of builder %s", param, builder), pos).
		WithSpan("build").
		WithParams(param, builder).
		WithSuggestion(fmt.Sprintf("specify it explicitly: build %s<...> { ... }", builder)).
		WithNote(fmt.Sprintf("%s is inferred from the expected type or from the first assignment to a member of type %s", param, param)).
		Build()
}

// NoElseInWhen creates an error for a non-exhaustive when used as a value
func NoElseInWhen(missing []string, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorNoElseInWhen, "'when' expression must be exhaustive", pos).
		WithSpan("when").
		WithParams(missing...)
	if len(missing) > 0 {
		builder = builder.WithSuggestion(fmt.Sprintf("add the missing branches: %s", strings.Join(missing, ", ")))
	}
	return builder.WithSuggestion("or add an 'else' branch").Build()
}

// NonExhaustiveWhenStatement creates a warning for a when statement over a
// finite domain that misses cases
func NonExhaustiveWhenStatement(subject string, missing []string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningNonExhaustiveWhenStatement,
		fmt.Sprintf("non-exhaustive 'when' on %s", subject), pos).
		WithSpan("when").
		WithParams(missing...).
		WithSuggestion(fmt.Sprintf("add the missing branches: %s", strings.Join(missing, ", "))).
		Build()
}

// DuplicateDeclaration creates an error for duplicate declarations
func DuplicateDeclaration(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorDuplicateDeclaration, fmt.Sprintf("duplicate declaration: %s", name), pos).
		WithSpan(name).
		WithParams(name).
		WithSuggestion(fmt.Sprintf("rename the duplicate '%s' to a unique name", name)).
		WithNote("identifiers must be unique within their scope").
		Build()
}

// InvalidArguments creates an error for function call argument count mismatches
func InvalidArguments(functionName string, expected, actual int, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorInvalidArguments,
		fmt.Sprintf("function '%s' expects %d arguments, got %d", functionName, expected, actual), pos).
		WithSpan(functionName).
		WithParams(functionName, fmt.Sprint(expected), fmt.Sprint(actual)).
		WithSuggestion(fmt.Sprintf("provide exactly %d argument(s)", expected)).
		Build()
}

// InvalidOperation creates an error for operators applied to the wrong types
func InvalidOperation(op, operandTypes string, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorInvalidOperation, fmt.Sprintf("operator '%s' cannot be applied to %s", op, operandTypes), pos).
		WithSpan(op).
		WithParams(op, operandTypes)

	switch op {
	case "+", "-", "*", "/", "%", "+=", "-=":
		builder = builder.WithNote("arithmetic is defined for Int, and '+' also for String")
	case "&&", "||", "!":
		builder = builder.WithSuggestion("logical operations require Boolean operands")
	case "<", "<=", ">", ">=":
		builder = builder.WithSuggestion("ordering comparisons require Int operands")
	}
	return builder.Build()
}

// NotCallable creates an error for calling something that is not a function
func NotCallable(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorNotCallable, fmt.Sprintf("'%s' is not a function and cannot be called", name), pos).
		WithSpan(name).
		WithParams(name).
		Build()
}

// SyntaxError wraps a scanner or parser message
func SyntaxError(message string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorSyntax, message, pos).Build()
}

// MissingReturn creates an error for functions that declare a return type but can complete normally
func MissingReturn(functionName, returnType string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("function '%s' declares return type '%s' but does not return on every path", functionName, returnType)
	return NewSemanticError(ErrorMissingReturn, message, pos).
		WithSpan(functionName).
		WithParams(functionName, returnType).
		WithSuggestion(fmt.Sprintf("add a return statement that returns a value of type '%s'", returnType)).
		WithHelp("a 'when' or 'if' only ends a function when all its branches return or throw").
		Build()
}

// ReturnNotAllowed creates an error for return at top level
func ReturnNotAllowed(pos ast.Position) CompilerError {
	return NewSemanticError(ErrorReturnNotAllowed, "'return' is not allowed here", pos).
		WithSpan("return").
		Build()
}

// UnresolvedLabel creates an error for return@label without a target
func UnresolvedLabel(label string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorUnresolvedLabel, fmt.Sprintf("unresolved label '@%s'", label), pos).
		WithSpan(label).
		WithParams(label).
		WithNote("a label names an enclosing function, a labeled lambda or the call a lambda is passed to").
		Build()
}

// UnusedExpression creates a warning for a value that is computed and dropped
func UnusedExpression(text string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnusedExpression, "the expression is unused", pos).
		WithSpan(text).
		WithSuggestion("remove the expression or use its value").
		Build()
}

// UnreachableCode creates a warning for unreachable code
func UnreachableCode(pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnreachableCode, "unreachable code", pos).
		WithSuggestion("remove this code").
		WithNote("code after return or throw is never executed").
		Build()
}

// FindSimilarNames returns candidates within edit distance 2 of target,
// closest first.
func FindSimilarNames(target string, candidates []string) []string {
	type scored struct {
		name     string
		distance int
	}
	var similar []scored
	for _, candidate := range candidates {
		if candidate == target || len(candidate) <= 2 {
			continue
		}
		if d := levenshteinDistance(target, candidate); d <= 2 {
			similar = append(similar, scored{candidate, d})
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		if similar[i].distance != similar[j].distance {
			return similar[i].distance < similar[j].distance
		}
		return similar[i].name < similar[j].name
	})

	out := make([]string, len(similar))
	for i, s := range similar {
		out[i] = s.name
	}
	return out
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
