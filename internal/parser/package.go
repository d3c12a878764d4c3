package parser

import (
	"fmt"
	"os"

	"brick/internal/ast"
)

func ParseSource(path string, source string) (*ast.File, []ParseError, []ScanError) {
	scanner := NewScanner(path, source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	file := parser.ParseFile()

	return file, parser.errors, scanner.errors
}

func ParseFile(path string) (*ast.File, []ParseError, []ScanError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	file, parseErrors, scanErrors := ParseSource(path, string(source))
	return file, parseErrors, scanErrors, nil
}
