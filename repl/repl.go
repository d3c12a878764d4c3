// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"brick/internal/analysis"
	"brick/internal/ast"
	"brick/internal/errors"
	"brick/internal/language"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

const (
	promptMain  = "==> "
	promptCont  = "... "
	historyFile = ".brick_history"
	sourceName  = "<repl>"
)

const help = `Enter Brick declarations. Blocks continue until their braces close.
  :used L:C      is the value of the expression at L:C used?
  :missing L:C   cases missing from the when at L:C
  :type L:C      static type of the expression at L:C
  :source        print the accepted declarations with line numbers
  :reset         forget all declarations
  :quit          leave`

// Session accumulates the declarations entered so far. Snippets with errors
// are reported and then dropped, so the session source always analyzes
// without errors.
type Session struct {
	settings language.Settings
	source   string
	snapshot *analysis.Snapshot
}

func NewSession(settings language.Settings) *Session {
	s := &Session{settings: settings}
	s.snapshot = analysis.Run(sourceName, "", settings)
	return s
}

// Submit analyzes snippet appended to the session source and returns the
// diagnostics located in the snippet. The snippet is kept unless one of them
// is an error.
func (s *Session) Submit(snippet string) (*analysis.Snapshot, []errors.CompilerError, bool) {
	firstLine := strings.Count(s.source, "\n") + 1
	candidate := s.source + strings.TrimRight(snippet, "\n") + "\n"
	snap := analysis.Run(sourceName, candidate, s.settings)

	var diags []errors.CompilerError
	accepted := true
	for _, d := range snap.Diagnostics {
		if d.Position.Line < firstLine {
			continue
		}
		diags = append(diags, d)
		if d.Level == errors.Error {
			accepted = false
		}
	}

	if accepted {
		s.source = candidate
		s.snapshot = snap
	}
	return snap, diags, accepted
}

func (s *Session) Reset() {
	s.source = ""
	s.snapshot = analysis.Run(sourceName, "", s.settings)
}

func (s *Session) Source() string {
	return s.source
}

// Used reports whether the value of the expression at line:column is used.
func (s *Session) Used(line, column int) (string, error) {
	expr, err := s.exprAt(line, column)
	if err != nil {
		return "", err
	}
	if s.snapshot.Info.IsUsedAsExpression(expr) {
		return fmt.Sprintf("%s: used", expr), nil
	}
	return fmt.Sprintf("%s: discarded", expr), nil
}

// Missing lists the branch conditions the when at line:column lacks.
func (s *Session) Missing(line, column int) (string, error) {
	w := s.snapshot.WhenAt(line, column)
	if w == nil {
		return "", fmt.Errorf("no when at %d:%d", line, column)
	}
	missing := s.snapshot.Info.WhenMissingCases(w)
	if len(missing) == 0 {
		return "exhaustive", nil
	}
	texts := make([]string, len(missing))
	for i, c := range missing {
		texts[i] = c.BranchConditionText()
	}
	return strings.Join(texts, ", "), nil
}

// Type prints the static type of the expression at line:column.
func (s *Session) Type(line, column int) (string, error) {
	expr, err := s.exprAt(line, column)
	if err != nil {
		return "", err
	}
	t := s.snapshot.Result.Binding.TypeOf(expr)
	if t == nil {
		return fmt.Sprintf("%s: <untyped>", expr), nil
	}
	return fmt.Sprintf("%s: %s", expr, t), nil
}

func (s *Session) exprAt(line, column int) (ast.Expr, error) {
	expr := s.snapshot.ExprAt(line, column)
	if expr == nil {
		return nil, fmt.Errorf("no expression at %d:%d", line, column)
	}
	return expr, nil
}

type command struct {
	name   string
	line   int
	column int
}

// parseCommand splits ":name [L:C]". Commands that query a position require
// one.
func parseCommand(input string) (command, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return command{}, fmt.Errorf("not a command: %q", input)
	}
	cmd := command{name: strings.ToLower(strings.TrimPrefix(fields[0], ":"))}

	switch cmd.name {
	case "used", "missing", "type":
		if len(fields) != 2 {
			return command{}, fmt.Errorf(":%s expects a position like 3:9", cmd.name)
		}
		line, column, err := parsePosition(fields[1])
		if err != nil {
			return command{}, err
		}
		cmd.line, cmd.column = line, column
	case "source", "reset", "quit", "help":
		if len(fields) != 1 {
			return command{}, fmt.Errorf(":%s takes no arguments", cmd.name)
		}
	default:
		return command{}, fmt.Errorf("unknown command :%s, type :help", cmd.name)
	}
	return cmd, nil
}

func parsePosition(s string) (int, int, error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid position %q, expected line:column", s)
	}
	line, err := strconv.Atoi(l)
	if err != nil || line < 1 {
		return 0, 0, fmt.Errorf("invalid line in %q", s)
	}
	column, err := strconv.Atoi(c)
	if err != nil || column < 1 {
		return 0, 0, fmt.Errorf("invalid column in %q", s)
	}
	return line, column, nil
}

// openDelimiters counts unclosed braces and parentheses outside string
// literals and line comments.
func openDelimiters(src string) int {
	depth := 0
	inString := false
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case ch == '{' || ch == '(':
			depth++
		case ch == '}' || ch == ')':
			depth--
		}
	}
	return depth
}

// Start runs the interactive loop on the terminal until :quit or EOF.
func Start(settings language.Settings, out io.Writer) int {
	fmt.Fprintln(out, "Brick REPL. Type :help for commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	session := NewSession(settings)

	for {
		input, ok := readSnippet(ln)
		if !ok {
			fmt.Fprintln(out)
			return 0
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(input), ":") {
			cmd, err := parseCommand(input)
			if err != nil {
				fmt.Fprintln(out, red(err.Error()))
				continue
			}
			if cmd.name == "quit" {
				return 0
			}
			result, err := execute(session, cmd)
			if err != nil {
				fmt.Fprintln(out, red(err.Error()))
				continue
			}
			if result != "" {
				fmt.Fprintln(out, result)
			}
			continue
		}

		snap, diags, accepted := session.Submit(input)
		reporter := errors.NewErrorReporter(sourceName, snap.Source)
		for _, d := range diags {
			fmt.Fprint(out, reporter.FormatError(d))
		}
		if accepted {
			fmt.Fprintln(out, green("ok"))
		}
	}
}

func execute(s *Session, cmd command) (string, error) {
	switch cmd.name {
	case "used":
		return s.Used(cmd.line, cmd.column)
	case "missing":
		return s.Missing(cmd.line, cmd.column)
	case "type":
		return s.Type(cmd.line, cmd.column)
	case "source":
		return numbered(s.Source()), nil
	case "reset":
		s.Reset()
		return "", nil
	case "help":
		return help, nil
	}
	return "", fmt.Errorf("unknown command :%s", cmd.name)
}

func numbered(src string) string {
	lines := strings.Split(strings.TrimRight(src, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%3d│ %s\n", i+1, line)
	}
	return strings.TrimRight(b.String(), "\n")
}

// readSnippet reads lines until all braces and parentheses are closed.
// Ctrl+C discards the pending snippet.
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if stderrors.Is(err, io.EOF) {
			return "", false
		}
		if stderrors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if strings.HasPrefix(strings.TrimSpace(b.String()), ":") || openDelimiters(b.String()) <= 0 {
			return b.String(), true
		}
	}
}
