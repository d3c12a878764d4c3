// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"brick/internal/analysis"
	"brick/internal/config"
	"brick/internal/errors"
	"brick/repl"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const usage = `Usage:
  brick check [-config brick.yaml] [-Werror] [-v] <file.brick>...
  brick repl [-config brick.yaml]`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Println(usage)
		return 2
	}
	switch args[0] {
	case "check":
		return cmdCheck(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	case "help", "-h", "--help":
		fmt.Println(usage)
		return 0
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n%s\n", args[0], usage)
	return 2
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := fs.String("config", "", "configuration file (default: nearest brick.yaml)")
	werror := fs.Bool("Werror", false, "treat warnings as errors")
	verbose := fs.Bool("v", false, "log analysis passes")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Println(usage)
		return 2
	}
	if *verbose {
		commonlog.Configure(1, nil)
	}

	startTime := time.Now()
	failed := false
	for _, path := range fs.Args() {
		if !checkFile(path, *configPath, *werror) {
			failed = true
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if failed {
		color.Red("Check failed after %s", formattedDuration)
		return 1
	}
	color.Green("Successfully checked %d file(s) in %s", fs.NArg(), formattedDuration)
	return 0
}

// checkFile prints the diagnostics of one file and reports whether it passed.
func checkFile(path, configPath string, werror bool) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return false
	}

	cfg, err := loadConfig(configPath, filepath.Dir(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return false
	}
	settings, err := cfg.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cfg.Path, err)
		return false
	}

	snapshot := analysis.Run(path, string(source), settings)
	errorReporter := errors.NewErrorReporter(path, string(source))

	passed := true
	var reported []errors.CompilerError
	for _, d := range snapshot.Diagnostics {
		if d.Level == errors.Warning && !cfg.WarningsEnabled() {
			continue
		}
		if d.Level == errors.Error || (d.Level == errors.Warning && werror) {
			passed = false
		}
		reported = append(reported, d)
		fmt.Print(errorReporter.FormatError(d))
	}
	fmt.Print(errorReporter.FormatSummary(reported))
	return passed
}

func loadConfig(explicit, dir string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	return config.LoadNearest(dir)
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	configPath := fs.String("config", "", "configuration file (default: nearest brick.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	settings, err := cfg.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return repl.Start(settings, os.Stdout)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
