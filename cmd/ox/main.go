package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oxlang/oxlang/ox"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "parse the script without executing")
	recursionLimit := fs.Int("recursion-limit", 0, "override the recursion depth limit")
	stepQuota := fs.Int("step-quota", 0, "cap evaluation steps (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("ox run: script path required")
	}
	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if *checkOnly {
		_, err := ox.Parse(string(input))
		return err
	}

	engine := ox.NewEngine(ox.Config{
		RecursionLimit: *recursionLimit,
		StepQuota:      *stepQuota,
		Loader:         dirLoader(filepath.Dir(scriptPath)),
	})
	result, err := engine.Execute(context.Background(), string(input))
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	if !result.IsNil() {
		fmt.Println(result.String())
	}
	return nil
}

// dirLoader resolves imports against sibling .ox files of the script, so
// `import geo` next to main.ox loads geo.ox from the same directory. The
// embedded standard library remains the fallback.
func dirLoader(dir string) ox.Loader {
	return ox.LoaderFunc(func(name string) (string, error) {
		if strings.ContainsAny(name, `/\.`) {
			return "", ox.ErrModuleNotFound
		}
		data, err := os.ReadFile(filepath.Join(dir, name+".ox"))
		if errors.Is(err, os.ErrNotExist) {
			return "", ox.ErrModuleNotFound
		}
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] <script>\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run <script>   execute a script")
	fmt.Fprintln(os.Stderr, "  ast <script>   parse a script and dump its syntax tree")
	fmt.Fprintln(os.Stderr, "  repl           start an interactive session")
	fmt.Fprintln(os.Stderr, "Run flags:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    parse the script without executing")
	fmt.Fprintln(os.Stderr, "  -recursion-limit <n>")
	fmt.Fprintln(os.Stderr, "    override the recursion depth limit")
	fmt.Fprintln(os.Stderr, "  -step-quota <n>")
	fmt.Fprintln(os.Stderr, "    cap evaluation steps (0 = unlimited)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
