package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/alecthomas/repr"

	"github.com/oxlang/oxlang/ox"
)

func astCommand(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("ox ast: script path required")
	}

	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	program, err := ox.Parse(string(input))
	if err != nil {
		return err
	}

	fmt.Println(repr.String(program, repr.Indent("  "), repr.OmitEmpty(true)))
	return nil
}
