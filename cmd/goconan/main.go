// Package main is the entry point for the goconan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/goconan/cmd/goconan/commands"
	"github.com/thoreinstein/goconan/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		code := errors.ExitUser
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
		}
		os.Exit(code)
	}
}
