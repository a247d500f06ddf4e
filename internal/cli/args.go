package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireOptionalPath accepts zero or one directory argument.
func RequireOptionalPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./src`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// targetPath returns the directory argument, defaulting to the current directory.
func targetPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
