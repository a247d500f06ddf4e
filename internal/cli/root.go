package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "casefix [path]",
	Short: "Find and fix C# property casing convention violations",
	Long: `casefix scans C# sources for properties whose casing does not match the
enclosing type:

  - properties declared in a struct should start with a lowercase letter
  - properties declared in a class should start with an uppercase letter
    (the property name "message" is exempt)

Running casefix without a subcommand is the same as 'casefix scan': the
issues are reported grouped by type kind, and after confirmation the
offending declarations are renamed in place. References to renamed
properties elsewhere are not updated.

Directories named bin, obj and .git are skipped. Settings can be stored in
casefix.yaml in the scanned directory (see 'casefix init').

Exit Codes:
  0  - Success (including "No changes made.")
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Issues found (check)
  12 - A file changed between scanning and rewriting
  13 - Fixes declined (with --fail-on-decline)`,
	Args:              RequireOptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
	SilenceUsage:      true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for casefix")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	addRunFlags(rootCmd, true)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
