package cli

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Report casing issues and fix them after confirmation",
	Long: `Scan reports every property whose casing does not match its enclosing
struct or class, then asks whether to rename the offending declarations.

Arguments:
  path    Directory to scan (default: current directory)

Examples:
  # Scan the current directory and confirm interactively
  casefix scan

  # Fix everything under ./src without prompting
  casefix scan ./src --yes

  # Rename every matching declaration in affected files
  casefix scan ./src --scope file`,
	Args:              RequireOptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addRunFlags(scanCmd, true)
}

func runScan(cmd *cobra.Command, args []string) error {
	return executeRun(cmd, args, false)
}
