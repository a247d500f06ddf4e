package cli

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report casing issues without changing files",
	Long: `Check reports casing issues and exits with code 11 when any are found.
No files are modified. Intended for CI pipelines.

Examples:
  casefix check ./src
  casefix check ./src --format yaml > casing-report.yaml`,
	Args:              RequireOptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addRunFlags(checkCmd, false)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return executeRun(cmd, args, true)
}
