package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/casefix/internal/analyzer"
	"github.com/vvka-141/casefix/internal/checksum"
	"github.com/vvka-141/casefix/internal/files/rewriter"
	"github.com/vvka-141/casefix/internal/files/scanner"
	"github.com/vvka-141/casefix/internal/logging"
	"github.com/vvka-141/casefix/internal/report"
	"github.com/vvka-141/casefix/internal/services"
	"github.com/vvka-141/casefix/internal/tui"
	"github.com/vvka-141/casefix/internal/ui"
)

type runFlagValues struct {
	yes           bool
	failOnDecline bool
	scope         string
	format        string
	configPath    string
}

var runFlags runFlagValues

// addRunFlags registers the flags shared by the root, scan and check commands.
// All commands bind the same variables.
func addRunFlags(cmd *cobra.Command, withApproval bool) {
	if withApproval {
		cmd.Flags().BoolVarP(&runFlags.yes, "yes", "y", false,
			"Fix without asking for confirmation")
		cmd.Flags().StringVar(&runFlags.scope, "scope", "",
			"Rewrite scope: line (only the flagged declaration) or file (every matching declaration in the file)\n"+
				"Default: casefix.yaml scope, else line")
		_ = cmd.RegisterFlagCompletionFunc("scope", completeScopes)
		cmd.Flags().BoolVar(&runFlags.failOnDecline, "fail-on-decline", false,
			"Exit with code 13 when the fixes are declined")
	}
	cmd.Flags().StringVar(&runFlags.format, "format", report.FormatText,
		"Report format: text, yaml or json")
	cmd.Flags().StringVar(&runFlags.configPath, "config", "",
		"Path to a config file (default: <path>/casefix.yaml if present)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// executeRun wires the components for one run and executes it.
func executeRun(cmd *cobra.Command, args []string, checkOnly bool) error {
	verbose := getVerboseFlag(cmd)

	rc, err := buildRunConfig(targetPath(args), runFlags, verbose, checkOnly)
	if err != nil {
		return err
	}

	reporter, err := report.New(runFlags.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	calc := checksum.New()
	svc := services.NewFixService(
		scanner.NewScanner(calc, scanner.Options{Exclude: rc.Exclude, Extensions: rc.Extensions}),
		analyzer.New(rc.Exemptions),
		rewriter.New(calc, rc.Scope),
		reporter,
		ui.SelectApprover(runFlags.yes, tui.DetectMode(), verbose),
		logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	// Ctrl+C during the prompt or the rewrite cancels the run
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = svc.Run(ctx, rc)
	return err
}
