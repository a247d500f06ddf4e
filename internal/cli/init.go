package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/casefix/internal/config"
	"github.com/vvka-141/casefix/internal/tui"
	"github.com/vvka-141/casefix/internal/tui/components"
	"github.com/vvka-141/casefix/pkg/casefix"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default casefix.yaml",
	Long: `Init writes casefix.yaml with the default settings into the given
directory (default: current directory):

  exclude:     directory names skipped at any depth
  extensions:  file extensions that are analyzed
  exemptions:  class property names that are never flagged
  scope:       rewrite scope, line or file

An existing file is only replaced with --force or after confirmation in an
interactive terminal. Without --scope, an interactive terminal asks for the
rewrite scope; otherwise it defaults to line.

Examples:
  casefix init
  casefix init ./src --force
  casefix init --scope file`,
	Args:              RequireOptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var (
	initForce bool
	initScope string
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing casefix.yaml")
	initCmd.Flags().StringVar(&initScope, "scope", "", "Rewrite scope written to the file (line or file)")
	_ = initCmd.RegisterFlagCompletionFunc("scope", completeScopes)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := targetPath(args)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot use %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", dir, casefix.ErrInvalidConfig)
	}

	existing := filepath.Join(dir, casefix.ConfigFileName)
	if _, err := config.LoadFile(existing); !errors.Is(err, config.ErrConfigNotFound) && !initForce {
		overwrite, err := confirmOverwrite(cmd.Context(), existing)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(cmd.ErrOrStderr(), "No changes made.")
			return nil
		}
	}

	cfg := config.Default()
	scope, err := chooseScope(cmd.Context(), initScope)
	if err != nil {
		return err
	}
	if scope == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "No changes made.")
		return nil
	}
	cfg.Scope = scope

	path, err := config.Save(dir, cfg)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", casefix.ConfigFileName, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s Wrote %s\n", tui.SymbolCheck, path)
	return nil
}

func confirmOverwrite(ctx context.Context, path string) (bool, error) {
	if !tui.IsInteractive() {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return components.RunConfirm(ctx, components.NewConfirm("Overwrite existing "+path+"?"), os.Stdin, os.Stderr)
}

// chooseScope returns the scope to write. An empty result means the user
// dismissed the prompt.
func chooseScope(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		scope, err := casefix.ParseRewriteScope(flagValue)
		if err != nil {
			return "", err
		}
		return scope.String(), nil
	}
	if !tui.IsInteractive() {
		return casefix.ScopeLine.String(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	options := []components.Option{
		{Label: "line", Description: "Rename only the flagged declaration", Value: casefix.ScopeLine.String()},
		{Label: "file", Description: "Rename every matching declaration in the file", Value: casefix.ScopeFile.String()},
	}
	return components.RunSelect(ctx, components.NewSelector("Default rewrite scope", options, casefix.ScopeLine.String()), os.Stdin, os.Stderr)
}
