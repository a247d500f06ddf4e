package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Print the effective configuration",
	Long: `Config prints the settings a run in the given directory would use:
the defaults overlaid with casefix.yaml (or the file named by --config).

Examples:
  casefix config
  casefix config ./src --config ci/casefix.yaml`,
	Args:              RequireOptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runConfig,
}

var configFile string

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configFile, "config", "",
		"Path to a config file (default: <path>/casefix.yaml if present)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	projectCfg, err := loadProjectConfig(targetPath(args), configFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(projectCfg.Effective())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
