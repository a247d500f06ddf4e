package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/vvka-141/casefix/internal/config"
	"github.com/vvka-141/casefix/pkg/casefix"
)

// loadProjectConfig loads .env and the project configuration.
// Returns nil config if casefix.yaml does not exist in sourcePath (not an error).
// An explicit configPath must exist.
func loadProjectConfig(sourcePath, configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if configPath != "" {
		projectCfg, err := config.LoadFile(configPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("config file %s not found: %w", configPath, casefix.ErrInvalidConfig)
			}
			return nil, err
		}
		return projectCfg, nil
	}

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", casefix.ConfigFileName, err)
	}
	return projectCfg, nil
}

// buildRunConfig merges defaults, the project config file and flags, in
// increasing order of precedence.
func buildRunConfig(sourcePath string, flags runFlagValues, verbose, checkOnly bool) (casefix.RunConfig, error) {
	rc := casefix.RunConfig{
		SourcePath: sourcePath,
		Extensions: casefix.DefaultExtensions,
		Scope:      casefix.ScopeLine,
		CheckOnly:  checkOnly,
		Verbose:    verbose,

		FailOnDecline: flags.failOnDecline,
	}

	projectCfg, err := loadProjectConfig(sourcePath, flags.configPath)
	if err != nil {
		return rc, err
	}
	if projectCfg != nil {
		if err := projectCfg.ApplyTo(&rc); err != nil {
			return rc, err
		}
	}

	if flags.scope != "" {
		scope, err := casefix.ParseRewriteScope(flags.scope)
		if err != nil {
			return rc, err
		}
		rc.Scope = scope
	}

	return rc, rc.Validate()
}
