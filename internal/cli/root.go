// Package cli implements the lazygrid command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/lazygrid/internal/config"
	"github.com/rshade/lazygrid/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// annotationSkipConfig marks commands that run on built-in defaults instead
// of the user's configuration file.
const annotationSkipConfig = "lazygrid/skip-config"

// session carries per-invocation state from the root PersistentPreRunE to
// subcommands.
type session struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the lazygrid CLI.
// It loads configuration, applies grid flag overrides, sets up logging and
// registers the view, render and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	s := &session{logger: zerolog.Nop()}

	var (
		configPath string
		grid       gridFlags
	)

	cmd := &cobra.Command{
		Use:           "lazygrid",
		Short:         "Lazy, windowed rendering of large grids",
		Long:          "lazygrid renders only the cells of a large grid that are visible in a fixed-size viewport.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if cmd.Annotations[annotationSkipConfig] != "true" {
				path, err := resolveConfigPath(configPath, lookupEnv)
				if err != nil {
					return err
				}
				if cfg, err = config.LoadWithEnv(path, lookupEnv); err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
			}
			grid.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			s.cfg = cfg

			result := setupLogging(cmd, s)
			s.logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.logResult.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.lazygrid/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	grid.register(cmd)

	cmd.AddCommand(newViewCmd(s), newRenderCmd(s), newConfigCmd(s, &configPath, lookupEnv))
	return cmd
}

const rootCmdExample = `  # Browse a synthetic 10,000 x 50 grid
  lazygrid view --generate 10000x50

  # Browse a JSON or YAML file, transposed
  lazygrid view --data grid.json --transpose

  # Print the cells visible at a scroll offset
  lazygrid render --generate 100 --width 200 --height 100 --item-width 50 --item-height 50 --top 300

  # Write the default configuration
  lazygrid config init`

// resolveConfigPath picks the --config flag, then LAZYGRID_CONFIG, then the
// default location.
func resolveConfigPath(flagValue string, lookupEnv func(string) (string, bool)) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v, ok := lookupEnv(config.EnvConfigPath); ok && v != "" {
		return v, nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return "", nil //nolint:nilerr // Without a home directory lazygrid runs on defaults.
	}
	return path, nil
}

// newConfigCmd creates the config command group.
func newConfigCmd(s *session, configPath *string, lookupEnv func(string) (string, bool)) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(configPath, lookupEnv), newConfigShowCmd(s))
	return cmd
}
