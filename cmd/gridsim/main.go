// gridsim runs a deterministic tile-grid simulation in the terminal or as a
// headless frame stepper.
//
// Usage:
//
//	gridsim play [scenario]   - Play a scenario in the terminal
//	gridsim menu              - Pick a scenario from a menu
//	gridsim init              - Print the initial state document
//	gridsim step              - Advance a {input, state} document by one frame
//	gridsim scenarios         - List available scenarios
//	gridsim runs <scenario>   - Show the best recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.gridsim, ./configs)
//	--db <path>         - Run history database (default: ~/.gridsim/runs.db)
//	--levels <dir>      - Directory of YAML level files to register
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/levels"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string

	// Resolved before any subcommand runs
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsim",
	Short: "gridsim - a deterministic tile-grid simulation",
	Long: `gridsim advances a small tile world one frame at a time: a player,
enemies and pickups on a wall/floor grid, with collision, team damage and
death.

Available commands:
  play       - Play a scenario in the terminal
  menu       - Interactive scenario picker
  init       - Print the initial state document
  step       - Advance a state document by one frame
  scenarios  - List available scenarios
  runs       - View the best recorded runs

Examples:
  gridsim play
  gridsim play room --fps 4
  gridsim init --format yaml > state.yaml
  gridsim step --in request.json
  gridsim runs arena`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of YAML level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup loads configuration, applies flag overrides and registers level files.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		loaded.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	if flagLevelsDir == "" {
		return nil
	}
	loader := levels.NewLoader(flagLevelsDir)
	lvls, err := loader.LoadAll()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	for _, skipped := range loader.Skipped {
		logger.Warn("skipped level file", "file", skipped.Path, "error", skipped.Err)
	}
	for i := range lvls {
		lvls[i].Register()
		logger.Debug("registered level", "id", lvls[i].ID, "file", lvls[i].FilePath)
	}
	return nil
}
