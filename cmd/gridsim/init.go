package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/host"
	"github.com/vovakirdan/gridsim/internal/registry"
)

var (
	flagFormat   string
	flagScenario string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Print the initial state document",
	Long: `Encode the initial state of a scenario to stdout.

Without --scenario the arena is used, matching the state a fresh host
receives on its first call.

Examples:
  gridsim init
  gridsim init --format yaml
  gridsim init --scenario room > room.json`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: json or yaml")
	initCmd.Flags().StringVar(&flagScenario, "scenario", "", "Scenario to encode (default: arena)")
}

func runInit(cmd *cobra.Command, args []string) {
	format, err := host.ParseFormat(flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if flagScenario == "" {
		out, err = host.InitState(format)
	} else {
		state, createErr := registry.Create(flagScenario)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", createErr)
			os.Exit(1)
		}
		out, err = host.Encode(format, state)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(out)
}
