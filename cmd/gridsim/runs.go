package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/platform/tui"
	"github.com/vovakirdan/gridsim/internal/registry"
	"github.com/vovakirdan/gridsim/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs <scenario>",
	Short: "Show the best recorded runs",
	Long: `Display the best runs recorded for a scenario.

Runs are ranked by enemies defeated, then survival, then fewest frames.

Examples:
  gridsim runs arena
  gridsim runs arena --limit 5
  gridsim runs arena --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs for the scenario")
}

func runRuns(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	// Check if scenario exists
	if !registry.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'gridsim scenarios' to see available scenarios.")
		os.Exit(1)
	}

	// Open run history
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(scenarioID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", registry.Title(scenarioID))
		return
	}

	runs, err := store.TopRuns(scenarioID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.RenderRuns(registry.Title(scenarioID), runs))

	if len(runs) == 0 {
		fmt.Println()
		fmt.Printf("Play 'gridsim play %s' to record the first run.\n", scenarioID)
		return
	}

	total, err := store.RunCount(scenarioID)
	if err == nil {
		fmt.Printf("\n%d runs recorded.\n", total)
	}
}
