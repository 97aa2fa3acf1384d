package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsim/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scenario from a menu",
	Long: `Start gridsim in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a scenario.
After a run ends and you quit it, you return to the menu.

Examples:
  gridsim menu
  gridsim menu --fps 4
  gridsim menu --levels ./levels`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (default from config)")
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := cfg
	if flagFPS > 0 {
		settings.TickRate = flagFPS
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	sess := newSession(settings)

	var runs tui.BestRunLookup
	if sess.store != nil {
		runs = sess.store
	}

	err := menuLoop(
		func() (string, error) { return tui.RunMenu(runs, width) },
		sess.play,
		func(err error) { fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err) },
	)

	// Close store and log file before potential exit
	sess.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop alternates between the picker and the chosen scenario until the
// picker returns no selection. A picker error ends the loop and is returned;
// scenario errors are reported and the menu comes back.
func menuLoop(pick func() (string, error), play func(string) error, report func(error)) error {
	for {
		scenarioID, err := pick()
		if err != nil {
			return err
		}
		if scenarioID == "" {
			return nil
		}

		if err := play(scenarioID); err != nil {
			report(err)
		}
	}
}
