package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/levels"
	"github.com/vovakirdan/gridsim/internal/platform/tui"
	"github.com/vovakirdan/gridsim/internal/registry"
	"github.com/vovakirdan/gridsim/internal/sim"
	"github.com/vovakirdan/gridsim/internal/storage"
)

var (
	flagFPS       int
	flagLevelFile string
)

// Rows used around the grid by the HUD, end overlay and help bar.
const chromeRows = 7

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start a scenario in the terminal. Without an argument the configured
scenario is played.

Controls (defaults, see config keys):
  W/Up/K      - Move up
  S/Down/J    - Move down
  A/Left/H    - Move left
  D/Right/L   - Move right
  .           - Wait a frame
  R           - Restart
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Bumping into an enemy attacks it instead of moving. The run ends when the
player dies or every enemy is defeated, and the result is saved.

Examples:
  gridsim play
  gridsim play room
  gridsim play --fps 4
  gridsim play --level ./levels/duel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (default from config)")
	playCmd.Flags().StringVar(&flagLevelFile, "level", "", "Play a YAML level file")
}

func runPlay(cmd *cobra.Command, args []string) {
	scenarioID := cfg.Scenario
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if flagLevelFile != "" {
		lvl, err := levels.LoadFile(flagLevelFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		lvl.Register()
		scenarioID = lvl.ID
	}

	// Check if scenario exists
	if !registry.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'gridsim scenarios' to see available scenarios.")
		os.Exit(1)
	}

	settings := cfg
	if flagFPS > 0 {
		settings.TickRate = flagFPS
	}

	sess := newSession(settings)
	runErr := sess.play(scenarioID)

	// Close store and log file before potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", runErr)
		os.Exit(1)
	}
}

// session holds what a terminal run needs besides the scenario itself.
type session struct {
	settings config.Config
	store    *storage.Store
	logFile  io.Closer
	logger   *log.Logger
}

// newSession opens the log file and run history. Neither is fatal: the
// session continues without them.
func newSession(settings config.Config) *session {
	s := &session{settings: settings}

	// stderr belongs to the alt screen while playing
	var logOut io.Writer = io.Discard
	logFile, err := openLogFile(settings.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		s.logFile = logFile
		logOut = logFile
	}
	s.logger = newLogger(logOut, settings.LogLevel)

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		s.logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
	} else {
		s.store = store
	}
	return s
}

// runSaver returns the store as a RunSaver, or nil when history is unavailable.
func (s *session) runSaver() tui.RunSaver {
	if s.store == nil {
		return nil
	}
	return s.store
}

// play runs one scenario until the user quits.
func (s *session) play(scenarioID string) error {
	state, err := registry.Create(scenarioID)
	if err != nil {
		return err
	}
	checkTerminalSize(state.Grid)
	s.logger.Info("scenario loaded", "scenario", scenarioID,
		"width", state.Grid.Width, "height", state.Grid.Height, "entities", len(state.Entities))

	return tui.Run(tui.Options{
		Scenario: scenarioID,
		Title:    registry.Title(scenarioID),
		Factory: func() sim.State {
			st, _ := registry.Create(scenarioID)
			return st
		},
		Config: s.settings,
		Store:  s.runSaver(),
		Logger: s.logger,
	})
}

// Close releases the store and the log file.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// checkTerminalSize warns when the grid will not fit the terminal.
func checkTerminalSize(grid sim.Grid) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW := grid.Width * 2
	needH := grid.Height + chromeRows
	if width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, scenario needs at least %dx%d\n",
			width, height, needW, needH)
	}
}
