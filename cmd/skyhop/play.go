package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Without a mode, a menu lets you pick one and
returns to it after each game.

Controls:
  Space/W/Up   - Jump (press again in the air to double jump)
  A/Left       - Move left
  D/Right      - Move right
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.skyhop/screenshots
  Q/Ctrl+C     - Quit

Hold jump longer for a higher jump. Touching the side of a platform while
falling slows you down; jump to kick off the wall.

Terminals send key presses, not releases, so a key counts as held for
terminal.hold_ticks ticks (default 8) after each press or auto-repeat. Most
terminals wait about half a second before auto-repeating, so holding Space
reads as a release and a second press: tap jump instead of holding it, or
raise hold_ticks in the config. The window command has real key state.

Examples:
  skyhop play
  skyhop play skyhop_endless
  skyhop play skyhop --preset heavy
  skyhop play --config ./my-skyhop.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the run when the config file changes")
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown mode %q (run 'skyhop list')", args[0])
	}

	// Log to a file so the alt screen stays clean.
	logger, closeLog := fileLogger()
	defer closeLog()
	skyhop.SetLogger(logger)

	cfg := loadConfig(logger)
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	opts := tui.GameOptions{
		Cols:     width,
		Rows:     height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Terminal: cfg.Terminal,
		Player:   localPlayer(),
		Store:    store,
		Logger:   logger,
	}

	watchPath := ""
	if flagWatch {
		watchPath = config.Locate(flagConfig)
		if watchPath == "" {
			logger.Warn("no config file to watch, using built-in defaults")
		}
	}

	if len(args) == 1 {
		return playMode(args[0], opts, watchPath)
	}
	return menuLoop(store, opts, watchPath)
}

// playMode runs one mode until the player quits.
func playMode(id string, opts tui.GameOptions, watchPath string) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	return tui.Run(game, opts, watchPath)
}

// menuLoop alternates between the mode menu and the chosen game.
func menuLoop(store *storage.Store, opts tui.GameOptions, watchPath string) error {
	for {
		result, err := tui.RunMenu(store, opts.Cols, opts.Rows)
		if err != nil {
			return err
		}
		opts.Cols, opts.Rows = result.Width, result.Height

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, opts.Cols, opts.Rows)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		case result.GameID == "":
			return nil
		}

		if err := playMode(result.GameID, opts, watchPath); err != nil {
			return err
		}
	}
}

// fileLogger opens ~/.skyhop/skyhop.log, falling back to discarding output.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	path := filepath.Join(home, ".skyhop", "skyhop.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "skyhop"), func() { f.Close() }
}
