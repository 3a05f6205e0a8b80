package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/window"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Play in a desktop window. The world is the size of the window, and the
simulation advances once per displayed frame.

Controls:
  Space/W/Up   - Jump
  A/Left       - Move left
  D/Right      - Move right
  R            - Restart (after game over)
  Q/Esc        - Quit

Examples:
  skyhop window
  skyhop window skyhop_endless --width 1280 --height 720`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 720, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	id := skyhop.GameID
	if len(args) == 1 {
		id = args[0]
	}
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), "skyhop")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("opening window", "mode", id, "width", flagWidth, "height", flagHeight)
	return window.Run(game, window.Options{
		Width:  flagWidth,
		Height: flagHeight,
		Seed:   flagSeed,
		Player: localPlayer(),
		Store:  store,
		Logger: logger,
	})
}
