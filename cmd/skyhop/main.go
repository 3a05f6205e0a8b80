// skyhop is a vertical platform jumper for the terminal, a desktop window and SSH.
//
// Usage:
//
//	skyhop list              - List game modes
//	skyhop play [mode]       - Play in the terminal (mode menu if omitted)
//	skyhop window [mode]     - Play in a desktop window
//	skyhop sim               - Run the simulation headless with scripted input
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores [mode]     - Show best runs
//	skyhop config            - Print the default config file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--db <path>         - Set database path (default: ~/.skyhop/runs.db)
//	--config <path>     - Use a custom config YAML
//	--preset <name>     - Physics preset: classic, floaty, heavy
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - climb as high as you can",
	Long: `Skyhop is a vertical platform jumper. Jump between platforms, dodge the
moving obstacles, grab power-ups and keep climbing while the world scrolls.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Headless simulation with scripted input
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default config

Examples:
  skyhop play
  skyhop play skyhop_endless --preset floaty
  skyhop window --width 1280 --height 720
  skyhop sim --ticks 600 --jump-every 40 --frame
  skyhop serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, floaty, heavy")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupGame applies the global flags to the game package before any command runs.
func setupGame(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// A custom file must load; only the default search path falls back.
	if flagConfig != "" {
		if _, err := config.LoadSkyhop(flagConfig); err != nil {
			return err
		}
	}

	skyhop.SetConfigPath(flagConfig)
	skyhop.SetPreset(preset)
	skyhop.SetLogger(newLogger(cmd.ErrOrStderr(), "skyhop"))
	return nil
}

// newLogger creates a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// loadConfig reads the active config. setupGame has already rejected a bad
// --config file, so an error here means the file changed since then.
func loadConfig(logger *log.Logger) config.SkyhopConfig {
	cfg, err := config.LoadSkyhop(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	return cfg
}

// openStore opens the runs database. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// localPlayer names runs saved from this machine.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
