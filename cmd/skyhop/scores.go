package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs",
	Long: `Display the best runs for a mode, ranked by height.

Examples:
  skyhop scores
  skyhop scores skyhop_endless --limit 20
  skyhop scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := skyhop.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'skyhop list')", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best Runs - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'skyhop play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Player", "Height", "Ticks", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "------", "------", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-6d  %s\n",
			i+1, r.Player, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	count, err := store.RunCount(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d (%d runs)\n", runs[0].Score, count)
	}
	return nil
}
