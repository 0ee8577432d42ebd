package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode ("tetris" when omitted).

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate clockwise
  Down, S          - Soft drop one row
  Space            - Hard drop
  P                - Pause
  Esc/B            - Pause; back out when paused or over
  R                - Restart
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest speed, speeds up with score
  normal - Start at 30% speed level, speeds up with score
  hard   - Start at 70% speed level, speeds up with score
  fixed  - No progression, stays at the configured base speed

Without --difficulty a selector is shown before the game starts.

Examples:
  tetris play
  tetris play tetris_endless
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	warnConfig()
	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if cfg.Difficulty == "" {
		ok, selErr := chooseDifficulty(game.Title(), &cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg, playerName()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// chooseDifficulty shows the difficulty selector and stores the choice in
// cfg. It returns false when the player backs out.
func chooseDifficulty(title string, cfg *core.RuntimeConfig) (bool, error) {
	preset, err := tui.RunDifficultySelector(title, *cfg)
	if err != nil || preset == nil {
		return false, err
	}
	cfg.Difficulty = string(*preset)
	return true, nil
}

// warnConfig reports a broken --config file before the game falls back to
// defaults behind the alternate screen.
func warnConfig() {
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadTetris(flagConfig); err != nil {
		log.Warn("Using default config", "error", err)
	}
}
