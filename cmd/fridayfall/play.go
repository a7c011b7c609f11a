package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/game"
	"github.com/akovalev/fridayfall/internal/leaderboard"
	"github.com/akovalev/fridayfall/internal/platform/tui"
	"github.com/akovalev/fridayfall/internal/platform/web"
	"github.com/akovalev/fridayfall/internal/storage"
)

var (
	flagConfig   string
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  1 / 2          - Start a one- or two-player round
  Left/Right     - Move player 1 (and the menu highlight)
  Up/Down        - Change letters during name entry
  Enter/Space    - Confirm
  A / D          - Move player 2
  S              - Player 2 confirm
  Ctrl+S         - Save a screenshot
  Q / Ctrl+C     - Quit

Examples:
  fridayfall play
  fridayfall play --seed 42
  fridayfall play --config ./my-tuning.yaml
  fridayfall play --spectate :8080`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var gw leaderboard.Gateway
	if store != nil {
		gw = store
	}
	g := game.New(leaderboard.New(gw, 0))

	// Optional spectator feed
	var sink tui.SnapshotSink
	if flagSpectate != "" {
		hub := web.NewHub()
		go func() {
			if serveErr := hub.ListenAndServe(flagSpectate); serveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: spectator feed stopped: %v\n", serveErr)
			}
		}()
		sink = hub
	}

	runErr := tui.Run(g, store, cfg, sink)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
