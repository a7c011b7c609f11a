// fridayfall is a terminal arcade game: catch the deals, dodge the junk.
//
// Usage:
//
//	fridayfall play          - Play in the current terminal
//	fridayfall scores        - Show the leaderboard and round history
//	fridayfall serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.fridayfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fridayfall",
	Short: "Black Friday - a falling-deals arcade game for your terminal",
	Long: `Black Friday is a terminal arcade game. One or two players race
along the bottom of the screen catching discounted deals while dodging
the junk that falls with them.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard and round history
  serve    - Start SSH server for remote play

Examples:
  fridayfall play
  fridayfall play --seed 42
  fridayfall scores
  fridayfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fridayfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
