// invaders is the Alien Invasion arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders                 - Play in the terminal (same as "invaders play")
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders menu            - Start menu with difficulty picker and scores
//	invaders scores          - Show the score history
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Override the tick rate
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom YAML config
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--db <path>            - Score history database
//	--scores-file <path>   - JSON hi-score record
//	--record json|sqlite   - Where the hi-score is kept
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Log destination in terminal mode
//	--mute                 - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagScoresFile string
	flagRecord     string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a small arcade shooter. Steer your ship along the
bottom of the screen and shoot down the alien fleet before it reaches you.
Every cleared fleet starts a faster level.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  menu     - Menu with difficulty picker and score history
  scores   - View the score history
  config   - Print the effective configuration

Examples:
  invaders
  invaders window --difficulty hard
  invaders play --seed 42 --mute
  invaders scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config profile)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagDBPath, "db", "", "Path to score history database (default from config)")
	pf.StringVar(&flagScoresFile, "scores-file", "", "Path to JSON hi-score file (default from config)")
	pf.StringVar(&flagRecord, "record", recordJSON, "Hi-score record backend: json, sqlite")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while the terminal UI is running")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
