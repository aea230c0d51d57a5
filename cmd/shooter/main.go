// shooter is a side-scrolling arcade shooter for the terminal.
//
// Usage:
//
//	shooter [play]           - Play the game (default)
//	shooter scores [--tui]   - Show the game history and high scores
//	shooter serve            - Start SSH server for remote play
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.shooter/scores.db)
//	--log <path>         - Set log file (default: ~/.shooter/shooter.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string

	// Game config flags, shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a side-scrolling arcade shooter in your terminal",
	Long: `Shooter is a terminal arcade game: fly your ship, shoot down enemies
and meteors, and survive as the waves speed up.

Available commands:
  play     - Play the game (default)
  scores   - View the game history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  shooter
  shooter play --difficulty hard
  shooter scores --tui
  shooter serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the config, applies the preset and validates the result.
func loadGameConfig() (config.ShooterConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	config.ApplyShooterPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ShooterConfig{}, "", fmt.Errorf("invalid config:\n%w", err)
	}
	return cfg, preset, nil
}
