package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/logging"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagMute   bool
	flagNoSave bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD   - Move
  Mouse         - Steer the ship toward the pointer
  F/Space/Click - Fire
  Enter         - Start
  P/Esc         - Pause
  R             - Back to the menu (paused or after game over)
  M             - Mute
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - More lives, slower waves
  normal - Config defaults
  hard   - Fewer lives, faster waves
  fixed  - No difficulty steps

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml --mute
  shooter play --no-save`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	for _, cmd := range []*cobra.Command{playCmd, rootCmd} {
		cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Keep scores in memory instead of the database")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagMute {
		cfg.Sound.Enabled = false
	}
	player := audio.New(cfg.Sound, logger)
	if err := player.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
	}
	defer player.Close()

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database (use --no-save to play without it): %w", err)
		}
		defer store.Close()
	}

	logger.Info("starting game", "difficulty", preset, "seed", flagSeed, "fps", flagFPS)
	return tui.Run(tui.Options{
		Config:     cfg,
		Difficulty: string(preset),
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Width:      width,
		Height:     height,
		Store:      store,
		Ephemeral:  flagNoSave,
		Audio:      player,
		Logger:     logger,
	})
}
