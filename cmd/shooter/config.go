package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset, as YAML. Save the output as
~/.shooter/configs/shooter.yaml to customize the game.

Examples:
  shooter config
  shooter config --difficulty hard > ~/.shooter/configs/shooter.yaml
  shooter config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagConfigDefaults bool

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in config file with its comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
