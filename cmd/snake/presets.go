package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List speed presets",
	Long:  `Shows the named speed presets accepted by 'snake play --preset'.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Speed presets:")
	fmt.Println()

	fmt.Printf("  %-8s  %s\n", "Name", "Speed")
	fmt.Printf("  %-8s  %s\n", "----", "-----")
	for _, p := range config.AllPresets() {
		fmt.Printf("  %-8s  %d\n", p, p.Speed())
	}

	fmt.Println()
	fmt.Printf("Any speed from %d to %d works with 'snake play --speed N'.\n", config.MinSpeed, config.MaxSpeed)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.snake/configs/snake.yaml or pass it with --config to customize the game.

Examples:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
	},
}
