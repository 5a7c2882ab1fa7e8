package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSpeed  int
	flagPreset string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game in this terminal. Type a speed from 1 to 10 and press
Enter or click START.

Controls:
  Arrows/WASD/HJKL  - Steer
  Ctrl+S            - Screenshot
  Q/Esc/Ctrl+C      - Quit

Passing --speed or --preset skips the speed prompt.

Examples:
  snake play
  snake play --speed 8
  snake play --preset slow --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Start right away at this speed (1-10)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Start right away at a preset: slow, normal, fast")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	speed := 0
	switch {
	case cmd.Flags().Changed("speed"):
		if flagSpeed < config.MinSpeed {
			return fmt.Errorf("speed must be at least %d, got %d", config.MinSpeed, flagSpeed)
		}
		speed = config.ClampSpeed(flagSpeed)
	case cmd.Flags().Changed("preset"):
		preset, presetErr := config.ParsePreset(flagPreset)
		if presetErr != nil {
			return presetErr
		}
		speed = preset.Speed()
	}

	width, height := terminalSize()

	var sound audio.Player = audio.Nop{}
	if cfg.Gameplay.Sound && !flagMute {
		sm := audio.NewSoundManager(logger, 0.5)
		//nolint:errcheck // Failure disables sound and is logged
		sm.Initialize()
		defer sm.Cleanup()
		logger.Debug("audio", "enabled", sm.Enabled())
		sound = sm
	}

	store := openStore(logger)
	var rounds storage.RoundStore
	if store != nil {
		defer store.Close()
		rounds = store
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Store:  rounds,
		Player: currentUser(),
		Sound:  sound,
		Logger: logger.WithPrefix("play"),
		Speed:  speed,
	}
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
