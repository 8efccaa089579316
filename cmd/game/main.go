// game launches the grand-strategy prototype in a window.
//
// Usage:
//
//	game [--config path] [--windowed] [--mute] [--log-level level]
package main

import (
	"fmt"
	"os"

	"github.com/Garsondee/Grand-Strategy/internal/applog"
	"github.com/Garsondee/Grand-Strategy/internal/config"
	"github.com/Garsondee/Grand-Strategy/internal/game"
	"github.com/Garsondee/Grand-Strategy/internal/sfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagWindowed bool
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "game",
	Short:        "Grand-strategy prototype",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Run in a window instead of borderless fullscreen")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable UI sounds")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if flagMute {
		cfg.Mute = true
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	logger, err := applog.New("game", cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logger.Info("config loaded", "path", cfg.Source)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	g := game.New(cfg,
		game.WithLogger(logger),
		game.WithSound(sfx.Open(cfg.Mute, logger)),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}
