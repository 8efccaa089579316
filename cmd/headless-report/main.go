// headless-report steps a campaign without a window and prints where the
// calendar and camera ended up.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/Grand-Strategy/internal/applog"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/config"
	"github.com/Garsondee/Grand-Strategy/internal/game"
	"github.com/Garsondee/Grand-Strategy/internal/nation"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeconds  float64
	flagSpeed    float64
	flagTPS      int
	flagPan      string
	flagScroll   float64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "headless-report",
	Short:        "Run the campaign loop headless and print a report",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	f.Float64Var(&flagSeconds, "seconds", 10, "Simulated seconds to run")
	f.Float64Var(&flagSpeed, "speed", 1, "Clock speed multiplier (0 = paused)")
	f.IntVar(&flagTPS, "tps", 60, "Updates per simulated second")
	f.StringVar(&flagPan, "pan", "", "Held pan keys, any of: up,down,left,right")
	f.Float64Var(&flagScroll, "scroll", 0, "Scroll delta applied every frame")
	f.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	if flagSeconds <= 0 {
		return fmt.Errorf("--seconds must be > 0")
	}
	if flagTPS <= 0 {
		return fmt.Errorf("--tps must be > 0")
	}
	pan, err := parsePan(flagPan)
	if err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger, err := applog.New("headless", flagLogLevel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Headless Campaign Report ===\n")
	fmt.Fprintf(out, "seconds=%.1f speed=%.1f tps=%d pan=%q scroll=%.2f\n\n",
		flagSeconds, flagSpeed, flagTPS, flagPan, flagScroll)

	r := game.RunHeadless(cfg, game.HeadlessOptions{
		Seconds: flagSeconds,
		Speed:   flagSpeed,
		TPS:     flagTPS,
		Pan:     pan,
		Scroll:  flagScroll,
	}, logger)
	fmt.Fprint(out, r.String())

	if cfg.Roster != "" {
		roster, err := nation.LoadRoster(cfg.Roster)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\ncountries (%d):\n", len(roster.Countries))
		for _, c := range roster.Countries {
			fmt.Fprintf(out, "  #%d %-20s %s\n", c.ID, c.Name, c.Government().Kind)
		}
	}
	return nil
}

// parsePan turns "up,left" into held arrow keys.
func parsePan(s string) (camera.Input, error) {
	var in camera.Input
	if strings.TrimSpace(s) == "" {
		return in, nil
	}
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "up":
			in.Up = true
		case "down":
			in.Down = true
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		default:
			return in, fmt.Errorf("unknown pan direction %q", part)
		}
	}
	return in, nil
}
