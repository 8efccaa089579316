package game

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/config"
	"github.com/charmbracelet/log"
)

// HeadlessOptions configures a run without a window.
type HeadlessOptions struct {
	Seconds float64
	Speed   float64
	TPS     int

	// Held input for the whole run.
	Pan    camera.Input
	Scroll float64
}

// Report summarises a headless run.
type Report struct {
	Frames    int
	StartDate calendar.Date
	EndDate   calendar.Date
	Days      int
	Speed     float64
	Mode      appmode.Mode
	Target    camera.Target
	Pose      camera.Pose
	Snapshot  string
}

// String formats the report for the terminal.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frames=%d speed=%s\n", r.Frames, speedLabel(r.Speed))
	fmt.Fprintf(&b, "date: %s -> %s (%d days)\n", r.StartDate.ISO(), r.EndDate.ISO(), r.Days)
	b.WriteString(r.Snapshot)
	return b.String()
}

// RunHeadless starts a campaign from the main menu and steps it for
// opts.Seconds of simulated time with the given held input.
func RunHeadless(cfg config.Config, opts HeadlessOptions, logger *log.Logger) Report {
	if opts.TPS <= 0 {
		opts.TPS = defaultTPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	idle := FrameInput{Camera: opts.Pan}
	idle.Camera.Scroll = opts.Scroll
	script := &ScriptedInput{Idle: idle}

	g := New(cfg, WithInput(script), WithLogger(logger), WithTPS(opts.TPS))
	g.Dispatch(appmode.ActionStart)
	g.clock.SetSpeed(opts.Speed)

	start := g.clock.Date()
	frames := int(math.Round(opts.Seconds * float64(opts.TPS)))
	for i := 0; i < frames; i++ {
		if err := g.Update(); err != nil {
			break
		}
	}

	pose, _ := g.Pose()
	return Report{
		Frames:    frames,
		StartDate: start,
		EndDate:   g.clock.Date(),
		Days:      g.days,
		Speed:     g.clock.Speed(),
		Mode:      g.Mode(),
		Target:    g.Target(),
		Pose:      pose,
		Snapshot:  g.Snapshot(),
	}
}
