package game

import (
	"errors"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/config"
	"github.com/Garsondee/Grand-Strategy/internal/hud"
	"github.com/Garsondee/Grand-Strategy/internal/sfx"
	"github.com/Garsondee/Grand-Strategy/internal/ui"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultTPS is Ebitengine's fixed update rate.
const defaultTPS = 60

type Game struct {
	width  int // logical screen size
	height int
	dt     float64 // seconds per Update

	input   InputSource
	logger  *log.Logger
	sound   sfx.Player
	copyFn  func(string) error
	mapYear int

	// Campaign state.
	clock    *calendar.Clock
	target   *camera.Target
	pose     *camera.Pose // nil when no controllable camera exists
	settings camera.Settings
	bounds   camera.Bounds

	// Screen state.
	mode     *appmode.Machine
	world    *ui.World
	fpsText  *hud.Text
	dateText *hud.Text
	events   *EventLog

	tick int
	days int // days elapsed since the campaign started

	// Last status copied with F12; kept for the HUD toast.
	copied   string
	copiedAt int
}

// Option customises a Game at construction.
type Option func(*Game)

// WithInput replaces the Ebitengine input poller.
func WithInput(in InputSource) Option {
	return func(g *Game) { g.input = in }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSound sets the UI sound player.
func WithSound(p sfx.Player) Option {
	return func(g *Game) { g.sound = p }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(g *Game) { g.copyFn = fn }
}

// WithTPS sets the number of updates per simulated second.
func WithTPS(tps int) Option {
	return func(g *Game) {
		if tps > 0 {
			g.dt = 1 / float64(tps)
		}
	}
}

// WithoutCamera starts with no controllable camera; camera steps no-op.
func WithoutCamera() Option {
	return func(g *Game) { g.pose = nil }
}

// New builds a game in the main menu.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dt:       1.0 / defaultTPS,
		sound:    sfx.Silent{},
		copyFn:   clipboard.WriteAll,
		mapYear:  cfg.Map.Year,
		clock:    calendar.NewClockAt(cfg.Clock.Start.Calendar()),
		target:   camera.NewTarget(),
		pose:     camera.NewPose(),
		settings: cfg.Camera,
		bounds:   cfg.Map.Bounds,
		world:    ui.NewWorld(),
		fpsText:  hud.NewFPSText(),
		dateText: hud.NewDateText(),
		events:   NewEventLog(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.input == nil {
		g.input = newEbitenInput()
	}
	g.mode = appmode.NewMachine(appmode.Hooks{
		OnEnter: g.enterMode,
		OnExit:  g.exitMode,
	}, g.logger)
	return g
}

func (g *Game) enterMode(m appmode.Mode) {
	if spec, ok := ui.MenuFor(m); ok {
		g.world.SpawnMenu(spec, g.width, g.height)
	}
}

func (g *Game) exitMode(m appmode.Mode) {
	if m.HasMenu() {
		g.world.DespawnMenus()
	}
}

// Update runs one frame: input, the mode-gated systems, then the pending
// mode transition. It returns ebiten.Termination once Quit was requested.
func (g *Game) Update() error {
	g.tick++
	in := g.input.Sample(g.width, g.height)

	if in.PausePressed {
		g.dispatch(appmode.ActionPauseKey)
	}
	if in.CopyPressed {
		g.copyStatus()
	}

	if g.mode.InGame() {
		g.updateCampaign(in)
	}
	if g.mode.InMenu() {
		for _, a := range g.world.Interact(in.Pointer) {
			g.sound.Click()
			g.dispatch(a)
		}
	}

	g.mode.Apply()
	if g.mode.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// updateCampaign is the in-game system group. Camera steps run in a fixed
// order so the clamp always sees the pose smoothed this frame.
func (g *Game) updateCampaign(in FrameInput) {
	camera.Resolve(g.target, g.settings, in.Camera, g.dt)
	camera.Smooth(g.pose, *g.target, g.dt)
	g.bounds.Clamp(g.pose)

	g.timeControls(in)
	g.advanceClock()

	g.fpsText.UpdateFPS(in.FPS, in.FPSOK)
	g.dateText.UpdateDate(g.clock)
}

func (g *Game) timeControls(in FrameInput) {
	before := g.clock.Speed()
	if in.SpacePressed {
		g.clock.TogglePause()
	}
	if in.Preset != 0 {
		g.clock.ApplyPreset(in.Preset)
	}
	if after := g.clock.Speed(); after != before {
		g.logger.Info("clock speed changed", "from", before, "to", after)
		g.events.Add(g.clock.Format(), "speed "+speedLabel(after))
	}
}

func (g *Game) advanceClock() {
	prev := g.clock.Date()
	if days := g.clock.Advance(g.dt); days > 0 {
		g.days += days
		now := g.clock.Date()
		g.logger.Debug("days passed", "days", days, "date", now.ISO())
		if now.Month != prev.Month || now.Year != prev.Year {
			g.logger.Info("new month", "date", g.clock.Format())
			g.events.Add(g.clock.Format(), "new month")
		}
	}
}

// Dispatch requests a mode action as if a menu button had been pressed.
func (g *Game) Dispatch(a appmode.Action) {
	g.dispatch(a)
	g.mode.Apply()
}

func (g *Game) dispatch(a appmode.Action) {
	if err := g.mode.Request(a); err != nil {
		if errors.Is(err, appmode.ErrInvalidTransition) {
			g.logger.Debug("ignored action", "error", err)
			return
		}
		g.logger.Warn("action failed", "action", a, "error", err)
	}
}

// Layout reports the fixed logical resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Mode returns the active screen.
func (g *Game) Mode() appmode.Mode { return g.mode.Current() }

// Clock returns the campaign clock.
func (g *Game) Clock() *calendar.Clock { return g.clock }

// Target returns the desired camera state.
func (g *Game) Target() camera.Target { return *g.target }

// Pose returns the rendered camera pose, or false if there is no camera.
func (g *Game) Pose() (camera.Pose, bool) {
	if g.pose == nil {
		return camera.Pose{}, false
	}
	return *g.pose, true
}

// UI returns the menu entity registry.
func (g *Game) UI() *ui.World { return g.world }

// FPSText returns the current FPS readout.
func (g *Game) FPSText() string { return g.fpsText.Value }

// DateText returns the current date readout.
func (g *Game) DateText() string { return g.dateText.Value }

// Events returns the campaign event log.
func (g *Game) Events() *EventLog { return g.events }

// Tick returns the number of Updates run so far.
func (g *Game) Tick() int { return g.tick }
