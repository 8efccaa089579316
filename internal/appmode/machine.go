package appmode

import "github.com/charmbracelet/log"

// Hooks run when a mode is entered or left.
type Hooks struct {
	OnEnter func(Mode)
	OnExit  func(Mode)
}

// Machine holds the current mode and at most one pending transition.
// Requests made during a frame take effect when Apply is called at the end
// of that frame; a later request in the same frame replaces an earlier one.
type Machine struct {
	current Mode
	pending *Mode
	quit    bool
	hooks   Hooks
	logger  *log.Logger
}

// NewMachine starts in MainMenu. The enter hook for MainMenu runs
// immediately so the initial menu exists before the first frame.
func NewMachine(hooks Hooks, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	m := &Machine{current: MainMenu, hooks: hooks, logger: logger}
	if hooks.OnEnter != nil {
		hooks.OnEnter(MainMenu)
	}
	return m
}

// Current returns the active mode.
func (m *Machine) Current() Mode { return m.current }

// InGame gates the campaign systems.
func (m *Machine) InGame() bool { return m.current == InGame }

// InMenu gates the menu interaction systems.
func (m *Machine) InMenu() bool { return m.current.HasMenu() }

// QuitRequested reports whether a Quit action was dispatched.
func (m *Machine) QuitRequested() bool { return m.quit }

// Request queues the transition for a. Quit is accepted from any mode.
// The pause key outside InGame/Paused is ignored without error.
func (m *Machine) Request(a Action) error {
	if a == ActionQuit {
		m.quit = true
		m.logger.Info("quit requested", "mode", m.current)
		return nil
	}
	if a == ActionPauseKey && m.current == MainMenu {
		return nil
	}
	next, err := Next(m.current, a)
	if err != nil {
		return err
	}
	m.pending = &next
	return nil
}

// Apply performs the pending transition, running the exit hook of the old
// mode before the enter hook of the new one. It reports whether the mode
// changed.
func (m *Machine) Apply() bool {
	if m.pending == nil {
		return false
	}
	next := *m.pending
	m.pending = nil
	if next == m.current {
		return false
	}
	prev := m.current
	if m.hooks.OnExit != nil {
		m.hooks.OnExit(prev)
	}
	m.current = next
	if m.hooks.OnEnter != nil {
		m.hooks.OnEnter(next)
	}
	m.logger.Info("mode changed", "from", prev, "to", next)
	return true
}
