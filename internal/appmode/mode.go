// Package appmode is the top-level screen state machine: main menu, the
// running campaign, and the pause screen.
package appmode

import (
	"errors"
	"fmt"
)

// Mode is the active top-level screen.
type Mode int

const (
	MainMenu Mode = iota
	InGame
	Paused
)

func (m Mode) String() string {
	switch m {
	case MainMenu:
		return "main-menu"
	case InGame:
		return "in-game"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// HasMenu reports whether the mode shows a menu overlay.
func (m Mode) HasMenu() bool { return m == MainMenu || m == Paused }

// Action is a named command that may change the mode.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionResume
	ActionBackToMenu
	ActionQuit
	ActionPauseKey
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStart:
		return "start"
	case ActionResume:
		return "resume"
	case ActionBackToMenu:
		return "back-to-menu"
	case ActionQuit:
		return "quit"
	case ActionPauseKey:
		return "pause-key"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ErrInvalidTransition is returned when an action has no edge from the
// current mode.
var ErrInvalidTransition = errors.New("invalid mode transition")

// Next returns the mode reached from m by a. Quit is not a mode change and
// is handled by the Machine.
func Next(m Mode, a Action) (Mode, error) {
	switch {
	case m == MainMenu && a == ActionStart:
		return InGame, nil
	case m == InGame && a == ActionPauseKey:
		return Paused, nil
	case m == Paused && (a == ActionPauseKey || a == ActionResume):
		return InGame, nil
	case m == Paused && a == ActionBackToMenu:
		return MainMenu, nil
	}
	return m, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, a, m)
}
