package ui

import (
	"image"
	"image/color"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
	"github.com/google/uuid"
)

// Button layout.
const (
	ButtonWidth  = 240
	ButtonHeight = 56
	ButtonGap    = 20
)

// ButtonSpec describes one menu entry.
type ButtonSpec struct {
	Label  string
	Action appmode.Action
}

// MenuSpec describes a full-screen menu.
type MenuSpec struct {
	Background color.RGBA
	Buttons    []ButtonSpec
}

// MainMenu is shown at launch and after leaving a campaign.
var MainMenu = MenuSpec{
	Background: color.RGBA{R: 26, G: 26, B: 77, A: 255},
	Buttons: []ButtonSpec{
		{Label: "New Game", Action: appmode.ActionStart},
		{Label: "Exit", Action: appmode.ActionQuit},
	},
}

// PauseMenu is shown over a paused campaign.
var PauseMenu = MenuSpec{
	Background: color.RGBA{R: 0, G: 90, B: 0, A: 200},
	Buttons: []ButtonSpec{
		{Label: "Resume", Action: appmode.ActionResume},
		{Label: "Main Menu", Action: appmode.ActionBackToMenu},
		{Label: "Quit", Action: appmode.ActionQuit},
	},
}

// MenuFor returns the menu shown in mode m.
func MenuFor(m appmode.Mode) (MenuSpec, bool) {
	switch m {
	case appmode.MainMenu:
		return MainMenu, true
	case appmode.Paused:
		return PauseMenu, true
	}
	return MenuSpec{}, false
}

// SpawnMenu builds spec as a full-screen panel with a centred column of
// buttons and returns the root id.
func (w *World) SpawnMenu(spec MenuSpec, screenW, screenH int) uuid.UUID {
	root := w.Spawn(uuid.Nil, Node{
		Rect:       image.Rect(0, 0, screenW, screenH),
		Background: spec.Background,
	})
	w.menus[root] = struct{}{}
	w.leftHeld = true

	n := len(spec.Buttons)
	colH := n*ButtonHeight + (n-1)*ButtonGap
	x := (screenW - ButtonWidth) / 2
	y := (screenH - colH) / 2
	for _, b := range spec.Buttons {
		w.Spawn(root, Node{
			Rect:       image.Rect(x, y, x+ButtonWidth, y+ButtonHeight),
			Background: NormalButton,
			Label:      b.Label,
			TextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Button:     &Button{Action: b.Action},
		})
		y += ButtonHeight + ButtonGap
	}
	return root
}
