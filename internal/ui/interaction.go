package ui

import (
	"image"
	"image/color"

	"github.com/Garsondee/Grand-Strategy/internal/appmode"
)

// Interaction is a button's pointer state.
type Interaction int

const (
	None Interaction = iota
	Hovered
	Pressed
)

func (i Interaction) String() string {
	switch i {
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	}
	return "none"
}

// Button colours.
var (
	NormalButton  = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	HoveredButton = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	PressedButton = color.RGBA{R: 89, G: 191, B: 89, A: 255}
)

// Button is the interactive part of a node.
type Button struct {
	Action      appmode.Action
	Interaction Interaction
}

// Pointer is the mouse state for one frame, in screen pixels.
type Pointer struct {
	X, Y       int
	Present    bool
	LeftButton bool
}

func (p Pointer) over(r image.Rectangle) bool {
	return p.Present && image.Pt(p.X, p.Y).In(r)
}

// Interact recomputes every button's interaction from p. A button becomes
// Pressed only when the left button goes down while the pointer is over it,
// and stays Pressed while the button is held over it. Only buttons whose
// interaction changed are restyled; a button that has just become Pressed
// dispatches its action once. Actions are returned in spawn order.
func (w *World) Interact(p Pointer) []appmode.Action {
	justPressed := p.LeftButton && !w.leftHeld
	w.leftHeld = p.LeftButton

	var fired []appmode.Action
	for _, id := range w.order {
		n := w.nodes[id]
		if n.Button == nil {
			continue
		}
		next := None
		if p.over(n.Rect) {
			next = Hovered
			if p.LeftButton && (justPressed || n.Button.Interaction == Pressed) {
				next = Pressed
			}
		}
		if next == n.Button.Interaction {
			continue
		}
		n.Button.Interaction = next
		switch next {
		case Pressed:
			n.Background = PressedButton
			w.focus = n.ID
			fired = append(fired, n.Button.Action)
		case Hovered:
			n.Background = HoveredButton
			w.focus = n.ID
		default:
			n.Background = NormalButton
		}
	}
	return fired
}
