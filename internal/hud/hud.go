// Package hud formats the in-game readouts: the FPS counter and the
// current date.
package hud

import (
	"fmt"
	"math"
)

// Text is a HUD readout. A nil *Text is valid and ignores updates.
type Text struct {
	Value string
}

// NewFPSText returns the FPS readout in its initial state.
func NewFPSText() *Text { return &Text{Value: "FPS: "} }

// NewDateText returns the empty date readout.
func NewDateText() *Text { return &Text{} }

// UpdateFPS writes the rounded frame rate. When ok is false the previous
// text is kept.
func (t *Text) UpdateFPS(fps float64, ok bool) {
	if t == nil || !ok {
		return
	}
	t.Value = fmt.Sprintf("FPS: %d", int(math.Round(fps)))
}

// DateSource is anything that can render the current date.
type DateSource interface {
	Format() string
}

// UpdateDate copies the formatted date from src.
func (t *Text) UpdateDate(src DateSource) {
	if t == nil || src == nil {
		return
	}
	t.Value = src.Format()
}
