package game

import (
	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameInput is everything the game reads from the host in one frame.
// Key fields ending in Pressed are edge-triggered: true only on the frame
// the key went down.
type FrameInput struct {
	Camera  camera.Input
	Pointer ui.Pointer

	PausePressed bool            // Escape
	SpacePressed bool            // Space: stop / restart the clock
	Preset       calendar.Preset // numpad speed, 0 if none
	CopyPressed  bool            // F12: copy status to clipboard

	// FPS is the host's smoothed frame rate; FPSOK is false until the host
	// has a measurement.
	FPS   float64
	FPSOK bool
}

// InputSource produces one FrameInput per Update.
type InputSource interface {
	Sample(screenW, screenH int) FrameInput
}

// ebitenInput polls Ebitengine. Edge detection mirrors the classic
// prevKeys pattern so every key is sampled exactly once per frame.
type ebitenInput struct {
	prevKeys map[ebiten.Key]bool
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{prevKeys: make(map[ebiten.Key]bool)}
}

var edgeKeys = []ebiten.Key{
	ebiten.KeyEscape, ebiten.KeySpace,
	ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
	ebiten.KeyF12,
}

func (in *ebitenInput) Sample(screenW, screenH int) FrameInput {
	current := make(map[ebiten.Key]bool, len(edgeKeys))
	for _, k := range edgeKeys {
		current[k] = ebiten.IsKeyPressed(k)
	}
	edge := func(k ebiten.Key) bool { return current[k] && !in.prevKeys[k] }

	var f FrameInput
	f.PausePressed = edge(ebiten.KeyEscape)
	f.SpacePressed = edge(ebiten.KeySpace)
	f.CopyPressed = edge(ebiten.KeyF12)
	switch {
	case edge(ebiten.KeyNumpad1):
		f.Preset = calendar.PresetNormal
	case edge(ebiten.KeyNumpad2):
		f.Preset = calendar.PresetFast
	case edge(ebiten.KeyNumpad3):
		f.Preset = calendar.PresetFaster
	}
	in.prevKeys = current

	mx, my := ebiten.CursorPosition()
	present := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < screenW && my < screenH
	_, wy := ebiten.Wheel()

	f.Camera = camera.Input{
		Up:           ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		PointerX:     float64(mx),
		PointerY:     float64(my),
		HasPointer:   present,
		WindowWidth:  float64(screenW),
		WindowHeight: float64(screenH),
		Scroll:       wy,
	}
	f.Pointer = ui.Pointer{
		X:          mx,
		Y:          my,
		Present:    present,
		LeftButton: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	f.FPS = ebiten.ActualFPS()
	f.FPSOK = f.FPS > 0
	return f
}
