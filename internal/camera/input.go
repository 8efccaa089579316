package camera

import "math"

// Input is one frame of camera-relevant input.
type Input struct {
	Up, Down, Left, Right bool

	// Pointer is the cursor position in window pixels, y growing downward.
	// HasPointer is false when the cursor is outside the window.
	PointerX, PointerY float64
	HasPointer         bool

	WindowWidth, WindowHeight float64

	// Scroll is the vertical wheel delta this frame; positive scrolls up.
	Scroll float64
}

// Direction sums the key and edge-scroll contributions into an
// unnormalized pan vector in world axes (y up). Opposite keys cancel, and
// each axis stays within [-2, 2].
func Direction(in Input, s Settings) (dx, dy float64) {
	if in.Up {
		dy++
	}
	if in.Down {
		dy--
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}

	if in.HasPointer {
		m := s.EdgeScrollMargin
		if in.PointerX <= m {
			dx--
		} else if in.PointerX >= in.WindowWidth-m {
			dx++
		}
		// Screen y grows downward, so the top edge pans up.
		if in.PointerY <= m {
			dy++
		} else if in.PointerY >= in.WindowHeight-m {
			dy--
		}
	}
	return dx, dy
}

// Resolve updates target from one frame of input lasting dt seconds. It
// never touches the rendered pose.
func Resolve(target *Target, s Settings, in Input, dt float64) {
	if target == nil {
		return
	}
	dx, dy := Direction(in, s)
	if l := math.Hypot(dx, dy); l > 0 {
		step := s.PanSpeed * dt / l
		target.Position.X += dx * step
		target.Position.Y += dy * step
	}

	if in.Scroll != 0 {
		target.Zoom *= 1 - in.Scroll*s.ZoomSpeed
		target.Zoom = clamp(target.Zoom, s.MinScale, s.MaxScale)
	}
}
