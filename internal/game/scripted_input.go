package game

// ScriptedInput replays a fixed list of frames, then repeats Idle forever.
// It drives the headless runner and the tests.
type ScriptedInput struct {
	Frames []FrameInput
	Idle   FrameInput
	next   int
}

// Push appends frames to the script.
func (s *ScriptedInput) Push(frames ...FrameInput) {
	s.Frames = append(s.Frames, frames...)
}

// Remaining returns the number of scripted frames not yet consumed.
func (s *ScriptedInput) Remaining() int { return len(s.Frames) - s.next }

// Sample returns the next scripted frame, filling in the window size for
// the camera input.
func (s *ScriptedInput) Sample(screenW, screenH int) FrameInput {
	f := s.Idle
	if s.next < len(s.Frames) {
		f = s.Frames[s.next]
		s.next++
	}
	f.Camera.WindowWidth = float64(screenW)
	f.Camera.WindowHeight = float64(screenH)
	return f
}
