package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func window(in Input) Input {
	in.WindowWidth, in.WindowHeight = 1280, 720
	return in
}

func TestDirection_OppositeKeysCancel(t *testing.T) {
	dx, dy := Direction(Input{Up: true, Down: true, Left: true, Right: true}, DefaultSettings())
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDirection_EdgeScrollAddsToKeys(t *testing.T) {
	s := DefaultSettings()
	in := window(Input{Right: true, Up: true, HasPointer: true, PointerX: 1279, PointerY: 2})
	dx, dy := Direction(in, s)
	assert.Equal(t, 2.0, dx)
	assert.Equal(t, 2.0, dy)
}

func TestDirection_BottomLeftEdge(t *testing.T) {
	in := window(Input{HasPointer: true, PointerX: 0, PointerY: 719})
	dx, dy := Direction(in, DefaultSettings())
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, -1.0, dy)
}

func TestDirection_PointerInsideIsNeutral(t *testing.T) {
	in := window(Input{HasPointer: true, PointerX: 640, PointerY: 360})
	dx, dy := Direction(in, DefaultSettings())
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDirection_NoPointerIgnoresEdges(t *testing.T) {
	in := window(Input{HasPointer: false, PointerX: 0, PointerY: 0})
	dx, dy := Direction(in, DefaultSettings())
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDirection_BoundedAndZeroOnlyWithoutInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test only
	s := DefaultSettings()
	for i := 0; i < 2000; i++ {
		in := window(Input{
			Up:         rng.Intn(2) == 0,
			Down:       rng.Intn(2) == 0,
			Left:       rng.Intn(2) == 0,
			Right:      rng.Intn(2) == 0,
			HasPointer: rng.Intn(2) == 0,
			PointerX:   rng.Float64() * 1280,
			PointerY:   rng.Float64() * 720,
		})
		dx, dy := Direction(in, s)
		require.LessOrEqual(t, math.Abs(dx), 2.0)
		require.LessOrEqual(t, math.Abs(dy), 2.0)

		var ex, ey float64
		if in.Right {
			ex++
		}
		if in.Left {
			ex--
		}
		if in.Up {
			ey++
		}
		if in.Down {
			ey--
		}
		if in.HasPointer {
			if in.PointerX <= s.EdgeScrollMargin {
				ex--
			} else if in.PointerX >= 1280-s.EdgeScrollMargin {
				ex++
			}
			if in.PointerY <= s.EdgeScrollMargin {
				ey++
			} else if in.PointerY >= 720-s.EdgeScrollMargin {
				ey--
			}
		}
		require.Equal(t, ex == 0 && ey == 0, dx == 0 && dy == 0)
	}
}

func TestResolve_PanIsNormalized(t *testing.T) {
	s := DefaultSettings()
	target := NewTarget()
	Resolve(target, s, window(Input{Up: true, Right: true}), 0.5)
	dist := math.Hypot(target.Position.X, target.Position.Y)
	assert.InDelta(t, s.PanSpeed*0.5, dist, 1e-9)
	assert.InDelta(t, target.Position.X, target.Position.Y, 1e-9)
	assert.Zero(t, target.Position.Z)
}

func TestResolve_NoInputLeavesTarget(t *testing.T) {
	target := &Target{Position: Vec3{X: 10, Y: -4, Z: 3}, Zoom: 1.5}
	Resolve(target, DefaultSettings(), window(Input{}), frame)
	assert.Equal(t, Target{Position: Vec3{X: 10, Y: -4, Z: 3}, Zoom: 1.5}, *target)
}

func TestResolve_ScrollZooms(t *testing.T) {
	target := NewTarget()
	Resolve(target, DefaultSettings(), Input{Scroll: 1}, frame)
	assert.InDelta(t, 0.85, target.Zoom, 1e-9)
	Resolve(target, DefaultSettings(), Input{Scroll: -1}, frame)
	assert.InDelta(t, 0.85*1.15, target.Zoom, 1e-9)
}

func TestResolve_ZoomAlwaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) // #nosec G404 -- test only
	s := DefaultSettings()
	target := NewTarget()
	for i := 0; i < 5000; i++ {
		Resolve(target, s, Input{Scroll: rng.Float64()*6 - 3}, frame)
		require.GreaterOrEqual(t, target.Zoom, s.MinScale)
		require.LessOrEqual(t, target.Zoom, s.MaxScale)
	}
}

func TestResolve_NilTarget(t *testing.T) {
	assert.NotPanics(t, func() { Resolve(nil, DefaultSettings(), Input{Up: true}, frame) })
}

func TestSmooth_ConvergesMonotonically(t *testing.T) {
	pose := NewPose()
	target := Target{Position: Vec3{X: 900, Y: -300}, Zoom: 2.5}
	prev := math.Inf(1)
	for i := 0; i < 100; i++ {
		Smooth(pose, target, frame)
		gap := math.Hypot(target.Position.X-pose.Position.X, target.Position.Y-pose.Position.Y)
		require.Less(t, gap, prev, "step %d", i)
		prev = gap
	}
	assert.InDelta(t, 900, pose.Position.X, 1e-4)
	assert.InDelta(t, -300, pose.Position.Y, 1e-4)
	assert.InDelta(t, 2.5, pose.Projection.Scale, 1e-4)
}

func TestSmooth_FrameRateIndependent(t *testing.T) {
	target := Target{Position: Vec3{X: 100}, Zoom: 1}
	a, b := NewPose(), NewPose()
	for i := 0; i < 30; i++ {
		Smooth(a, target, 1.0/30)
	}
	for i := 0; i < 120; i++ {
		Smooth(b, target, 1.0/120)
	}
	assert.InDelta(t, a.Position.X, b.Position.X, 1e-9)
}

func TestSmooth_PerspectiveKeepsScale(t *testing.T) {
	pose := &Pose{Projection: Projection{Kind: Perspective, Scale: 1}}
	Smooth(pose, Target{Position: Vec3{X: 50}, Zoom: 3}, 0.1)
	assert.Equal(t, 1.0, pose.Projection.Scale)
	assert.Greater(t, pose.Position.X, 0.0)
}

func TestSmooth_NilPose(t *testing.T) {
	assert.NotPanics(t, func() { Smooth(nil, *NewTarget(), frame) })
}

func TestSmoothingFactor(t *testing.T) {
	assert.Zero(t, SmoothingFactor(0))
	assert.InDelta(t, 1-math.Exp(-0.2), SmoothingFactor(frame), 1e-12)
	assert.InDelta(t, 1, SmoothingFactor(100), 1e-12)
}

func TestClamp_AlwaysInsideBounds(t *testing.T) {
	b := Bounds{Width: 4000, Height: 4000, Margin: 200}
	for _, p := range []Vec3{
		{X: 1e9, Y: -1e9},
		{X: -2201, Y: 2201},
		{X: 2200, Y: -2200},
		{X: 5, Y: 5},
	} {
		pose := &Pose{Position: p}
		b.Clamp(pose)
		assert.True(t, b.Contains(pose.Position), "%+v", pose.Position)
		assert.GreaterOrEqual(t, pose.Position.X, -2200.0)
		assert.LessOrEqual(t, pose.Position.X, 2200.0)
	}
}

func TestClamp_Idempotent(t *testing.T) {
	b := Bounds{Width: 1000, Height: 500, Margin: 50}
	pose := &Pose{Position: Vec3{X: 9000, Y: -9000, Z: 7}}
	b.Clamp(pose)
	once := *pose
	b.Clamp(pose)
	assert.Equal(t, once, *pose)
	assert.Equal(t, Vec3{X: 550, Y: -300, Z: 7}, pose.Position)
}

func TestClamp_NilPose(t *testing.T) {
	assert.NotPanics(t, func() { Bounds{}.Clamp(nil) })
}
