// Package camera drives the strategic map camera: input picks a desired
// position and zoom, the rendered pose chases it with exponential
// smoothing, and the result is clamped to the map.
package camera

import "math"

// smoothRate is the exponential decay rate (per second) of the gap between
// the rendered pose and the target.
const smoothRate = 12.0

// Vec3 is a world-space position. Z is carried but never changed by the
// camera systems.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Lerp moves v toward o by fraction t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 { return v.Add(o.Sub(v).Scale(t)) }

// Settings tunes zoom and pan. Values are not validated: a MinScale above
// MaxScale yields an inverted clamp.
type Settings struct {
	MinScale         float64 `yaml:"min_scale"`
	MaxScale         float64 `yaml:"max_scale"`
	ZoomSpeed        float64 `yaml:"zoom_speed"`
	PanSpeed         float64 `yaml:"pan_speed"`          // world units per second
	EdgeScrollMargin float64 `yaml:"edge_scroll_margin"` // pixels
}

// DefaultSettings returns the stock camera tuning.
func DefaultSettings() Settings {
	return Settings{
		MinScale:         0.3,
		MaxScale:         3.0,
		ZoomSpeed:        0.15,
		PanSpeed:         600,
		EdgeScrollMargin: 5,
	}
}

// Target is the desired camera position and zoom the smoother chases.
type Target struct {
	Position Vec3
	Zoom     float64
}

// NewTarget returns a target at the origin with zoom 1.
func NewTarget() *Target {
	return &Target{Zoom: 1}
}

// ProjectionKind distinguishes orthographic from perspective cameras.
type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

// Projection is the rendered camera's projection. Scale is only
// meaningful for orthographic projections.
type Projection struct {
	Kind  ProjectionKind
	Scale float64
}

// Pose is the rendered camera transform.
type Pose struct {
	Position   Vec3
	Projection Projection
}

// NewPose returns an orthographic pose at the origin with scale 1.
func NewPose() *Pose {
	return &Pose{Projection: Projection{Kind: Orthographic, Scale: 1}}
}

// SmoothingFactor returns the frame-rate independent lerp fraction for a
// frame lasting dt seconds.
func SmoothingFactor(dt float64) float64 {
	return 1 - math.Exp(-smoothRate*dt)
}

// Smooth moves pose toward target. Perspective projections keep their
// scale. A nil pose is ignored.
func Smooth(pose *Pose, target Target, dt float64) {
	if pose == nil {
		return
	}
	alpha := SmoothingFactor(dt)
	pose.Position = pose.Position.Lerp(target.Position, alpha)
	if pose.Projection.Kind == Orthographic {
		s := pose.Projection.Scale
		pose.Projection.Scale = s + (target.Zoom-s)*alpha
	}
}

// Bounds is the playable map rectangle centred on the origin, plus the
// distance the camera may travel past its edges.
type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"camera_margin"`
}

// Clamp pins the pose position inside the bounds. A nil pose is ignored.
func (b Bounds) Clamp(pose *Pose) {
	if pose == nil {
		return
	}
	hw := b.Width/2 + b.Margin
	hh := b.Height/2 + b.Margin
	pose.Position.X = clamp(pose.Position.X, -hw, hw)
	pose.Position.Y = clamp(pose.Position.Y, -hh, hh)
}

// Contains reports whether p lies inside the clamped region.
func (b Bounds) Contains(p Vec3) bool {
	hw := b.Width/2 + b.Margin
	hh := b.Height/2 + b.Margin
	return p.X >= -hw && p.X <= hw && p.Y >= -hh && p.Y <= hh
}

// clamp applies lo then hi, so an inverted range resolves to hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
