package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target    rl.Vector3
	Yaw       float32
	Pitch     float32
	Distance  float32
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

// New looks at target from the +Z side, which faces the XY plane the
// demo casts in.
func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         90,
		Pitch:       0,
		Distance:    25,
		LookSpeed:   0.3,
		ZoomSpeed:   2,
		MinDistance: 2,
		MaxDistance: 200,
	}
}

// Orbit applies a mouse delta (pixels) and a wheel delta.
func (c *OrbitCamera) Orbit(dx, dy, wheel float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch += dy * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Update reads raylib input. Orbiting needs the right mouse button.
func (c *OrbitCamera) Update() {
	var dx, dy float32
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		dx, dy = delta.X, delta.Y
	}
	c.Orbit(dx, dy, rl.GetMouseWheelMove())
}

// Position returns the eye point on the orbit sphere.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X + float32(d*math.Cos(pitchRad)*math.Cos(yawRad)),
		Y: c.Target.Y + float32(d*math.Sin(pitchRad)),
		Z: c.Target.Z + float32(d*math.Cos(pitchRad)*math.Sin(yawRad)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
