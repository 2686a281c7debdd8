package components

import (
	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineRenderer draws a polyline through its world-space positions.
type LineRenderer struct {
	engine.BaseComponent
	StartColor rl.Color
	EndColor   rl.Color
	Width      float32
	positions  []rl.Vector3
}

func NewLineRenderer(color rl.Color) *LineRenderer {
	return &LineRenderer{
		StartColor: color,
		EndColor:   color,
		Width:      1,
	}
}

func (l *LineRenderer) PositionCount() int {
	return len(l.positions)
}

// SetPositionCount resizes the polyline, keeping existing points.
func (l *LineRenderer) SetPositionCount(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(l.positions) {
		l.positions = l.positions[:n]
		return
	}
	l.positions = append(l.positions, make([]rl.Vector3, n-len(l.positions))...)
}

// SetPosition sets point i. Out-of-range indices are ignored.
func (l *LineRenderer) SetPosition(i int, p rl.Vector3) {
	if i < 0 || i >= len(l.positions) {
		return
	}
	l.positions[i] = p
}

func (l *LineRenderer) GetPosition(i int) rl.Vector3 {
	if i < 0 || i >= len(l.positions) {
		return rl.Vector3{}
	}
	return l.positions[i]
}

// Segments calls fn for each consecutive pair of points with the colour
// interpolated at the segment start.
func (l *LineRenderer) Segments(fn func(from, to rl.Vector3, color rl.Color)) {
	n := len(l.positions)
	for i := 0; i+1 < n; i++ {
		t := float32(0)
		if n > 2 {
			t = float32(i) / float32(n-2)
		}
		fn(l.positions[i], l.positions[i+1], lerpColor(l.StartColor, l.EndColor, t))
	}
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
