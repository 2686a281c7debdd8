package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPositionFacesXYPlane(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2})
	pos := c.Position()

	if math.Abs(float64(pos.X-1)) > 1e-4 || math.Abs(float64(pos.Y-2)) > 1e-4 {
		t.Errorf("Expected eye in front of the target, got %v", pos)
	}
	if math.Abs(float64(pos.Z-25)) > 1e-4 {
		t.Errorf("Expected eye 25 units along +Z, got %v", pos)
	}
}

func TestOrbitClamps(t *testing.T) {
	c := New(rl.Vector3{})

	c.Orbit(0, 10000, 0)
	if c.Pitch != 89 {
		t.Errorf("Pitch should clamp to 89, got %f", c.Pitch)
	}
	c.Orbit(0, -10000, 0)
	if c.Pitch != -89 {
		t.Errorf("Pitch should clamp to -89, got %f", c.Pitch)
	}

	c.Orbit(0, 0, 1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Zoom should clamp to MinDistance, got %f", c.Distance)
	}
	c.Orbit(0, 0, -1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Zoom should clamp to MaxDistance, got %f", c.Distance)
	}
}

func TestGetRaylibCamera(t *testing.T) {
	c := New(rl.Vector3{Y: 1})
	cam := c.GetRaylibCamera()

	if cam.Target != c.Target || cam.Position != c.Position() {
		t.Errorf("Camera mismatch: %+v", cam)
	}
	if cam.Projection != rl.CameraPerspective {
		t.Error("Expected a perspective camera")
	}
}
