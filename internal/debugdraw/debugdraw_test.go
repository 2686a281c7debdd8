package debugdraw

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLinesExpire(t *testing.T) {
	var l Lines
	l.DrawLine(rl.Vector3{}, rl.Vector3{X: 1}, rl.Red, 1)

	l.Update(0.5)
	if l.Len() != 1 {
		t.Fatalf("Line should still be alive, got %d", l.Len())
	}

	l.Update(0.6)
	if l.Len() != 1 {
		t.Fatalf("Line should be drawn on the frame its time runs out, got %d", l.Len())
	}

	l.Update(0.1)
	if l.Len() != 0 {
		t.Errorf("Line should have expired, got %d", l.Len())
	}
}

func TestLinesSingleFrame(t *testing.T) {
	var l Lines
	l.DrawLine(rl.Vector3{}, rl.Vector3{Y: 1}, rl.Blue, 0)

	if got := l.Snapshot(); len(got) != 1 || got[0].Color != rl.Blue {
		t.Fatalf("Unexpected snapshot %v", got)
	}

	l.Update(0.016)
	if l.Len() != 0 {
		t.Errorf("Zero-duration line should be gone after one Update, got %d", l.Len())
	}
}

func TestLinesClear(t *testing.T) {
	var l Lines
	l.DrawLine(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Green, 10)
	l.Clear()
	if l.Len() != 0 {
		t.Error("Clear should drop every line")
	}
}
