// Package debugdraw keeps short-lived debug lines that are drawn without
// creating GameObjects.
package debugdraw

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Line struct {
	Start     rl.Vector3
	End       rl.Vector3
	Color     rl.Color
	Remaining float32
}

// Lines is safe for concurrent DrawLine calls.
type Lines struct {
	mu    sync.Mutex
	lines []Line
}

// DrawLine queues a line for duration seconds. A non-positive duration
// shows the line for a single frame.
func (l *Lines) DrawLine(start, end rl.Vector3, color rl.Color, duration float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, Line{Start: start, End: end, Color: color, Remaining: duration})
}

// Update ages every line and drops the expired ones. Lines queued with a
// non-positive duration survive until the Update after they were drawn.
func (l *Lines) Update(deltaTime float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.Remaining <= 0 {
			continue
		}
		line.Remaining -= deltaTime
		kept = append(kept, line)
	}
	clear(l.lines[len(kept):])
	l.lines = kept
}

// Snapshot returns a copy of the live lines.
func (l *Lines) Snapshot() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Lines) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func (l *Lines) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}
