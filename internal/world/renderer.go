package world

import (
	"raycastdemo/internal/components"
	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws collider wireframes, line renderers and debug lines.
// It must run between rl.BeginMode3D and rl.EndMode3D.
type Renderer struct {
	ColliderColor rl.Color
	OriginColor   rl.Color
	ShowGrid      bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		ColliderColor: rl.DarkGray,
		OriginColor:   rl.Gold,
		ShowGrid:      true,
	}
}

func (r *Renderer) Draw(w *World) {
	if r.ShowGrid {
		rl.DrawGrid(40, 1)
	}

	for _, g := range w.Scene.GameObjects {
		if !g.Active || g.Destroyed() {
			continue
		}
		r.drawObject(g)
	}

	for _, line := range w.Debug.Snapshot() {
		rl.DrawLine3D(line.Start, line.End, line.Color)
	}
}

func (r *Renderer) drawObject(g *engine.GameObject) {
	for _, c := range g.Components() {
		switch comp := c.(type) {
		case *components.BoxCollider:
			size := comp.GetWorldSize()
			rl.DrawCubeWiresV(comp.GetCenter(), size, r.ColliderColor)
		case *components.SphereCollider:
			rl.DrawSphereWires(comp.GetCenter(), comp.GetWorldRadius(), 8, 12, r.ColliderColor)
		case *components.LineRenderer:
			comp.Segments(func(from, to rl.Vector3, color rl.Color) {
				rl.DrawLine3D(from, to, color)
			})
		case *components.RaycastDemo:
			rl.DrawSphere(g.WorldPosition(), 0.15, r.OriginColor)
		}
	}
}
