package components

import (
	"fmt"

	"raycastdemo/internal/engine"
	"raycastdemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type debugLine struct {
	start, end rl.Vector3
	color      rl.Color
	duration   float32
}

// fakeWorld is a minimal engine.WorldAccess backed by a real PhysicsWorld.
type fakeWorld struct {
	scene      *engine.Scene
	physics    *physics.PhysicsWorld
	prefabs    map[string]func() *engine.GameObject
	debugLines []debugLine
}

func newFakeWorld() *fakeWorld {
	w := &fakeWorld{
		scene:   engine.NewScene("Test"),
		physics: physics.NewPhysicsWorld(),
		prefabs: map[string]func() *engine.GameObject{},
	}
	w.scene.World = w
	w.prefabs["HitLine"] = func() *engine.GameObject {
		g := engine.NewGameObject("HitLine")
		g.AddComponent(NewLineRenderer(rl.White))
		g.AddComponent(NewHitLineRenderer())
		return g
	}
	return w
}

func (w *fakeWorld) spawn(g *engine.GameObject) {
	w.scene.AddGameObject(g)
	w.physics.AddObject(g)
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	return w.physics.Raycast(origin, direction, maxDistance, mask)
}

func (w *fakeWorld) Instantiate(prefab string) (*engine.GameObject, error) {
	build, ok := w.prefabs[prefab]
	if !ok {
		return nil, fmt.Errorf("prefab %q not found", prefab)
	}
	g := build()
	w.spawn(g)
	return g, nil
}

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	w.scene.Destroy(g)
}

func (w *fakeWorld) DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32) {
	w.debugLines = append(w.debugLines, debugLine{start, end, color, duration})
}

func (w *fakeWorld) hitLines() []*HitLineRenderer {
	var out []*HitLineRenderer
	for _, g := range w.scene.GameObjects {
		if h := engine.GetComponent[*HitLineRenderer](g); h != nil && !g.Destroyed() {
			out = append(out, h)
		}
	}
	return out
}

func (w *fakeWorld) addBox(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(NewBoxCollider(size))
	w.spawn(g)
	return g
}

func (w *fakeWorld) addCaster(pos rl.Vector3) *RaycastDemo {
	g := engine.NewGameObject("Caster")
	g.Transform.Position = pos
	demo := NewRaycastDemo()
	g.AddComponent(demo)
	w.spawn(g)
	return demo
}
