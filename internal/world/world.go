package world

import (
	"fmt"

	"raycastdemo/internal/components"
	"raycastdemo/internal/debugdraw"
	"raycastdemo/internal/engine"
	"raycastdemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties a scene to its physics, prefabs and debug lines, and is the
// engine.WorldAccess handed to components.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Debug        *debugdraw.Lines
	prefabs      map[string]ObjectDef
}

func New() *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		Debug:        &debugdraw.Lines{},
		prefabs:      make(map[string]ObjectDef),
	}
	w.Scene.World = w
	return w
}

// SpawnObject adds g to the scene and, if it has a collider, to physics.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
}

func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.Destroy(g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	return w.PhysicsWorld.Raycast(origin, direction, maxDistance, mask)
}

func (w *World) DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32) {
	w.Debug.DrawLine(start, end, color, duration)
}

// RegisterPrefab stores def under name, replacing any previous prefab.
func (w *World) RegisterPrefab(name string, def ObjectDef) {
	w.prefabs[name] = def
}

func (w *World) HasPrefab(name string) bool {
	_, ok := w.prefabs[name]
	return ok
}

func (w *World) Instantiate(prefab string) (*engine.GameObject, error) {
	def, ok := w.prefabs[prefab]
	if !ok {
		return nil, fmt.Errorf("prefab %q not found", prefab)
	}
	g, err := buildObject(def)
	if err != nil {
		return nil, fmt.Errorf("instantiate %q: %w", prefab, err)
	}
	w.SpawnObject(g)
	return g, nil
}

// FindRaycastDemo returns the first RaycastDemo in the scene.
func (w *World) FindRaycastDemo() *components.RaycastDemo {
	for _, g := range w.Scene.GameObjects {
		if d := engine.GetComponent[*components.RaycastDemo](g); d != nil {
			return d
		}
	}
	return nil
}

// Update advances debug lines, the scene and then drops destroyed colliders.
func (w *World) Update(deltaTime float32) {
	w.Debug.Update(deltaTime)
	w.Scene.Update(deltaTime)
	for _, g := range w.PhysicsWorld.Objects() {
		if g.Destroyed() {
			w.PhysicsWorld.RemoveObject(g)
		}
	}
}
