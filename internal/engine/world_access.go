package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Hit reports whether the result refers to a collider.
func (r RaycastResult) Hit() bool {
	return r.GameObject != nil
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	// Instantiate clones a named prefab into the scene.
	Instantiate(prefab string) (*GameObject, error)
	Destroy(g *GameObject)
	DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32)
}
