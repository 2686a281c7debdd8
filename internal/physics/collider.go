package physics

import "raycastdemo/internal/engine"

type RaycastHit = engine.RaycastResult

// Collider is implemented by components that rays can hit.
type Collider interface {
	engine.Component
	// IntersectRay tests r against the collider in world space.
	// The returned hit has no GameObject set.
	IntersectRay(r Ray, maxDistance float32) (RaycastHit, bool)
	Bounds() AABB
}
