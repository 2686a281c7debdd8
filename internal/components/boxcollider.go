package components

import (
	"raycastdemo/internal/engine"
	"raycastdemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box. Rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) IntersectRay(r physics.Ray, maxDistance float32) (physics.RaycastHit, bool) {
	dist, normal, ok := physics.IntersectAABB(r, b.Bounds(), maxDistance)
	if !ok {
		return physics.RaycastHit{}, false
	}
	return physics.RaycastHit{Point: r.At(dist), Normal: normal, Distance: dist}, true
}
