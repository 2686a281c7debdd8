package components

import (
	"raycastdemo/internal/engine"
	"raycastdemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	m := max(abs(scale.X), abs(scale.Y), abs(scale.Z))
	return s.Radius * m
}

func (s *SphereCollider) Bounds() physics.AABB {
	d := 2 * s.GetWorldRadius()
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) IntersectRay(r physics.Ray, maxDistance float32) (physics.RaycastHit, bool) {
	dist, normal, ok := physics.IntersectSphere(r, s.GetCenter(), s.GetWorldRadius(), maxDistance)
	if !ok {
		return physics.RaycastHit{}, false
	}
	return physics.RaycastHit{Point: r.At(dist), Normal: normal, Distance: dist}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
