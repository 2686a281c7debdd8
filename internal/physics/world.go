package physics

import (
	"sync"

	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsWorld holds every GameObject that carries a Collider.
// Raycasts may run concurrently; Add/Remove must not overlap a batch.
type PhysicsWorld struct {
	mu      sync.RWMutex
	objects []*engine.GameObject
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		objects: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g if it has at least one collider.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if len(engine.GetComponents[Collider](g)) == 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, obj := range p.objects {
		if obj == g {
			return true
		}
	}
	p.objects = append(p.objects, g)
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, obj := range p.objects {
		if obj == g {
			p.objects = append(p.objects[:i], p.objects[i+1:]...)
			return
		}
	}
}

// Objects returns a snapshot of the registered objects.
func (p *PhysicsWorld) Objects() []*engine.GameObject {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*engine.GameObject, len(p.objects))
	copy(out, p.objects)
	return out
}

// Raycast returns the closest hit among colliders whose layer is in mask.
// A zero direction never hits.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (RaycastHit, bool) {
	if rl.Vector3DotProduct(direction, direction) == 0 || maxDistance < 0 {
		return RaycastHit{}, false
	}
	ray := NewRay(origin, direction)

	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, obj := range p.objects {
		if !obj.Active || obj.Destroyed() || !mask.Contains(obj.Layer) {
			continue
		}
		for _, col := range engine.GetComponents[Collider](obj) {
			info, ok := col.IntersectRay(ray, maxDistance)
			if !ok || info.Distance > closest.Distance {
				continue
			}
			if hit && info.Distance == closest.Distance {
				continue
			}
			closest = info
			closest.GameObject = obj
			hit = true
		}
	}

	return closest, hit
}
