package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line. Direction must be normalized for distances to be
// meaningful; NewRay normalizes it.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

func NewRay(origin, direction rl.Vector3) Ray {
	return Ray{Origin: origin, Direction: rl.Vector3Normalize(direction)}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// slab narrows [tmin, tmax] by one axis of a box. ok is false when the ray
// misses the slab entirely.
func slab(origin, dir, lo, hi, tmin, tmax float32) (float32, float32, bool) {
	if dir == 0 {
		if origin < lo || origin > hi {
			return tmin, tmax, false
		}
		return tmin, tmax, true
	}
	t1 := (lo - origin) / dir
	t2 := (hi - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, tmin <= tmax
}

// IntersectAABB returns the distance and surface normal where r enters box.
// A ray starting inside the box reports its exit point.
func IntersectAABB(r Ray, box AABB, maxDistance float32) (float32, rl.Vector3, bool) {
	tmin, tmax := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	var ok bool
	if tmin, tmax, ok = slab(r.Origin.X, r.Direction.X, box.Min.X, box.Max.X, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}
	if tmin, tmax, ok = slab(r.Origin.Y, r.Direction.Y, box.Min.Y, box.Max.Y, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}
	if tmin, tmax, ok = slab(r.Origin.Z, r.Direction.Z, box.Min.Z, box.Max.Z, tmin, tmax); !ok {
		return 0, rl.Vector3{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return 0, rl.Vector3{}, false
	}

	return t, boxNormal(r.At(t), box), true
}

// boxNormal picks the face of box closest to p.
func boxNormal(p rl.Vector3, box AABB) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case abs(p.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(p.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(p.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(p.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(p.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

// IntersectSphere returns the distance and normal of the first crossing of
// r with the sphere surface.
func IntersectSphere(r Ray, center rl.Vector3, radius, maxDistance float32) (float32, rl.Vector3, bool) {
	oc := rl.Vector3Subtract(r.Origin, center)
	a := rl.Vector3DotProduct(r.Direction, r.Direction)
	if a == 0 {
		return 0, rl.Vector3{}, false
	}
	b := 2.0 * rl.Vector3DotProduct(oc, r.Direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, rl.Vector3{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return 0, rl.Vector3{}, false
	}

	normal := rl.Vector3Normalize(rl.Vector3Subtract(r.At(t), center))
	return t, normal, true
}
