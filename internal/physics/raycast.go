package physics

import (
	"math"

	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest non-trigger hit along the ray.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	hits, err := p.RaycastAll(origin, direction, maxDistance, false)
	if err != nil || len(hits) == 0 {
		return engine.RaycastResult{}, false
	}
	closest := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < closest.Distance {
			closest = h
		}
	}
	return closest, true
}

// RaycastAll returns every collider hit within maxDistance, in scene order.
// Trigger volumes are included only when includeTriggers is set. Colliders
// that contain the origin are not reported.
func (p *PhysicsWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32, includeTriggers bool) ([]engine.RaycastResult, error) {
	if p.scene == nil {
		return nil, ErrNoScene
	}
	if !(maxDistance > 0) || math.IsInf(float64(maxDistance), 0) {
		return nil, ErrInvalidDistance
	}
	if rl.Vector3Length(direction) == 0 {
		return nil, ErrInvalidDirection
	}
	direction = rl.Vector3Normalize(direction)

	var hits []engine.RaycastResult
	for _, obj := range p.scene.GameObjects {
		if !obj.Active || obj.Destroyed() {
			continue
		}
		for _, c := range obj.Components() {
			col, ok := c.(engine.Collider)
			if !ok || (col.IsTrigger() && !includeTriggers) {
				continue
			}
			var (
				hit   engine.RaycastResult
				hitOK bool
			)
			switch shape := col.(type) {
			case *components.SphereCollider:
				hit, hitOK = raycastSphere(origin, direction, shape.GetCenter(), shape.Radius, maxDistance)
			default:
				hit, hitOK = raycastBox(origin, direction, col.Bounds(), maxDistance)
			}
			if hitOK {
				hit.GameObject = obj
				hits = append(hits, hit)
			}
		}
	}
	return hits, nil
}

func raycastBox(origin, direction rl.Vector3, b engine.Bounds, maxDistance float32) (engine.RaycastResult, bool) {
	min, max := b.Min, b.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return engine.RaycastResult{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return engine.RaycastResult{}, false
	}

	if tmin > tmax {
		return engine.RaycastResult{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return engine.RaycastResult{}, false
	}

	// tmin < 0: the box is behind the origin or contains it.
	if tmin > tmax || tmin < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}
	t := tmin

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	// Entry root only; a negative one means the origin is inside or past the sphere.
	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
