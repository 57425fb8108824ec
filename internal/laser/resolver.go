package laser

import (
	"errors"
	"fmt"
	"math"

	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNoHeldObject = errors.New("laser: no held object")

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

// RayQuery casts a ray straight down and reports every surface it crosses,
// trigger volumes included, in no particular order.
type RayQuery interface {
	CastAllDownward(origin rl.Vector3, maxDistance float32) ([]engine.RaycastResult, error)
}

// WorldQuery adapts a world's all-hit raycast to RayQuery.
type WorldQuery struct {
	World engine.WorldAccess
}

func (q WorldQuery) CastAllDownward(origin rl.Vector3, maxDistance float32) ([]engine.RaycastResult, error) {
	if q.World == nil {
		return nil, errors.New("laser: no world to query")
	}
	return q.World.RaycastAll(origin, down, maxDistance, true)
}

// Resolver finds where the beam under a held object ends.
type Resolver struct {
	query RayQuery
}

func NewResolver(query RayQuery) *Resolver {
	return &Resolver{query: query}
}

// StartPoint is the bottom-center of the first collider on held or its
// children, raised by StartOffset. Without a collider it is held's position.
func StartPoint(held *engine.GameObject) rl.Vector3 {
	col, ok := engine.GetComponentInChildren[engine.Collider](held)
	if !ok {
		return held.WorldPosition()
	}
	b := col.Bounds()
	from := b.Center()
	from.Y += StartOffset
	from.Y -= b.Extents().Y
	return from
}

// Resolve computes the beam for held. Hits on excluded names and hits on held
// itself (or anything parented under it) are skipped; the nearest remaining
// hit ends the beam, earlier hits winning ties. With no hit the beam runs
// FallbackDistance straight down.
func (r *Resolver) Resolve(held *engine.GameObject, exclusions ExclusionSet, maxDistance float32) (BeamGeometry, error) {
	if held == nil {
		return BeamGeometry{}, ErrNoHeldObject
	}

	from := StartPoint(held)
	geom := BeamGeometry{
		Start: from,
		End:   rl.Vector3Add(from, rl.Vector3Scale(down, FallbackDistance)),
	}

	hits, err := r.query.CastAllDownward(from, maxDistance)
	if err != nil {
		return BeamGeometry{}, fmt.Errorf("resolve beam for %q: %w", held.Name, err)
	}

	minDistance := float32(math.MaxFloat32)
	for _, hit := range hits {
		obj := hit.GameObject
		if obj == nil {
			continue
		}
		if exclusions.Contains(obj.Name) {
			continue
		}
		if obj.IsPartOf(held) {
			continue
		}
		if hit.Distance < minDistance {
			minDistance = hit.Distance
			geom.End = hit.Point
			geom.Hit = true
		}
	}
	return geom, nil
}
