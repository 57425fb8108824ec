package laser

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	// StartOffset lifts the beam origin above the held object's bottom face
	// so the ray does not start on the object's own surface.
	StartOffset float32 = 0.05

	// FallbackDistance is how far the beam reaches when nothing valid is hit.
	// It does not depend on the configured scan distance.
	FallbackDistance float32 = 50
)

// BeamGeometry is one frame's beam path.
type BeamGeometry struct {
	Start rl.Vector3
	End   rl.Vector3
	Hit   bool
}

// Length is the distance between the endpoints.
func (g BeamGeometry) Length() float32 {
	return rl.Vector3Distance(g.Start, g.End)
}
