package material

import (
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// EmissiveDiffuse never scatters; it contributes its texture color as
// emission. Used for area lights.
type EmissiveDiffuse struct {
	Texture texture.Texture
}

// NewEmissiveDiffuse creates an emissive material from the given texture.
func NewEmissiveDiffuse(tex texture.Texture) *EmissiveDiffuse {
	return &EmissiveDiffuse{Texture: tex}
}

func (e *EmissiveDiffuse) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (e *EmissiveDiffuse) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Texture.ColorAt(uv, point)
}

func (e *EmissiveDiffuse) ScatteringPDF(hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
