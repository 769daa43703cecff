package material

import (
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// Metal reflects incoming rays about the shading normal, perturbed by Fuzz
// toward a random point in the unit sphere.
type Metal struct {
	Texture texture.Texture
	Fuzz    float64
}

// NewMetal creates a metal material; Fuzz is clamped to [0,1].
func NewMetal(tex texture.Texture, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Texture: tex, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	shadingNormal := m.Texture.AdjustedNormal(hit.UV, hit.Normal)
	reflected := reflect(rayIn.Direction.Normalize(), shadingNormal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz)).Normalize()
	}

	scattered := core.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(shadingNormal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Kind:        core.ScatterSpecular,
		SpecularRay: scattered,
		Attenuation: m.Texture.ColorAt(hit.UV, hit.Point),
	}, true
}

func (m *Metal) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (m *Metal) ScatteringPDF(hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
