package material

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// Glossy is a probabilistic mix of a specular (Metal-like) lobe and a
// diffuse (Lambertian-like) lobe: with probability Sheen it reflects with
// Roughness as the fuzz factor, otherwise it scatters cosine-weighted. This
// mirrors the original Rust material, which never actually needs the
// combined "produce both lobes in one outcome" encoding spec.md also
// permits — see DESIGN.md.
type Glossy struct {
	Texture   texture.Texture
	Sheen     float64
	Roughness float64
}

// NewGlossy creates a glossy material; Sheen is the probability of a
// specular bounce, Roughness its fuzz factor.
func NewGlossy(tex texture.Texture, sheen, roughness float64) *Glossy {
	return &Glossy{Texture: tex, Sheen: sheen, Roughness: roughness}
}

func (g *Glossy) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	shadingNormal := g.Texture.AdjustedNormal(hit.UV, hit.Normal)
	color := g.Texture.ColorAt(hit.UV, hit.Point)

	if random.Float64() < g.Sheen {
		reflected := reflect(rayIn.Direction.Normalize(), shadingNormal)
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(g.Roughness)).Normalize()
		return core.ScatterResult{
			Kind:        core.ScatterSpecular,
			SpecularRay: core.NewRay(hit.Point, reflected),
			Attenuation: color,
		}, true
	}

	return core.ScatterResult{
		Kind:        core.ScatterDiffuse,
		Attenuation: color,
		PDF:         core.NewCosinePDF(shadingNormal),
	}, true
}

func (g *Glossy) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (g *Glossy) ScatteringPDF(hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		cosine = 0
	}
	return cosine / math.Pi
}
