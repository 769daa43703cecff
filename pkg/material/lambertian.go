// Package material implements the five scattering variants the renderer's
// intersection model supports, each backed by a pkg/texture.Texture for its
// surface color.
package material

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// Lambertian is a perfectly diffuse material: it scatters cosine-weighted
// about the shading normal and contributes no emission.
type Lambertian struct {
	Texture texture.Texture
}

// NewLambertian creates a Lambertian material over the given texture.
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Texture: tex}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	shadingNormal := l.Texture.AdjustedNormal(hit.UV, hit.Normal)
	return core.ScatterResult{
		Kind:        core.ScatterDiffuse,
		Attenuation: l.Texture.ColorAt(hit.UV, hit.Point),
		PDF:         core.NewCosinePDF(shadingNormal),
	}, true
}

func (l *Lambertian) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF returns max(0, n.w)/pi, the cosine-weighted density of the
// scattered direction under this material's own distribution.
func (l *Lambertian) ScatteringPDF(hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		cosine = 0
	}
	return cosine / math.Pi
}
