package core

import (
	"math"
	"math/rand"
)

// CosinePDF is a cosine-weighted hemisphere distribution around a normal.
// It lives in core (rather than pkg/pdf, where spec.md's prose places the
// rest of the PDF algebra) because materials construct one directly for
// their Diffuse/Glossy scatter outcomes, and core cannot import the
// material-consuming pkg/pdf package without a cycle. See DESIGN.md.
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF builds the cosine distribution around normal w.
func NewCosinePDF(w Vec3) CosinePDF {
	return CosinePDF{basis: NewONB(w)}
}

// Value returns max(0, cos θ)/π, except it returns 1.0 below the horizon —
// the degenerate value the Mixture PDF expects so division never blows up.
func (p CosinePDF) Value(dir Vec3) float64 {
	cosine := dir.Normalize().Dot(p.basis.W)
	if cosine > 0 {
		return cosine / math.Pi
	}
	return 1.0
}

// Generate draws a cosine-weighted direction in the basis's hemisphere.
func (p CosinePDF) Generate(random *rand.Rand) Vec3 {
	return p.basis.Local(randomCosineLocal(random))
}

func randomCosineLocal(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := math.Sqrt(1 - r2)
	phi := 2 * math.Pi * r1
	return Vec3{X: math.Cos(phi) * math.Sqrt(r2), Y: math.Sin(phi) * math.Sqrt(r2), Z: z}
}
