package core

import "math/rand"

// PDF is a sampleable probability density over directions. Cosine lives in
// this package (materials construct one directly for their Diffuse/Glossy
// scatter outcomes); Lights and Mixture live in pkg/pdf, which depends on
// core for the Shape interface instead of the other way around — see
// DESIGN.md for why this inverts the dependency order spec.md describes.
type PDF interface {
	Value(dir Vec3) float64
	Generate(random *rand.Rand) Vec3
}

// ScatterKind distinguishes the four outcomes a Material.Scatter can
// produce. Go has no closed sum type, so the kind tag plus the
// kind-appropriate fields on ScatterResult stand in for one.
type ScatterKind int

const (
	// ScatterNone means the ray was absorbed (or the material is purely
	// emissive); only the material's emitted color contributes.
	ScatterNone ScatterKind = iota
	// ScatterSpecular carries a single deterministic-plus-fuzz ray; the
	// integrator recurses into it and multiplies by Attenuation.
	ScatterSpecular
	// ScatterDiffuse carries a PDF to importance-sample a direction from.
	ScatterDiffuse
	// ScatterGlossy carries both a diffuse PDF lobe and a specular ray;
	// the integrator sums their contributions.
	ScatterGlossy
)

// ScatterResult is what Material.Scatter returns: a tagged union over the
// four outcomes in spec, carried as one struct with Kind selecting which
// fields are meaningful.
type ScatterResult struct {
	Kind        ScatterKind
	SpecularRay Ray  // valid for ScatterSpecular, ScatterGlossy
	Attenuation Vec3 // valid for ScatterSpecular, ScatterDiffuse, ScatterGlossy
	PDF         PDF  // valid for ScatterDiffuse, ScatterGlossy
}

// Material is the scattering contract every material variant implements.
type Material interface {
	// Scatter computes how the surface redirects an incoming ray. The bool
	// return is false when the material absorbs the ray outright (no need
	// to also check Kind == ScatterNone, though both are equivalent).
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
	// Emitted returns the material's self-emission at a surface point;
	// black for every non-emissive material.
	Emitted(uv Vec2, point Vec3) Vec3
	// ScatteringPDF gives the probability density of the scattered
	// direction under this material's own (non-mixture) distribution.
	ScatteringPDF(hit HitRecord, scattered Ray) float64
}
