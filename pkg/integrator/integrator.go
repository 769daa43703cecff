// Package integrator implements the path-tracing light transport algorithm:
// recursive ray coloring with next-event estimation via multiple importance
// sampling between the scene's lights and each material's own BSDF lobe.
package integrator

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/pdf"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// shadowAcneEpsilon is the t_min used on every scene query so a ray
// originating on a surface doesn't immediately re-hit it due to floating
// point error.
const shadowAcneEpsilon = 0.001

// Integrator recursively computes the linear-space HDR color seen along a
// ray, tracing against a fixed BVH and light set with no Russian roulette —
// paths terminate strictly at MaxDepth.
type Integrator struct {
	BVH        *core.BVH
	Lights     []core.Shape
	Skybox     *texture.Image
	Background core.Vec3
}

// New builds an Integrator over a prebuilt BVH, light set, and optional
// skybox. When Skybox is nil, RayColor falls back to Background on a miss.
func New(bvh *core.BVH, lights []core.Shape, skybox *texture.Image, background core.Vec3) *Integrator {
	return &Integrator{BVH: bvh, Lights: lights, Skybox: skybox, Background: background}
}

// RayColor traces ray through the scene, recursing up to depth bounces.
func (ig *Integrator) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := ig.BVH.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return ig.missColor(ray)
	}

	emitted := hit.Material.Emitted(hit.UV, hit.Point)
	scatter, scattered := hit.Material.Scatter(ray, *hit, random)
	if !scattered {
		return emitted
	}

	switch scatter.Kind {
	case core.ScatterSpecular:
		return emitted.Add(scatter.Attenuation.MultiplyVec(ig.RayColor(scatter.SpecularRay, depth-1, random)))

	case core.ScatterDiffuse:
		return emitted.Add(ig.diffuseContribution(*hit, scatter, depth, random))

	case core.ScatterGlossy:
		diffuse := ig.diffuseContribution(*hit, scatter, depth, random)
		// Unlike ScatterSpecular, the specular lobe is added without being
		// multiplied by scatter.Attenuation.
		specular := ig.RayColor(scatter.SpecularRay, depth-1, random)
		return emitted.Add(diffuse).Add(specular)

	default: // core.ScatterNone
		return emitted
	}
}

// diffuseContribution handles the Diffuse (and the diffuse lobe of Glossy)
// scatter outcome: it mixes the material's own PDF with a light-importance
// PDF, draws one sample from the mixture, and weights the recursive color by
// the material's scattering PDF divided by the mixture's sampling density.
func (ig *Integrator) diffuseContribution(hit core.HitRecord, scatter core.ScatterResult, depth int, random *rand.Rand) core.Vec3 {
	lightPDF := pdf.NewLights(hit.Point, ig.Lights)
	mixture := pdf.NewMixture(lightPDF, scatter.PDF)

	direction := mixture.Generate(random)
	pdfVal := mixture.Value(direction)
	if pdfVal <= 0 {
		return core.Vec3{}
	}

	scattered := core.NewRay(hit.Point, direction)
	scatteringPDF := hit.Material.ScatteringPDF(hit, scattered)

	incoming := ig.RayColor(scattered, depth-1, random)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfVal)
}

// missColor samples the skybox by direction, or falls back to a flat
// background color when no skybox is configured.
func (ig *Integrator) missColor(ray core.Ray) core.Vec3 {
	if ig.Skybox == nil {
		return ig.Background
	}
	return ig.Skybox.DirectionColor(ray.Direction.Normalize())
}
