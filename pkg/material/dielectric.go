package material

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Dielectric is a clear refractive material (glass, water) that either
// reflects or refracts each ray according to Snell's law and Schlick's
// Fresnel approximation. Attenuation is always white.
type Dielectric struct {
	IOR float64 // index of refraction
}

// NewDielectric creates a dielectric material with the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	iorRatio := d.IOR
	if hit.FrontFace {
		iorRatio = 1.0 / d.IOR
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := iorRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, iorRatio) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, iorRatio)
	}

	return core.ScatterResult{
		Kind:        core.ScatterSpecular,
		SpecularRay: core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

func (d *Dielectric) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (d *Dielectric) ScatteringPDF(hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance computes Fresnel reflectance via Schlick's
// approximation: R0 = ((1-ior)/(1+ior))^2, R = R0 + (1-R0)(1-cos)^5.
func schlickReflectance(cosine, iorRatio float64) float64 {
	r0 := (1 - iorRatio) / (1 + iorRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
