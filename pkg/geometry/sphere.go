// Package geometry implements the four shape variants the renderer's BVH
// can hold, each satisfying core.Shape.
package geometry

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Sphere is a ray-traceable sphere centered at Center with radius Radius.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere with the given center, radius, and material.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2.0*math.Pi), theta/math.Pi)

	hit := &core.HitRecord{T: root, Point: point, Material: s.Material, UV: uv}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// PDFValue returns the probability density of sampling the direction toward
// this sphere uniformly within the cone it subtends from origin. Zero when
// origin is inside the sphere or the direction misses it.
func (s *Sphere) PDFValue(origin, dir core.Vec3) float64 {
	ray := core.NewRay(origin, dir.Normalize())
	if _, hit := s.Hit(ray, 0.001, math.Inf(1)); !hit {
		return 0
	}

	distSq := s.Center.Subtract(origin).LengthSquared()
	if distSq <= s.Radius*s.Radius {
		// Origin is inside the sphere: no well-defined cone.
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSq)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction sampled uniformly within the cone this sphere
// subtends as seen from origin.
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distSq := direction.LengthSquared()
	if distSq <= s.Radius*s.Radius {
		return core.RandomUnitVector(random)
	}

	basis := core.NewONB(direction.Normalize())

	r1 := random.Float64()
	r2 := random.Float64()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSq)
	z := 1 + r2*(cosThetaMax-1)
	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return basis.Local(core.NewVec3(x, y, z)).Normalize()
}
