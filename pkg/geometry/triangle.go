package geometry

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Triangle is a single flat triangle defined by three vertices, intersected
// via Möller–Trumbore.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a triangle from three vertices; the normal is derived
// from the winding order via (v1-v0)x(v2-v0).
func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	point := ray.At(tParam)
	uv := core.NewVec2(u, v)

	hit := &core.HitRecord{T: tParam, Point: point, Material: t.Material, UV: uv}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

func (t *Triangle) area() float64 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length() * 0.5
}

// PDFValue returns the solid-angle sampling density of this triangle as seen
// from origin, via the Van Oosterom–Strang spherical-triangle formula.
func (t *Triangle) PDFValue(origin, dir core.Vec3) float64 {
	unitDir := dir.Normalize()
	ray := core.NewRay(origin, unitDir)
	hit, isHit := t.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	a := t.V0.Subtract(origin)
	b := t.V1.Subtract(origin)
	c := t.V2.Subtract(origin)
	aLen, bLen, cLen := a.Length(), b.Length(), c.Length()

	numerator := a.Dot(b.Cross(c))
	denominator := aLen*bLen*cLen + a.Dot(b)*cLen + b.Dot(c)*aLen + c.Dot(a)*bLen
	solidAngle := 2 * math.Abs(math.Atan2(numerator, denominator))
	if solidAngle < 1e-9 {
		return 0
	}

	cosine := math.Abs(unitDir.Dot(hit.OutwardNormal))
	if cosine < 1e-8 {
		return 0
	}
	return 1 / solidAngle
}

// Random returns a direction from origin toward a uniformly sampled point on
// the triangle's surface, via uniform barycentric sampling.
func (t *Triangle) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	sqrtR1 := math.Sqrt(r1)

	u := 1 - sqrtR1
	v := r2 * sqrtR1
	w := 1 - u - v

	point := t.V0.Multiply(u).Add(t.V1.Multiply(v)).Add(t.V2.Multiply(w))
	return point.Subtract(origin)
}
