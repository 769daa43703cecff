package core

import "math/rand"

// HitRecord carries everything the integrator needs about a ray/geometry
// intersection. Normal is the shading normal (possibly bump-perturbed);
// OutwardNormal is the true geometric normal used for sidedness tests.
type HitRecord struct {
	T             float64
	Point         Vec3
	Normal        Vec3
	OutwardNormal Vec3
	FrontFace     bool
	UV            Vec2
	Material      Material
}

// SetFaceNormal derives FrontFace and the geometric/shading normals from the
// ray direction and the geometry's outward-facing normal.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	h.OutwardNormal = outwardNormal
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is satisfied by every geometric primitive the BVH can hold. A Shape
// doubles as a light when added to a World's light set: PDFValue/Random let
// the integrator importance-sample it directly.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB

	// PDFValue returns the solid-angle probability density of emitting
	// direction dir from origin toward this shape; 0 if dir misses it.
	PDFValue(origin, dir Vec3) float64
	// Random returns a direction from origin sampled toward this shape.
	Random(origin Vec3, random *rand.Rand) Vec3
}
