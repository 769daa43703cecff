package geometry

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// RotationAxis is the axis a Rotated wrapper rotates its inner shape about.
type RotationAxis int

const (
	RotateX RotationAxis = iota
	RotateY
	RotateZ
)

// permutation returns (rotation axis index, first spanning axis, second
// spanning axis) for the rotation plane, matching the classic
// ray-tracing-in-a-weekend permutation trick.
func (a RotationAxis) permutation() (r, aAxis, bAxis int) {
	switch a {
	case RotateX:
		return 0, 1, 2
	case RotateY:
		return 1, 2, 0
	default: // RotateZ
		return 2, 0, 1
	}
}

func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func withComponent(v core.Vec3, axis int, val float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Rotated wraps an inner shape and rotates it about Axis by AngleDegrees. It
// transforms incoming rays into the inner shape's frame, delegates, then
// transforms the hit point and normal back out.
type Rotated struct {
	Axis     RotationAxis
	sinTheta float64
	cosTheta float64
	Inner    core.Shape
	bbox     core.AABB
}

// NewRotated rotates inner about axis by angleDegrees, precomputing its
// rotated bounding box from the eight corners of the inner shape's AABB.
func NewRotated(axis RotationAxis, angleDegrees float64, inner core.Shape) *Rotated {
	radians := (math.Pi / 180.0) * angleDegrees
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)
	rAxis, aAxis, bAxis := axis.permutation()

	innerBox := inner.BoundingBox()
	min := core.NewVec3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	max := core.NewVec3(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				rVal := pick(k, component(innerBox.Min, rAxis), component(innerBox.Max, rAxis))
				aVal := pick(i, component(innerBox.Min, aAxis), component(innerBox.Max, aAxis))
				bVal := pick(j, component(innerBox.Min, bAxis), component(innerBox.Max, bAxis))

				newA := cosTheta*aVal - sinTheta*bVal
				newB := sinTheta*aVal + cosTheta*bVal

				min = withComponent(min, aAxis, math.Min(component(min, aAxis), newA))
				min = withComponent(min, bAxis, math.Min(component(min, bAxis), newB))
				min = withComponent(min, rAxis, math.Min(component(min, rAxis), rVal))

				max = withComponent(max, aAxis, math.Max(component(max, aAxis), newA))
				max = withComponent(max, bAxis, math.Max(component(max, bAxis), newB))
				max = withComponent(max, rAxis, math.Max(component(max, rAxis), rVal))
			}
		}
	}

	return &Rotated{
		Axis:     axis,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		Inner:    inner,
		bbox:     core.NewAABB(min, max),
	}
}

func pick(bit int, lo, hi float64) float64 {
	if bit == 1 {
		return hi
	}
	return lo
}

// toInnerFrame rotates a point/vector into the inner shape's unrotated frame.
func (r *Rotated) toInnerFrame(v core.Vec3) core.Vec3 {
	_, aAxis, bAxis := r.Axis.permutation()
	a := component(v, aAxis)
	b := component(v, bAxis)
	newA := r.cosTheta*a + r.sinTheta*b
	newB := -r.sinTheta*a + r.cosTheta*b
	out := withComponent(v, aAxis, newA)
	out = withComponent(out, bAxis, newB)
	return out
}

// fromInnerFrame rotates a point/vector in the inner shape's frame back into
// world space — the inverse of toInnerFrame.
func (r *Rotated) fromInnerFrame(v core.Vec3) core.Vec3 {
	_, aAxis, bAxis := r.Axis.permutation()
	a := component(v, aAxis)
	b := component(v, bAxis)
	newA := r.cosTheta*a - r.sinTheta*b
	newB := r.sinTheta*a + r.cosTheta*b
	out := withComponent(v, aAxis, newA)
	out = withComponent(out, bAxis, newB)
	return out
}

func (r *Rotated) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	localRay := core.NewRay(r.toInnerFrame(ray.Origin), r.toInnerFrame(ray.Direction))

	hit, isHit := r.Inner.Hit(localRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	worldPoint := r.fromInnerFrame(hit.Point)
	worldOutward := r.fromInnerFrame(hit.OutwardNormal)

	out := &core.HitRecord{T: hit.T, Point: worldPoint, Material: hit.Material, UV: hit.UV}
	out.SetFaceNormal(core.NewRay(ray.Origin, ray.Direction), worldOutward)
	return out, true
}

func (r *Rotated) BoundingBox() core.AABB {
	return r.bbox
}

func (r *Rotated) PDFValue(origin, dir core.Vec3) float64 {
	return r.Inner.PDFValue(r.toInnerFrame(origin), r.toInnerFrame(dir))
}

func (r *Rotated) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	localDir := r.Inner.Random(r.toInnerFrame(origin), random)
	return r.fromInnerFrame(localDir)
}
