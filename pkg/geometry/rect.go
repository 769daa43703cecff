package geometry

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// RectAxis identifies which axis is held constant on a Rect; the other two
// span the rectangle's extent.
type RectAxis int

const (
	// RectXY holds Z constant; the rectangle spans X and Y.
	RectXY RectAxis = iota
	// RectXZ holds Y constant; the rectangle spans X and Z.
	RectXZ
	// RectYZ holds X constant; the rectangle spans Y and Z.
	RectYZ
)

// Rect is an axis-aligned rectangle, the thin-shape primitive used for walls,
// floors, and area lights.
type Rect struct {
	Axis           RectAxis
	A0, A1, B0, B1 float64
	K              float64
	Material       core.Material
}

// NewRect creates an axis-aligned rectangle spanning [a0,a1]x[b0,b1] on the
// plane where the constant axis equals k.
func NewRect(axis RectAxis, a0, a1, b0, b1, k float64, mat core.Material) *Rect {
	return &Rect{Axis: axis, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
}

// coords splits a point into (constant-axis value, a, b) for this rect's axis.
func (r *Rect) coords(p core.Vec3) (k, a, b float64) {
	switch r.Axis {
	case RectYZ:
		return p.X, p.Y, p.Z
	case RectXZ:
		return p.Y, p.X, p.Z
	default: // RectXY
		return p.Z, p.X, p.Y
	}
}

// fromCoords reassembles a point from (constant-axis value, a, b).
func (r *Rect) fromCoords(k, a, b float64) core.Vec3 {
	switch r.Axis {
	case RectYZ:
		return core.NewVec3(k, a, b)
	case RectXZ:
		return core.NewVec3(a, k, b)
	default: // RectXY
		return core.NewVec3(a, b, k)
	}
}

func (r *Rect) normal() core.Vec3 {
	switch r.Axis {
	case RectYZ:
		return core.NewVec3(1, 0, 0)
	case RectXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	originK, originA, originB := r.coords(ray.Origin)
	dirK, dirA, dirB := r.coords(ray.Direction)

	if math.Abs(dirK) < 1e-8 {
		return nil, false
	}

	t := (r.K - originK) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	a := originA + t*dirA
	b := originB + t*dirB
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	uv := core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0))
	point := ray.At(t)

	hit := &core.HitRecord{T: t, Point: point, Material: r.Material, UV: uv}
	hit.SetFaceNormal(ray, r.normal())
	return hit, true
}

func (r *Rect) BoundingBox() core.AABB {
	const epsilon = 1e-4
	min := r.fromCoords(r.K-epsilon, r.A0, r.B0)
	max := r.fromCoords(r.K+epsilon, r.A1, r.B1)
	return core.NewAABBFromPoints(min, max, r.fromCoords(r.K-epsilon, r.A1, r.B1), r.fromCoords(r.K+epsilon, r.A0, r.B0))
}

func (r *Rect) area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns distance²/(cos·area), the solid-angle density of sampling
// this rect uniformly by area from origin.
func (r *Rect) PDFValue(origin, dir core.Vec3) float64 {
	unitDir := dir.Normalize()
	ray := core.NewRay(origin, unitDir)
	hit, isHit := r.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	distSq := hit.T * hit.T
	cosine := math.Abs(unitDir.Dot(hit.OutwardNormal))
	if cosine < 1e-8 {
		return 0
	}
	return distSq / (cosine * r.area())
}

// Random returns a direction from origin toward a uniformly sampled point on
// the rectangle.
func (r *Rect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	a := r.A0 + random.Float64()*(r.A1-r.A0)
	b := r.B0 + random.Float64()*(r.B1-r.B0)
	point := r.fromCoords(r.K, a, b)
	return point.Subtract(origin)
}
