// Package camera implements the thin-lens pinhole camera model: an
// orthonormal viewing basis plus a lens radius for depth-of-field.
package camera

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Config holds the parameters a camera is built from.
type Config struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFov        float64 // vertical field of view, in degrees
	AspectRatio float64
	Aperture    float64
	FocusDist   float64
}

// Camera generates rays for rendering, sampling a lens offset per ray when
// Aperture > 0 to produce depth-of-field blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	aspectRatio     float64
}

// New builds a camera from cfg: it precomputes the orthonormal basis
// (u,v,w) and viewport extents, so GetRay is a cheap per-sample evaluation.
func New(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := cfg.AspectRatio * halfHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * cfg.FocusDist)).
		Subtract(v.Multiply(halfHeight * cfg.FocusDist)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * cfg.FocusDist),
		vertical:        v.Multiply(2 * halfHeight * cfg.FocusDist),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		aspectRatio:     cfg.AspectRatio,
	}
}

// AspectRatio returns the width/height ratio the camera was built with, so
// the render driver can derive an output height from a configured width.
func (c *Camera) AspectRatio() float64 { return c.aspectRatio }

// GetRay generates a ray for normalized screen coordinates (s, t), sampling
// a point on the lens disk when the camera has nonzero aperture.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}
