package texture

import (
	"math"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Checker is a procedural checkerboard selected by the sign of
// sin(s*x)*sin(s*y)*sin(s*z) at the world point. It never perturbs normals.
type Checker struct {
	Color1, Color2 core.Vec3
	Scale          float64
}

// NewChecker creates a checkerboard texture between two colors at the given
// spatial scale.
func NewChecker(color1, color2 core.Vec3, scale float64) *Checker {
	return &Checker{Color1: color1, Color2: color2, Scale: scale}
}

func (c *Checker) ColorAt(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Color1
	}
	return c.Color2
}

func (c *Checker) AdjustedNormal(uv core.Vec2, normal core.Vec3) core.Vec3 {
	return normal
}
