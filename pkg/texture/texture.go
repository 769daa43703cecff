// Package texture implements the surface-color and normal-perturbation
// layer materials sample from: solid colors, a procedural checkerboard,
// and image-sampled textures, each with an optional bump map.
package texture

import "github.com/dlford-labs/pathtrace/pkg/core"

// Texture is the tagged-variant contract every texture kind implements.
type Texture interface {
	// ColorAt returns the surface color at a hit, given its UV and world point.
	ColorAt(uv core.Vec2, point core.Vec3) core.Vec3
	// AdjustedNormal perturbs the geometric normal for bump mapping; it
	// returns n unchanged when the texture carries no bump map.
	AdjustedNormal(uv core.Vec2, normal core.Vec3) core.Vec3
}

// clampUV clamps uv to [0,1]^2 and flips v, matching the external image
// interface's row-major, top-down pixel addressing.
func clampUV(uv core.Vec2) core.Vec2 {
	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)
	return core.NewVec2(u, v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func pixelIndex(uv core.Vec2, width, height int) int {
	i := int(uv.X * float64(width))
	j := int(uv.Y * float64(height))
	if i >= width {
		i = width - 1
	}
	if i < 0 {
		i = 0
	}
	if j >= height {
		j = height - 1
	}
	if j < 0 {
		j = 0
	}
	return i + width*j
}
