package texture

import (
	"math"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Image is a texture sampled from a decoded width x height RGB buffer, the
// scene's seam with the external image-loading collaborator
// (pkg/loaders.LoadImage). Out-of-range UVs clamp to the image border.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
	Bump          *BumpMap
}

// NewImage wraps decoded pixel data as a sampleable texture.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// NewImageBumped wraps decoded pixel data with an accompanying bump map.
func NewImageBumped(width, height int, pixels []core.Vec3, bump *BumpMap) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels, Bump: bump}
}

func (img *Image) ColorAt(uv core.Vec2, point core.Vec3) core.Vec3 {
	if len(img.Pixels) == 0 {
		return core.Vec3{}
	}
	idx := pixelIndex(clampUV(uv), img.Width, img.Height)
	return img.Pixels[idx]
}

func (img *Image) AdjustedNormal(uv core.Vec2, normal core.Vec3) core.Vec3 {
	return img.Bump.adjustedNormal(uv, normal)
}

// DirectionColor samples the image as an environment map: a direction is
// mapped to spherical UV (u = (atan2(-dz,dx)+pi)/2pi, v = acos(-dy)/pi),
// matching the integrator's skybox-miss contract.
func (img *Image) DirectionColor(direction core.Vec3) core.Vec3 {
	u, v := sphericalUV(direction)
	return img.ColorAt(core.NewVec2(u, v), core.Vec3{})
}

func sphericalUV(direction core.Vec3) (u, v float64) {
	d := direction.Normalize()
	u = (math.Atan2(-d.Z, d.X) + math.Pi) / (2 * math.Pi)
	v = math.Acos(-d.Y) / math.Pi
	return u, v
}
