package texture

import "github.com/dlford-labs/pathtrace/pkg/core"

// BumpMap is an optional per-texture normal perturbation source, sampled the
// same way a color image is: clamp(uv) -> nearest pixel, whose value is
// added directly to the normal as a world-space offset (no tangent-space
// transform is applied).
type BumpMap struct {
	Width, Height int
	Samples       []core.Vec3
}

// NewBumpMap wraps raw decoded pixels (e.g. from pkg/loaders.ImageData) as a
// bump source.
func NewBumpMap(width, height int, samples []core.Vec3) *BumpMap {
	return &BumpMap{Width: width, Height: height, Samples: samples}
}

// adjustedNormal perturbs n by the bump sample at uv, matching
// Texture.AdjustedNormal(uv,n) = normalize(n + sample_bump(uv)).
func (b *BumpMap) adjustedNormal(uv core.Vec2, normal core.Vec3) core.Vec3 {
	if b == nil || len(b.Samples) == 0 {
		return normal
	}
	idx := pixelIndex(clampUV(uv), b.Width, b.Height)
	return normal.Add(b.Samples[idx]).Normalize()
}
