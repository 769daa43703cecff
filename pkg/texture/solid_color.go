package texture

import "github.com/dlford-labs/pathtrace/pkg/core"

// SolidColor is a single constant color, optionally bump-mapped.
type SolidColor struct {
	Color core.Vec3
	Bump  *BumpMap
}

// NewSolidColor creates a flat-color texture with no bump map.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorBumped creates a flat-color texture with a bump map.
func NewSolidColorBumped(color core.Vec3, bump *BumpMap) *SolidColor {
	return &SolidColor{Color: color, Bump: bump}
}

func (s *SolidColor) ColorAt(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

func (s *SolidColor) AdjustedNormal(uv core.Vec2, normal core.Vec3) core.Vec3 {
	return s.Bump.adjustedNormal(uv, normal)
}
