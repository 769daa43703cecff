package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
		Aperture:    0,
		FocusDist:   5,
	})

	random := rand.New(rand.NewSource(1))
	ray := cam.GetRay(0.5, 0.5, random)

	want := core.NewVec3(0, 0, -1)
	got := ray.Direction.Normalize()
	if got.Subtract(want).Length() > 1e-6 {
		t.Errorf("expected center ray toward lookat %v, got %v", want, got)
	}
}

func TestCamera_ZeroApertureProducesNoLensJitter(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0,
		FocusDist:   5,
	})

	random := rand.New(rand.NewSource(2))
	first := cam.GetRay(0.25, 0.75, random)
	second := cam.GetRay(0.25, 0.75, random)

	if !first.Origin.Equals(second.Origin) {
		t.Errorf("expected identical ray origins with zero aperture, got %v vs %v", first.Origin, second.Origin)
	}
}

func TestCamera_NonzeroApertureJittersOrigin(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1,
		Aperture:    1.0,
		FocusDist:   5,
	})

	random := rand.New(rand.NewSource(3))
	origins := make(map[core.Vec3]bool)
	for i := 0; i < 20; i++ {
		ray := cam.GetRay(0.5, 0.5, random)
		origins[ray.Origin] = true
	}
	if len(origins) < 2 {
		t.Error("expected nonzero aperture to jitter ray origin across samples")
	}
}

func TestCamera_WiderFovWidensViewport(t *testing.T) {
	narrow := New(Config{
		LookFrom: core.NewVec3(0, 0, 5), LookAt: core.Vec3{}, Up: core.NewVec3(0, 1, 0),
		VFov: 30, AspectRatio: 1, FocusDist: 5,
	})
	wide := New(Config{
		LookFrom: core.NewVec3(0, 0, 5), LookAt: core.Vec3{}, Up: core.NewVec3(0, 1, 0),
		VFov: 120, AspectRatio: 1, FocusDist: 5,
	})

	random := rand.New(rand.NewSource(4))
	narrowEdge := narrow.GetRay(1, 0.5, random).Direction.Normalize()
	wideEdge := wide.GetRay(1, 0.5, random).Direction.Normalize()

	center := core.NewVec3(0, 0, -1)
	narrowAngle := math.Acos(narrowEdge.Dot(center))
	wideAngle := math.Acos(wideEdge.Dot(center))
	if wideAngle <= narrowAngle {
		t.Errorf("expected wider fov to produce a larger edge angle, narrow=%f wide=%f", narrowAngle, wideAngle)
	}
}
