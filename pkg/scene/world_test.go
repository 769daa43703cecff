package scene

import (
	"testing"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/geometry"
	"github.com/dlford-labs/pathtrace/pkg/material"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

func lambertian() core.Material {
	return material.NewLambertian(texture.NewSolidColor(core.NewVec3(1, 1, 1)))
}

func TestWorld_AddLightAppendsToBothSets(t *testing.T) {
	w := New()
	light := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, material.NewEmissiveDiffuse(texture.NewSolidColor(core.NewVec3(5, 5, 5))))
	w.AddLight(light)

	if len(w.Objects) != 1 || len(w.Lights) != 1 {
		t.Fatalf("expected light added to both Objects and Lights, got %d objects, %d lights", len(w.Objects), len(w.Lights))
	}
	if w.Objects[0] != w.Lights[0] {
		t.Error("expected the same shape reference in both sets")
	}
}

func TestWorld_DefaultsAreSane(t *testing.T) {
	w := New()
	if w.ImageWidth() < 1 || w.SampleCount() < 1 || w.MaxBounces() < 1 {
		t.Errorf("expected positive defaults, got width=%d samples=%d depth=%d", w.ImageWidth(), w.SampleCount(), w.MaxBounces())
	}
}

func TestWorld_FluentSettersChain(t *testing.T) {
	w := New().Width(800).SamplesPerPixel(32).MaxDepth(12)
	if w.ImageWidth() != 800 || w.SampleCount() != 32 || w.MaxBounces() != 12 {
		t.Errorf("expected fluent setters to apply, got width=%d samples=%d depth=%d", w.ImageWidth(), w.SampleCount(), w.MaxBounces())
	}
}

func TestWorld_ValidateRejectsZeroSamples(t *testing.T) {
	w := New().SamplesPerPixel(0)
	if err := w.Validate(); err == nil {
		t.Error("expected validation error for samples_per_pixel=0")
	}
}

func TestWorld_ValidateAcceptsWellFormedScene(t *testing.T) {
	w := New().Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian()))
	if err := w.Validate(); err != nil {
		t.Errorf("expected a well-formed scene to validate, got %v", err)
	}
}

func TestWorld_AddObjectLoadsTriangles(t *testing.T) {
	w := New()
	err := w.AddObject("testdata/does-not-exist.obj", core.Vec3{}, 1, lambertian())
	if err == nil {
		t.Error("expected an error loading a nonexistent mesh file")
	}
}
