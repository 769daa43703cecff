package renderer

import (
	"context"
	"image/color"
	"testing"

	"github.com/dlford-labs/pathtrace/pkg/camera"
	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/geometry"
	"github.com/dlford-labs/pathtrace/pkg/material"
	"github.com/dlford-labs/pathtrace/pkg/scene"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

func testCamera() *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		FocusDist:   5,
	})
}

// TestRender_EmptySceneAgainstWhiteSkyboxIsWhite mirrors spec.md §8 scenario
// S1: a 1x1 white skybox with no objects renders fully white after gamma.
func TestRender_EmptySceneAgainstWhiteSkyboxIsWhite(t *testing.T) {
	w := scene.New().Width(1).SamplesPerPixel(1)
	w.SetSkybox(texture.NewImage(1, 1, []core.Vec3{core.NewVec3(1, 1, 1)}))

	img, err := Render(context.Background(), w, testCamera(), Options{Workers: 1})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := img.RGBAAt(0, 0)
	want := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got != want {
		t.Errorf("expected white pixel %v, got %v", want, got)
	}
}

// TestRender_BlackEmissiveSphereFillingViewportIsBlack mirrors S2: a
// black-emissive sphere covering the whole view against a black skybox
// renders as black.
func TestRender_BlackEmissiveSphereFillingViewportIsBlack(t *testing.T) {
	w := scene.New().Width(2).SamplesPerPixel(1)
	w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, material.NewEmissiveDiffuse(texture.NewSolidColor(core.Vec3{}))))

	img, err := Render(context.Background(), w, testCamera(), Options{Workers: 1})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := img.RGBAAt(0, 0)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("expected black pixel, got %v", got)
	}
}

func TestRender_RejectsInvalidScene(t *testing.T) {
	w := scene.New().SamplesPerPixel(0)
	if _, err := Render(context.Background(), w, testCamera(), Options{Workers: 1}); err == nil {
		t.Error("expected an error for an invalid scene")
	}
}

func TestRender_HonorsCancellation(t *testing.T) {
	w := scene.New().Width(64).SamplesPerPixel(4)
	w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(texture.NewSolidColor(core.NewVec3(1, 1, 1)))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Render(ctx, w, testCamera(), Options{Workers: 1}); err == nil {
		t.Error("expected a cancellation error")
	}
}
