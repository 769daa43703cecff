// Command pathtrace is a thin driver that loads a scene-parameter file,
// builds a default scene and camera, and writes a rendered PNG. Scene
// construction and file I/O live here, outside the renderer core, per
// spec.md §7's "external I/O errors surfaced by the collaborator" rule.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/dlford-labs/pathtrace/pkg/camera"
	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/geometry"
	"github.com/dlford-labs/pathtrace/pkg/material"
	"github.com/dlford-labs/pathtrace/pkg/renderer"
	"github.com/dlford-labs/pathtrace/pkg/scene"
	"github.com/dlford-labs/pathtrace/pkg/sceneconfig"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

var (
	sceneFlag  = flag.String("scene", "", "path to a YAML scene-parameter file (optional)")
	outputFlag = flag.String("out", "render.png", "output PNG path")
	workers    = flag.Int("workers", 0, "render worker count (0 = runtime.NumCPU())")
)

func main() {
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.ArgsHelp = ""
	cli.Main()

	world := defaultScene()
	cam := defaultCamera()

	if *sceneFlag != "" {
		cfg, err := sceneconfig.Load(*sceneFlag)
		if err != nil {
			log.Fatalf("loading scene config: %v", err)
		}
		if cfg.Width > 0 {
			world.Width(cfg.Width)
		}
		if cfg.SamplesPerPixel > 0 {
			world.SamplesPerPixel(cfg.SamplesPerPixel)
		}
		if cfg.MaxDepth > 0 {
			world.MaxDepth(cfg.MaxDepth)
		}
		if builtCamera, err := cfg.BuildCamera(); err != nil {
			log.Fatalf("building camera from scene config: %v", err)
		} else if builtCamera != nil {
			cam = builtCamera
		}
	}

	img, err := renderer.Render(context.Background(), world, cam, renderer.Options{Workers: *workers})
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	if err := writePNG(*outputFlag, img); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	log.Infof("wrote %s", *outputFlag)
}

func writePNG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	return png.Encode(file, img)
}

// defaultScene builds a minimal three-sphere scene (ground, Lambertian
// subject, overhead light) so pathtrace produces an image with no scene
// file supplied.
func defaultScene() *scene.World {
	ground := texture.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 10)
	subject := texture.NewSolidColor(core.NewVec3(0.6, 0.1, 0.1))
	lightEmission := texture.NewSolidColor(core.NewVec3(5, 5, 5))

	w := scene.New().Width(400).SamplesPerPixel(64).MaxDepth(8)
	w.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(ground)))
	w.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewLambertian(subject)))
	w.AddLight(geometry.NewSphere(core.NewVec3(0, 10, 0), 4, material.NewEmissiveDiffuse(lightEmission)))
	return w
}

func defaultCamera() *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.1,
		FocusDist:   10,
	})
}
