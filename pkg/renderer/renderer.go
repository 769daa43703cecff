// Package renderer drives the parallel pixel-sampling pass described in
// spec.md §4.7 and §5: it builds the BVH over a scene.World, dispatches
// disjoint row tiles across a worker pool, and assembles the gamma-corrected
// 8-bit output image.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"runtime"

	"fortio.org/log"
	"fortio.org/progressbar"
	"golang.org/x/sync/errgroup"

	"github.com/dlford-labs/pathtrace/pkg/camera"
	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/integrator"
	"github.com/dlford-labs/pathtrace/pkg/scene"
)

// tileHeight is the number of rows handed to a worker per unit of dispatch.
// Rows, not individual pixels, are the unit of work: it amortizes the
// per-dispatch overhead while still giving the pool enough granularity to
// balance load across an uneven scene.
const tileHeight = 8

// gammaExponent matches spec.md §4.7's γ(v) = v^0.5 approximation of sRGB,
// expressed through core.Vec3.GammaCorrect's 1/gamma convention.
const gammaExponent = 2.0

// Options controls a single render pass. Its only setting is the worker
// count; width, samples per pixel and max depth always come from the world,
// and the output height from the world's width and the camera's aspect
// ratio.
type Options struct {
	Workers int // 0 selects runtime.NumCPU()
}

// Render builds the BVH over world's objects, ray-traces every pixel in
// parallel, and returns the gamma-corrected 8-bit image. It honors
// ctx.Done() between tile dispatches, never mid-pixel, matching §5's
// cooperative-cancellation contract.
func Render(ctx context.Context, world *scene.World, cam *camera.Camera, opts Options) (*image.RGBA, error) {
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("renderer: invalid scene: %w", err)
	}

	width := world.ImageWidth()
	height := int(float64(width) / cam.AspectRatio())
	if height < 1 {
		height = 1
	}

	bvh := core.NewBVH(world.Objects)
	ig := integrator.New(bvh, world.Lights, world.Skybox, world.Background)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bar := progressbar.NewBar(height, "rendering")

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for y0 := 0; y0 < height; y0 += tileHeight {
		y0 := y0
		y1 := min(y0+tileHeight, height)
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			random := rand.New(rand.NewSource(int64(y0) + 1))
			renderRows(img, ig, cam, world, y0, y1, width, height, random)
			bar.Add(y1 - y0)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Errf("render aborted: %v", err)
		return nil, err
	}
	log.Infof("render complete: %dx%d, %d samples/pixel, %d bounces", width, height, world.SampleCount(), world.MaxBounces())
	return img, nil
}

// renderRows traces every pixel in rows [y0,y1) of the output image. Rows
// are addressed top-down in the output buffer directly, matching spec.md
// §4.7 item 5's "write in the flipped order" option instead of rendering
// bottom-up and flipping afterward.
func renderRows(img *image.RGBA, ig *integrator.Integrator, cam *camera.Camera, world *scene.World, y0, y1, width, height int, random *rand.Rand) {
	samples := world.SampleCount()
	maxDepth := world.MaxBounces()

	widthDenom := float64(max(width-1, 1))
	heightDenom := float64(max(height-1, 1))

	for y := y0; y < y1; y++ {
		row := height - 1 - y // flip: output row y corresponds to scene row (height-1-y)
		for x := 0; x < width; x++ {
			accum := core.Vec3{}
			for s := 0; s < samples; s++ {
				u := (random.Float64() + float64(x)) / widthDenom
				v := (random.Float64() + float64(row)) / heightDenom
				ray := cam.GetRay(u, v, random)
				sample := ig.RayColor(ray, maxDepth, random).Clamp(0, 1)
				accum = accum.Add(sample)
			}
			avg := accum.Multiply(1.0 / float64(samples)).Clamp(0, 1)
			img.Set(x, y, toRGBA(avg))
		}
	}
}

func toRGBA(c core.Vec3) color.RGBA {
	gamma := c.GammaCorrect(gammaExponent)
	return color.RGBA{
		R: to8Bit(gamma.X),
		G: to8Bit(gamma.Y),
		B: to8Bit(gamma.Z),
		A: 255,
	}
}

func to8Bit(v float64) uint8 {
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	return uint8(v * 255.99)
}
