// Package scene assembles geometry, materials, and a skybox into the World
// aggregate the renderer consumes, via a fluent builder matching the
// construction API in spec.md §6.
package scene

import (
	"fmt"
	"math"

	"github.com/dlford-labs/pathtrace/pkg/core"
	"github.com/dlford-labs/pathtrace/pkg/geometry"
	"github.com/dlford-labs/pathtrace/pkg/loaders"
	"github.com/dlford-labs/pathtrace/pkg/texture"
)

// World holds every scene object and the scalar parameters that control a
// render. Lights is a subset of Objects by value: lights are added to both
// so they are hit directly and importance-sampled by the integrator.
type World struct {
	Objects    []core.Shape
	Lights     []core.Shape
	Skybox     *texture.Image
	Background core.Vec3

	width           int
	samplesPerPixel int
	maxDepth        int
}

// New creates an empty World with the spec's minimum valid defaults.
func New() *World {
	return &World{
		width:           400,
		samplesPerPixel: 16,
		maxDepth:        8,
		Background:      core.Vec3{},
	}
}

// Add appends a shape to the scene's hittable objects.
func (w *World) Add(shape core.Shape) *World {
	w.Objects = append(w.Objects, shape)
	return w
}

// AddLight appends shape to both the hittable objects and the light set, so
// it is both hit directly and importance-sampled.
func (w *World) AddLight(shape core.Shape) *World {
	w.Objects = append(w.Objects, shape)
	w.Lights = append(w.Lights, shape)
	return w
}

// AddObject loads a mesh from path, translates it by origin and scales it
// uniformly by scale, and adds every triangle with the given material.
func (w *World) AddObject(path string, origin core.Vec3, scale float64, mat core.Material) error {
	triangles, err := loadMesh(path)
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		w.Add(geometry.NewTriangle(
			transformVertex(tri[0], origin, scale),
			transformVertex(tri[1], origin, scale),
			transformVertex(tri[2], origin, scale),
			mat,
		))
	}
	return nil
}

// AddObjectRotated is like AddObject but wraps each triangle in a Rotated
// shape about axis by angleDegrees before placing it in the scene.
func (w *World) AddObjectRotated(path string, origin core.Vec3, scale float64, axis geometry.RotationAxis, angleDegrees float64, mat core.Material) error {
	triangles, err := loadMesh(path)
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		triangle := geometry.NewTriangle(
			transformVertex(tri[0], origin, scale),
			transformVertex(tri[1], origin, scale),
			transformVertex(tri[2], origin, scale),
			mat,
		)
		w.Add(geometry.NewRotated(axis, angleDegrees, triangle))
	}
	return nil
}

func transformVertex(v core.Vec3, origin core.Vec3, scale float64) core.Vec3 {
	return v.Multiply(scale).Add(origin)
}

// loadMesh loads a triangle mesh from a Wavefront OBJ file.
func loadMesh(path string) ([][3]core.Vec3, error) {
	return loaders.LoadOBJ(path)
}

// Width sets the output image width in pixels; height is derived from the
// camera's aspect ratio at render time.
func (w *World) Width(width int) *World {
	w.width = width
	return w
}

// SamplesPerPixel sets the number of Monte-Carlo samples accumulated per
// pixel.
func (w *World) SamplesPerPixel(samples int) *World {
	w.samplesPerPixel = samples
	return w
}

// MaxDepth sets the maximum recursion depth the integrator will follow
// before terminating a path.
func (w *World) MaxDepth(depth int) *World {
	w.maxDepth = depth
	return w
}

// SetSkybox configures the environment map sampled on a ray miss.
func (w *World) SetSkybox(skybox *texture.Image) *World {
	w.Skybox = skybox
	return w
}

// Validate checks the construction invariants spec.md §7 calls programmer
// errors: every shape must have a finite bounding box, no sphere may have
// zero radius, no triangle may be degenerate (also when wrapped in a
// Rotated), and the scalar render parameters must be in range. It is called
// by Render and by NewBVH's caller so malformed scenes fail fast with a
// descriptive error.
func (w *World) Validate() error {
	if w.samplesPerPixel < 1 {
		return fmt.Errorf("scene: samples_per_pixel must be >= 1, got %d", w.samplesPerPixel)
	}
	if w.maxDepth < 1 {
		return fmt.Errorf("scene: max_depth must be >= 1, got %d", w.maxDepth)
	}
	if w.width < 1 {
		return fmt.Errorf("scene: width must be >= 1, got %d", w.width)
	}

	for i, shape := range w.Objects {
		box := shape.BoundingBox()
		if !isFiniteAABB(box) {
			return fmt.Errorf("scene: object %d has a non-finite bounding box %+v", i, box)
		}
		inner := shape
		if r, ok := inner.(*geometry.Rotated); ok {
			inner = r.Inner
		}
		switch s := inner.(type) {
		case *geometry.Sphere:
			if s.Radius == 0 {
				return fmt.Errorf("scene: object %d is a sphere with zero radius", i)
			}
		case *geometry.Triangle:
			if s.V1.Subtract(s.V0).Cross(s.V2.Subtract(s.V0)).IsZero() {
				return fmt.Errorf("scene: object %d is a degenerate triangle", i)
			}
		}
	}
	return nil
}

func isFiniteAABB(box core.AABB) bool {
	return isFiniteVec3(box.Min) && isFiniteVec3(box.Max) && box.IsValid()
}

func isFiniteVec3(v core.Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// ImageWidth returns the configured output width in pixels.
func (w *World) ImageWidth() int { return w.width }

// SampleCount returns the configured number of samples per pixel.
func (w *World) SampleCount() int { return w.samplesPerPixel }

// MaxBounces returns the configured maximum integrator recursion depth.
func (w *World) MaxBounces() int { return w.maxDepth }
