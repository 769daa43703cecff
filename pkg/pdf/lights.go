// Package pdf holds the two PDF variants that depend on the Shape interface
// (Lights) or combine another package's PDFs (Mixture). CosinePDF lives in
// pkg/core instead, since materials need to construct one without importing
// this package — see DESIGN.md.
package pdf

import (
	"math"
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Lights samples directions toward a fixed set of shapes treated as area
// lights, uniformly choosing among them. When the set is empty it degrades
// to a uniform sphere distribution so the integrator's mixture never stalls.
type Lights struct {
	Origin core.Vec3
	Shapes []core.Shape
}

// NewLights builds a Lights PDF sampling toward shapes as seen from origin.
func NewLights(origin core.Vec3, shapes []core.Shape) Lights {
	return Lights{Origin: origin, Shapes: shapes}
}

// Value averages each light's per-shape PDF value for direction dir.
func (l Lights) Value(dir core.Vec3) float64 {
	if len(l.Shapes) == 0 {
		return 1.0 / (4.0 * math.Pi)
	}

	sum := 0.0
	for _, shape := range l.Shapes {
		sum += shape.PDFValue(l.Origin, dir)
	}
	return sum / float64(len(l.Shapes))
}

// Generate picks a light uniformly and samples a direction toward it.
func (l Lights) Generate(random *rand.Rand) core.Vec3 {
	if len(l.Shapes) == 0 {
		return core.RandomUnitVector(random)
	}

	index := random.Intn(len(l.Shapes))
	return l.Shapes[index].Random(l.Origin, random)
}
