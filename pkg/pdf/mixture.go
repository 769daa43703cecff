package pdf

import (
	"math/rand"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Mixture combines two PDFs with a fixed 50/50 weighting — the renderer's
// multiple-importance-sampling strategy between light sampling and the
// material's own BSDF distribution.
type Mixture struct {
	P, Q core.PDF
}

// NewMixture builds the 50/50 combination of p and q.
func NewMixture(p, q core.PDF) Mixture {
	return Mixture{P: p, Q: q}
}

func (m Mixture) Value(dir core.Vec3) float64 {
	return 0.5*m.P.Value(dir) + 0.5*m.Q.Value(dir)
}

// Generate flips a fair coin to choose which branch supplies the sample.
func (m Mixture) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return m.P.Generate(random)
	}
	return m.Q.Generate(random)
}
