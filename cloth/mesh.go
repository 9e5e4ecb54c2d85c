package cloth

import (
	"math"
	"math/rand"
)

// buildMesh lays out a rows x (cols+1) grid of particles spanning the given
// width, pins the whole top row, perturbs every free particle above the
// viewport, and connects horizontal and vertical neighbors with distance
// constraints. Rest lengths are measured after the perturbation, so the
// sheet is born relaxed and only has to fall into place.
//
// Degenerate dimensions produce empty collections.
func buildMesh(cfg Config, width float64, rng *rand.Rand) ([]Particle, []Constraint) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, nil
	}

	stride := cfg.Cols + 1
	particles := make([]Particle, 0, cfg.Rows*stride)

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < stride; c++ {
			x := float64(c) * width / float64(cfg.Cols)
			y := float64(r) * cfg.RowSpacing

			p := Particle{X: x, Y: y, OriginX: x, Pinned: r == 0}
			if !p.Pinned {
				p.X += (rng.Float64()*2 - 1) * jitterCols * cfg.RowSpacing
				p.Y = -rng.Float64() * jitterRows * cfg.RowSpacing
			}
			p.PrevX, p.PrevY = p.X, p.Y
			particles = append(particles, p)
		}
	}

	constraints := make([]Constraint, 0, cfg.Rows*cfg.Cols+(cfg.Rows-1)*stride)
	link := func(a, b int) {
		dx := particles[b].X - particles[a].X
		dy := particles[b].Y - particles[a].Y
		constraints = append(constraints, Constraint{
			A:          a,
			B:          b,
			RestLength: math.Sqrt(dx*dx + dy*dy),
		})
	}

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < stride; c++ {
			i := r*stride + c
			if c < cfg.Cols {
				link(i, i+1)
			}
			if r < cfg.Rows-1 {
				link(i, i+stride)
			}
		}
	}

	return particles, constraints
}
