package cloth

import (
	"math"
	"math/rand"
	"testing"
)

func TestBuildMeshCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 5
	cfg.Rows = 4

	particles, constraints := buildMesh(cfg, 500, rand.New(rand.NewSource(1)))

	wantParticles := cfg.Rows * (cfg.Cols + 1)
	if len(particles) != wantParticles {
		t.Fatalf("particles = %d, want %d", len(particles), wantParticles)
	}
	wantConstraints := cfg.Rows*cfg.Cols + (cfg.Rows-1)*(cfg.Cols+1)
	if len(constraints) != wantConstraints {
		t.Fatalf("constraints = %d, want %d", len(constraints), wantConstraints)
	}
}

func TestBuildMeshPinsTopRowOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 3
	cfg.Rows = 3

	particles, _ := buildMesh(cfg, 300, rand.New(rand.NewSource(1)))

	stride := cfg.Cols + 1
	for i, p := range particles {
		pinned := i < stride
		if p.Pinned != pinned {
			t.Fatalf("particle %d pinned = %v, want %v", i, p.Pinned, pinned)
		}
	}
}

func TestBuildMeshPerturbsFreeParticlesAboveViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 4
	cfg.Rows = 4

	particles, _ := buildMesh(cfg, 400, rand.New(rand.NewSource(2)))

	for i, p := range particles {
		if p.Pinned {
			if p.Y != 0 {
				t.Fatalf("pinned particle %d at y=%f, want 0", i, p.Y)
			}
			continue
		}
		if p.Y > 0 {
			t.Fatalf("free particle %d starts at y=%f, want above viewport", i, p.Y)
		}
		if p.X != p.PrevX || p.Y != p.PrevY {
			t.Fatalf("particle %d has nonzero initial velocity", i)
		}
	}
}

func TestBuildMeshRestLengthsMeasuredAfterJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 4
	cfg.Rows = 4

	particles, constraints := buildMesh(cfg, 400, rand.New(rand.NewSource(3)))

	for i, c := range constraints {
		a, b := particles[c.A], particles[c.B]
		dx := b.X - a.X
		dy := b.Y - a.Y
		if got := math.Sqrt(dx*dx + dy*dy); got != c.RestLength {
			t.Fatalf("constraint %d rest length %f does not match built distance %f", i, c.RestLength, got)
		}
	}
}

func TestBuildMeshDeterministicWithSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 6
	cfg.Rows = 5

	p1, c1 := buildMesh(cfg, 600, rand.New(rand.NewSource(42)))
	p2, c2 := buildMesh(cfg, 600, rand.New(rand.NewSource(42)))

	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("particle %d differs across identically seeded builds", i)
		}
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("constraint %d differs across identically seeded builds", i)
		}
	}
}

func TestBuildMeshDegenerateDimensions(t *testing.T) {
	for _, cfg := range []Config{
		{Cols: 0, Rows: 5, RowSpacing: 10},
		{Cols: 5, Rows: 0, RowSpacing: 10},
		{Cols: -1, Rows: -1, RowSpacing: 10},
	} {
		particles, constraints := buildMesh(cfg, 100, rand.New(rand.NewSource(1)))
		if len(particles) != 0 || len(constraints) != 0 {
			t.Fatalf("cols=%d rows=%d: expected empty mesh, got %d particles %d constraints",
				cfg.Cols, cfg.Rows, len(particles), len(constraints))
		}
	}
}
