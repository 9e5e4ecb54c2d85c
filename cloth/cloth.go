package cloth

import (
	"math"
	"math/rand"
	"time"
)

type worldState int

const (
	stateUninitialized worldState = iota
	stateReady
	stateStepping
	stateDisposed
)

// World owns the particle and constraint arenas and runs the per-frame
// pipeline: integrate -> relax xN -> force fields -> tear. The host drives
// it from a single goroutine; nothing here locks.
type World struct {
	cfg Config
	rng *rand.Rand

	particles   []Particle
	constraints []Constraint

	width, height float64
	simTime       float64
	tick          int
	state         worldState

	pointerX, pointerY         float64
	prevPointerX, prevPointerY float64
	pointerDown                bool
}

// NewWorld creates an empty world. Nothing is simulated until the first
// Rebuild sizes it.
func NewWorld(cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Rebuild discards the current mesh and builds a fresh one for the given
// viewport. It is the only way a broken constraint ever comes back. The
// swap is wholesale: no step may run while a rebuild is in flight, which
// the single-goroutine host discipline guarantees.
func (w *World) Rebuild(width, height float64) {
	if w.state == stateDisposed {
		return
	}
	w.width, w.height = width, height
	w.particles, w.constraints = buildMesh(w.cfg, width, w.rng)
	w.simTime = 0
	w.tick = 0
	w.prevPointerX, w.prevPointerY = w.pointerX, w.pointerY
	w.state = stateReady
}

// PointerMove records the latest pointer position. Velocity is derived
// internally by diffing consecutive frames; hosts only report positions.
func (w *World) PointerMove(x, y float64) {
	w.pointerX, w.pointerY = x, y
}

// PointerDown marks the button held.
func (w *World) PointerDown() { w.pointerDown = true }

// PointerUp releases the button.
func (w *World) PointerUp() { w.pointerDown = false }

// Step advances the simulation one frame and returns the surviving
// constraint geometry. Calling it on an unbuilt, empty or disposed world is
// a well-defined no-op yielding an empty frame.
func (w *World) Step() FrameOutput {
	if w.state != stateReady && w.state != stateStepping {
		return FrameOutput{}
	}
	w.state = stateStepping
	w.tick++
	w.simTime += timeStep

	vx := w.pointerX - w.prevPointerX
	vy := w.pointerY - w.prevPointerY
	speed := math.Sqrt(vx*vx + vy*vy)

	w.integrate()
	for i := 0; i < w.cfg.Iterations; i++ {
		w.relax()
	}
	w.applyWind()
	w.applyPointer(vx, vy)
	w.tear(speed)

	w.prevPointerX, w.prevPointerY = w.pointerX, w.pointerY

	return FrameOutput{Tick: w.tick, Segments: w.Segments()}
}

// Dispose releases the arenas. The world cannot be stepped or rebuilt
// afterwards.
func (w *World) Dispose() {
	w.particles = nil
	w.constraints = nil
	w.state = stateDisposed
}

// Segments returns one line per unbroken constraint.
func (w *World) Segments() []Segment {
	segs := make([]Segment, 0, len(w.constraints))
	for _, c := range w.constraints {
		if c.Broken {
			continue
		}
		a, b := &w.particles[c.A], &w.particles[c.B]
		segs = append(segs, Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y})
	}
	return segs
}

// integrate runs the Verlet position update over every free particle.
// Damping below one bleeds energy each step, which is what keeps the system
// stable without a velocity clamp. Gravity is added after the velocity term
// so it acts as a constant per-step downward acceleration.
func (w *World) integrate() {
	for i := range w.particles {
		p := &w.particles[i]
		if p.Pinned {
			continue
		}
		vx := (p.X - p.PrevX) * w.cfg.Damping
		vy := (p.Y - p.PrevY) * w.cfg.Damping
		p.PrevX, p.PrevY = p.X, p.Y
		p.X += vx
		p.Y += vy + w.cfg.Gravity
	}
}

// relax nudges every unbroken constraint toward its rest length (Jakobsen
// relaxation). Repeating the pass a few times per frame approximates a
// stiffer sheet without a global solve. A pinned endpoint absorbs no
// correction: its share is pushed onto the free end.
func (w *World) relax() {
	for i := range w.constraints {
		c := &w.constraints[i]
		if c.Broken {
			continue
		}
		a, b := &w.particles[c.A], &w.particles[c.B]
		if a.Pinned && b.Pinned {
			continue
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist == 0 {
			// Coincident endpoints; skip instead of dividing by zero.
			continue
		}
		corr := (dist - c.RestLength) * w.cfg.Stiffness
		ux, uy := dx/dist, dy/dist
		switch {
		case a.Pinned:
			b.X -= ux * corr
			b.Y -= uy * corr
		case b.Pinned:
			a.X += ux * corr
			a.Y += uy * corr
		default:
			a.X += ux * corr * 0.5
			a.Y += uy * corr * 0.5
			b.X -= ux * corr * 0.5
			b.Y -= uy * corr * 0.5
		}
	}
}

// applyWind sways every free particle horizontally. The phase is seeded
// from the particle's origin column rather than its current x, so the wave
// pattern survives deformation, while the current y scales the amplitude:
// particles lower in the sheet sway more.
func (w *World) applyWind() {
	if w.height == 0 {
		return
	}
	for i := range w.particles {
		p := &w.particles[i]
		if p.Pinned {
			continue
		}
		phase := w.simTime + p.OriginX*windPhaseX + p.Y*windPhaseY
		p.X += math.Sin(phase) * w.cfg.WindStrength * (p.Y / w.height)
	}
}

// applyPointer drags particles near the pointer along its motion. The nudge
// goes straight into position, not velocity; the next integrate pass reads
// it back out of the position delta anyway.
func (w *World) applyPointer(vx, vy float64) {
	if w.cfg.InteractionRadius <= 0 {
		return
	}
	for i := range w.particles {
		p := &w.particles[i]
		if p.Pinned {
			continue
		}
		dx := p.X - w.pointerX
		dy := p.Y - w.pointerY
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist >= w.cfg.InteractionRadius {
			continue
		}
		f := (1 - dist/w.cfg.InteractionRadius) * w.cfg.InteractionForce
		p.X += vx * f
		p.Y += vy * f
	}
}

// tear breaks every unbroken constraint whose midpoint sits close to a
// fast, button-down pointer. Breaking is one-way; only Rebuild undoes it.
func (w *World) tear(speed float64) {
	if !w.pointerDown || speed <= w.cfg.TearThreshold {
		return
	}
	for i := range w.constraints {
		c := &w.constraints[i]
		if c.Broken {
			continue
		}
		a, b := &w.particles[c.A], &w.particles[c.B]
		mx := (a.X + b.X) * 0.5
		my := (a.Y + b.Y) * 0.5
		dx := mx - w.pointerX
		dy := my - w.pointerY
		if math.Sqrt(dx*dx+dy*dy) < w.cfg.TearRadius {
			c.Broken = true
		}
	}
}
