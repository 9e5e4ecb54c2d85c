package cloth

// Particle is a single mesh vertex. Velocity is implicit: the integrator
// derives it from the distance between X,Y and PrevX,PrevY (Verlet).
type Particle struct {
	X, Y         float64
	PrevX, PrevY float64

	// OriginX is the column coordinate the particle was placed at. The wind
	// field uses it as a phase seed so the wave pattern stays stable while
	// the mesh deforms.
	OriginX float64

	// Pinned particles anchor the mesh: the integrator and the force fields
	// never move them, but constraints attached to free neighbors still
	// read their position.
	Pinned bool
}

// Constraint is a distance constraint between two particles, addressed by
// index into the world's particle arena.
type Constraint struct {
	A, B       int
	RestLength float64
	Broken     bool
}

// Segment is one renderable line of the mesh. Broken constraints produce
// no segment at all.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// FrameOutput is what a single step hands to the host for drawing.
type FrameOutput struct {
	Tick     int
	Segments []Segment
}
