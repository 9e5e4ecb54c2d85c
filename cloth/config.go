package cloth

// Tuning values shared by every host. The relaxation iteration count and the
// two wind phase factors are empirically chosen for visual quality, not
// derived from anything.
const (
	// RowSpacing is the fixed vertical distance between mesh rows. It does
	// not depend on the viewport height, so the mesh may extend past the
	// bottom edge on short viewports.
	DefaultRowSpacing = 12.0

	DefaultCols = 40
	DefaultRows = 28

	DefaultGravity   = 0.25
	DefaultDamping   = 0.98
	DefaultStiffness = 0.9

	DefaultWindStrength = 2.2
	windPhaseX          = 0.01  // phase contribution per unit of origin x
	windPhaseY          = 0.002 // phase contribution per unit of current y

	DefaultInteractionRadius = 120.0
	DefaultInteractionForce  = 0.12

	DefaultTearThreshold = 40.0
	DefaultTearRadius    = 30.0

	// DefaultIterations is the number of relaxation passes per step. Three
	// passes give a visually stiff sheet without the cost of more.
	DefaultIterations = 3

	// timeStep advances the wind phase once per step.
	timeStep = 0.016

	// Build-time perturbation, in units of RowSpacing: free particles start
	// above the viewport and slightly off their column so the sheet falls
	// into place on (re)build.
	jitterRows = 5.0
	jitterCols = 0.8
)

// Config holds the fixed parameters of a simulation world. A zero Seed means
// a time-based seed; set it for reproducible meshes.
type Config struct {
	Cols, Rows int
	RowSpacing float64

	Gravity   float64
	Damping   float64
	Stiffness float64

	WindStrength      float64
	InteractionRadius float64
	InteractionForce  float64

	TearThreshold float64
	TearRadius    float64

	Iterations int

	Seed int64
}

// DefaultConfig returns the tuning used by the browser host, scaled for a
// pixel-sized canvas.
func DefaultConfig() Config {
	return Config{
		Cols:              DefaultCols,
		Rows:              DefaultRows,
		RowSpacing:        DefaultRowSpacing,
		Gravity:           DefaultGravity,
		Damping:           DefaultDamping,
		Stiffness:         DefaultStiffness,
		WindStrength:      DefaultWindStrength,
		InteractionRadius: DefaultInteractionRadius,
		InteractionForce:  DefaultInteractionForce,
		TearThreshold:     DefaultTearThreshold,
		TearRadius:        DefaultTearRadius,
		Iterations:        DefaultIterations,
	}
}
