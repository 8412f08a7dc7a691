package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable automaton exposes to the
// viewer. Cells returns one byte per tile in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ConvergenceReporter is implemented by sims that can reach a fixed point.
type ConvergenceReporter interface {
	Converged() bool
}
