package app

import "seat-ca/internal/core"

// command is a viewer action decoded from keyboard input.
type command uint8

const (
	cmdTogglePause command = iota
	cmdResume
	cmdStepOnce
	cmdRestart
	cmdShuffle
)

// controls holds the playback state of the viewer. R always returns to the
// layout seed given at startup; S installs a fresh random layout without
// changing that seed.
type controls struct {
	sim core.Sim

	paused   bool
	tickOnce bool

	layoutSeed int64
}

func newControls(sim core.Sim, layoutSeed int64) *controls {
	return &controls{sim: sim, layoutSeed: layoutSeed}
}

// handle applies cmd. now supplies the seed for cmdShuffle.
func (c *controls) handle(cmd command, now int64) {
	switch cmd {
	case cmdTogglePause:
		c.paused = !c.paused
	case cmdResume:
		c.paused = false
	case cmdStepOnce:
		c.tickOnce = true
	case cmdRestart:
		c.reset(c.layoutSeed)
	case cmdShuffle:
		c.reset(now)
	}
}

func (c *controls) reset(seed int64) {
	c.sim.Reset(seed)
	c.tickOnce = false
}

// advance steps the sim unless paused, and pauses once it converges.
func (c *controls) advance() {
	if !c.paused || c.tickOnce {
		c.sim.Step()
		c.tickOnce = false
	}
	if r, ok := c.sim.(core.ConvergenceReporter); ok && r.Converged() {
		c.paused = true
	}
}
