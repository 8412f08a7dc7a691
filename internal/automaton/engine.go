// Package automaton evolves a seat layout until it stops changing.
//
// Every tick reads only the grid produced by the previous tick and writes a
// fresh buffer, so all cells update simultaneously. The run ends when a tick
// changes nothing; that grid is the fixed point.
package automaton

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"seat-ca/internal/core"
	"seat-ca/internal/logging"
	"seat-ca/internal/neighbor"
)

// State is the engine's position in its run loop.
type State uint8

const (
	Running State = iota
	Converged
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "running"
}

var (
	// ErrNonConvergence is returned by Run when the tick cap is reached
	// before a fixed point.
	ErrNonConvergence = errors.New("no fixed point reached")

	// ErrInvalidThreshold is returned by New for thresholds outside 1..8.
	ErrInvalidThreshold = errors.New("invalid occupancy threshold")
)

// minRowsPerWorker is the smallest band of rows handed to a worker.
const minRowsPerWorker = 8

// Engine applies the occupancy rule with a fixed neighbor strategy and
// threshold. An Engine holds no grid state and may be shared.
type Engine struct {
	strategy  neighbor.Strategy
	threshold int
	workers   int
	maxTicks  int
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers evaluates each tick across n goroutines. Values below 2 keep
// the tick on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithMaxTicks bounds Run to n ticks. Zero means unbounded.
func WithMaxTicks(n int) Option {
	return func(e *Engine) { e.maxTicks = n }
}

// WithLogger sets the logger used for run and tick tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an Engine. A threshold of zero selects the strategy's default.
func New(strategy neighbor.Strategy, threshold int, opts ...Option) (*Engine, error) {
	if threshold == 0 {
		threshold = strategy.DefaultThreshold()
	}
	if threshold < 1 || threshold > 8 {
		return nil, fmt.Errorf("%w: %d (must be between 1 and 8)", ErrInvalidThreshold, threshold)
	}
	e := &Engine{
		strategy:  strategy,
		threshold: threshold,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxTicks < 0 {
		e.maxTicks = 0
	}
	return e, nil
}

// Strategy returns the configured neighbor strategy.
func (e *Engine) Strategy() neighbor.Strategy { return e.strategy }

// Threshold returns the configured occupancy threshold.
func (e *Engine) Threshold() int { return e.threshold }

// Tick derives the next grid from g and reports how many cells changed.
// g is only read. Band evaluation cannot fail; the errgroup only joins the
// workers.
func (e *Engine) Tick(g *core.Grid) (*core.Grid, int) {
	rows, cols := g.Dimensions()
	next := make([]core.Cell, g.Len())

	bands := e.bandCount(rows)
	var changed int
	if bands <= 1 {
		changed = e.evalRows(g, next, 0, rows)
	} else {
		counts := make([]int, bands)
		per := (rows + bands - 1) / bands
		var eg errgroup.Group
		for i := 0; i < bands; i++ {
			lo := i * per
			hi := min(lo+per, rows)
			eg.Go(func() error {
				counts[i] = e.evalRows(g, next, lo, hi)
				return nil
			})
		}
		_ = eg.Wait()
		for _, n := range counts {
			changed += n
		}
	}

	out, err := core.FromCells(rows, cols, next)
	if err != nil {
		// next is sized from g, which was already validated.
		panic(err)
	}
	return out, changed
}

func (e *Engine) bandCount(rows int) int {
	if e.workers < 2 {
		return 1
	}
	bands := min(e.workers, rows/minRowsPerWorker)
	return max(bands, 1)
}

// evalRows fills next for rows [lo, hi) and returns the number of changes.
func (e *Engine) evalRows(g *core.Grid, next []core.Cell, lo, hi int) int {
	_, cols := g.Dimensions()
	changed := 0
	for r := lo; r < hi; r++ {
		for c := 0; c < cols; c++ {
			cur := g.At(r, c)
			nxt := e.decide(g, cur, r, c)
			next[g.Index(r, c)] = nxt
			if nxt != cur {
				changed++
			}
		}
	}
	return changed
}

// decide applies the occupancy rule to a single cell.
func (e *Engine) decide(g *core.Grid, cur core.Cell, r, c int) core.Cell {
	switch cur {
	case core.EmptySeat:
		if e.strategy.CountOccupied(g, r, c, 1) == 0 {
			return core.OccupiedSeat
		}
	case core.OccupiedSeat:
		if e.strategy.CountOccupied(g, r, c, e.threshold) >= e.threshold {
			return core.EmptySeat
		}
	}
	return cur
}

// Result describes a finished run.
type Result struct {
	Grid     *core.Grid
	State    State
	Ticks    int
	Occupied int
}

// Run ticks from initial until a tick leaves the grid unchanged. The context
// is checked between ticks.
func (e *Engine) Run(ctx context.Context, initial *core.Grid) (Result, error) {
	rows, cols := initial.Dimensions()
	e.log.Debug("run starting",
		"strategy", e.strategy.String(),
		"threshold", e.threshold,
		"rows", rows,
		"cols", cols,
		"workers", e.workers,
		"max_ticks", e.maxTicks)

	cur := initial
	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{Grid: cur, State: Running, Ticks: ticks, Occupied: OccupiedCount(cur)}, err
		}
		if e.maxTicks > 0 && ticks >= e.maxTicks {
			return Result{Grid: cur, State: Running, Ticks: ticks, Occupied: OccupiedCount(cur)},
				fmt.Errorf("%w after %d ticks", ErrNonConvergence, ticks)
		}

		next, changed := e.Tick(cur)
		ticks++
		if e.log.Enabled(ctx, logging.LevelTrace) {
			e.log.Log(ctx, logging.LevelTrace, "tick", "n", ticks, "changed", changed, "occupied", OccupiedCount(next))
		}

		if changed == 0 {
			res := Result{Grid: next, State: Converged, Ticks: ticks, Occupied: OccupiedCount(next)}
			e.log.Debug("run converged", "ticks", res.Ticks, "occupied", res.Occupied)
			return res, nil
		}
		cur = next
	}
}

// Run evolves initial to its fixed point with the given strategy and
// threshold.
func Run(initial *core.Grid, strategy neighbor.Strategy, threshold int) (*core.Grid, error) {
	e, err := New(strategy, threshold)
	if err != nil {
		return nil, err
	}
	res, err := e.Run(context.Background(), initial)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// OccupiedCount returns the number of occupied seats in g.
func OccupiedCount(g *core.Grid) int {
	return g.Count(func(c core.Cell) bool { return c == core.OccupiedSeat })
}
