package automaton

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"seat-ca/internal/core"
	"seat-ca/internal/logging"
	"seat-ca/internal/neighbor"
)

var waitingArea = []string{
	"L.LL.LL.LL",
	"LLLLLLL.LL",
	"L.L.L..L..",
	"LLLL.LL.LL",
	"L.LL.LL.LL",
	"L.LLLLL.LL",
	"..L.L.....",
	"LLLLLLLLLL",
	"L.LLLLLL.L",
	"L.LLLLL.LL",
}

func mustLoad(t *testing.T, lines []string) *core.Grid {
	t.Helper()
	g, err := core.Load(lines)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return g
}

func mustEngine(t *testing.T, s neighbor.Strategy, threshold int, opts ...Option) *Engine {
	t.Helper()
	e, err := New(s, threshold, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestRunWaitingArea(t *testing.T) {
	tests := []struct {
		name      string
		strategy  neighbor.Strategy
		threshold int
		occupied  int
		final     []string
	}{
		{
			name:      "adjacent",
			strategy:  neighbor.Adjacent,
			threshold: 4,
			occupied:  37,
			final: []string{
				"#.#L.L#.##",
				"#LLL#LL.L#",
				"L.#.L..#..",
				"#L##.##.L#",
				"#.#L.LL.LL",
				"#.#L#L#.##",
				"..L.L.....",
				"#L#L##L#L#",
				"#.LLLLLL.L",
				"#.#L#L#.##",
			},
		},
		{
			name:      "visible",
			strategy:  neighbor.Visible,
			threshold: 5,
			occupied:  26,
			final: []string{
				"#.L#.L#.L#",
				"#LLLLLL.LL",
				"L.L.L..#..",
				"##L#.#L.L#",
				"L.L#.LL.L#",
				"#.LLLL#.LL",
				"..#.L.....",
				"LLL###LLL#",
				"#.LLLLL#.L",
				"#.L#LL#.L#",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := mustLoad(t, waitingArea)
			final, err := Run(initial, tt.strategy, tt.threshold)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := OccupiedCount(final); got != tt.occupied {
				t.Fatalf("occupied = %d, want %d", got, tt.occupied)
			}
			if !slices.Equal(final.Lines(), tt.final) {
				t.Fatalf("final grid:\n%s\nwant:\n%s", final, strings.Join(tt.final, "\n"))
			}
			if !slices.Equal(initial.Lines(), waitingArea) {
				t.Fatal("Run modified the initial grid")
			}
		})
	}
}

func TestTickSecondRoundAdjacent(t *testing.T) {
	e := mustEngine(t, neighbor.Adjacent, 4)
	g := mustLoad(t, waitingArea)

	first, changed := e.Tick(g)
	if changed != 71 {
		t.Fatalf("first tick changed %d cells, want 71", changed)
	}
	if got := strings.Count(first.String(), "L"); got != 0 {
		t.Fatalf("first tick left %d empty seats", got)
	}

	second, _ := e.Tick(first)
	want := []string{
		"#.LL.L#.##",
		"#LLLLLL.L#",
		"L.L.L..L..",
		"#LLL.LL.L#",
		"#.LL.LL.LL",
		"#.LLLL#.##",
		"..L.L.....",
		"#LLLLLLLL#",
		"#.LLLLLL.L",
		"#.#LLLL.##",
	}
	if !slices.Equal(second.Lines(), want) {
		t.Fatalf("second tick:\n%s\nwant:\n%s", second, strings.Join(want, "\n"))
	}
}

func TestRunAllFloor(t *testing.T) {
	e := mustEngine(t, neighbor.Visible, 5)
	g := mustLoad(t, []string{"....", "....", "...."})

	res, err := e.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != Converged || res.Ticks != 1 || res.Occupied != 0 {
		t.Fatalf("result = %+v, want converged after 1 tick with 0 occupied", res)
	}
	for i := 0; i < 5; i++ {
		next, changed := e.Tick(g)
		if changed != 0 || !next.Equal(g) {
			t.Fatalf("all-floor grid changed on tick %d", i)
		}
	}
}

func TestFixedPointIsIdempotent(t *testing.T) {
	for _, s := range []neighbor.Strategy{neighbor.Adjacent, neighbor.Visible} {
		e := mustEngine(t, s, 0)
		res, err := e.Run(context.Background(), mustLoad(t, waitingArea))
		if err != nil {
			t.Fatalf("%v: Run: %v", s, err)
		}
		next, changed := e.Tick(res.Grid)
		if changed != 0 || !next.Equal(res.Grid) {
			t.Fatalf("%v: one more tick changed %d cells", s, changed)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	g, err := core.RandomLayout(11, core.LayoutOptions{Rows: 30, Cols: 25, FloorChance: 0.25, OccupiedChance: 0.4})
	if err != nil {
		t.Fatalf("RandomLayout: %v", err)
	}
	for _, s := range []neighbor.Strategy{neighbor.Adjacent, neighbor.Visible} {
		a, err := Run(g, s, 0)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		b, err := Run(g, s, 0)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if !a.Equal(b) {
			t.Fatalf("%v: two runs produced different grids", s)
		}
	}
}

func TestParallelTickMatchesSequential(t *testing.T) {
	g, err := core.RandomLayout(5, core.LayoutOptions{Rows: 67, Cols: 41, FloorChance: 0.2, OccupiedChance: 0.5})
	if err != nil {
		t.Fatalf("RandomLayout: %v", err)
	}
	for _, s := range []neighbor.Strategy{neighbor.Adjacent, neighbor.Visible} {
		seq := mustEngine(t, s, 0)
		par := mustEngine(t, s, 0, WithWorkers(4))

		a, ca := seq.Tick(g)
		b, cb := par.Tick(g)
		if ca != cb || !a.Equal(b) {
			t.Fatalf("%v: parallel tick differs (changed %d vs %d)", s, ca, cb)
		}

		ra, err := seq.Run(context.Background(), g)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		rb, err := par.Run(context.Background(), g)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if ra.Ticks != rb.Ticks || !ra.Grid.Equal(rb.Grid) {
			t.Fatalf("%v: parallel run differs", s)
		}
	}
}

func TestOccupancyRule(t *testing.T) {
	tests := []struct {
		name      string
		strategy  neighbor.Strategy
		threshold int
		in        []string
		want      []string
	}{
		{"lone empty seat fills", neighbor.Adjacent, 4, []string{"L"}, []string{"#"}},
		{"empty seat next to occupied stays", neighbor.Adjacent, 4, []string{"L#"}, []string{"L#"}},
		{
			"occupied below threshold stays",
			neighbor.Adjacent, 4,
			[]string{"###", "#.."},
			[]string{"###", "#.."},
		},
		{
			"occupied at threshold empties",
			neighbor.Adjacent, 4,
			[]string{"###", "##."},
			[]string{"#L#", "#L."},
		},
		{
			"visible four stays under threshold five",
			neighbor.Visible, 5,
			[]string{"#.#.#", ".....", "#.#.."},
			[]string{"#.#.#", ".....", "#.#.."},
		},
		{
			"floor never changes",
			neighbor.Visible, 5,
			[]string{"...", ".#.", "..."},
			[]string{"...", ".#.", "..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.strategy, tt.threshold)
			next, _ := e.Tick(mustLoad(t, tt.in))
			if !slices.Equal(next.Lines(), tt.want) {
				t.Fatalf("tick = %q, want %q", next.Lines(), tt.want)
			}
		})
	}
}

func TestRunNonConvergence(t *testing.T) {
	e := mustEngine(t, neighbor.Adjacent, 4, WithMaxTicks(2))
	res, err := e.Run(context.Background(), mustLoad(t, waitingArea))
	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("expected ErrNonConvergence, got %v", err)
	}
	if res.State != Running || res.Ticks != 2 {
		t.Fatalf("result = %+v, want running after 2 ticks", res)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := mustEngine(t, neighbor.Adjacent, 4)
	if _, err := e.Run(ctx, mustLoad(t, waitingArea)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewThreshold(t *testing.T) {
	e := mustEngine(t, neighbor.Visible, 0)
	if e.Threshold() != 5 {
		t.Fatalf("default visible threshold = %d, want 5", e.Threshold())
	}
	e = mustEngine(t, neighbor.Adjacent, 0)
	if e.Threshold() != 4 {
		t.Fatalf("default adjacent threshold = %d, want 4", e.Threshold())
	}
	for _, bad := range []int{-1, 9} {
		if _, err := New(neighbor.Adjacent, bad); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("New(threshold=%d) error = %v, want ErrInvalidThreshold", bad, err)
		}
	}
}

func TestRunTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	e := mustEngine(t, neighbor.Adjacent, 4, WithLogger(logging.NewLogger("trace", &buf)))
	res, err := e.Run(context.Background(), mustLoad(t, waitingArea))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "msg=tick"); got != res.Ticks {
		t.Fatalf("logged %d ticks, want %d", got, res.Ticks)
	}
	if !strings.Contains(out, "changed=0 occupied=37") {
		t.Fatalf("final tick should log the occupied count, got %q", out)
	}
	if !strings.Contains(out, "run converged") {
		t.Fatalf("missing convergence log in %q", out)
	}
}
