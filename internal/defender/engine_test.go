package defender

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pursuit/internal/config"
	"pursuit/internal/grid"
	"pursuit/internal/util"
)

func newTestEngine(seed int64) *Engine {
	return New(config.DefaultDefender(), util.New(seed), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pos(row, col uint) grid.Position { return grid.Position{Row: row, Col: col} }

func spyAt(p grid.Position) *grid.CountingSpy {
	return &grid.CountingSpy{Spy: grid.SpyFunc(func() grid.Position { return p })}
}

// holdUntilSpy plays the five quiet rounds before the reveal.
func holdUntilSpy(t *testing.T, e *Engine, at grid.Position, spy grid.Spy) {
	t.Helper()
	for round := 1; round <= 5; round++ {
		require.Equal(t, grid.Stay, e.Decide(at, spy), "round %d", round)
	}
	require.Equal(t, Stay, e.Snapshot().Kind)
}

func TestAlignsWithRivalAbove(t *testing.T) {
	e := newTestEngine(1)
	spy := spyAt(pos(3, 6))
	holdUntilSpy(t, e, pos(5, 12), spy)

	assert.Equal(t, grid.Up, e.Decide(pos(5, 12), spy))
	snap := e.Snapshot()
	assert.Equal(t, Align, snap.Kind)
	assert.Equal(t, 1, snap.RoundsLeft)
	assert.Equal(t, grid.Up, e.Decide(pos(4, 12), spy))

	d := e.Decide(pos(3, 12), spy)
	snap = e.Snapshot()
	assert.Equal(t, Less, snap.Kind)
	assert.Contains(t, []grid.Direction{grid.Up, grid.Down}, d)
	assert.True(t, snap.Aligned)
	assert.Equal(t, 1, spy.Calls)
}

func TestAlignsWithRivalBelow(t *testing.T) {
	e := newTestEngine(2)
	spy := spyAt(pos(5, 3))
	holdUntilSpy(t, e, pos(2, 12), spy)

	var got []grid.Direction
	for i, p := range []grid.Position{pos(2, 12), pos(3, 12), pos(4, 12)} {
		got = append(got, e.Decide(p, spy))
		require.Equal(t, Align, e.Snapshot().Kind, "move %d", i)
	}
	if diff := cmp.Diff([]grid.Direction{grid.Down, grid.Down, grid.Down}, got); diff != "" {
		t.Fatalf("alignment mismatch (-want +got):\n%s", diff)
	}
	e.Decide(pos(5, 12), spy)
	assert.Equal(t, Less, e.Snapshot().Kind)
}

func TestSameRowGoesStraightToLess(t *testing.T) {
	e := newTestEngine(3)
	spy := spyAt(pos(5, 2))
	holdUntilSpy(t, e, pos(5, 12), spy)

	d := e.Decide(pos(5, 12), spy)
	snap := e.Snapshot()
	assert.Equal(t, Less, snap.Kind)
	assert.Equal(t, d, snap.Heading)
	assert.Equal(t, 1, snap.Step)
	assert.Equal(t, 3, snap.Amplitude)
}

func TestLockEscapes(t *testing.T) {
	seen := map[Kind]bool{}
	for seed := int64(1); seed <= 64; seed++ {
		e := newTestEngine(seed)
		spy := spyAt(pos(5, 2))
		holdUntilSpy(t, e, pos(5, 12), spy)
		first := e.Decide(pos(5, 12), spy)

		d := e.Decide(pos(5, 12), spy)
		snap := e.Snapshot()
		seen[snap.Kind] = true
		switch snap.Kind {
		case Forward:
			assert.Equal(t, grid.Left, d)
		case Align:
			want := grid.Up
			if first.HasUp() {
				want = grid.Down
			}
			assert.Equal(t, want, d)
			assert.Equal(t, 1, snap.RoundsLeft)
		default:
			t.Fatalf("seed %d: unexpected escape strategy %v", seed, snap.Kind)
		}
	}
	assert.True(t, seen[Forward])
	assert.True(t, seen[Align])
}

func TestForwardRetriesAlignment(t *testing.T) {
	for seed := int64(1); seed <= 64; seed++ {
		e := newTestEngine(seed)
		spy := spyAt(pos(3, 6))
		holdUntilSpy(t, e, pos(5, 12), spy)
		e.Decide(pos(5, 12), spy)
		e.Decide(pos(5, 12), spy) // blocked on the way up
		if e.Snapshot().Kind != Forward {
			continue
		}

		d := e.Decide(pos(5, 11), spy)
		snap := e.Snapshot()
		assert.Equal(t, grid.Up, d)
		assert.Equal(t, Align, snap.Kind)
		assert.Equal(t, 1, snap.RoundsLeft)
		assert.Equal(t, 1, snap.Retries)
		return
	}
	t.Fatal("no seed chose the forward escape")
}

func TestForwardWithoutRetryFallsBackToLess(t *testing.T) {
	for seed := int64(1); seed <= 64; seed++ {
		e := newTestEngine(seed)
		spy := spyAt(pos(5, 2))
		holdUntilSpy(t, e, pos(5, 12), spy)
		e.Decide(pos(5, 12), spy)
		e.Decide(pos(5, 12), spy)
		if e.Snapshot().Kind != Forward {
			continue
		}
		e.Decide(pos(5, 11), spy)
		snap := e.Snapshot()
		assert.Equal(t, Less, snap.Kind)
		assert.Equal(t, 2, snap.Retries, "already aligned, no retry spent")
		return
	}
	t.Fatal("no seed chose the forward escape")
}

func TestAlignRetriesRunOut(t *testing.T) {
	e := newTestEngine(4)
	spy := spyAt(pos(3, 6))
	holdUntilSpy(t, e, pos(5, 12), spy)
	e.Decide(pos(5, 12), spy)
	require.Equal(t, Align, e.Snapshot().Kind)

	type step struct {
		Kind    Kind
		Retries int
	}
	var got []step
	for _, p := range []grid.Position{pos(5, 11), pos(5, 10), pos(5, 9)} {
		e.st.strategy = &forward{dir: grid.Left}
		e.Decide(p, spy)
		snap := e.Snapshot()
		got = append(got, step{snap.Kind, snap.Retries})
	}
	want := []step{{Align, 1}, {Align, 0}, {Less, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("retry budget mismatch (-want +got):\n%s", diff)
	}
}

func TestSpyFiresOnce(t *testing.T) {
	e := newTestEngine(4)
	spy := spyAt(pos(0, 0))
	rng := util.New(4)
	p := pos(5, 12)
	for round := 1; round <= 300; round++ {
		d := e.Decide(p, spy)
		require.True(t, d.Valid(), "round %d: %v", round, d)
		if rng.Intn(4) != 0 {
			p = pos(uint(rng.Intn(11)), uint(rng.Intn(13)))
		}
	}
	assert.Equal(t, 1, spy.Calls)
}

func TestDeterministicForSeed(t *testing.T) {
	path := []grid.Position{
		pos(5, 12), pos(5, 12), pos(5, 12), pos(5, 12), pos(5, 12), pos(5, 12),
		pos(4, 12), pos(4, 12), pos(3, 11), pos(3, 11), pos(3, 10), pos(2, 10),
		pos(2, 10), pos(1, 9), pos(2, 8),
	}
	run := func() []grid.Direction {
		e := newTestEngine(77)
		spy := spyAt(pos(2, 4))
		out := make([]grid.Direction, 0, len(path))
		for _, p := range path {
			out = append(out, e.Decide(p, spy))
		}
		return out
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Fatalf("same seed produced different headings:\n%s", diff)
	}
}

type broken struct{}

func (broken) kind() Kind        { return Kind(9) }
func (broken) left() int         { return unbounded }
func (b broken) clone() strategy { return b }

func TestUnknownStrategyKeepsState(t *testing.T) {
	e := newTestEngine(5)
	e.st.strategy = broken{}
	before := e.Snapshot()

	assert.Equal(t, grid.Stay, e.Decide(pos(5, 12), spyAt(pos(1, 1))))
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, "Kind(9)", before.Kind.String())
}
