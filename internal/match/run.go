// Package match drives an attacker and a defender against each other on a
// bounded board. It is the reference turn loop for the CLI and the tests.
package match

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pursuit/internal/attacker"
	"pursuit/internal/config"
	"pursuit/internal/ctxlog"
	"pursuit/internal/defender"
	"pursuit/internal/grid"
	"pursuit/internal/util"
)

// Run plays one match between freshly built engines seeded from seed.
func Run(ctx context.Context, cfg *config.Match, seed int64, record bool) Result {
	logger := ctxlog.FromContext(ctx).With("seed", seed)
	atk := attacker.New(cfg.Attacker.Attacker, util.New(seed), logger)
	def := defender.New(cfg.Defender.Defender, util.New(seed+7919), logger)
	res := Play(ctx, cfg, atk, def, record)
	res.Seed = seed
	return res
}

// Play runs the turn loop until capture, MaxRounds or ctx cancellation.
// Both agents decide on the positions at the start of the round and then
// move simultaneously; crossing paths counts as a capture.
func Play(ctx context.Context, cfg *config.Match, atk, def Agent, record bool) Result {
	logger := ctxlog.FromContext(ctx)
	board := cfg.Board()
	res := Result{ID: uuid.NewString()}

	emit := func(ev Event) {
		if record {
			res.Events = append(res.Events, ev)
		}
	}

	aPos, dPos := *cfg.Attacker.Start, *cfg.Defender.Start
	aSpy := &grid.CountingSpy{Spy: grid.SpyFunc(func() grid.Position { return dPos })}
	dSpy := &grid.CountingSpy{Spy: grid.SpyFunc(func() grid.Position { return aPos })}

	for round := 1; round <= cfg.MaxRounds; round++ {
		if ctx.Err() != nil {
			logger.Warn("match interrupted", "id", res.ID, "round", round, "err", ctx.Err())
			break
		}
		aSpied, dSpied := aSpy.Calls, dSpy.Calls
		aDir := atk.Decide(aPos, aSpy)
		dDir := def.Decide(dPos, dSpy)
		if aSpy.Calls > aSpied {
			emit(Event{Round: round, Type: "Spy", Payload: map[string]any{"agent": "attacker", "rival": dPos}})
		}
		if dSpy.Calls > dSpied {
			emit(Event{Round: round, Type: "Spy", Payload: map[string]any{"agent": "defender", "rival": aPos}})
		}

		na, nd := board.Step(aPos, aDir), board.Step(dPos, dDir)
		emit(Event{Round: round, Type: "Move", Payload: map[string]any{
			"agent": "attacker", "from": aPos, "to": na, "heading": aDir.String(),
		}})
		emit(Event{Round: round, Type: "Move", Payload: map[string]any{
			"agent": "defender", "from": dPos, "to": nd, "heading": dDir.String(),
		}})
		crossed := na == dPos && nd == aPos
		aPos, dPos = na, nd
		res.Rounds = round

		if aPos == dPos || crossed {
			res.Captured = true
			emit(Event{Round: round, Type: "Capture", Payload: map[string]any{"at": aPos}})
			break
		}
	}

	res.Attacker, res.Defender = aPos, dPos
	res.AttackerSpyCalls, res.DefenderSpyCalls = aSpy.Calls, dSpy.Calls
	logger.Debug("match finished", "id", res.ID, "captured", res.Captured, "rounds", res.Rounds)
	return res
}

// RunBatch plays runs matches on a pool of workers. Match i is seeded with
// cfg.Seed+i, so the summary does not depend on scheduling.
func RunBatch(ctx context.Context, cfg *config.Match, runs, workers int) Summary {
	if workers <= 0 {
		workers = 1
	}
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		st        = Summary{Runs: runs}
		sumRounds int
		sumCaught int
	)
	jobs := make(chan int, runs)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := Run(ctx, cfg, cfg.Seed+int64(i), false)

				mu.Lock()
				sumRounds += res.Rounds
				if res.Captured {
					st.Captures++
					sumCaught += res.Rounds
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if runs > 0 {
		st.CaptureRate = float64(st.Captures) / float64(runs)
		st.AvgRounds = float64(sumRounds) / float64(runs)
	}
	if st.Captures > 0 {
		st.AvgCaptureRounds = float64(sumCaught) / float64(st.Captures)
	}
	return st
}
