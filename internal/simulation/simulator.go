// Package simulation estimates the probability of five-card hand
// categories by quota-based Monte-Carlo sampling: trials run until a fixed
// number of matching hands has been seen, then the match/trial ratio is
// reported.
package simulation

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync/atomic"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivecard/internal/randutil"
	"github.com/lox/fivecard/poker"
)

// DefaultQuota is the number of matching hands a run collects before
// reporting.
const DefaultQuota = 1000

// ErrTrialBudgetExceeded is returned when the max-trial safety bound is hit
// before the match quota is reached.
var ErrTrialBudgetExceeded = errors.New("trial budget exceeded before match quota reached")

// Options configures a Simulator. Zero values select defaults.
type Options struct {
	// Quota is the number of matches to collect (default DefaultQuota).
	Quota int

	// MaxTrials bounds the total number of trials so a run always
	// terminates. Zero means unbounded.
	MaxTrials uint64

	// Workers is the number of parallel trial workers (default 1,
	// sequential).
	Workers int

	// Seed pins the random sequence. Zero picks a time-derived seed.
	Seed int64

	// Logger defaults to a no-op logger when nil.
	Logger *zerolog.Logger
	Clock  quartz.Clock
}

// Simulator runs quota-based Monte-Carlo estimates for hand categories.
// A Simulator is reusable; every Estimate call is an independent run.
type Simulator struct {
	quota     int
	maxTrials uint64
	workers   int
	seed      int64
	logger    zerolog.Logger
	clock     quartz.Clock
}

// New creates a Simulator, applying defaults for unset options.
func New(opts Options) *Simulator {
	if opts.Quota <= 0 {
		opts.Quota = DefaultQuota
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Seed == 0 {
		opts.Seed = randutil.NewSeed()
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Simulator{
		quota:     opts.Quota,
		maxTrials: opts.MaxTrials,
		workers:   opts.Workers,
		seed:      opts.Seed,
		logger:    logger,
		clock:     opts.Clock,
	}
}

// Estimate samples freshly dealt five-card hands until the match quota is
// reached and returns the observed match/trial counts. Each trial builds a
// new deck, shuffles it and deals one hand; trials never share state
// beyond the counters.
//
// With the trial budget exhausted the partial counts are returned together
// with ErrTrialBudgetExceeded.
func (s *Simulator) Estimate(ctx context.Context, target poker.Category) (Result, error) {
	runID := uuid.New()

	s.logger.Debug().
		Stringer("run_id", runID).
		Stringer("category", target).
		Int("quota", s.quota).
		Uint64("max_trials", s.maxTrials).
		Int("workers", s.workers).
		Int64("seed", s.seed).
		Msg("starting estimate")

	start := s.clock.Now()

	var matches, trials uint64
	var err error
	if s.workers > 1 {
		matches, trials, err = s.runParallel(ctx, target)
	} else {
		matches, trials, err = s.runSequential(ctx, target)
	}

	result := Result{
		RunID:    runID,
		Category: target,
		Matches:  matches,
		Trials:   trials,
		Quota:    s.quota,
		Seed:     s.seed,
		Workers:  s.workers,
		Elapsed:  s.clock.Since(start),
	}
	if err != nil {
		return result, err
	}

	s.logger.Debug().
		Stringer("run_id", runID).
		Uint64("trials", trials).
		Uint64("matches", matches).
		Float64("percent", result.Percent()).
		Dur("elapsed", result.Elapsed).
		Msg("estimate complete")

	return result, nil
}

func (s *Simulator) runSequential(ctx context.Context, target poker.Category) (matches, trials uint64, err error) {
	rng := randutil.New(s.seed)

	for matches < uint64(s.quota) {
		if err := ctx.Err(); err != nil {
			return matches, trials, err
		}
		if s.maxTrials > 0 && trials >= s.maxTrials {
			return matches, trials, fmt.Errorf("simulation: %d trials: %w", trials, ErrTrialBudgetExceeded)
		}

		match, err := runTrial(rng, target)
		if err != nil {
			return matches, trials, err
		}
		trials++
		if match {
			matches++
		}
	}

	return matches, trials, nil
}

// runParallel fans trials out over workers with a shared pair of atomic
// counters. The stop signal is a context cancel issued by whichever worker
// lands the quota-reaching match. In-flight trials on other workers may
// still be counted, so the counters can overshoot the quota slightly, but
// every counted match stays paired with its counted trial and the ratio
// remains well-defined.
func (s *Simulator) runParallel(parent context.Context, target poker.Category) (uint64, uint64, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var matches, trials atomic.Uint64
	quota := uint64(s.quota)

	// Independent RNG per worker to avoid contention; seeds derive from
	// the run seed so the whole run is reproducible for a fixed worker
	// count.
	seeder := randutil.New(s.seed)
	for w := 0; w < s.workers; w++ {
		workerSeed := seeder.Int64()

		g.Go(func() error {
			rng := randutil.New(workerSeed)
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				if s.maxTrials > 0 && trials.Load() >= s.maxTrials {
					cancel()
					return fmt.Errorf("simulation: %d trials: %w", trials.Load(), ErrTrialBudgetExceeded)
				}

				match, err := runTrial(rng, target)
				if err != nil {
					return err
				}
				trials.Add(1)
				if match && matches.Add(1) >= quota {
					cancel()
					return nil
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return matches.Load(), trials.Load(), err
	}

	// Workers only stop without error once the quota-reaching match fired
	// the cancel; stopping short of the quota means the parent context was
	// cancelled from outside.
	if matches.Load() < quota {
		return matches.Load(), trials.Load(), parent.Err()
	}
	return matches.Load(), trials.Load(), nil
}

// runTrial plays one self-contained trial: fresh deck, shuffle, deal a
// hand, test the target predicate.
func runTrial(rng *rand.Rand, target poker.Category) (bool, error) {
	deck := poker.NewDeck(rng)
	deck.Shuffle()
	hand, err := poker.NewHand(deck)
	if err != nil {
		return false, fmt.Errorf("simulation: deal trial hand: %w", err)
	}
	return hand.Matches(target), nil
}
