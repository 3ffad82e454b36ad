package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/fivecard/poker"
)

// Result holds the outcome of one estimate run. Matches may exceed Quota
// slightly on parallel runs; every counted match has its trial counted, so
// the ratio is still the empirical probability.
type Result struct {
	RunID    uuid.UUID
	Category poker.Category
	Matches  uint64
	Trials   uint64
	Quota    int
	Seed     int64
	Workers  int
	Elapsed  time.Duration
}

// Probability returns the empirical probability as a fraction in [0, 1].
func (r Result) Probability() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.Trials)
}

// Percent returns the empirical probability as a percentage.
func (r Result) Percent() float64 {
	return 100 * r.Probability()
}

// StdError returns the normal-approximation standard error of the
// percentage estimate.
func (r Result) StdError() float64 {
	if r.Trials == 0 {
		return 0
	}
	p := r.Probability()
	return 100 * math.Sqrt(p*(1-p)/float64(r.Trials))
}

// ConfidenceInterval returns the lower and upper bounds of the percentage
// estimate at the given confidence level (e.g. 0.95), clamped to [0, 100].
func (r Result) ConfidenceInterval(level float64) (low, high float64) {
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	margin := z * r.StdError()
	pct := r.Percent()
	return math.Max(0, pct-margin), math.Min(100, pct+margin)
}

// TrialsPerSecond returns the observed sampling rate.
func (r Result) TrialsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Trials) / r.Elapsed.Seconds()
}

// Report renders the one-line summary sentence, percentage formatted to
// four decimal places.
func (r Result) Report() string {
	return fmt.Sprintf("The estimated probability of getting a %s is %.4f%%", r.Category, r.Percent())
}
