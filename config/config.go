// Package config holds the tunable constants of the CDCL search: activity
// decay, the glucose-style restart/reduce/rephase schedule, and the knobs
// the CLI exposes as flags.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config carries every tunable parameter named by the search driver, plus
// the logger and RNG seed threaded through the solver.
type Config struct {
	// Logger receives solver lifecycle events (clause counts, conflict and
	// restart/reduce/rephase counters) and parse/config errors.
	Logger *logrus.Logger

	// Assertions gates the solver's internal precondition checks: assigning
	// a variable that already has a value, and storing a clause shorter
	// than two literals. They panic when true; they're skipped entirely
	// when false, matching the spec's "undefined in release" posture for
	// programming errors. Watched-literal alignment, reason antecedent
	// shape and heap completeness are not checked.
	Assertions bool

	// Seed seeds the solver's RNG, used by restart-time phase resets and
	// reduce-time learnt clause deletion. Fixing it makes two runs on the
	// same input produce identical output.
	Seed int64

	// VarDecay is the decay factor applied to VSIDS activity; var_inc is
	// multiplied by 1/VarDecay after every conflict.
	VarDecay float64

	// ActivityBumpSmall and ActivityBumpFull are the two conflict-analysis
	// activity bump coefficients: every literal visited during analysis is
	// bumped by ActivityBumpSmall, and any visited literal whose level is at
	// least the backtrack level minus one gets an additional bump of
	// ActivityBumpFull.
	ActivityBumpSmall float64
	ActivityBumpFull  float64

	// RescaleThreshold and RescaleFactor keep activities from overflowing:
	// once any activity exceeds RescaleThreshold, every activity (and
	// var_inc) is multiplied by RescaleFactor.
	RescaleThreshold float64
	RescaleFactor    float64

	// FastLBDWindowSize is the glucose-style ring buffer capacity for
	// recent LBDs; restarts are suppressed until it's full.
	FastLBDWindowSize int

	// RestartTriggerK is the coefficient in the restart test:
	// RestartTriggerK * (fast LBD average) > (slow LBD average).
	RestartTriggerK float64

	// Restart phase-reset probabilities. They must sum to at most 1.0.
	// ProbLocalBest: replace saved phases with the local-best snapshot.
	// ProbNegatedLocalBest: replace with the negation of the snapshot.
	// ProbRandomPhase: replace with a random phase per variable.
	// The remaining probability mass leaves saved phases unchanged.
	ProbLocalBest        float64
	ProbNegatedLocalBest float64
	ProbRandomPhase      float64

	// ReduceLimitInitial and ReduceLimitGrowth control how often the
	// learnt clause database is pruned: reduce fires every ReduceLimitInitial
	// conflicts, growing by ReduceLimitGrowth after each firing.
	ReduceLimitInitial int
	ReduceLimitGrowth  int

	// ReduceLBDThreshold and ReduceProbability: a reduce pass deletes each
	// learnt clause with LBD >= ReduceLBDThreshold with this probability.
	ReduceLBDThreshold int
	ReduceProbability  float64

	// RephaseLimitInitial and RephaseLimitGrowth control how often the
	// local-best threshold decays: rephase fires every RephaseLimitInitial
	// conflicts, growing by RephaseLimitGrowth after each firing.
	RephaseLimitInitial int
	RephaseLimitGrowth  int

	// RephaseThresholdDecay is the factor applied to the local-best
	// threshold on every rephase event.
	RephaseThresholdDecay float64
}

// New returns a Config populated with the reference defaults from the
// search driver's design.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	return &Config{
		Logger: logger,

		Assertions: false,
		Seed:       1,

		VarDecay: 0.8,

		ActivityBumpSmall: 0.5,
		ActivityBumpFull:  1.0,

		RescaleThreshold: 1e100,
		RescaleFactor:    1e-100,

		FastLBDWindowSize: 50,
		RestartTriggerK:   0.8,

		ProbLocalBest:        0.60,
		ProbNegatedLocalBest: 0.05,
		ProbRandomPhase:      0.20,

		ReduceLimitInitial: 8192,
		ReduceLimitGrowth:  512,
		ReduceLBDThreshold: 5,
		ReduceProbability:  0.5,

		RephaseLimitInitial:   1024,
		RephaseLimitGrowth:    8192,
		RephaseThresholdDecay: 0.9,
	}
}
