package solver

import "github.com/ericr/solstice/tribool"

// bumpVarActivity bumps variable v's activity by coef * varInc, rescales
// the whole activity table if the bump pushed v over the configured
// threshold, and refreshes v's position in the heap if it's currently in
// it.
func (s *Solver) bumpVarActivity(v int, coef float64) {
	s.activity[v] += coef * s.varInc

	if s.activity[v] > s.config.RescaleThreshold {
		s.rescaleVarActivity()
	}
	if s.heap.InHeap(v) {
		s.heap.Update(v)
	}
}

// decayVarActivity grows varInc so that future bumps count for more,
// standing in for decaying every stored activity after each conflict.
func (s *Solver) decayVarActivity() {
	s.varInc *= 1 / s.config.VarDecay
}

// rescaleVarActivity multiplies every activity and varInc by the configured
// factor, keeping them from overflowing float64 across a long search.
func (s *Solver) rescaleVarActivity() {
	for i := range s.activity {
		s.activity[i] *= s.config.RescaleFactor
	}
	s.varInc *= s.config.RescaleFactor
}

// recordLBD folds a freshly computed LBD into the glucose-style fast/slow
// running averages: fastLBD is a ring buffer of the last FastLBDWindowSize
// conflicts, slowLBD is a running sum of min(lbd, FastLBDWindowSize) over
// every conflict ever seen.
func (s *Solver) recordLBD(lbd int) {
	capped := lbd
	if capped > len(s.fastLBD) {
		capped = len(s.fastLBD)
	}
	s.slowLBDSum += capped

	if s.fastLBDCount == len(s.fastLBD) {
		s.fastLBDSum -= s.fastLBD[s.fastLBDPos]
	} else {
		s.fastLBDCount++
	}
	s.fastLBD[s.fastLBDPos] = lbd
	s.fastLBDSum += lbd
	s.fastLBDPos = (s.fastLBDPos + 1) % len(s.fastLBD)
}

// shouldRestart reports whether the glucose restart trigger fires: the
// fast-window LBD average, scaled by RestartTriggerK, exceeds the
// all-time slow average. It never fires before the fast window has
// filled once.
func (s *Solver) shouldRestart() bool {
	if s.fastLBDCount < len(s.fastLBD) {
		return false
	}
	fastAvg := float64(s.fastLBDSum) / float64(len(s.fastLBD))
	slowAvg := float64(s.slowLBDSum) / float64(s.conflicts)

	return s.config.RestartTriggerK*fastAvg > slowAvg
}

// snapshotLocalBest records the current live assignment as the local-best
// phase, called whenever the trail grows past its previous high water
// mark. Unassigned variables record 0, matching the reference's "no phase
// yet" sentinel.
func (s *Solver) snapshotLocalBest() {
	for v, val := range s.assigns {
		switch val {
		case tribool.True:
			s.localBest[v] = 1
		case tribool.False:
			s.localBest[v] = -1
		default:
			s.localBest[v] = 0
		}
	}
}
