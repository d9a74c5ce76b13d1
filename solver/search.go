package solver

import (
	"github.com/ericr/solstice/lit"
	"github.com/ericr/solstice/tribool"
)

// Solve runs the search driver to completion and reports satisfiability.
// Callers must have already run PropagateInitial (and bailed out on its
// own conflict) before calling Solve.
func (s *Solver) Solve() bool {
	s.heap.Init()

	for {
		confl := s.propagate()

		if confl != NoClause {
			s.conflicts++
			s.sinceReduce++
			s.sinceRephase++

			learnt, bt, lbd, unsat := s.analyze(confl)
			if unsat {
				return false
			}

			s.backtrack(bt)
			if len(learnt) == 1 {
				s.assign(learnt[0], 0, NoClause)
			} else {
				id := s.recordLearnt(learnt, lbd)
				s.assign(learnt[0], bt, id)
			}

			if len(s.trail) > s.threshold {
				s.threshold = len(s.trail)
				s.snapshotLocalBest()
			}

			s.decayVarActivity()

			s.config.Logger.WithFields(map[string]interface{}{
				"conflicts": s.conflicts,
				"learnts":   s.NLearnts(),
				"lbd":       lbd,
			}).Debug("learnt clause recorded")

			continue
		}

		if len(s.trail) == s.NVars() {
			s.buildModel()
			return true
		}

		if s.firePolicyEvent() {
			continue
		}

		l := s.decide()
		if l == lit.Undef {
			s.buildModel()
			return true
		}

		s.trailLim = append(s.trailLim, len(s.trail))
		s.assign(l, s.decisionLevel(), NoClause)
		s.decisions++
	}
}

// firePolicyEvent runs at most one of reduce, restart, or rephase, in that
// priority order, and reports whether it fired one. Each handler resets the
// counter or window that triggered it, so at most one fires per call.
func (s *Solver) firePolicyEvent() bool {
	switch {
	case s.sinceReduce >= s.reduceLimit:
		s.reduce()
	case s.shouldRestart():
		s.restart()
	case s.sinceRephase >= s.rephaseLimit:
		s.rephase()
	default:
		return false
	}
	return true
}

// decide pops variables off the activity heap, skipping any that were
// assigned by propagation since they were inserted, and returns a literal
// built from the first unassigned one using its saved phase (defaulting to
// positive polarity for a variable that's never been assigned a phase).
// Returns lit.Undef if every variable is already assigned.
func (s *Solver) decide() lit.Lit {
	for !s.heap.Empty() {
		v := s.heap.Pop()
		if s.assigns[v] == tribool.Undef {
			return lit.New(v, s.savedPhase[v] < 0)
		}
	}
	return lit.Undef
}

// buildModel snapshots the current total assignment as the solver's model.
func (s *Solver) buildModel() {
	s.model = make([]bool, s.NVars())
	for v := 0; v < s.NVars(); v++ {
		s.model[v] = s.assigns[v] == tribool.True
	}
}
