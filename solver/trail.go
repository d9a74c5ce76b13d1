package solver

import (
	"github.com/ericr/solstice/lit"
	"github.com/ericr/solstice/tribool"
)

// assign requires value[|l|] == 0. It records l's value, decision level,
// and antecedent, then appends it to the trail. It never touches the
// activity heap.
func (s *Solver) assign(l lit.Lit, level int, reason ClauseID) {
	v := l.Index()
	s.assertInvariant(s.assigns[v] == tribool.Undef, "assign: variable already has a value")

	s.assigns[v] = tribool.NewFromSign(l.Sign())
	s.level[v] = level
	s.reason[v] = reason
	s.trail = append(s.trail, l)
}

// decisionLevel returns the solver's current decision level.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// backtrack unassigns every trail entry at a level above L, saving each
// literal's sign as its phase, and reinserts newly-unassigned variables
// into the activity heap. It truncates the trail and decision-level table
// to level L; a no-op if already at or below L.
func (s *Solver) backtrack(l int) {
	if s.decisionLevel() <= l {
		return
	}

	cut := s.trailLim[l]
	for i := len(s.trail) - 1; i >= cut; i-- {
		lt := s.trail[i]
		v := lt.Index()

		if lt.Sign() {
			s.savedPhase[v] = -1
		} else {
			s.savedPhase[v] = 1
		}
		s.assigns[v] = tribool.Undef
		s.reason[v] = NoClause
		s.level[v] = 0

		if !s.heap.InHeap(v) {
			s.heap.Insert(v)
		}
	}
	s.trail = s.trail[:cut]
	s.propagated = cut
	s.trailLim = s.trailLim[:l]
}
