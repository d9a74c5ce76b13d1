package solver

import "github.com/ericr/solstice/lit"

// addClauseToStore appends a clause of length >= 2 to the store and
// registers its two watchers: one on the negation of lits[0], one on the
// negation of lits[1], each with the opposite literal as blocker. Returns
// the new clause's id.
func (s *Solver) addClauseToStore(lits []lit.Lit) ClauseID {
	s.assertInvariant(len(lits) >= 2, "addClauseToStore: clause shorter than two literals")

	id := ClauseID(len(s.clauses))
	s.clauses = append(s.clauses, Clause{Lits: lits})

	s.watch(id, lits[0].Not(), lits[1])
	s.watch(id, lits[1].Not(), lits[0])

	return id
}

// watch registers clause id in the watch list of literal on, with blocker
// as the best-effort hint.
func (s *Solver) watch(id ClauseID, on lit.Lit, blocker lit.Lit) {
	s.watches[on] = append(s.watches[on], Watcher{Clause: id, Blocker: blocker})
}

// recordLearnt appends a newly derived clause to the store, marking it
// reducible by the next reduce pass, and returns its id.
func (s *Solver) recordLearnt(lits []lit.Lit, lbd int) ClauseID {
	id := s.addClauseToStore(lits)
	s.clauses[id].LBD = lbd

	return id
}
