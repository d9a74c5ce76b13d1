package solver

// propagate advances s.propagated until the pending trail suffix is empty
// (returning NoClause) or a clause is falsified (returning that clause's
// id). It implements the two-watched-literal BCP loop: for each newly true
// literal p, p's watch list (the clauses watching -p) is walked, clauses are normalized so the
// known-false literal sits at position 1, and either a blocker/true watch
// short-circuits the check, a replacement watch is found among positions
// 2.., a conflict is detected, or the clause propagates its other watch.
func (s *Solver) propagate() ClauseID {
	for s.propagated < len(s.trail) {
		p := s.trail[s.propagated]
		s.propagated++
		s.propagations++

		ws := s.watches[p]
		keep := ws[:0]

		for i := 0; i < len(ws); i++ {
			w := ws[i]

			if s.litValue(w.Blocker).True() {
				keep = append(keep, w)
				continue
			}

			c := &s.clauses[w.Clause]
			if c.Lits[0] == p.Not() {
				c.Lits[0], c.Lits[1] = c.Lits[1], c.Lits[0]
			}
			if s.litValue(c.Lits[0]).True() {
				keep = append(keep, Watcher{Clause: w.Clause, Blocker: c.Lits[0]})
				continue
			}

			replaced := false
			for k := 2; k < len(c.Lits); k++ {
				if !s.litValue(c.Lits[k]).False() {
					c.Lits[1], c.Lits[k] = c.Lits[k], c.Lits[1]
					s.watch(w.Clause, c.Lits[1].Not(), c.Lits[0])
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			if s.litValue(c.Lits[0]).False() {
				keep = append(keep, ws[i:]...)
				s.watches[p] = keep

				return w.Clause
			}

			s.assign(c.Lits[0], s.level[p.Index()], w.Clause)
			keep = append(keep, w)
		}
		s.watches[p] = keep
	}
	return NoClause
}
