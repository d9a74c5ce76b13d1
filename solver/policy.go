package solver

// restart clears the fast LBD window, backtracks to level 0, and, with the
// configured probabilities, resets every variable's saved phase from the
// local-best snapshot, its negation, a fresh random phase, or leaves it
// untouched.
func (s *Solver) restart() {
	s.fastLBDSum = 0
	s.fastLBDCount = 0
	s.fastLBDPos = 0

	s.backtrack(0)

	r := s.rng.Float64()
	switch {
	case r < s.config.ProbLocalBest:
		copy(s.savedPhase, s.localBest)
	case r < s.config.ProbLocalBest+s.config.ProbNegatedLocalBest:
		for v, ph := range s.localBest {
			s.savedPhase[v] = -ph
		}
	case r < s.config.ProbLocalBest+s.config.ProbNegatedLocalBest+s.config.ProbRandomPhase:
		for v := range s.savedPhase {
			if s.rng.Intn(2) == 0 {
				s.savedPhase[v] = 1
			} else {
				s.savedPhase[v] = -1
			}
		}
	}

	s.restarts++
}

// reduce backtracks to level 0, detaches any level-0 reason that points at
// a learnt clause (it may be the one about to be deleted), then drops each
// learnt clause whose LBD is at or above the configured threshold with the
// configured probability. Surviving clause ids are remapped, every
// variable's reason is fixed up to match, and the watch lists are rebuilt
// from scratch against the new id space.
func (s *Solver) reduce() {
	s.sinceReduce = 0
	s.backtrack(0)

	for v := range s.reason {
		if r := s.reason[v]; r != NoClause && int(r) >= s.originalCount {
			s.reason[v] = NoClause
		}
	}

	kept := make([]Clause, s.originalCount, len(s.clauses))
	copy(kept, s.clauses[:s.originalCount])

	remap := make([]ClauseID, len(s.clauses))
	for i := 0; i < s.originalCount; i++ {
		remap[i] = ClauseID(i)
	}

	for i := s.originalCount; i < len(s.clauses); i++ {
		c := s.clauses[i]
		if c.LBD >= s.config.ReduceLBDThreshold && s.rng.Float64() < s.config.ReduceProbability {
			remap[i] = NoClause
			continue
		}
		remap[i] = ClauseID(len(kept))
		kept = append(kept, c)
	}
	s.clauses = kept

	for v := range s.reason {
		if r := s.reason[v]; r != NoClause {
			s.reason[v] = remap[r]
		}
	}

	for l := range s.watches {
		s.watches[l] = s.watches[l][:0]
	}
	for id := range s.clauses {
		c := &s.clauses[id]
		s.watch(ClauseID(id), c.Lits[0].Not(), c.Lits[1])
		s.watch(ClauseID(id), c.Lits[1].Not(), c.Lits[0])
	}

	s.reduces++
	s.reduceLimit += s.config.ReduceLimitGrowth
}

// rephase tightens the local-best threshold, making a new local-best
// snapshot easier to trigger as the search's trail grows.
func (s *Solver) rephase() {
	s.sinceRephase = 0
	s.threshold = int(float64(s.threshold) * s.config.RephaseThresholdDecay)
	s.rephaseLimit += s.config.RephaseLimitGrowth
	s.rephases++
}
