package solver

import "github.com/ericr/solstice/lit"

// analyze performs First-UIP conflict analysis starting from the clause
// that confl identifies. It returns the learnt clause (asserting literal in
// position 0), the level to backtrack to, and the learnt clause's LBD. unsat
// is true when every literal of the conflicting clause sits at level 0, in
// which case the formula has no satisfying assignment and the other return
// values are meaningless.
func (s *Solver) analyze(confl ClauseID) (learnt []lit.Lit, backtrackLevel int, lbd int, unsat bool) {
	s.curStamp++
	stamp := s.curStamp

	highest := 0
	for _, l := range s.clauses[confl].Lits {
		if lv := s.level[l.Index()]; lv > highest {
			highest = lv
		}
	}
	if highest == 0 {
		return nil, 0, 0, true
	}

	learnt = []lit.Lit{lit.Undef}
	bumped := make([]int, 0, 8)
	counter := 0
	trailIdx := len(s.trail) - 1
	c := confl
	first := true
	var p lit.Lit

	for {
		cl := &s.clauses[c]
		start := 0
		if !first {
			start = 1
		}

		for i := start; i < len(cl.Lits); i++ {
			q := cl.Lits[i]
			v := q.Index()

			if s.stamp[v] == stamp {
				continue
			}
			if s.level[v] == 0 {
				continue
			}

			s.stamp[v] = stamp
			s.bumpVarActivity(v, s.config.ActivityBumpSmall)
			bumped = append(bumped, v)

			if s.level[v] == highest {
				counter++
			} else {
				learnt = append(learnt, q)
			}
		}

		for s.stamp[s.trail[trailIdx].Index()] != stamp || s.level[s.trail[trailIdx].Index()] != highest {
			trailIdx--
		}

		p = s.trail[trailIdx]
		v := p.Index()
		s.stamp[v] = 0
		trailIdx--
		counter--
		if counter == 0 {
			break
		}

		c = s.reason[v]
		first = false
	}

	learnt[0] = p.Not()

	backtrackLevel = 0
	if len(learnt) > 1 {
		maxIdx := 1
		maxLevel := s.level[learnt[1].Index()]
		for i := 2; i < len(learnt); i++ {
			if lv := s.level[learnt[i].Index()]; lv > maxLevel {
				maxLevel = lv
				maxIdx = i
			}
		}
		learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
		backtrackLevel = maxLevel
	}

	for _, v := range bumped {
		if s.level[v] >= backtrackLevel-1 {
			s.bumpVarActivity(v, s.config.ActivityBumpFull)
		}
	}

	lbd = s.computeLBD(learnt)
	s.recordLBD(lbd)

	return learnt, backtrackLevel, lbd, false
}

// computeLBD counts the distinct decision levels above 0 touched by lits,
// using a second, level-indexed timestamp pass so that two literals sharing
// a level (but belonging to different variables) only count once. levelStamp
// is grown lazily to decisionLevel()+1, an upper bound since analyze always
// calls this before backtracking away from the conflict's level.
func (s *Solver) computeLBD(lits []lit.Lit) int {
	if need := s.decisionLevel() + 1; len(s.levelStamp) < need {
		s.levelStamp = append(s.levelStamp, make([]uint64, need-len(s.levelStamp))...)
	}

	s.curStamp++
	stamp := s.curStamp
	lbd := 0
	for _, l := range lits {
		if lv := s.level[l.Index()]; lv > 0 && s.levelStamp[lv] != stamp {
			s.levelStamp[lv] = stamp
			lbd++
		}
	}

	return lbd
}
