package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/solstice/config"
	"github.com/ericr/solstice/lit"
)

func TestAnalyzeProducesUnitLearntFromSingleLevelConflict(t *testing.T) {
	s := New(config.New())
	a := lit.New(s.NewVar(), false)
	b := lit.New(s.NewVar(), false)
	c := lit.New(s.NewVar(), false)

	s.AddClause([]lit.Lit{a.Not(), b})
	s.AddClause([]lit.Lit{a.Not(), c})
	s.AddClause([]lit.Lit{b.Not(), c.Not()})

	s.trailLim = append(s.trailLim, len(s.trail))
	s.assign(a, s.decisionLevel(), NoClause)

	confl := s.propagate()
	require.NotEqual(t, NoClause, confl)

	learnt, bt, lbd, unsat := s.analyze(confl)

	require.False(t, unsat)
	require.Equal(t, 0, bt)
	require.Equal(t, 1, lbd)
	require.Equal(t, []lit.Lit{a.Not()}, learnt)
}

// TestComputeLBDCountsDistinctLevelsNotVariables exercises the case a unit
// learnt clause can't: two literals belonging to different variables but
// sharing a decision level must count as one level, not two. A computation
// keyed by variable rather than level would report 3 here instead of 2.
func TestComputeLBDCountsDistinctLevelsNotVariables(t *testing.T) {
	s := New(config.New())
	a := lit.New(s.NewVar(), false)
	b := lit.New(s.NewVar(), false)
	c := lit.New(s.NewVar(), false)
	s.trailLim = append(s.trailLim, 0, 0)
	s.level[a.Index()] = 1
	s.level[b.Index()] = 1
	s.level[c.Index()] = 2

	lbd := s.computeLBD([]lit.Lit{a, b, c})

	require.Equal(t, 2, lbd)
}

func TestAnalyzeSignalsUnsatOnLevelZeroConflict(t *testing.T) {
	s := New(config.New())
	x := lit.NewFromInt(1)
	y := lit.NewFromInt(2)
	s.AddClause([]lit.Lit{x, y})

	require.False(t, s.AssignUnit(x.Not()))
	require.False(t, s.AssignUnit(y.Not()))

	confl := s.propagate()
	require.NotEqual(t, NoClause, confl)

	_, _, _, unsat := s.analyze(confl)
	require.True(t, unsat)
}

func TestAnalyzeBumpsVisitedVariableActivity(t *testing.T) {
	s := New(config.New())
	a := lit.New(s.NewVar(), false)
	b := lit.New(s.NewVar(), false)
	c := lit.New(s.NewVar(), false)

	s.AddClause([]lit.Lit{a.Not(), b})
	s.AddClause([]lit.Lit{a.Not(), c})
	s.AddClause([]lit.Lit{b.Not(), c.Not()})

	s.trailLim = append(s.trailLim, len(s.trail))
	s.assign(a, s.decisionLevel(), NoClause)
	confl := s.propagate()

	s.analyze(confl)

	require.Greater(t, s.activity[a.Index()], 0.0)
	require.Greater(t, s.activity[b.Index()], 0.0)
	require.Greater(t, s.activity[c.Index()], 0.0)
}
