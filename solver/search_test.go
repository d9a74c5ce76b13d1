package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/solstice/config"
	"github.com/ericr/solstice/lit"
)

func modelValue(model []int, v int) bool {
	for _, m := range model {
		if m == v {
			return true
		}
		if m == -v {
			return false
		}
	}
	return false
}

func clauseSatisfied(model []int, clause []int) bool {
	for _, l := range clause {
		v := l
		want := true
		if v < 0 {
			v, want = -v, false
		}
		if modelValue(model, v) == want {
			return true
		}
	}
	return false
}

func solveRaw(t *testing.T, clauses [][]int) (sat bool, model []int) {
	t.Helper()
	s := New(config.New())

	for _, clause := range clauses {
		lits := make([]lit.Lit, len(clause))
		for i, x := range clause {
			lits[i] = lit.NewFromInt(x)
		}
		if len(lits) == 1 {
			if s.AssignUnit(lits[0]) {
				return false, nil
			}
			continue
		}
		s.AddClause(lits)
	}
	if s.PropagateInitial() {
		return false, nil
	}
	sat = s.Solve()
	if sat {
		model = s.Model()
	}
	return sat, model
}

func TestSolveSatisfiesSingleClause(t *testing.T) {
	sat, model := solveRaw(t, [][]int{{1, 2}})

	require.True(t, sat)
	require.True(t, clauseSatisfied(model, []int{1, 2}))
}

func TestSolveFindsModelForHorn(t *testing.T) {
	clauses := [][]int{
		{1},
		{-1, 2},
		{-2, 3},
	}
	sat, model := solveRaw(t, clauses)

	require.True(t, sat)
	for _, c := range clauses {
		require.Truef(t, clauseSatisfied(model, c), "clause %v not satisfied by %v", c, model)
	}
}

func TestSolveDetectsUnsatisfiableFormula(t *testing.T) {
	// (a v b) ^ (-a v b) ^ (a v -b) ^ (-a v -b) has no model over {a, b}.
	clauses := [][]int{
		{1, 2},
		{-1, 2},
		{1, -2},
		{-1, -2},
	}
	sat, _ := solveRaw(t, clauses)

	require.False(t, sat)
}

func TestSolveDetectsUnsatisfiableUnitConflict(t *testing.T) {
	s := New(config.New())
	v := lit.NewFromInt(1)

	require.False(t, s.AssignUnit(v))
	require.True(t, s.AssignUnit(v.Not()))
}

func TestFirePolicyEventPrefersReduceOverRephase(t *testing.T) {
	c := config.New()
	c.ReduceLimitGrowth = 512
	c.RephaseLimitGrowth = 8192
	s := New(c)
	s.sinceReduce = c.ReduceLimitInitial
	s.sinceRephase = c.RephaseLimitInitial

	fired := s.firePolicyEvent()

	require.True(t, fired)
	require.Equal(t, 1, s.reduces)
	require.Equal(t, 0, s.rephases)
	require.Equal(t, 0, s.sinceReduce)
	require.Equal(t, c.ReduceLimitInitial+c.ReduceLimitGrowth, s.reduceLimit)
}

func TestFirePolicyEventGrowingGapAcrossRepeatedFirings(t *testing.T) {
	c := config.New()
	c.ReduceLimitInitial = 10
	c.ReduceLimitGrowth = 5
	s := New(c)

	s.sinceReduce = 10
	require.True(t, s.firePolicyEvent())
	require.Equal(t, 15, s.reduceLimit)
	require.Equal(t, 0, s.sinceReduce)

	// Simulate 14 more conflicts: not enough to reach the grown limit of 15.
	s.sinceReduce = 14
	require.False(t, s.firePolicyEvent())

	s.sinceReduce = 15
	require.True(t, s.firePolicyEvent())
	require.Equal(t, 20, s.reduceLimit)
}

func TestFirePolicyEventRephaseFiresWhenReduceAndRestartDont(t *testing.T) {
	c := config.New()
	s := New(c)
	s.sinceRephase = c.RephaseLimitInitial

	require.True(t, s.firePolicyEvent())
	require.Equal(t, 1, s.rephases)
	require.Equal(t, 0, s.sinceRephase)
}

func TestFirePolicyEventNoopWhenNothingDue(t *testing.T) {
	s := New(config.New())

	require.False(t, s.firePolicyEvent())
	require.Equal(t, 0, s.reduces)
	require.Equal(t, 0, s.restarts)
	require.Equal(t, 0, s.rephases)
}

func TestSolveDetectsPigeonholeUnsat(t *testing.T) {
	// PHP(3, 2): three pigeons, two holes. x_{i,j} = var (i-1)*2+j.
	// x11=1 x12=2 x21=3 x22=4 x31=5 x32=6.
	clauses := [][]int{
		{1, 2},   // pigeon 1 in some hole
		{3, 4},   // pigeon 2 in some hole
		{5, 6},   // pigeon 3 in some hole
		{-1, -3}, // hole 1 holds at most one of {1, 2}
		{-1, -5}, // hole 1 holds at most one of {1, 3}
		{-3, -5}, // hole 1 holds at most one of {2, 3}
		{-2, -4}, // hole 2 holds at most one of {1, 2}
		{-2, -6}, // hole 2 holds at most one of {1, 3}
		{-4, -6}, // hole 2 holds at most one of {2, 3}
	}
	sat, _ := solveRaw(t, clauses)

	require.False(t, sat, "three pigeons can't fit in two holes without sharing one")
}

// random3SAT deterministically generates a 3-SAT instance of the given
// shape: each clause picks 3 distinct variables from 1..nVars uniformly at
// random and negates each independently.
func random3SAT(seed int64, nVars, nClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	clauses := make([][]int, nClauses)

	for i := range clauses {
		vars := make(map[int]bool, 3)
		clause := make([]int, 0, 3)
		for len(clause) < 3 {
			v := rng.Intn(nVars) + 1
			if vars[v] {
				continue
			}
			vars[v] = true
			if rng.Intn(2) == 0 {
				v = -v
			}
			clause = append(clause, v)
		}
		clauses[i] = clause
	}

	return clauses
}

// TestSolveTerminatesAndAgreesWithModelOnRandom3SAT exercises a V=100,
// C=400 (ratio 4.0) random 3-SAT instance. There's no independent
// reference solver available to this test harness, so agreement is
// checked the way the round-trip invariant already does: if the engine
// reports SAT, the returned model must actually satisfy every clause.
func TestSolveTerminatesAndAgreesWithModelOnRandom3SAT(t *testing.T) {
	clauses := random3SAT(42, 100, 400)
	sat, model := solveRaw(t, clauses)

	if sat {
		for _, c := range clauses {
			require.Truef(t, clauseSatisfied(model, c), "clause %v not satisfied by reported model", c)
		}
	}
}

func TestModelCoversEveryVariableExactlyOnce(t *testing.T) {
	clauses := [][]int{
		{1, 2, 3},
		{-1, -2},
		{-2, -3},
	}
	sat, model := solveRaw(t, clauses)

	require.True(t, sat)
	require.Len(t, model, 3)
	for _, c := range clauses {
		require.True(t, clauseSatisfied(model, c))
	}
}
