// Package solver implements a CDCL (Conflict-Driven Clause Learning) SAT
// engine: two-watched-literal Boolean constraint propagation, First-UIP
// conflict analysis, VSIDS branching with phase saving, and glucose-style
// LBD-based restart/reduce/rephase policies.
package solver

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/ericr/solstice/config"
	"github.com/ericr/solstice/heap"
	"github.com/ericr/solstice/lit"
	"github.com/ericr/solstice/tribool"
)

// Solver is the SAT engine. A Solver instance owns all of its state; many
// solvers may coexist without interacting.
type Solver struct {
	config *config.Config
	rng    *rand.Rand

	// Constraint database.
	clauses       []Clause
	originalCount int
	watches       [][]Watcher // indexed by int(lit.Lit)

	// Assignment state, indexed by 0-based variable id.
	assigns    []tribool.Tribool
	level      []int
	reason     []ClauseID
	activity   []float64
	savedPhase []int8 // +1, -1, or 0 (never assigned)
	localBest  []int8
	stamp      []uint64

	// levelStamp is analyze's second timestamp pass, keyed by decision
	// level rather than variable, used to count an LBD's distinct levels.
	// Grown lazily to the highest level seen; index 0 is never read (every
	// LBD pass skips level 0).
	levelStamp []uint64

	// Trail.
	trail      []lit.Lit
	trailLim   []int
	propagated int

	// Branching.
	heap   *heap.Heap
	varInc float64

	// Glucose-style LBD tracking.
	fastLBD      []int
	fastLBDPos   int
	fastLBDCount int
	fastLBDSum   int
	slowLBDSum   int

	threshold int

	reduceLimit  int
	rephaseLimit int

	// sinceReduce and sinceRephase count conflicts since the last firing of
	// the corresponding event; each resets to 0 inside its own handler.
	sinceReduce  int
	sinceRephase int

	curStamp uint64

	// Stats.
	conflicts    int
	restarts     int
	reduces      int
	rephases     int
	decisions    int
	propagations int

	model []bool
}

// New returns a new, empty solver.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:       c,
		rng:          rand.New(rand.NewSource(c.Seed)),
		clauses:      []Clause{},
		watches:      [][]Watcher{},
		assigns:      []tribool.Tribool{},
		level:        []int{},
		reason:       []ClauseID{},
		activity:     []float64{},
		savedPhase:   []int8{},
		localBest:    []int8{},
		stamp:        []uint64{},
		trail:        []lit.Lit{},
		trailLim:     []int{},
		varInc:       1.0,
		fastLBD:      make([]int, c.FastLBDWindowSize),
		reduceLimit:  c.ReduceLimitInitial,
		rephaseLimit: c.RephaseLimitInitial,
	}
	s.heap = heap.New(&s.activity)

	return s
}

// NVars returns the number of variables registered with the solver.
func (s *Solver) NVars() int {
	return len(s.assigns)
}

// NConstraints returns the number of original (permanent) clauses.
func (s *Solver) NConstraints() int {
	return s.originalCount
}

// NLearnts returns the number of learnt clauses currently in the store.
func (s *Solver) NLearnts() int {
	return len(s.clauses) - s.originalCount
}

// NConflicts reports the number of conflicts encountered so far.
func (s *Solver) NConflicts() int { return s.conflicts }

// NPropagations reports the number of literals propagated so far.
func (s *Solver) NPropagations() int { return s.propagations }

// NRestarts reports the number of restarts performed so far.
func (s *Solver) NRestarts() int { return s.restarts }

// NReduces reports the number of clause database reductions performed.
func (s *Solver) NReduces() int { return s.reduces }

// NRephases reports the number of rephase events fired.
func (s *Solver) NRephases() int { return s.rephases }

// NDecisions reports the number of branching decisions made.
func (s *Solver) NDecisions() int { return s.decisions }

// NewVar allocates a new 0-based variable and registers it with every
// per-variable array and the activity heap. Returns the variable's 0-based
// id.
func (s *Solver) NewVar() int {
	v := len(s.assigns)

	s.assigns = append(s.assigns, tribool.Undef)
	s.level = append(s.level, 0)
	s.reason = append(s.reason, NoClause)
	s.activity = append(s.activity, 0)
	s.savedPhase = append(s.savedPhase, 0)
	s.localBest = append(s.localBest, 0)
	s.stamp = append(s.stamp, 0)
	s.watches = append(s.watches, nil, nil) // one slot per literal sign
	s.heap.NewVar()
	s.heap.Insert(v)

	return v
}

// ensureVar grows the variable arrays until variable v is registered.
func (s *Solver) ensureVar(v int) {
	for s.NVars() <= v {
		s.NewVar()
	}
}

// assertInvariant panics with msg if cond is false and the solver's
// assertions are enabled; a no-op otherwise, matching the spec's
// "undefined behavior in release" posture for programming errors.
func (s *Solver) assertInvariant(cond bool, msg string) {
	if s.config.Assertions && !cond {
		panic(msg)
	}
}

// litValue returns p's current truth value.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Index()].Not()
	}
	return s.assigns[p.Index()]
}

// AddClause registers a clause of length >= 2 as a permanent, original
// constraint and returns its id. Per the two-watched-literal scheme,
// AddClause assumes a clause that actually needs two watches; unit and
// empty clauses are the parser's responsibility (see AssignUnit).
func (s *Solver) AddClause(lits []lit.Lit) ClauseID {
	for _, l := range lits {
		s.ensureVar(l.Index())
	}
	id := s.addClauseToStore(lits)
	s.originalCount = len(s.clauses)

	return id
}

// AssignUnit asserts l as a level-0 fact (a unit clause from the parser).
// Returns true if this contradicts an existing level-0 assignment
// (immediate UNSAT), false otherwise — including when l was already true.
func (s *Solver) AssignUnit(l lit.Lit) (conflict bool) {
	s.ensureVar(l.Index())

	switch s.litValue(l) {
	case tribool.True:
		return false
	case tribool.False:
		return true
	default:
		s.assign(l, 0, NoClause)
		return false
	}
}

// PropagateInitial runs one BCP pass over the level-0 trail, as required
// once parsing completes: a conflict here means the formula is
// unsatisfiable without any search.
func (s *Solver) PropagateInitial() (conflict bool) {
	return s.propagate() != NoClause
}

// Model returns the most recently discovered satisfying assignment as
// DIMACS-style signed integers (1-based, positive if true), sorted by
// variable. Only meaningful after Solve has returned true.
func (s *Solver) Model() []int {
	out := make([]int, 0, len(s.model))
	for v, val := range s.model {
		if val {
			out = append(out, v+1)
		} else {
			out = append(out, -(v + 1))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a < 0 {
			a = -a
		}
		if b < 0 {
			b = -b
		}
		return a < b
	})

	return out
}

// String renders a clause for diagnostics and log lines.
func (c *Clause) String() string {
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = fmt.Sprintf("%d", l.Int())
	}
	return strings.Join(parts, " ")
}
