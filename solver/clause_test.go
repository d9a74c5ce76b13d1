package solver

import (
	"testing"

	"github.com/ericr/solstice/config"
	"github.com/ericr/solstice/lit"
)

func TestAddClauseToStoreRegistersBothWatches(t *testing.T) {
	s := New(config.New())
	a := lit.New(s.NewVar(), false)
	b := lit.New(s.NewVar(), false)

	id := s.addClauseToStore([]lit.Lit{a, b})

	if id != 0 {
		t.Fatalf("addClauseToStore() id = %d, want 0", id)
	}
	if len(s.watches[a.Not()]) != 1 || s.watches[a.Not()][0].Clause != id {
		t.Fatalf("clause not watched on Not(a)")
	}
	if len(s.watches[b.Not()]) != 1 || s.watches[b.Not()][0].Clause != id {
		t.Fatalf("clause not watched on Not(b)")
	}
	if s.watches[a.Not()][0].Blocker != b {
		t.Fatalf("blocker on Not(a) watch = %v, want %v", s.watches[a.Not()][0].Blocker, b)
	}
}

func TestAddClauseRejectsNothingButGrowsVars(t *testing.T) {
	s := New(config.New())

	id := s.AddClause([]lit.Lit{lit.NewFromInt(1), lit.NewFromInt(-2)})

	if s.NVars() != 2 {
		t.Fatalf("NVars() = %d, want 2", s.NVars())
	}
	if s.NConstraints() != 1 {
		t.Fatalf("NConstraints() = %d, want 1", s.NConstraints())
	}
	if id != 0 {
		t.Fatalf("AddClause() id = %d, want 0", id)
	}
}

func TestRecordLearntMarksClauseReducible(t *testing.T) {
	s := New(config.New())
	a := lit.New(s.NewVar(), false)
	b := lit.New(s.NewVar(), true)
	s.AddClause([]lit.Lit{a, b})

	id := s.recordLearnt([]lit.Lit{a.Not(), b.Not()}, 2)

	if id != 1 {
		t.Fatalf("recordLearnt() id = %d, want 1", id)
	}
	if s.NLearnts() != 1 {
		t.Fatalf("NLearnts() = %d, want 1", s.NLearnts())
	}
	if s.clauses[id].LBD != 2 {
		t.Fatalf("learnt clause LBD = %d, want 2", s.clauses[id].LBD)
	}
}

func TestClauseStringRendersDimacsLiterals(t *testing.T) {
	c := &Clause{Lits: []lit.Lit{lit.NewFromInt(1), lit.NewFromInt(-2)}}

	if got, want := c.String(), "1 -2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
