package solver

import "github.com/ericr/solstice/lit"

// ClauseID identifies a clause in the clause store by its index. IDs below
// a solver's original-clause count are permanent; higher ids are learnt and
// may be deleted by a reduce pass. IDs are not stable across a reduce call.
type ClauseID int

// NoClause is the antecedent sentinel ⊥: either a decision, or a literal
// that has never been assigned.
const NoClause = ClauseID(-1)

// Clause is an ordered sequence of literals plus its LBD (Literal Block
// Distance) score. Lits[0] and Lits[1] are the clause's current watched
// positions; the order of the rest is unconstrained and may be permuted by
// propagation when a new watch is picked.
type Clause struct {
	Lits []lit.Lit
	LBD  int
}

// Watcher is an entry in a literal's watch list: Clause is watched by the
// negation of one of its first two literals, and Blocker is a best-effort
// hint literal from the same clause — if Blocker is currently true the
// clause is already satisfied and the clause body doesn't need touching.
type Watcher struct {
	Clause  ClauseID
	Blocker lit.Lit
}
