package branch

import (
	"fmt"

	"github.com/omegacore/presburger/core"
)

// ErrBudgetExhausted is returned by Explore when it runs out of its node
// budget before trying every alternative of some disjunction.
var ErrBudgetExhausted = fmt.Errorf("branch: node budget exhausted before a model was found")

// ErrUnsatisfiable is returned by Explore when every alternative of
// every disjunction it tried led to a contradiction: the asserted
// problem genuinely has no model, not merely one Explore failed to find
// within budget.
var ErrUnsatisfiable = fmt.Errorf("branch: every alternative led to a contradiction")

// Explore performs a depth-first search over st's pending disjunctions
// (as returned by a prior core.State.AssertProp call), trying each
// Alternative of each Disjunction in order on a Snapshot of st, and
// recursing into whatever further Disjunctions that choice produces.
// It returns the first State it finds that is fully quiescent (no
// disjunction left unresolved), ErrUnsatisfiable if every alternative
// was tried and all contradicted, or ErrBudgetExhausted if the node
// budget ran out before every alternative could be tried.
//
// budget is spent one unit per SubGoal asserted. Each recursive call
// receives what is left of its caller's budget after the caller's own
// assertions so far; assertions made inside a recursive call are not
// charged back to the caller, so the total over the whole search can
// exceed budget. It guards against the combinatorial blowup that is this
// driver's whole reason for being external to the core package: gray
// shadow counts can be large, and an exhaustive search is not this
// module's job to optimize.
func Explore(st *core.State, pending []core.Disjunction, budget int) (*core.State, error) {
	if len(pending) == 0 {
		return st, nil
	}
	if budget <= 0 {
		return nil, ErrBudgetExhausted
	}

	head, rest := pending[0], pending[1:]
	tried := 0
	exhausted := true
	for _, alt := range head.Alternatives {
		if budget-tried <= 0 {
			exhausted = false
			break
		}
		candidate := st.Snapshot()
		contradicted := false
		var more []core.Disjunction
		for _, sg := range alt {
			res := candidate.AssertWithProvenance(sg.Prov, sg.Prop)
			tried++
			if res.Status == core.Contradiction {
				contradicted = true
				break
			}
			more = append(more, res.Disjunctions...)
		}
		if contradicted {
			continue
		}
		solved, err := Explore(candidate, append(more, rest...), budget-tried)
		if err == nil {
			return solved, nil
		}
		if err == ErrBudgetExhausted {
			exhausted = false
		}
	}
	if exhausted {
		return nil, ErrUnsatisfiable
	}
	return nil, ErrBudgetExhausted
}
