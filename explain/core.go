// Package explain extracts a minimal unsatisfiable subset of the
// assertions fed to core.State, adapting clause-level MUS extraction to
// this solver's proposition-level provenance.
package explain

import (
	"fmt"

	"github.com/omegacore/presburger/core"
)

// Assertion pairs a UserLiteral with the Proposition it was asserted
// under; Shrink operates over slices of these.
type Assertion struct {
	Lit  core.UserLiteral
	Prop core.Proposition
}

// replay asserts every assertion, in order, against a fresh State, and
// reports whether a contradiction was reached.
func replay(assertions []Assertion) bool {
	st := core.EmptyState()
	for _, a := range assertions {
		if st.AssertProp(a.Lit, a.Prop).Status == core.Contradiction {
			return true
		}
	}
	return false
}

// Shrink returns a minimal unsatisfiable subset of assertions: removing
// any further element makes the remainder satisfiable. It requires
// assertions itself to be unsatisfiable. Unsatisfiable here means that
// replaying the set makes AssertProp report Contradiction; Disjunctions
// deferred along the way are not explored, so a set that is refuted
// only after case splitting is treated as satisfiable.
//
// One replay checks the whole set, then exactly len(assertions) more
// are performed, one per candidate removal, each restarting core.State from scratch rather than reusing
// incremental solver state: this solver's Non-goals exclude undo, so
// there is no cheaper alternative than a fresh replay per candidate.
func Shrink(assertions []Assertion) ([]Assertion, error) {
	if !replay(assertions) {
		return nil, fmt.Errorf("explain: cannot extract unsat core from a satisfiable assertion set")
	}

	kept := append([]Assertion(nil), assertions...)
	for i := 0; i < len(kept); {
		candidate := append(append([]Assertion(nil), kept[:i]...), kept[i+1:]...)
		if replay(candidate) {
			kept = candidate
			continue
		}
		i++
	}
	return kept, nil
}

// ShrinkResult packages Shrink's minimal subset together with the
// Provenance a direct replay of that subset reports for its final
// contradiction, letting callers cross-check the two independently
// derived notions of "why" a problem is unsatisfiable.
type ShrinkResult struct {
	Core []Assertion
	Prov core.Provenance
}

// ShrinkWithProvenance runs Shrink and additionally records the
// Provenance of the contradiction produced by replaying the resulting
// core. The two should always agree in which literals they mention,
// though Provenance is only a sound over-approximation in general while
// Core is exact by construction.
func ShrinkWithProvenance(assertions []Assertion) (ShrinkResult, error) {
	minimal, err := Shrink(assertions)
	if err != nil {
		return ShrinkResult{}, err
	}
	st := core.EmptyState()
	var prov core.Provenance
	for _, a := range minimal {
		res := st.AssertProp(a.Lit, a.Prop)
		if res.Status == core.Contradiction {
			prov = res.Prov
			break
		}
	}
	return ShrinkResult{Core: minimal, Prov: prov}, nil
}
