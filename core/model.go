package core

import (
	"errors"
	"math/big"
)

// Assignment is a total integer binding for every user variable, keyed
// by the integer underlying its Name. System names never appear.
type Assignment map[int64]*big.Int

// ErrDeferredPending is returned by GetModel when the most recent
// Quiescent assertion on st returned deferred disjunctions: the model
// would only be valid for the current branch, not for the whole
// problem, so this implementation refuses the call rather than return a
// partial or otherwise implementation-defined model. Disjunctions
// returned by earlier assertions are not tracked.
var ErrDeferredPending = errors.New("presburger: getModel called with deferred disjunctions pending")

// GetModel extracts a satisfying integer Assignment from a quiescent
// State with no pending deferred disjunctions. Variables are processed
// largest Name to smallest: each bound variable is assigned the
// tightest integer consistent with its already-assigned lower/upper
// bounds, then solved variables are back-substituted in any order (their
// terms mention only bounded-or-free variables), with any remaining free
// variable defaulting to 0.
func GetModel(st *State) (Assignment, error) {
	if st.pendingDisjunctions {
		return nil, ErrDeferredPending
	}

	assigned := map[Name]*big.Int{}

	bounded := st.inert.BoundedNames() // ascending
	for i, j := 0, len(bounded)-1; i < j; i, j = i+1, j-1 {
		bounded[i], bounded[j] = bounded[j], bounded[i]
	}

	for _, x := range bounded {
		lowers := st.inert.Bounds(x, Lower)
		uppers := st.inert.Bounds(x, Upper)
		var val *big.Int
		switch {
		case len(lowers) > 0:
			for _, b := range lowers {
				c := evalConst(b.T, assigned)
				cand := new(big.Int).Add(floorDiv(c, b.C), bigOne)
				if val == nil || cand.Cmp(val) > 0 {
					val = cand
				}
			}
		case len(uppers) > 0:
			for _, b := range uppers {
				c := evalConst(b.T, assigned)
				cMinus1 := new(big.Int).Sub(c, bigOne)
				cand := floorDiv(cMinus1, b.C)
				if val == nil || cand.Cmp(val) < 0 {
					val = cand
				}
			}
		default:
			val = big.NewInt(0)
		}
		assigned[x] = val
	}

	for x, se := range st.inert.solved {
		assigned[x] = evalConst(se.T, assigned)
	}

	out := Assignment{}
	for x, v := range assigned {
		if i, ok := FromName(x); ok {
			out[i] = v
		}
	}
	return out, nil
}

// evalConst evaluates t under the given partial assignment. Any
// variable of t absent from assigned is treated as free and taken to be
// 0.
func evalConst(t Term, assigned map[Name]*big.Int) *big.Int {
	val := new(big.Int).Set(t.constOrZero())
	for _, x := range t.Names() {
		a, ok := assigned[x]
		if !ok {
			continue // free variable, contributes 0
		}
		val.Add(val, new(big.Int).Mul(t.Coeff(x), a))
	}
	return val
}
