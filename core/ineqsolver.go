package core

import "math/big"

// solveIsNeg reduces the atom t < 0 (precondition: t has already been
// rewritten by the current substitution). It discharges/fails on a
// constant, factors out a common divisor, or eliminates the least
// variable by installing a new bound and pairing it against every
// opposing existing bound to emit a real shadow (pushed onto wq, solved
// immediately), a dark shadow and a gray-shadow enumeration (appended to
// deferred as one Disjunction).
//
// It returns (prov, true) on contradiction, (_, false) otherwise.
func solveIsNeg(st *State, wq *workQueue, deferred *[]Disjunction, prov Provenance, t Term) (Provenance, bool) {
	// Case 1: constant.
	if a, isConst := t.IsConst(); isConst {
		if a.Sign() < 0 {
			return Provenance{}, false
		}
		return prov, true
	}

	// Case 2: common factor d > 1 (sign is preserved, d > 0).
	if _, tq, ok := t.Factor(); ok {
		return solveIsNeg(st, wq, deferred, prov, tq)
	}

	// Case 3: eliminate the least variable.
	x, ok := t.LeastVar()
	if !ok {
		panic("solveIsNeg: non-constant term with no variables")
	}
	xc, s := t.Split(x)

	if xc.Sign() < 0 {
		// t = xc·x + s = -A·x + s < 0  <=>  s < A·x : a new lower bound.
		A := new(big.Int).Neg(xc)
		newBound := Bound{Prov: prov, C: A, T: s}
		for _, ub := range st.inert.Bounds(x, Upper) {
			genShadows(st, wq, deferred, x, newBound, ub)
		}
		st.inert.AddBound(x, Lower, newBound)
	} else {
		// t = xc·x + s = A·x + s < 0  <=>  A·x < -s : a new upper bound.
		A := new(big.Int).Set(xc)
		newBound := Bound{Prov: prov, C: A, T: s.Neg()}
		for _, lb := range st.inert.Bounds(x, Lower) {
			genShadows(st, wq, deferred, x, lb, newBound)
		}
		st.inert.AddBound(x, Upper, newBound)
	}
	return Provenance{}, false
}

// genShadows generates, for the lower/upper Bound pair (beta < b·x) and
// (a·x < alpha) on variable x, the real shadow (pushed onto wq for
// immediate resolution) and the dark/gray shadow Disjunction (appended
// to deferred).
func genShadows(st *State, wq *workQueue, deferred *[]Disjunction, x Name, lower, upper Bound) {
	b, beta := lower.C, lower.T
	a, alpha := upper.C, upper.T
	prov := lower.Prov.Union(upper.Prov)

	// Real shadow: a·beta < b·alpha  <=>  a·beta - b·alpha < 0.
	realTerm := beta.Scale(a).Sub(alpha.Scale(b))
	wq.push(prov, PLt0(realTerm))
	st.stats.NbRealShadows++

	// Dark shadow: a·b < b·alpha - a·beta  <=>  a·b - b·alpha + a·beta < 0.
	darkTerm := TConstBig(new(big.Int).Mul(a, b)).Sub(alpha.Scale(b)).Add(beta.Scale(a))
	alts := [][]SubGoal{{{Prov: prov, Prop: PLt0(darkTerm)}}}

	// Gray shadow cases i = 1 .. b-1: b·x = beta + i.
	bMinus1 := new(big.Int).Sub(b, bigOne)
	for i := new(big.Int).Set(bigOne); i.Cmp(bMinus1) <= 0; i.Add(i, bigOne) {
		grayTerm := TVar(x).Scale(b).Sub(beta).Sub(TConstBig(i))
		alts = append(alts, []SubGoal{{Prov: prov, Prop: PEq0(grayTerm)}})
	}

	*deferred = append(*deferred, Disjunction{Alternatives: alts})
	st.stats.NbDeferred++
}
