package core

import "math/big"

// solveIs0 reduces the atom t = 0 (precondition: t has already been
// rewritten by the current substitution), installing new definitions
// into st's inert store (one, except in the modulus-trick case, which
// installs one per round and recurses) and pushing any inequalities
// those definitions kick out onto wq. It works through five cases, falling
// back on the general Omega modulus trick only once the cheaper ones
// (constant, single variable, unit coefficient, common factor) are
// ruled out.
//
// It returns (prov, true) if the atom is a contradiction (prov is the
// provenance to blame), or (_, false) if it was discharged or reduced to
// a definition.
func solveIs0(st *State, wq *workQueue, prov Provenance, t Term) (Provenance, bool) {
	// Case 1: constant.
	if k, isConst := t.IsConst(); isConst {
		if k.Sign() == 0 {
			return Provenance{}, false
		}
		return prov, true
	}

	// Case 2: exactly one variable, a + b·x = 0.
	if a, b, x, ok := t.IsOneVar(); ok {
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		if r.Sign() != 0 {
			return prov, true
		}
		val := new(big.Int).Neg(q)
		installDefinition(st, wq, prov, x, TConstBig(val))
		return Provenance{}, false
	}

	// Case 3: some variable has coefficient ±1: ±x + s = 0.
	if coeff, x, rest, ok := t.SimpleCoeff(); ok {
		var def Term
		if coeff.Sign() > 0 {
			def = rest.Neg()
		} else {
			def = rest
		}
		installDefinition(st, wq, prov, x, def)
		return Provenance{}, false
	}

	// Case 4: common factor d > 1.
	if _, tq, ok := t.Factor(); ok {
		return solveIs0(st, wq, prov, tq)
	}

	// Case 5: general case, the Omega modulus trick.
	ak, xk, rest, ok := t.LeastAbsCoeff()
	if !ok {
		// Unreachable if invariants hold: t is not constant (case 1
		// failed) yet has no variable.
		panic("solveIs0: non-constant term with no variables")
	}
	absAk := new(big.Int).Abs(ak)
	m := new(big.Int).Add(absAk, bigOne)
	sigma := big.NewInt(int64(ak.Sign()))

	v := st.freshName()

	def := TVar(v).Scale(new(big.Int).Mul(new(big.Int).Neg(sigma), m))
	c0 := rest.constOrZero()
	def = def.Add(TConstBig(new(big.Int).Mul(sigma, modStar(c0, m))))
	for _, y := range rest.Names() {
		cy := rest.Coeff(y)
		def = def.Add(TVar(y).Scale(new(big.Int).Mul(sigma, modStar(cy, m))))
	}
	installDefinition(st, wq, prov, xk, def)

	newEq := TConstBig(upd(c0, m))
	for _, y := range rest.Names() {
		newEq = newEq.Add(TVar(y).Scale(upd(rest.Coeff(y), m)))
	}
	newEq = newEq.Add(TVar(v).Scale(new(big.Int).Neg(absAk)))

	return solveIs0(st, wq, prov, newEq)
}

// upd(i) = floor((2i+m)/(2m)) + modStar(i, m), the coefficient-update
// formula of the Omega modulus trick.
func upd(i, m *big.Int) *big.Int {
	twoI := new(big.Int).Lsh(i, 1)
	twoM := new(big.Int).Lsh(m, 1)
	q := floorDiv(new(big.Int).Add(twoI, m), twoM)
	return new(big.Int).Add(q, modStar(i, m))
}

// installDefinition installs x := t into st's inert store under prov and
// pushes every kicked-out inequality onto wq.
func installDefinition(st *State, wq *workQueue, prov Provenance, x Name, t Term) {
	st.stats.NbDefinitions++
	for _, ko := range st.inert.AddDefinition(prov, x, t) {
		wq.push(ko.Prov, ko.Prop)
	}
}
