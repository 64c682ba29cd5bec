package core

// A boundList holds the lower and upper Bounds currently recorded for a
// single variable.
type boundList struct {
	lowers []Bound
	uppers []Bound
}

// solvedEntry is one entry of the triangular substitution: x = T, derived
// under provenance Prov.
type solvedEntry struct {
	Prov Provenance
	T    Term
}

// kicked is a bound that was removed from the inert store by a newly
// installed definition (see Inert.AddDefinition) and must be re-queued
// as an inequality.
type kicked struct {
	Prov Provenance
	Prop Proposition
}

// Inert is the inert store: a triangular substitution (solved) plus,
// per variable, ordered lower/upper bound lists. Triangularity,
// zero-freedom of coefficients, positive bound scale, and monotone
// provenance are maintained by construction: AddDefinition is the only
// way to grow solved, and it kicks out any bound that would otherwise
// violate triangularity.
type Inert struct {
	bounds map[Name]*boundList
	solved map[Name]solvedEntry
}

func newInert() *Inert {
	return &Inert{bounds: map[Name]*boundList{}, solved: map[Name]solvedEntry{}}
}

// ApplySubst rewrites t by every (x -> s) in solved, accumulating
// provenance along the way (iApSubst). Because solved is idempotent and
// triangular by construction, a single left-to-right pass suffices; this
// iterates to a fixpoint anyway, favoring robustness over raw speed.
func (in *Inert) ApplySubst(prov Provenance, t Term) (Provenance, Term) {
	for {
		changed := false
		for _, x := range t.Names() {
			if se, ok := in.solved[x]; ok {
				t = t.SubstTerm(x, se.T)
				prov = prov.Union(se.Prov)
				changed = true
				break
			}
		}
		if !changed {
			return prov, t
		}
	}
}

// AddDefinition installs x := t under provenance prov (precondition: t
// has already been rewritten by the current substitution). It performs
// four steps:
//
//  1. any bound already recorded on x is removed and kicked out;
//  2. any bound on another variable whose term mentions x is removed
//     and kicked out (this is what preserves triangularity in the
//     presence of equalities discovered out of order);
//  3. every existing solved[y] is rewritten by substituting x <- t;
//  4. (x, (prov, t)) is inserted into solved.
//
// The kicked-out inequalities are returned for re-insertion into the
// caller's work queue.
func (in *Inert) AddDefinition(prov Provenance, x Name, t Term) []kicked {
	var out []kicked

	if bl, ok := in.bounds[x]; ok {
		for _, b := range bl.lowers {
			out = append(out, kicked{Prov: b.Prov, Prop: b.Proposition(x, Lower)})
		}
		for _, b := range bl.uppers {
			out = append(out, kicked{Prov: b.Prov, Prop: b.Proposition(x, Upper)})
		}
		delete(in.bounds, x)
	}

	for y, bl := range in.bounds {
		var keptLowers []Bound
		for _, b := range bl.lowers {
			if b.T.Coeff(x).Sign() != 0 {
				out = append(out, kicked{Prov: b.Prov, Prop: b.Proposition(y, Lower)})
			} else {
				keptLowers = append(keptLowers, b)
			}
		}
		var keptUppers []Bound
		for _, b := range bl.uppers {
			if b.T.Coeff(x).Sign() != 0 {
				out = append(out, kicked{Prov: b.Prov, Prop: b.Proposition(y, Upper)})
			} else {
				keptUppers = append(keptUppers, b)
			}
		}
		bl.lowers, bl.uppers = keptLowers, keptUppers
		if len(bl.lowers) == 0 && len(bl.uppers) == 0 {
			delete(in.bounds, y)
		}
	}

	for y, se := range in.solved {
		if se.T.Coeff(x).Sign() != 0 {
			in.solved[y] = solvedEntry{Prov: prov.Union(se.Prov), T: se.T.SubstTerm(x, t)}
		}
	}

	in.solved[x] = solvedEntry{Prov: prov, T: t}

	return out
}

// AddBound records b on the given side of x.
func (in *Inert) AddBound(x Name, side Side, b Bound) {
	bl, ok := in.bounds[x]
	if !ok {
		bl = &boundList{}
		in.bounds[x] = bl
	}
	if side == Lower {
		bl.lowers = append(bl.lowers, b)
	} else {
		bl.uppers = append(bl.uppers, b)
	}
}

// Bounds returns a copy of the Bounds currently recorded for x on the
// given side.
func (in *Inert) Bounds(x Name, side Side) []Bound {
	bl, ok := in.bounds[x]
	if !ok {
		return nil
	}
	src := bl.lowers
	if side == Upper {
		src = bl.uppers
	}
	cp := make([]Bound, len(src))
	copy(cp, src)
	return cp
}

// BoundedNames returns, in ascending Name order, every variable that
// currently carries at least one bound.
func (in *Inert) BoundedNames() []Name {
	names := make([]Name, 0, len(in.bounds))
	for x := range in.bounds {
		names = append(names, x)
	}
	sortNames(names)
	return names
}

// Clone returns a deep-enough copy of in for speculative branch
// exploration: bound lists and the solved map are copied so mutating the
// clone never affects in, while Terms and Bound.C themselves are shared,
// since they are never mutated in place once built (see Term's
// immutability contract).
func (in *Inert) Clone() *Inert {
	c := newInert()
	for x, bl := range in.bounds {
		c.bounds[x] = &boundList{
			lowers: append([]Bound(nil), bl.lowers...),
			uppers: append([]Bound(nil), bl.uppers...),
		}
	}
	for x, se := range in.solved {
		c.solved[x] = se
	}
	return c
}
