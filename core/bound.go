package core

import "math/big"

// Side selects which side of a variable a Bound constrains.
type Side bool

const (
	// Lower means the Bound's term t and coefficient c encode t < c·x.
	Lower Side = false
	// Upper means the Bound's term t and coefficient c encode c·x < t.
	Upper Side = true
)

func (s Side) String() string {
	if s == Lower {
		return "lower"
	}
	return "upper"
}

// A Bound is a recorded inequality attached to a variable x and a Side,
// with c strictly positive: Lower means t < c·x, Upper means c·x < t.
type Bound struct {
	Prov Provenance
	C    *big.Int
	T    Term
}

// Proposition reconstructs the atomic inequality this Bound encodes for
// variable x and side: used to re-queue a bound that was kicked out of
// the inert store by a newly installed definition.
func (b Bound) Proposition(x Name, side Side) Proposition {
	if side == Lower {
		// t < c·x  <=>  t - c·x < 0
		return PLt0(b.T.Sub(TVar(x).Scale(b.C)))
	}
	// c·x < t  <=>  c·x - t < 0
	return PLt0(TVar(x).Scale(b.C).Sub(b.T))
}
