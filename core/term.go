package core

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Term is an immutable linear expression k + Σ coeffs[x]·x over integer-
// valued Names, with integer constant k and integer coefficients.
// coeffs never maps a Name to a zero value. Two Terms are equal iff
// their constants and coefficient maps coincide.
//
// Coefficients use math/big rather than a fixed-width int: the Omega
// modulus trick (solveIs0 case 5) can compound coefficient growth across
// a long assertion sequence, and this module would rather pay the cost
// of arbitrary precision than silently overflow a proof-producing
// decision procedure.
type Term struct {
	k      *big.Int
	coeffs map[Name]*big.Int
}

var bigZero = big.NewInt(0)
var bigOne = big.NewInt(1)

// TConst returns the constant Term k.
func TConst(k int64) Term {
	return Term{k: big.NewInt(k)}
}

// TConstBig returns the constant Term k.
func TConstBig(k *big.Int) Term {
	return Term{k: new(big.Int).Set(k)}
}

// TVar returns the Term consisting of the single variable x with
// coefficient 1.
func TVar(x Name) Term {
	return Term{k: big.NewInt(0), coeffs: map[Name]*big.Int{x: big.NewInt(1)}}
}

func (t Term) constOrZero() *big.Int {
	if t.k == nil {
		return bigZero
	}
	return t.k
}

// Coeff returns the coefficient of x in t, or 0 if x does not appear.
func (t Term) Coeff(x Name) *big.Int {
	if c, ok := t.coeffs[x]; ok {
		return c
	}
	return bigZero
}

// Names returns the Names appearing in t with nonzero coefficient, sorted
// by Name.Less.
func (t Term) Names() []Name {
	names := make([]Name, 0, len(t.coeffs))
	for x := range t.coeffs {
		names = append(names, x)
	}
	sortNames(names)
	return names
}

// Add returns t + u.
func (t Term) Add(u Term) Term {
	r := Term{k: new(big.Int).Add(t.constOrZero(), u.constOrZero()), coeffs: map[Name]*big.Int{}}
	for x, c := range t.coeffs {
		r.coeffs[x] = new(big.Int).Set(c)
	}
	for x, c := range u.coeffs {
		if cur, ok := r.coeffs[x]; ok {
			sum := new(big.Int).Add(cur, c)
			if sum.Sign() == 0 {
				delete(r.coeffs, x)
			} else {
				r.coeffs[x] = sum
			}
		} else if c.Sign() != 0 {
			r.coeffs[x] = new(big.Int).Set(c)
		}
	}
	return r
}

// Scale returns k · t.
func (t Term) Scale(k *big.Int) Term {
	if k.Sign() == 0 {
		return TConst(0)
	}
	if k.Cmp(bigOne) == 0 {
		return t
	}
	r := Term{k: new(big.Int).Mul(t.constOrZero(), k), coeffs: map[Name]*big.Int{}}
	for x, c := range t.coeffs {
		r.coeffs[x] = new(big.Int).Mul(c, k)
	}
	return r
}

// ScaleInt returns k · t.
func (t Term) ScaleInt(k int64) Term {
	return t.Scale(big.NewInt(k))
}

// Neg returns -t.
func (t Term) Neg() Term {
	return t.Scale(big.NewInt(-1))
}

// Sub returns t - u.
func (t Term) Sub(u Term) Term {
	return t.Add(u.Neg())
}

// Split returns the coefficient of x in t (0 if absent) and t with x
// removed.
func (t Term) Split(x Name) (*big.Int, Term) {
	c := t.Coeff(x)
	r := Term{k: new(big.Int).Set(t.constOrZero()), coeffs: map[Name]*big.Int{}}
	for y, cy := range t.coeffs {
		if y == x {
			continue
		}
		r.coeffs[y] = new(big.Int).Set(cy)
	}
	return new(big.Int).Set(c), r
}

// SubstTerm returns t with x replaced by s (tLet).
func (t Term) SubstTerm(x Name, s Term) Term {
	a, rest := t.Split(x)
	if a.Sign() == 0 {
		return t
	}
	return s.Scale(a).Add(rest)
}

// SubstNum returns t with x replaced by the constant k (tLetNum).
func (t Term) SubstNum(x Name, k *big.Int) Term {
	a, rest := t.Split(x)
	if a.Sign() == 0 {
		return t
	}
	return rest.Add(TConstBig(new(big.Int).Mul(a, k)))
}

// IsConst returns t's constant and true iff t has no variables.
func (t Term) IsConst() (*big.Int, bool) {
	if len(t.coeffs) == 0 {
		return new(big.Int).Set(t.constOrZero()), true
	}
	return nil, false
}

// Factor returns (d, t/d) where d > 1 is the gcd of the constant and all
// coefficients of t, or (nil, Term{}, false) if that gcd is 1 (no common
// factor to pull out).
func (t Term) Factor() (*big.Int, Term, bool) {
	d := new(big.Int).Abs(t.constOrZero())
	for _, c := range t.coeffs {
		d = new(big.Int).GCD(nil, nil, d, new(big.Int).Abs(c))
	}
	if d.Cmp(bigOne) <= 0 {
		return nil, Term{}, false
	}
	q := Term{k: new(big.Int).Quo(t.constOrZero(), d), coeffs: map[Name]*big.Int{}}
	for x, c := range t.coeffs {
		q.coeffs[x] = new(big.Int).Quo(c, d)
	}
	return d, q, true
}

// LeastAbsCoeff returns the Name whose coefficient has the smallest
// absolute value in t (ties broken by Name.Less, the lowest Name wins),
// that coefficient, and t with that Name removed. ok is false iff t has
// no variables.
func (t Term) LeastAbsCoeff() (coeff *big.Int, x Name, rest Term, ok bool) {
	names := t.Names()
	if len(names) == 0 {
		return nil, Name{}, Term{}, false
	}
	best := names[0]
	bestAbs := new(big.Int).Abs(t.Coeff(best))
	for _, n := range names[1:] {
		a := new(big.Int).Abs(t.Coeff(n))
		if a.Cmp(bestAbs) < 0 {
			best, bestAbs = n, a
		}
	}
	c, r := t.Split(best)
	return c, best, r, true
}

// LeastVar returns the smallest Name (by Name.Less) appearing in t, and
// true, or (Name{}, false) if t has no variables.
func (t Term) LeastVar() (Name, bool) {
	names := t.Names()
	if len(names) == 0 {
		return Name{}, false
	}
	return names[0], true
}

// IsOneVar returns t's constant, the coefficient and Name of the single
// variable appearing in t, and true, iff t has exactly one variable.
func (t Term) IsOneVar() (k, coeff *big.Int, x Name, ok bool) {
	names := t.Names()
	if len(names) != 1 {
		return nil, nil, Name{}, false
	}
	x = names[0]
	return new(big.Int).Set(t.constOrZero()), new(big.Int).Set(t.Coeff(x)), x, true
}

// SimpleCoeff returns a Name with coefficient ±1 in t (the lowest such
// Name, deterministically), that coefficient, and t with the Name
// removed. ok is false if no variable of t has coefficient ±1.
func (t Term) SimpleCoeff() (coeff *big.Int, x Name, rest Term, ok bool) {
	for _, n := range t.Names() {
		c := t.Coeff(n)
		if c.CmpAbs(bigOne) == 0 {
			cc, r := t.Split(n)
			return cc, n, r, true
		}
	}
	return nil, Name{}, Term{}, false
}

// MapCoeffs returns t with f applied to the constant and every
// coefficient; any coefficient f maps to zero is stripped to preserve
// the zero-free invariant.
func (t Term) MapCoeffs(f func(*big.Int) *big.Int) Term {
	r := Term{k: f(new(big.Int).Set(t.constOrZero())), coeffs: map[Name]*big.Int{}}
	for x, c := range t.coeffs {
		fc := f(new(big.Int).Set(c))
		if fc.Sign() != 0 {
			r.coeffs[x] = fc
		}
	}
	return r
}

func (t Term) String() string {
	var sb strings.Builder
	k := t.constOrZero()
	wrote := false
	if k.Sign() != 0 {
		sb.WriteString(k.String())
		wrote = true
	}
	for _, x := range t.Names() {
		c := t.Coeff(x)
		if wrote {
			if c.Sign() >= 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
			sb.WriteString(fmt.Sprintf("%s·%s", new(big.Int).Abs(c).String(), x))
		} else {
			sb.WriteString(fmt.Sprintf("%s·%s", c.String(), x))
			wrote = true
		}
	}
	if !wrote {
		return "0"
	}
	return sb.String()
}

func sortNames(names []Name) {
	sort.Sort(nameSorter(names))
}

// floorDiv returns ⌊x/y⌋ for y > 0, using Euclidean division (which
// coincides with floor division whenever the divisor is positive).
func floorDiv(x, y *big.Int) *big.Int {
	return new(big.Int).Div(x, y)
}

// modStar is the symmetric-range modulus used by the Omega modulus
// trick: modStar(a, m) = a - m·⌊(2a+m)/(2m)⌋, mapping into [-m/2, m/2).
// m must be > 0.
func modStar(a, m *big.Int) *big.Int {
	twoA := new(big.Int).Lsh(a, 1)
	twoM := new(big.Int).Lsh(m, 1)
	num := new(big.Int).Add(twoA, m)
	q := floorDiv(num, twoM)
	return new(big.Int).Sub(a, new(big.Int).Mul(m, q))
}
