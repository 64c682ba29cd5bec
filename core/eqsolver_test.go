package core

import (
	"math/big"
	"testing"
)

func TestAssertSimpleEqualityInstallsDefinition(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	res := st.AssertProp(1, Eq(TVar(x), TConst(3)))
	if res.Status != Quiescent {
		t.Fatalf("status = %v, want Quiescent", res.Status)
	}
	if st.stats.NbDefinitions != 1 {
		t.Errorf("NbDefinitions = %d, want 1", st.stats.NbDefinitions)
	}
	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if v := model[0]; v == nil || v.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("model[x] = %v, want 3", v)
	}
}

func TestAssertEqualityContradiction(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	st.AssertProp(1, Eq(TVar(x), TConst(3)))
	res := st.AssertProp(2, Eq(TVar(x), TConst(4)))
	if res.Status != Contradiction {
		t.Fatalf("status = %v, want Contradiction", res.Status)
	}
	if !res.Prov.Contains(1) || !res.Prov.Contains(2) {
		t.Errorf("contradiction provenance = %v, want it to mention both literals 1 and 2", res.Prov)
	}
}

func TestAssertEqualityWithNonUnitCoefficientOneVariable(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	// 3x = 6  =>  x = 2, without needing the fresh-variable path since
	// 6/3 has no remainder (handled entirely by the "one variable" case).
	res := st.AssertProp(1, Eq(TVar(x).ScaleInt(3), TConst(6)))
	if res.Status != Quiescent {
		t.Fatalf("status = %v, want Quiescent", res.Status)
	}
	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if v := model[0]; v == nil || v.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("model[x] = %v, want 2", v)
	}
}

func TestAssertEqualityWithTwoVariablesUsesModulusTrick(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	st := EmptyState()
	// 3x - 2y = 1 has the integer solution x=1, y=1 (among others); the
	// coefficients are coprime with no unit coefficient, so this forces
	// the general Omega modulus-trick case (solveIs0 case 5).
	lhs := TVar(x).ScaleInt(3).Sub(TVar(y).ScaleInt(2))
	res := st.AssertProp(1, Eq(lhs, TConst(1)))
	if res.Status != Quiescent {
		t.Fatalf("status = %v, want Quiescent", res.Status)
	}
	if st.stats.NbFreshNames == 0 {
		t.Errorf("expected the modulus trick to allocate at least one fresh name")
	}
	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	xv, yv := model[0], model[1]
	if xv == nil || yv == nil {
		t.Fatalf("model incomplete: %v", model)
	}
	lhsVal := new(big.Int).Sub(new(big.Int).Mul(big.NewInt(3), xv), new(big.Int).Mul(big.NewInt(2), yv))
	if lhsVal.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("3x - 2y = %v for x=%v, y=%v, want 1", lhsVal, xv, yv)
	}
}

func TestAssertEqualityOneVariableWithRemainderIsContradiction(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	// 2x = 5 has exactly one variable with coefficient 2, and 5/2 has a
	// nonzero remainder: no integer x satisfies it (solveIs0 case 2).
	res := st.AssertProp(1, Eq(TVar(x).ScaleInt(2), TConst(5)))
	if res.Status != Contradiction {
		t.Fatalf("status = %v, want Contradiction", res.Status)
	}
	if !res.Prov.Contains(1) {
		t.Errorf("contradiction provenance = %v, want it to mention literal 1", res.Prov)
	}
}

func TestAssertEqualityNoIntegerSolutionIsContradiction(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	st := EmptyState()
	// 2x + 4y = 1 has no integer solution: the gcd of the coefficients
	// (2) does not divide the constant.
	lhs := TVar(x).ScaleInt(2).Add(TVar(y).ScaleInt(4))
	res := st.AssertProp(1, Eq(lhs, TConst(1)))
	if res.Status != Contradiction {
		t.Fatalf("status = %v, want Contradiction", res.Status)
	}
}
