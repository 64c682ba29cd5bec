package core

import (
	"math/big"
	"testing"
)

func TestGetModelRefusesPendingDisjunctions(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	st.AssertProp(1, Lt(TConst(0), TVar(x).ScaleInt(2)))
	res := st.AssertProp(2, Lt(TVar(x).ScaleInt(2), TConst(10)))
	if len(res.Disjunctions) == 0 {
		t.Fatalf("expected a deferred disjunction to set up this test")
	}
	if _, err := GetModel(st); err != ErrDeferredPending {
		t.Errorf("GetModel with disjunctions pending: err = %v, want ErrDeferredPending", err)
	}
}

func TestGetModelSatisfiesBounds(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	st := EmptyState()
	var pending []Disjunction
	r := st.AssertProp(1, Lt(TConst(2), TVar(x))) // x > 2
	pending = append(pending, r.Disjunctions...)
	r = st.AssertProp(2, Lt(TVar(x), TConst(100))) // x < 100
	pending = append(pending, r.Disjunctions...)
	r = st.AssertProp(3, Eq(TVar(y), TVar(x).Add(TConst(1)))) // y = x + 1
	pending = append(pending, r.Disjunctions...)

	// Each lower/upper pair defers a dark shadow with no gray cases (both
	// coefficients are 1); assert those so GetModel has nothing pending.
	for _, d := range pending {
		sg := d.Alternatives[0][0]
		if sr := st.AssertWithProvenance(sg.Prov, sg.Prop); sr.Status != Quiescent || len(sr.Disjunctions) != 0 {
			t.Fatalf("asserting dark shadow %v: status %v, %d new disjunctions", sg.Prop, sr.Status, len(sr.Disjunctions))
		}
	}

	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	xv, yv := model[0], model[1]
	if xv == nil || yv == nil {
		t.Fatalf("model incomplete: %v", model)
	}
	if xv.Cmp(big.NewInt(2)) <= 0 || xv.Cmp(big.NewInt(100)) >= 0 {
		t.Errorf("x = %v violates 2 < x < 100", xv)
	}
	want := new(big.Int).Add(xv, big.NewInt(1))
	if yv.Cmp(want) != 0 {
		t.Errorf("y = %v, want x+1 = %v", yv, want)
	}
}

func TestGetModelOmitsSystemNames(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	st := EmptyState()
	// Forces the Omega modulus trick, which allocates a system name.
	lhs := TVar(x).ScaleInt(3).Sub(TVar(y).ScaleInt(2))
	st.AssertProp(1, Eq(lhs, TConst(1)))

	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if len(model) != 2 {
		t.Errorf("model = %v, want exactly the 2 user variables (no system names)", model)
	}
}

func TestGetModelLowerBoundedVariableIsAboveBound(t *testing.T) {
	x := UserName(0)
	st := EmptyState()
	st.AssertProp(1, Lt(TConst(0), TVar(x)))

	model, err := GetModel(st)
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if v := model[0]; v == nil || v.Sign() <= 0 {
		t.Errorf("x = %v, want a positive integer", v)
	}
}
