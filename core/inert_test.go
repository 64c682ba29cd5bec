package core

import (
	"math/big"
	"testing"
)

func TestInertApplySubstFixpoint(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	in := newInert()
	// x := y + 1, y := 2
	in.solved[x] = solvedEntry{Prov: SingleProvenance(1), T: TVar(y).Add(TConst(1))}
	in.solved[y] = solvedEntry{Prov: SingleProvenance(2), T: TConst(2)}

	prov, t1 := in.ApplySubst(NoProvenance(), TVar(x))
	k, ok := t1.IsConst()
	if !ok || k.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("ApplySubst(x) = %v, want the constant 3", t1)
	}
	if !prov.Contains(1) || !prov.Contains(2) {
		t.Errorf("ApplySubst provenance = %v, want it to mention literals 1 and 2", prov)
	}
}

func TestInertAddDefinitionKicksOutOwnBounds(t *testing.T) {
	x := UserName(0)
	in := newInert()
	in.AddBound(x, Lower, Bound{Prov: SingleProvenance(1), C: big.NewInt(1), T: TConst(0)})
	in.AddBound(x, Upper, Bound{Prov: SingleProvenance(2), C: big.NewInt(1), T: TConst(10)})

	kicked := in.AddDefinition(SingleProvenance(3), x, TConst(5))
	if len(kicked) != 2 {
		t.Fatalf("expected both of x's bounds to be kicked out, got %d", len(kicked))
	}
	if len(in.Bounds(x, Lower)) != 0 || len(in.Bounds(x, Upper)) != 0 {
		t.Errorf("x's bounds should be removed once x is solved")
	}
}

func TestInertAddDefinitionKicksOutBoundsMentioningX(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	in := newInert()
	// y's lower bound mentions x: x < y
	in.AddBound(y, Lower, Bound{Prov: SingleProvenance(1), C: big.NewInt(1), T: TVar(x)})

	kicked := in.AddDefinition(SingleProvenance(2), x, TConst(7))
	if len(kicked) != 1 {
		t.Fatalf("expected y's bound mentioning x to be kicked out, got %d", len(kicked))
	}
	if len(in.Bounds(y, Lower)) != 0 {
		t.Errorf("y's bound should have been removed from the inert store")
	}
}

func TestInertAddDefinitionRewritesSolved(t *testing.T) {
	x := UserName(0)
	y := UserName(1)
	in := newInert()
	in.solved[y] = solvedEntry{Prov: SingleProvenance(1), T: TVar(x).Add(TConst(1))}

	in.AddDefinition(SingleProvenance(2), x, TConst(4))

	se := in.solved[y]
	k, ok := se.T.IsConst()
	if !ok || k.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("solved[y] after substituting x:=4 = %v, want the constant 5", se.T)
	}
	if !se.Prov.Contains(1) || !se.Prov.Contains(2) {
		t.Errorf("solved[y].Prov = %v, want it to mention both definitions", se.Prov)
	}
}

func TestInertCloneIsIndependent(t *testing.T) {
	x := UserName(0)
	in := newInert()
	in.AddBound(x, Lower, Bound{Prov: SingleProvenance(1), C: big.NewInt(1), T: TConst(0)})

	clone := in.Clone()
	clone.AddBound(x, Lower, Bound{Prov: SingleProvenance(2), C: big.NewInt(1), T: TConst(1)})

	if len(in.Bounds(x, Lower)) != 1 {
		t.Errorf("mutating the clone affected the original: %d lower bounds", len(in.Bounds(x, Lower)))
	}
	if len(clone.Bounds(x, Lower)) != 2 {
		t.Errorf("clone has %d lower bounds, want 2", len(clone.Bounds(x, Lower)))
	}
}

func TestInertBoundedNamesSorted(t *testing.T) {
	x := UserName(5)
	y := UserName(1)
	in := newInert()
	in.AddBound(x, Lower, Bound{Prov: NoProvenance(), C: big.NewInt(1), T: TConst(0)})
	in.AddBound(y, Lower, Bound{Prov: NoProvenance(), C: big.NewInt(1), T: TConst(0)})

	names := in.BoundedNames()
	if len(names) != 2 || names[0] != y || names[1] != x {
		t.Errorf("BoundedNames() = %v, want [y, x] in ascending order", names)
	}
}
