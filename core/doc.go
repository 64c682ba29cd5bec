/*
Package core implements an online, proof-producing decision procedure
for quantifier-free linear integer arithmetic (Presburger arithmetic
restricted to conjunctions of linear equalities and inequalities),
following the Omega test together with the Berezin-Ganesh-Dill online
variant: equalities are eliminated directly (the Omega modulus trick
handles the general case), and inequalities are resolved by real-shadow
elimination, with the sound-but-incomplete dark/gray shadow split
deferred to an external case-splitter rather than explored internally.

Building and asserting a problem

A problem is built incrementally against a State, one Proposition at a
time:

    x := core.UserName(0)
    y := core.UserName(1)
    st := core.EmptyState()

    // 2x + y = 4
    lhs := core.TVar(x).ScaleInt(2).Add(core.TVar(y))
    res := st.AssertProp(1, core.Eq(lhs, core.TConst(4)))

Each call returns an AssertResult: Status is Contradiction if the
conjunction asserted so far is unsatisfiable (Prov then names the
UserLiterals responsible), or Quiescent if the work queue drained
without a contradiction. A Quiescent result may still carry
Disjunctions: cases deferred by inequality elimination that this
package deliberately does not search over (see the branch package for
an illustrative driver, and spec-level non-goals on case splitting).

Extracting a model

Once a State is Quiescent with no pending Disjunctions, GetModel
extracts a concrete integer binding for every user variable:

    model, err := core.GetModel(st)

GetModel refuses to run while the Disjunctions returned by the most
recent Quiescent assertion are outstanding, since any model it could
produce would only be valid for one unexplored branch, not for the
asserted problem as a whole. Disjunctions returned by earlier
assertions are not tracked.

Exploring branches

Because AssertProp is purely additive, speculative exploration of a
Disjunction's alternatives is done by taking a State.Snapshot, asserting
against the snapshot, and discarding it if that branch contradicts. The
core package never backtracks on its own.
*/
package core
