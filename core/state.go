package core

// Status is the outcome of a single AssertProp call.
type Status byte

const (
	// Running is never observed outside the solver's internal loop; it
	// exists to name the state machine's third leg.
	Running Status = iota
	// Contradiction means the asserted conjunction is unsatisfiable.
	Contradiction
	// Quiescent means the work queue drained with no contradiction; any
	// deferred disjunctions must still be explored by the caller.
	Quiescent
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Contradiction:
		return "CONTRADICTION"
	case Quiescent:
		return "QUIESCENT"
	default:
		panic("invalid status")
	}
}

// Stats are informational counters about the work State has done so
// far, provided for information purpose only and never consulted by
// solver logic.
type Stats struct {
	NbAsserted    int
	NbDefinitions int
	NbRealShadows int
	NbDeferred    int
	NbFreshNames  int
}

// State is the solver's state: the inert store plus a monotone
// fresh-name counter. A caller explores branches by taking a Snapshot
// and asserting against the clone rather than the original.
type State struct {
	inert        *Inert
	nextSystemID int64
	stats        Stats
	// pendingDisjunctions is true after any AssertProp call returned a
	// nonempty Disjunctions list, and is cleared by any later Quiescent
	// call that returns none (a Contradiction leaves it unchanged). GetModel refuses to run while it is true: any model
	// it produced would only be valid for one unexplored branch, not for
	// the problem as asserted so far.
	pendingDisjunctions bool
}

// EmptyState returns the initial, empty solver state (emptyPropSet).
func EmptyState() *State {
	return &State{inert: newInert()}
}

// Stats returns st's informational counters.
func (st *State) Stats() Stats {
	return st.stats
}

// Snapshot returns a deep-enough clone of st for speculative branch
// exploration: the caller asserts against the clone, and if the branch
// fails, simply discards it and tries another from the original. Terms
// and other immutable values are shared with the original, per
// Inert.Clone's contract.
func (st *State) Snapshot() *State {
	return &State{
		inert:               st.inert.Clone(),
		nextSystemID:        st.nextSystemID,
		stats:               st.stats,
		pendingDisjunctions: st.pendingDisjunctions,
	}
}

func (st *State) freshName() Name {
	id := st.nextSystemID
	st.nextSystemID++
	st.stats.NbFreshNames++
	return Name{kind: systemKind, id: id}
}

// AssertResult is the outcome of one AssertProp call: either
// Contradiction (Prov names the user literals at fault) or Quiescent
// (Disjunctions holds the deferred shadow work, possibly empty).
type AssertResult struct {
	Status       Status
	Prov         Provenance
	Disjunctions []Disjunction
}

// AssertProp asserts prop under the given user literal, threading it
// through the work queue formed by the equality and inequality
// sub-solvers. There is no partial success: the first contradiction
// discards every mutation this call would otherwise have made.
func (st *State) AssertProp(lit UserLiteral, prop Proposition) AssertResult {
	return st.AssertWithProvenance(SingleProvenance(lit), prop)
}

// AssertWithProvenance is AssertProp generalized to an arbitrary starting
// Provenance rather than a single fresh UserLiteral, for callers (such as
// the branch package) asserting a sub-goal that already carries the
// provenance of the disjunction it came from.
//
// The work queue is drained against a scratch copy of st, never st
// itself: a contradiction can be discovered several rounds into the
// queue, after definitions and bounds from earlier, innocent rounds have
// already been installed, and none of that partial work may leak out to
// the caller. Only once the drain reaches Quiescent is the scratch copy
// committed back into st; on Contradiction it is simply dropped.
func (st *State) AssertWithProvenance(prov Provenance, prop Proposition) AssertResult {
	tmp := &State{
		inert:        st.inert.Clone(),
		nextSystemID: st.nextSystemID,
		stats:        st.stats,
	}
	tmp.stats.NbAsserted++

	var wq workQueue
	wq.push(prov, prop)

	var deferred []Disjunction
	for {
		item, ok := wq.pop()
		if !ok {
			break
		}
		p, t := tmp.inert.ApplySubst(item.Prov, item.Prop.Term())

		var contradictionProv Provenance
		var isContradiction bool
		if item.Prop.IsEq() {
			contradictionProv, isContradiction = solveIs0(tmp, &wq, p, t)
		} else {
			contradictionProv, isContradiction = solveIsNeg(tmp, &wq, &deferred, p, t)
		}
		if isContradiction {
			return AssertResult{Status: Contradiction, Prov: contradictionProv}
		}
	}
	tmp.pendingDisjunctions = len(deferred) > 0
	*st = *tmp
	return AssertResult{Status: Quiescent, Disjunctions: deferred}
}
