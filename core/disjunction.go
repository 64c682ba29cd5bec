package core

// A SubGoal is a single atom, paired with the provenance it would carry
// if asserted: one element of a Disjunction's alternative sub-goal list.
type SubGoal struct {
	Prov Provenance
	Prop Proposition
}

// A Disjunction is one deferred shadow work item: a dark shadow paired
// with its complementary gray-shadow cases. At least one Alternative
// must be assertable (all of its SubGoals asserted together) for the
// branch that produced this Disjunction to be satisfiable; exploring
// that choice is left to an external case-splitter, not to this
// package. See the branch package for a worked, non-core example
// driver.
type Disjunction struct {
	Alternatives [][]SubGoal
}
