// Command presburgerctl runs a fixed set of worked Presburger arithmetic
// scenarios against the core solver and reports, for each, whether it is
// satisfiable (printing the model) or a contradiction (printing the
// literals responsible). There is no surface syntax to parse: scenarios
// are wired directly against the core package's Go API, mirroring how
// gophersat's own main.go drives solver.Problem values built in-process
// rather than always reading a file from disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/omegacore/presburger/branch"
	"github.com/omegacore/presburger/core"
)

func main() {
	var (
		verbose bool
		budget  int
	)
	flag.BoolVar(&verbose, "verbose", false, "print solver stats after each scenario")
	flag.IntVar(&budget, "budget", 1000, "node budget passed to the branch explorer")
	flag.Parse()

	fmt.Printf("c running %d worked scenarios\n", len(scenarios))
	for _, sc := range scenarios {
		runScenario(sc, budget, verbose)
	}
}

type scenario struct {
	name  string
	build func(st *core.State) []result
}

// result is one assertion's outcome within a scenario. A scenario
// asserts all of its propositions; runScenario reports on the last
// result only.
type result struct {
	lit core.UserLiteral
	res core.AssertResult
}

func runScenario(sc scenario, budget int, verbose bool) {
	fmt.Printf("c --- %s\n", sc.name)
	st := core.EmptyState()
	results := sc.build(st)

	final := results[len(results)-1].res
	switch final.Status {
	case core.Contradiction:
		fmt.Printf("c UNSAT, blamed literals: %v\n", final.Prov.Literals())
	case core.Quiescent:
		solved := st
		if len(final.Disjunctions) > 0 {
			var err error
			solved, err = branch.Explore(st, final.Disjunctions, budget)
			if err != nil {
				fmt.Printf("c could not resolve deferred disjunctions: %v\n", err)
				break
			}
		}
		model, err := core.GetModel(solved)
		if err != nil {
			fmt.Printf("c could not extract a model: %v\n", err)
			break
		}
		fmt.Printf("c SAT, model: %v\n", model)
	}

	if verbose {
		s := st.Stats()
		fmt.Printf("c nb asserted: %d\nc nb definitions: %d\nc nb real shadows: %d\nc nb deferred: %d\nc nb fresh names: %d\n",
			s.NbAsserted, s.NbDefinitions, s.NbRealShadows, s.NbDeferred, s.NbFreshNames)
	}
	os.Stdout.Sync()
}

var scenarios = []scenario{
	{
		name: "trivial sat: 3 < 5",
		build: func(st *core.State) []result {
			r := st.AssertProp(1, core.Lt(core.TConst(3), core.TConst(5)))
			return []result{{1, r}}
		},
	},
	{
		name: "trivial unsat: 5 < 3",
		build: func(st *core.State) []result {
			r := st.AssertProp(1, core.Lt(core.TConst(5), core.TConst(3)))
			return []result{{1, r}}
		},
	},
	{
		name: "simple equality",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			r := st.AssertProp(1, core.Eq(core.TVar(x), core.TConst(3)))
			return []result{{1, r}}
		},
	},
	{
		name: "equality contradiction",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			r1 := st.AssertProp(1, core.Eq(core.TVar(x), core.TConst(3)))
			r2 := st.AssertProp(2, core.Eq(core.TVar(x), core.TConst(4)))
			return []result{{1, r1}, {2, r2}}
		},
	},
	{
		name: "fractional-unsat equality: 2x = 5",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			r := st.AssertProp(1, core.Eq(core.TVar(x).ScaleInt(2), core.TConst(5)))
			return []result{{1, r}}
		},
	},
	{
		name: "omega modulus trick: 3x - 2y = 1",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			y := core.UserName(1)
			lhs := core.TVar(x).ScaleInt(3).Sub(core.TVar(y).ScaleInt(2))
			r := st.AssertProp(1, core.Eq(lhs, core.TConst(1)))
			return []result{{1, r}}
		},
	},
	{
		name: "deferred dark/gray shadow: 0 < 2x < 10",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			r1 := st.AssertProp(1, core.Lt(core.TConst(0), core.TVar(x).ScaleInt(2)))
			r2 := st.AssertProp(2, core.Lt(core.TVar(x).ScaleInt(2), core.TConst(10)))
			return []result{{1, r1}, {2, r2}}
		},
	},
	{
		name: "tight inequality pair with no integer solution",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			r1 := st.AssertProp(1, core.Lt(core.TConst(0), core.TVar(x)))
			r2 := st.AssertProp(2, core.Lt(core.TVar(x), core.TConst(1)))
			return []result{{1, r1}, {2, r2}}
		},
	},
	{
		name: "two-variable integer range: x+y=10, x-y=0",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			y := core.UserName(1)
			r1 := st.AssertProp(1, core.Eq(core.TVar(x).Add(core.TVar(y)), core.TConst(10)))
			r2 := st.AssertProp(2, core.Eq(core.TVar(x).Sub(core.TVar(y)), core.TConst(0)))
			return []result{{1, r1}, {2, r2}}
		},
	},
	{
		name: "contradiction via transitivity: x<y, y<z, z<x",
		build: func(st *core.State) []result {
			x := core.UserName(0)
			y := core.UserName(1)
			z := core.UserName(2)
			r1 := st.AssertProp(1, core.Lt(core.TVar(x), core.TVar(y)))
			r2 := st.AssertProp(2, core.Lt(core.TVar(y), core.TVar(z)))
			r3 := st.AssertProp(3, core.Lt(core.TVar(z), core.TVar(x)))
			return []result{{1, r1}, {2, r2}, {3, r3}}
		},
	},
}
