package blend_test

import (
	"fmt"

	"github.com/maroveq/linform/blend"
	"github.com/maroveq/linform/solver"
)

// ExampleProblem_Solve runs the whole pipeline on a small instance:
// three feeds, two quality floors, a fixed total of 100 units.
func ExampleProblem_Solve() {
	p := blend.Problem{
		Feeds:      []string{"A", "B", "C"},
		Components: []string{"X", "Y"},
		Cost:       map[string]float64{"A": 10, "B": 12, "C": 8},
		Content: map[string]map[string]float64{
			"A": {"X": 0.60, "Y": 0.10},
			"B": {"X": 0.30, "Y": 0.50},
			"C": {"X": 0.20, "Y": 0.30},
		},
		ReqMin:     map[string]float64{"X": 0.40, "Y": 0.30},
		TotalBlend: 100,
	}

	plan, err := p.Solve(solver.Simplex{})
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("status: %s, cost: %.0f\n", plan.Status, plan.Cost)
	for _, f := range p.Feeds {
		fmt.Printf("  x(%s) = %.0f\n", f, plan.Quantities[f])
	}

	// Output:
	// status: optimal, cost: 1040
	//   x(A) = 40
	//   x(B) = 40
	//   x(C) = 20
}
