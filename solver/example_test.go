package solver_test

import (
	"fmt"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/solver"
)

// ExampleSimplex_Solve runs the blending scenario end to end at the
// canonical-form level and reports by feed label.
func ExampleSimplex_Solve() {
	m := blendCanonical()

	res, err := solver.Simplex{}.Solve(m, lp.Minimize)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("status:", res.Status)
	fmt.Printf("cost: %.0f\n", res.Objective)

	rep, err := solver.NewReport(m, res)
	if err != nil {
		fmt.Println("report:", err)
		return
	}
	for _, feed := range []string{"A", "B", "C"} {
		q, _ := rep.Value("x", feed)
		fmt.Printf("x(%s) = %.0f\n", feed, q)
	}

	// Output:
	// status: optimal
	// cost: 1040
	// x(A) = 40
	// x(B) = 40
	// x(C) = 20
}
