// SPDX-License-Identifier: MIT

package lp_test

import (
	"fmt"
	"math"
	"os"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/model"
)

// ExampleCompile compiles a two-variable model and prints its canonical
// shape: a diet-style floor plus a capacity row.
func ExampleCompile() {
	m := model.New("tiny")
	items, _ := m.DefineSet("item", "oats", "rice")
	x, _ := m.DeclareVars("buy", items, 0, math.Inf(1))
	oats, _ := x.At("oats")
	rice, _ := x.At("rice")

	m.SetObjective(model.NewExpr(model.T(oats, 3), model.T(rice, 2)))
	_, _ = m.AddRow("protein", model.Ge, model.NewExpr(model.T(oats, 0.13), model.T(rice, 0.07)), 5)
	_, _ = m.AddRow("weight", model.Le, model.NewExpr(model.T(oats, 1), model.T(rice, 1)), 80)

	cm, _ := lp.Compile(m)
	fmt.Printf("%d rows, %d cols, %d nonzeros\n", cm.NumRows, cm.NumCols, cm.Nonzeros())
	for i, r := range cm.Rows {
		fmt.Printf("row %d %s (%s)\n", i, r.Name, r.Rel)
	}

	// Output:
	// 2 rows, 2 cols, 4 nonzeros
	// row 0 protein (>=)
	// row 1 weight (<=)
}

// ExampleModel_WriteLP renders a compiled model as LP-format text.
func ExampleModel_WriteLP() {
	m := model.New("mini")
	items, _ := m.DefineSet("item", "a", "b")
	x, _ := m.DeclareVars("x", items, 0, math.Inf(1))
	xa, _ := x.At("a")
	xb, _ := x.At("b")
	m.SetObjective(model.NewExpr(model.T(xa, 1), model.T(xb, 4)))
	_, _ = m.AddRow("mix", model.Eq, model.NewExpr(model.T(xa, 1), model.T(xb, 1)), 10)

	cm, _ := lp.Compile(m)
	_ = cm.WriteLP(os.Stdout, lp.Minimize)

	// Output:
	// \ Problem: mini
	// Minimize
	//  obj: x_a + 4 x_b
	// Subject To
	//  mix: x_a + x_b = 10
	// Bounds
	// End
}
