// SPDX-License-Identifier: MIT

package lp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/model"
)

// BenchmarkCompile measures expansion and assembly on a synthetic
// 50-feed × 20-component blending model (21 rows, 50 columns, ~1050
// nonzeros per compile).
func BenchmarkCompile(b *testing.B) {
	const (
		nFeeds = 50
		nComps = 20
	)
	feedLabels := make([]string, nFeeds)
	for i := range feedLabels {
		feedLabels[i] = fmt.Sprintf("F%02d", i)
	}
	compLabels := make([]string, nComps)
	for i := range compLabels {
		compLabels[i] = fmt.Sprintf("C%02d", i)
	}

	m := model.New("bench")
	feeds, err := m.DefineSet("feed", feedLabels...)
	if err != nil {
		b.Fatalf("setup DefineSet failed: %v", err)
	}
	comps, err := m.DefineSet("component", compLabels...)
	if err != nil {
		b.Fatalf("setup DefineSet failed: %v", err)
	}
	cost, _ := m.DefineParam("cost", feeds)
	cont, _ := m.DefineParam("content", feeds, comps)
	req, _ := m.DefineParam("reqMin", comps)
	for i, f := range feedLabels {
		_ = cost.Set(float64(5+i%7), f)
		for j, c := range compLabels {
			_ = cont.Set(float64(1+(i+j)%9)/10, f, c)
		}
	}
	for j, c := range compLabels {
		_ = req.Set(float64(1+j%4)/10, c)
	}
	x, err := m.DeclareVars("x", feeds, 0, math.Inf(1))
	if err != nil {
		b.Fatalf("setup DeclareVars failed: %v", err)
	}

	obj, err := model.Sum(feeds, func(f string) (model.Term, error) {
		c, err := cost.Get(f)
		if err != nil {
			return model.Term{}, err
		}
		v, err := x.At(f)
		if err != nil {
			return model.Term{}, err
		}
		return model.T(v, c), nil
	})
	if err != nil {
		b.Fatalf("setup objective failed: %v", err)
	}
	m.SetObjective(obj)

	flow, _ := model.Sum(feeds, func(f string) (model.Term, error) {
		v, err := x.At(f)
		if err != nil {
			return model.Term{}, err
		}
		return model.T(v, 1), nil
	})
	if _, err := m.AddRow("totalFlow", model.Eq, flow, 1000); err != nil {
		b.Fatalf("setup AddRow failed: %v", err)
	}
	_, err = m.AddFamily(model.Family{
		Name: "minContent",
		Over: comps,
		Rel:  model.Ge,
		LHS: func(c string) (model.Expr, error) {
			return model.Sum(feeds, func(f string) (model.Term, error) {
				w, err := cont.Get(f, c)
				if err != nil {
					return model.Term{}, err
				}
				v, err := x.At(f)
				if err != nil {
					return model.Term{}, err
				}
				return model.T(v, w), nil
			})
		},
		RHS: func(c string) (float64, error) {
			r, err := req.Get(c)
			if err != nil {
				return 0, err
			}
			return r * 1000, nil
		},
	})
	if err != nil {
		b.Fatalf("setup AddFamily failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lp.Compile(m); err != nil {
			b.Fatalf("Compile failed: %v", err)
		}
	}
}
