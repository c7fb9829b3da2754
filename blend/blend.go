package blend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/model"
	"github.com/maroveq/linform/solver"
)

// Structural errors detected before any model is built.
var (
	// ErrNoFeeds means the feed list is empty.
	ErrNoFeeds = errors.New("blend: no feeds")
	// ErrNoComponents means the component list is empty.
	ErrNoComponents = errors.New("blend: no components")
	// ErrBadTotal means TotalBlend is not a positive finite number.
	ErrBadTotal = errors.New("blend: total blend must be positive and finite")
	// ErrNilSolver means Solve was handed a nil solver.
	ErrNilSolver = errors.New("blend: nil solver")
)

// Problem is the raw data of one blending decision, doubling as the
// instance file format (snake_case JSON keys). Feeds and Components fix
// the meaning of every index; the maps hold whatever data the caller
// actually has. Entries for labels outside the two lists are rejected,
// and entries the model needs but the maps lack surface later as
// model.ErrMissingValue rather than being read as zero.
type Problem struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`

	Feeds      []string `json:"feeds"`
	Components []string `json:"components"`

	// Cost is the per-unit cost of each feed.
	Cost map[string]float64 `json:"costs"`
	// Content[f][c] is the fraction of component c in one unit of feed f.
	Content map[string]map[string]float64 `json:"content"`
	// ReqMin[c] is the minimum fraction of component c in the final blend.
	ReqMin map[string]float64 `json:"req_min"`
	// TotalBlend is the required total quantity.
	TotalBlend float64 `json:"total_blend"`
}

// Validate checks the parts of a Problem that do not need a model to
// judge: nonempty index lists and a usable total. Data coverage is not
// checked here on purpose; an incomplete map is only an error for the
// labels a model actually asks for.
func (p Problem) Validate() error {
	if len(p.Feeds) == 0 {
		return ErrNoFeeds
	}
	if len(p.Components) == 0 {
		return ErrNoComponents
	}
	if math.IsNaN(p.TotalBlend) || math.IsInf(p.TotalBlend, 0) || p.TotalBlend <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadTotal, p.TotalBlend)
	}
	return nil
}

// Model lowers the Problem onto the declaration API.
//
// Contracts:
//   - sets "feed" and "component" hold the labels in the given order;
//   - variables x(f) ∈ [0, +∞) in feed order;
//   - row "totalFlow" pins the total, family "minContent" holds one row
//     per component, and the objective prices the feeds by Cost.
//
// Errors: Validate failures; model.ErrDuplicateLabel for repeated labels;
// model.ErrInvalidKey for map entries whose label is not declared;
// model.ErrMissingValue when a Cost entry is absent (the objective is
// priced here, so the gap surfaces here; Content and ReqMin gaps
// surface at compile time instead).
func (p Problem) Model() (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	name := p.Name
	if name == "" {
		name = "blending"
	}
	m := model.New(name)

	feeds, err := m.DefineSet("feed", p.Feeds...)
	if err != nil {
		return nil, err
	}
	comps, err := m.DefineSet("component", p.Components...)
	if err != nil {
		return nil, err
	}

	cost, err := m.DefineParam("cost", feeds)
	if err != nil {
		return nil, err
	}
	if err := fillParam(cost, p.Cost); err != nil {
		return nil, err
	}
	content, err := m.DefineParam("content", feeds, comps)
	if err != nil {
		return nil, err
	}
	outer := make([]string, 0, len(p.Content))
	for f := range p.Content {
		outer = append(outer, f)
	}
	sort.Strings(outer)
	for _, f := range outer {
		for _, c := range sortedKeys(p.Content[f]) {
			if err := content.Set(p.Content[f][c], f, c); err != nil {
				return nil, err
			}
		}
	}
	reqMin, err := m.DefineParam("reqMin", comps)
	if err != nil {
		return nil, err
	}
	if err := fillParam(reqMin, p.ReqMin); err != nil {
		return nil, err
	}
	total, err := m.DefineParam("totalBlend")
	if err != nil {
		return nil, err
	}
	if err := total.Set(p.TotalBlend); err != nil {
		return nil, err
	}

	x, err := m.DeclareVars("x", feeds, 0, math.Inf(1))
	if err != nil {
		return nil, err
	}

	obj, err := model.Sum(feeds, func(f string) (model.Term, error) {
		v, aerr := x.At(f)
		if aerr != nil {
			return model.Term{}, aerr
		}
		cf, gerr := cost.Get(f)
		if gerr != nil {
			return model.Term{}, gerr
		}
		return model.T(v, cf), nil
	})
	if err != nil {
		return nil, err
	}
	m.SetObjective(obj)

	flow, err := model.Sum(feeds, func(f string) (model.Term, error) {
		v, aerr := x.At(f)
		if aerr != nil {
			return model.Term{}, aerr
		}
		return model.T(v, 1), nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := m.AddRow("totalFlow", model.Eq, flow, p.TotalBlend); err != nil {
		return nil, err
	}

	_, err = m.AddFamily(model.Family{
		Name: "minContent",
		Over: comps,
		Rel:  model.Ge,
		LHS: func(c string) (model.Expr, error) {
			return model.Sum(feeds, func(f string) (model.Term, error) {
				v, aerr := x.At(f)
				if aerr != nil {
					return model.Term{}, aerr
				}
				w, gerr := content.Get(f, c)
				if gerr != nil {
					return model.Term{}, gerr
				}
				return model.T(v, w), nil
			})
		},
		RHS: func(c string) (float64, error) {
			r, gerr := reqMin.Get(c)
			if gerr != nil {
				return 0, gerr
			}
			t, gerr := total.Get()
			if gerr != nil {
				return 0, gerr
			}
			return r * t, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Compile is Model followed by lp.Compile.
func (p Problem) Compile(opts ...lp.Option) (*lp.Model, error) {
	m, err := p.Model()
	if err != nil {
		return nil, err
	}
	return lp.Compile(m, opts...)
}

// Plan is the outcome of solving a Problem. Quantities is keyed by feed
// label and is nil unless Status is StatusOptimal.
type Plan struct {
	Status     solver.Status
	Cost       float64
	Quantities map[string]float64
}

// Solve compiles the Problem and runs s on it.
//
// A solver verdict of infeasible or unbounded is a value, not an error:
// the Plan carries the status and nothing else. Errors mean the Problem
// or the solver contract was violated somewhere along the way.
func (p Problem) Solve(s solver.Solver) (Plan, error) {
	if s == nil {
		return Plan{}, ErrNilSolver
	}
	cm, err := p.Compile()
	if err != nil {
		return Plan{}, err
	}
	res, err := s.Solve(cm, lp.Minimize)
	if err != nil {
		return Plan{}, err
	}
	if !res.Optimal() {
		return Plan{Status: res.Status}, nil
	}
	rep, err := solver.NewReport(cm, res)
	if err != nil {
		return Plan{}, err
	}
	qs, err := rep.Group("x")
	if err != nil {
		return Plan{}, err
	}
	return Plan{Status: res.Status, Cost: rep.Objective(), Quantities: qs}, nil
}

// fillParam copies map entries into a one-set parameter in sorted key
// order, so a bad key is reported deterministically.
func fillParam(p *model.Param, vals map[string]float64) error {
	for _, k := range sortedKeys(vals) {
		if err := p.Set(vals[k], k); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
