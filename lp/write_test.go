// SPDX-License-Identifier: MIT

package lp_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/model"
)

func TestWriteLP_BlendRendering(t *testing.T) {
	cm, err := lp.Compile(blendModel(t, []string{"A", "B", "C"}, []string{"X", "Y"}))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, cm.WriteLP(&sb, lp.Minimize))
	out := sb.String()

	require.Contains(t, out, "\\ Problem: blending")
	require.Contains(t, out, "Minimize\n obj: 10 x_A + 12 x_B + 8 x_C")
	require.Contains(t, out, "Subject To")
	require.Contains(t, out, " totalFlow: x_A + x_B + x_C = 100")
	require.Contains(t, out, " minContent_X: 0.6 x_A + 0.3 x_B + 0.2 x_C >= 40")
	require.Contains(t, out, " minContent_Y: 0.1 x_A + 0.5 x_B + 0.3 x_C >= 30")
	require.Contains(t, out, "Bounds")
	require.True(t, strings.HasSuffix(out, "End\n"))

	// Default [0, +Inf) bounds stay implicit.
	require.NotContains(t, out, "x_A free")
	require.NotContains(t, out, "0 <= x_A")
}

func TestWriteLP_MaximizeHeader(t *testing.T) {
	cm, err := lp.Compile(blendModel(t, []string{"A", "B", "C"}, []string{"X", "Y"}))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, cm.WriteLP(&sb, lp.Maximize))
	require.Contains(t, sb.String(), "Maximize\n obj:")
}

func TestWriteLP_BoundShapes(t *testing.T) {
	m := &lp.Model{
		Name:     "bounds",
		NumCols:  5,
		NumRows:  1,
		ColLower: []float64{0, math.Inf(-1), 2, math.Inf(-1), 1},
		ColUpper: []float64{math.Inf(1), math.Inf(1), 2, 4, 3},
		Obj:      []float64{1, 1, 1, 1, 1},
		Cols: []lp.Column{
			{Name: "plain"}, {Name: "fr"}, {Name: "fx"}, {Name: "up"}, {Name: "rng"},
		},
		RowLower:     []float64{math.Inf(-1)},
		RowUpper:     []float64{10},
		Rows:         []lp.Row{{Name: "cap", Family: "cap", Rel: model.Le}},
		A:            []lp.Triplet{{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 1, Val: -1}},
		ObjectiveCol: -1,
		ObjectiveRow: -1,
	}
	require.NoError(t, m.Validate())

	var sb strings.Builder
	require.NoError(t, m.WriteLP(&sb, lp.Minimize))
	out := sb.String()

	require.Contains(t, out, " cap: plain - fr <= 10")
	require.NotContains(t, out, "plain free")
	require.Contains(t, out, " fr free\n")
	require.Contains(t, out, " fx = 2\n")
	require.Contains(t, out, " -infinity <= up <= 4\n")
	require.Contains(t, out, " 1 <= rng <= 3\n")
}

func TestWriteLP_ObjectiveVarComment(t *testing.T) {
	m := model.New("t")
	s, err := m.DefineSet("s", "a")
	require.NoError(t, err)
	x, err := m.DeclareVars("x", s, 0, math.Inf(1))
	require.NoError(t, err)
	xa, err := x.At("a")
	require.NoError(t, err)
	z, err := m.DeclareScalarVar("z", math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	_, err = m.AddRow("floor", model.Ge, model.NewExpr(model.T(xa, 1)), 1)
	require.NoError(t, err)
	def, err := m.AddRow("zDef", model.Eq, model.NewExpr(model.T(z, 1), model.T(xa, -2)), 0)
	require.NoError(t, err)
	require.NoError(t, m.SetObjectiveVar(z, def))

	cm, err := lp.Compile(m)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, cm.WriteLP(&sb, lp.Minimize))
	out := sb.String()
	require.Contains(t, out, "\\ objective variable z defined by row zDef")
	require.Contains(t, out, " obj: z\n")
	require.Contains(t, out, " zDef: - 2 x_a + z = 0")
}

func TestWriteLP_InvalidModelRefused(t *testing.T) {
	m := &lp.Model{NumCols: 1} // arrays missing
	var sb strings.Builder
	err := m.WriteLP(&sb, lp.Minimize)
	require.ErrorIs(t, err, lp.ErrInconsistentDims)
	require.Zero(t, sb.Len())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "minimize", lp.Minimize.String())
	require.Equal(t, "maximize", lp.Maximize.String())
}
