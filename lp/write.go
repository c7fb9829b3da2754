// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteLP renders the model as CPLEX-LP-style text: objective section,
// constraint rows with their relations, and a bounds section. The output
// is for humans and debugging tools; names are sanitized for the format
// ("x(A)" becomes "x_A"), which can in principle collide, so the canonical
// names in Cols/Rows remain the source of truth.
func (m *Model) WriteLP(w io.Writer, dir Direction) error {
	if err := m.Validate(); err != nil {
		return err
	}
	lw := &lineWriter{w: w}

	if m.Name != "" {
		lw.printf("\\ Problem: %s\n", m.Name)
	}
	if m.ObjectiveCol >= 0 {
		lw.printf("\\ objective variable %s defined by row %s\n",
			sanitizeName(m.Cols[m.ObjectiveCol].Name), sanitizeName(m.Rows[m.ObjectiveRow].Name))
	}

	header := "Minimize"
	if dir == Maximize {
		header = "Maximize"
	}
	lw.printf("%s\n obj:", header)
	first := true
	for j, v := range m.Obj {
		if v == 0 {
			continue
		}
		lw.term(first, v, sanitizeName(m.Cols[j].Name))
		first = false
	}
	lw.printf("\n")

	lw.printf("Subject To\n")
	for i := 0; i < m.NumRows; i++ {
		m.writeRow(lw, i)
	}

	lw.printf("Bounds\n")
	for j := 0; j < m.NumCols; j++ {
		m.writeBound(lw, j)
	}
	lw.printf("End\n")
	return lw.err
}

// writeRow renders one constraint line. Compiled rows are always one of
// equality / lower-only / upper-only; a two-sided row (hand-built models)
// falls back to a pair of lines.
func (m *Model) writeRow(lw *lineWriter, i int) {
	lo, hi := m.RowLower[i], m.RowUpper[i]
	name := sanitizeName(m.Rows[i].Name)

	emit := func(suffix, rel string, rhs float64) {
		lw.printf(" %s%s:", name, suffix)
		first := true
		for _, t := range m.RowTriplets(i) {
			lw.term(first, t.Val, sanitizeName(m.Cols[t.Col].Name))
			first = false
		}
		lw.printf(" %s %s\n", rel, num(rhs))
	}

	switch {
	case lo == hi:
		emit("", "=", lo)
	case math.IsInf(hi, 1):
		emit("", ">=", lo)
	case math.IsInf(lo, -1):
		emit("", "<=", hi)
	default:
		emit(".lo", ">=", lo)
		emit(".up", "<=", hi)
	}
}

// writeBound renders one bounds line, skipping the LP-format default
// [0, +Inf).
func (m *Model) writeBound(lw *lineWriter, j int) {
	lo, hi := m.ColLower[j], m.ColUpper[j]
	name := sanitizeName(m.Cols[j].Name)
	switch {
	case lo == 0 && math.IsInf(hi, 1):
		// format default, nothing to write
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		lw.printf(" %s free\n", name)
	case lo == hi:
		lw.printf(" %s = %s\n", name, num(lo))
	case math.IsInf(hi, 1):
		lw.printf(" %s >= %s\n", name, num(lo))
	case math.IsInf(lo, -1):
		lw.printf(" -infinity <= %s <= %s\n", name, num(hi))
	default:
		lw.printf(" %s <= %s <= %s\n", num(lo), name, num(hi))
	}
}

// lineWriter tracks the first write error so the render loop stays flat.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// term renders " + 0.6 x_B" / " - x_C" style addends, omitting unit
// coefficients.
func (lw *lineWriter) term(first bool, coef float64, name string) {
	sign := " + "
	if coef < 0 {
		sign = " - "
		coef = -coef
	} else if first {
		sign = " "
	}
	if coef == 1 {
		lw.printf("%s%s", sign, name)
		return
	}
	lw.printf("%s%s %s", sign, num(coef), name)
}

// num renders a float the way LP files expect: plain decimal, no exponent
// for the usual magnitudes.
func num(v float64) string {
	return fmt.Sprintf("%g", v)
}

// sanitizeName maps canonical names onto the LP-format charset.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.TrimRight(b.String(), "_")
}
