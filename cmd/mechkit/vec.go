package main

import (
	"fmt"
	"strconv"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/vector"
)

type vecOp struct {
	arity  int
	scalar bool // second operand is a number
	help   string
	eval   func(a, b vector.Vector, s float64, f numfmt.Formatter) string
}

func renderVec(v vector.Vector, f numfmt.Formatter) string { return v.Render(f) }

var vecOps = map[string]vecOp{
	"add": {2, false, "a + b", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return renderVec(a.Add(b), f)
	}},
	"sub": {2, false, "a - b", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return renderVec(a.Sub(b), f)
	}},
	"mul": {2, true, "a * s", func(a, _ vector.Vector, s float64, f numfmt.Formatter) string {
		return renderVec(a.Mul(s), f)
	}},
	"div": {2, true, "a / s", func(a, _ vector.Vector, s float64, f numfmt.Formatter) string {
		return renderVec(a.Div(s), f)
	}},
	"neg": {1, false, "-a", func(a, _ vector.Vector, _ float64, f numfmt.Formatter) string {
		return renderVec(a.Neg(), f)
	}},
	"dot": {2, false, "a . b", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return f.FormatFloat(a.Dot(b))
	}},
	"cross": {2, false, "a x b", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return renderVec(a.Cross(b), f)
	}},
	"len": {1, false, "|a|", func(a, _ vector.Vector, _ float64, f numfmt.Formatter) string {
		return f.FormatFloat(a.Length())
	}},
	"len2": {1, false, "|a|^2", func(a, _ vector.Vector, _ float64, f numfmt.Formatter) string {
		return f.FormatFloat(a.LengthSquared())
	}},
	"dist": {2, false, "|b - a|", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return f.FormatFloat(a.Distance(b))
	}},
	"dist2": {2, false, "|b - a|^2", func(a, b vector.Vector, _ float64, f numfmt.Formatter) string {
		return f.FormatFloat(a.DistanceSquared(b))
	}},
	"norm": {1, false, "a / |a|", func(a, _ vector.Vector, _ float64, f numfmt.Formatter) string {
		return renderVec(a.Normalize(), f)
	}},
	"cmp": {2, false, "compare |a| with |b| (-1, 0, 1)", func(a, b vector.Vector, _ float64, _ numfmt.Formatter) string {
		return strconv.Itoa(a.Compare(b))
	}},
	"eq": {2, false, "a == b component-wise", func(a, b vector.Vector, _ float64, _ numfmt.Formatter) string {
		return strconv.FormatBool(a.Equal(b))
	}},
}

// evalVec applies op to the textual operands and renders the result with f.
func evalVec(op string, args []string, f numfmt.Formatter) (string, error) {
	o, ok := vecOps[op]
	if !ok {
		return "", fmt.Errorf("unknown operation: %s", op)
	}
	if len(args) != o.arity {
		return "", fmt.Errorf("%s takes %d operand(s), got %d", op, o.arity, len(args))
	}

	a, err := vector.Parse(args[0])
	if err != nil {
		return "", err
	}

	var (
		b vector.Vector
		s float64
	)
	if o.arity == 2 {
		if o.scalar {
			s, err = strconv.ParseFloat(args[1], 64)
		} else {
			b, err = vector.Parse(args[1])
		}
		if err != nil {
			return "", err
		}
	}

	return o.eval(a, b, s, f), nil
}
