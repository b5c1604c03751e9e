package vector

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/mechkit/internal/numfmt"
)

// ErrSyntax indicates text that does not describe a vector.
var ErrSyntax = errors.New("vector: invalid syntax")

// String renders v as <x, y, z> with general formatting under the
// invariant locale, not the process locale, so output is the same on every
// machine and parses back with Parse. For the user's locale use
// v.Render(numfmt.MustParse("G", numfmt.Ambient())).
func (v Vector) String() string {
	return v.Render(numfmt.Invariant)
}

// Render renders v as <x, y, z>, each component formatted by f and
// separated by the locale's group separator.
func (v Vector) Render(f numfmt.Formatter) string {
	sep := f.Separator() + " "

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(f.FormatFloat(v.X))
	b.WriteString(sep)
	b.WriteString(f.FormatFloat(v.Y))
	b.WriteString(sep)
	b.WriteString(f.FormatFloat(v.Z))
	b.WriteByte('>')
	return b.String()
}

// Format implements fmt.Formatter. Floating-point verbs and their flags
// apply to each component: fmt.Sprintf("%.2f", v) gives <1.00, 2.00, 3.00>.
func (v Vector) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if s.Flag('#') {
			fmt.Fprintf(s, "vector.Vector{X:%#v, Y:%#v, Z:%#v}", v.X, v.Y, v.Z)
			return
		}
		if _, ok := s.Precision(); !ok {
			io.WriteString(s, v.String())
			return
		}
		verb = 'g'
	case 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		fmt.Fprintf(s, "%%!%c(vector.Vector=%s)", verb, v.String())
		return
	}

	spec := fmt.FormatString(s, verb)
	fmt.Fprintf(s, "<%s, %s, %s>",
		fmt.Sprintf(spec, v.X),
		fmt.Sprintf(spec, v.Y),
		fmt.Sprintf(spec, v.Z),
	)
}

// Parse reads a vector written as <x, y, z>, (x, y, z), [x, y, z] or
// x, y, z. Components use Go float syntax, so the output of String
// parses back to an equal vector.
func Parse(s string) (Vector, error) {
	t := strings.TrimSpace(s)
	if n := len(t); n >= 2 {
		switch t[0] {
		case '<', '(', '[':
			if t[n-1] != closing(t[0]) {
				return Zero, fmt.Errorf("%w: %q: unbalanced brackets", ErrSyntax, s)
			}
			t = t[1 : n-1]
		}
	}

	parts := strings.Split(t, ",")
	if len(parts) != 3 {
		return Zero, fmt.Errorf("%w: %q: want 3 components, got %d", ErrSyntax, s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q: component %d: %v", ErrSyntax, s, i, err)
		}
		c[i] = f
	}
	return FromArray(c), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func closing(open byte) byte {
	switch open {
	case '<':
		return '>'
	case '(':
		return ')'
	}
	return ']'
}

func (v Vector) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vector) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
