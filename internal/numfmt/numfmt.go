package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// generalPrecision is the significant-digit threshold that switches bare G
// output to scientific notation.
const generalPrecision = 15

// Formatter renders float64 values according to a format specifier under
// a locale. The zero value is not usable; build one with Parse or start
// from Invariant.
type Formatter struct {
	kind      rune
	upper     bool
	precision int
	tag       language.Tag
	sym       symbols
}

// Invariant formats with the shortest round-trip general form, '.' as the
// decimal symbol and ',' as the group separator.
var Invariant = Formatter{
	kind:      'G',
	upper:     true,
	precision: -1,
	tag:       language.Und,
	sym:       invariantSymbols,
}

// Parse builds a Formatter from a specifier such as "G", "F3", "e4" or
// "N". An empty specifier means "G".
func Parse(spec string, tag language.Tag) (Formatter, error) {
	f := Formatter{kind: 'G', upper: true, precision: -1, tag: tag}

	if spec != "" {
		c := rune(spec[0])
		k := unicode.ToUpper(c)
		switch k {
		case 'G', 'R', 'F', 'E', 'N':
		default:
			return Formatter{}, &SpecError{Spec: spec, Err: ErrInvalidFormat}
		}

		if rest := spec[1:]; rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil || n < 0 || n > maxPrecision {
				return Formatter{}, &SpecError{Spec: spec, Err: ErrInvalidPrecision}
			}
			f.precision = n
		}

		f.kind = k
		f.upper = c == k
	}

	f.sym = symbolsFor(tag)
	return f, nil
}

// MustParse is like Parse but panics on an invalid specifier.
func MustParse(spec string, tag language.Tag) Formatter {
	f, err := Parse(spec, tag)
	if err != nil {
		panic(err)
	}
	return f
}

// WithLocale returns a copy of f that renders under tag.
func (f Formatter) WithLocale(tag language.Tag) Formatter {
	f.tag = tag
	f.sym = symbolsFor(tag)
	return f
}

// Tag reports the locale of f.
func (f Formatter) Tag() language.Tag { return f.tag }

// Separator is the locale's group separator; composite values place it
// between their fields.
func (f Formatter) Separator() string { return f.sym.group }

// Decimal is the locale's decimal symbol.
func (f Formatter) Decimal() string { return f.sym.decimal }

// Spec returns the specifier f was parsed from, in canonical form.
func (f Formatter) Spec() string {
	k := f.kind
	if !f.upper {
		k = unicode.ToLower(k)
	}
	if f.precision < 0 {
		return string(k)
	}
	return string(k) + strconv.Itoa(f.precision)
}

// FormatFloat renders v. NaN and infinities are spelled out and never
// localized.
func (f Formatter) FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	var s string
	switch f.kind {
	case 'F':
		s = strconv.FormatFloat(v, 'f', f.precisionOr(2), 64)
	case 'E':
		s = scientific(v, f.precisionOr(6), f.upper)
	case 'N':
		s = group(strconv.FormatFloat(v, 'f', f.precisionOr(2), 64))
	case 'R':
		s = general(v, -1, f.upper)
	default:
		s = general(v, f.precision, f.upper)
	}
	return f.sym.localize(s)
}

func (f Formatter) precisionOr(def int) int {
	if f.precision < 0 {
		return def
	}
	return f.precision
}

const maxPrecision = 99

// general picks fixed or scientific notation the way the G specifier
// does: scientific when the decimal exponent is below -4 or reaches the
// precision. prec <= 0 selects the shortest round-trip digits.
func general(v float64, prec int, upper bool) string {
	limit, digits := prec, prec-1
	if prec <= 0 {
		limit, digits = generalPrecision, -1
	}

	s := strconv.FormatFloat(v, 'e', digits, 64)
	mant, exp := splitExponent(s)

	if exp < -4 || exp >= limit {
		return trimFraction(mant) + exponent(exp, 2, upper)
	}
	if digits < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	rounded, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func scientific(v float64, prec int, upper bool) string {
	mant, exp := splitExponent(strconv.FormatFloat(v, 'e', prec, 64))
	return mant + exponent(exp, 3, upper)
}

func splitExponent(s string) (string, int) {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s, 0
	}
	exp, _ := strconv.Atoi(s[i+1:])
	return s[:i], exp
}

func trimFraction(mant string) string {
	if !strings.Contains(mant, ".") {
		return mant
	}
	mant = strings.TrimRight(mant, "0")
	return strings.TrimSuffix(mant, ".")
}

func exponent(exp, minDigits int, upper bool) string {
	var b strings.Builder
	if upper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}
	digits := strconv.Itoa(exp)
	for i := len(digits); i < minDigits; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return b.String()
}

// group inserts ',' every three integer digits of a fixed-point string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
