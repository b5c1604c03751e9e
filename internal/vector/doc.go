// Package vector provides an immutable 3D vector for classical-mechanics
// work.
//
// [Vector] is a plain value: every method takes a copy and returns a new
// vector, so values can be shared between goroutines freely.
//
//   - arithmetic: [Vector.Add], [Vector.Sub], [Vector.Mul], [Vector.Div], [Vector.Neg]
//   - products: [Vector.Dot], [Vector.Cross]
//   - geometry: [Vector.Length], [Vector.Distance], [Vector.Normalize]
//   - ordering by magnitude: [Vector.Greater], [Vector.Less], [Vector.Compare]
//
// No operation fails. Division by zero, normalizing the zero vector and
// NaN inputs all surface as IEEE-754 special values in the result.
//
// # Equality and Ordering
//
// [Vector.Equal] (and ==) compares components exactly. The ordering
// methods compare squared lengths instead, so I and J are neither greater
// nor less than each other even though they are not equal.
//
// # Formatting
//
// String renders <x, y, z> using invariant general formatting. Use
// [Vector.Render] with a [numfmt.Formatter] for other specifiers and
// locales, or a float verb such as %.3f:
//
//	v := vector.New(1, 2, 3)
//	v.String()                  // <1, 2, 3>
//	fmt.Sprintf("%.1f", v)      // <1.0, 2.0, 3.0>
//	v.Render(numfmt.MustParse("F2", language.German)) // <1,00. 2,00. 3,00>
package vector
