// Package numfmt renders floating-point numbers from short format
// specifiers under a locale.
//
// Specifiers are a letter with an optional precision:
//
//   - G[n]: general. Shortest round-trip digits when n is omitted,
//     scientific notation for exponents below -4 or at or above the
//     precision (15 when omitted).
//   - R: round-trip, identical to a bare G.
//   - F[n]: fixed point, 2 decimals by default.
//   - E[n]: scientific, 6 decimals by default, three exponent digits.
//   - N[n]: fixed point with digit grouping, 2 decimals by default.
//
// A lower-case letter lower-cases the exponent marker.
//
// # Locales
//
// The decimal symbol and group separator are taken from CLDR data through
// golang.org/x/text. [Invariant] uses '.' and ',' regardless of the
// environment:
//
//	f := numfmt.MustParse("F2", language.German)
//	f.FormatFloat(1234.5) // "1234,50"
package numfmt
