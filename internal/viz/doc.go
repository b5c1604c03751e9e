// Package viz renders particle sets for the terminal.
//
// Output is styled with lipgloss from one of the built-in themes:
//
//   - [Styles.ParticleTable]: bordered table of a particle set
//   - [Styles.Summary]: titled key/value panel for aggregate quantities
//   - [Styles.Sparkline]: one-line bar chart
//   - [Plot]: asciigraph line graph with engineering-unit rescaling
//
// Styles degrade to plain text when the output is not a color terminal.
package viz
