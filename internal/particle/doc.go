// Package particle provides an immutable charged point mass built on
// [vector.Vector].
//
// A [Particle] is compared field by field and formatted as
//
//	Particle: (Name = electron, r = <0, 0, 0>, v = <1, 0, 0>, Mass = 9.11E-31 kg, q = -1.602E-19 C)
//
// Nothing is validated: empty names and zero, negative or NaN masses are
// stored as given. [Set] adds ordering by magnitude and a few aggregate
// quantities (total mass, momentum, center of mass). There are no forces
// or time stepping here.
package particle
