package particle_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

var _ = Describe("Particle", func() {
	var electron particle.Particle

	BeforeEach(func() {
		electron = particle.New("electron", vector.Zero, vector.New(1, 0, 0), 9.11e-31, -1.602e-19)
	})

	Describe("New", func() {
		It("stores every field verbatim", func() {
			Expect(electron.Name).To(Equal("electron"))
			Expect(electron.Position).To(Equal(vector.Zero))
			Expect(electron.Velocity).To(Equal(vector.I))
			Expect(electron.Mass).To(Equal(9.11e-31))
			Expect(electron.Charge).To(Equal(-1.602e-19))
		})

		It("accepts physically meaningless values", func() {
			p := particle.New("", vector.Zero, vector.Zero, -1, math.NaN())
			Expect(p.Name).To(BeEmpty())
			Expect(p.Mass).To(Equal(-1.0))
			Expect(math.IsNaN(p.Charge)).To(BeTrue())
		})
	})

	Describe("Equal", func() {
		It("is true for identical fields", func() {
			twin := particle.New("electron", vector.New(0, 0, 0), vector.I, 9.11e-31, -1.602e-19)
			Expect(electron.Equal(twin)).To(BeTrue())
			Expect(twin.Equal(electron)).To(BeTrue())
			Expect(electron.Equal(electron)).To(BeTrue())
		})

		DescribeTable("is false when one field differs",
			func(change func(p particle.Particle) particle.Particle) {
				other := change(electron)
				Expect(electron.Equal(other)).To(BeFalse())
				Expect(other.Equal(electron)).To(BeFalse())
			},
			Entry("name", func(p particle.Particle) particle.Particle { p.Name = "positron"; return p }),
			Entry("position", func(p particle.Particle) particle.Particle { p.Position = vector.K; return p }),
			Entry("velocity", func(p particle.Particle) particle.Particle { p.Velocity = vector.J; return p }),
			Entry("mass", func(p particle.Particle) particle.Particle { p.Mass = 9.10e-31; return p }),
			Entry("charge", func(p particle.Particle) particle.Particle { p.Charge = 1.602e-19; return p }),
		)
	})

	Describe("Hash", func() {
		It("agrees for equal particles", func() {
			twin := electron
			Expect(twin.Hash()).To(Equal(electron.Hash()))
		})

		It("ignores name, velocity and charge", func() {
			positron := particle.New("positron", vector.Zero, vector.J, 9.11e-31, 1.602e-19)
			Expect(positron.Equal(electron)).To(BeFalse())
			Expect(positron.Hash()).To(Equal(electron.Hash()))
		})

		It("changes with position or mass", func() {
			moved := particle.New("electron", vector.K, vector.I, 9.11e-31, -1.602e-19)
			heavier := particle.New("electron", vector.Zero, vector.I, 1.67e-27, -1.602e-19)
			Expect(moved.Hash()).NotTo(Equal(electron.Hash()))
			Expect(heavier.Hash()).NotTo(Equal(electron.Hash()))
		})
	})

	Describe("String", func() {
		It("labels every field", func() {
			Expect(electron.String()).To(Equal(
				"Particle: (Name = electron, r = <0, 0, 0>, v = <1, 0, 0>, Mass = 9.11E-31 kg, q = -1.602E-19 C)"))
		})

		It("contains the expected substrings", func() {
			s := electron.String()
			Expect(s).To(ContainSubstring("Name = electron"))
			Expect(s).To(ContainSubstring("Mass = 9.11E-31 kg"))
			Expect(s).To(ContainSubstring("q = -1.602E-19 C"))
		})
	})

	Describe("Render", func() {
		It("applies the format to every number", func() {
			f := numfmt.MustParse("E2", language.Und)
			Expect(electron.Render(f)).To(Equal(
				"Particle: (Name = electron, r = <0.00E+000, 0.00E+000, 0.00E+000>, " +
					"v = <1.00E+000, 0.00E+000, 0.00E+000>, Mass = 9.11E-031 kg, q = -1.60E-019 C)"))
		})

		It("uses the locale's separators", func() {
			f := numfmt.MustParse("G", language.German)
			Expect(electron.Render(f)).To(Equal(
				"Particle: (Name = electron. r = <0. 0. 0>. v = <1. 0. 0>. Mass = 9,11E-31 kg. q = -1,602E-19 C)"))
		})
	})

	Describe("derived quantities", func() {
		proton := particle.New("proton", vector.Zero, vector.New(3, 4, 0), 2, 1)

		It("computes speed, momentum and kinetic energy", func() {
			Expect(proton.Speed()).To(BeNumerically("~", 5, 1e-12))
			Expect(proton.Momentum()).To(Equal(vector.New(6, 8, 0)))
			Expect(proton.KineticEnergy()).To(BeNumerically("~", 25, 1e-12))
		})
	})
})
