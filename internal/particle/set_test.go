package particle_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

var _ = Describe("Set", func() {
	var set particle.Set

	BeforeEach(func() {
		set = particle.Set{
			particle.New("far", vector.New(10, 0, 0), vector.New(0, 1, 0), 1, 0),
			particle.New("near", vector.New(1, 0, 0), vector.New(0, 0, 5), 3, -1),
			particle.New("mid-a", vector.New(0, 2, 0), vector.New(2, 0, 0), 1, 1),
			particle.New("mid-b", vector.New(0, 0, -2), vector.New(0, -2, 0), 1, 1),
		}
	})

	names := func(s particle.Set) []string {
		out := make([]string, len(s))
		for i, p := range s {
			out[i] = p.Name
		}
		return out
	}

	It("sorts by position magnitude, keeping ties in order", func() {
		sorted := set.SortedBy(particle.ByPosition)
		Expect(names(sorted)).To(Equal([]string{"near", "mid-a", "mid-b", "far"}))
	})

	It("sorts by speed", func() {
		sorted := set.SortedBy(particle.ByVelocity)
		Expect(names(sorted)).To(Equal([]string{"far", "mid-a", "mid-b", "near"}))
	})

	It("does not reorder the receiver", func() {
		_ = set.SortedBy(particle.ByMomentum)
		Expect(names(set)).To(Equal([]string{"far", "near", "mid-a", "mid-b"}))
	})

	It("sorts NaN magnitudes last, keeping their order", func() {
		nan := math.NaN()
		mixed := particle.Set{
			particle.New("nan-1", vector.New(nan, 0, 0), vector.Zero, 1, 0),
			particle.New("big", vector.New(9, 0, 0), vector.Zero, 1, 0),
			particle.New("nan-2", vector.New(0, nan, 0), vector.Zero, 1, 0),
			particle.New("small", vector.New(1, 0, 0), vector.Zero, 1, 0),
			particle.New("inf", vector.New(math.Inf(-1), 0, 0), vector.Zero, 1, 0),
			particle.New("zero", vector.Zero, vector.Zero, 1, 0),
		}

		sorted := mixed.SortedBy(particle.ByPosition)
		Expect(names(sorted)).To(Equal([]string{"zero", "small", "big", "inf", "nan-1", "nan-2"}))
	})

	It("sorts a NaN momentum last", func() {
		withNaN := append(particle.Set{
			particle.New("nan-mass", vector.Zero, vector.New(1, 0, 0), math.NaN(), 0),
		}, set...)

		sorted := withNaN.SortedBy(particle.ByMomentum)
		Expect(sorted[len(sorted)-1].Name).To(Equal("nan-mass"))
	})

	It("finds particles by name", func() {
		p, ok := set.Find("near")
		Expect(ok).To(BeTrue())
		Expect(p.Mass).To(Equal(3.0))

		_, ok = set.Find("missing")
		Expect(ok).To(BeFalse())
	})

	It("compares element-wise", func() {
		Expect(set.Equal(append(particle.Set(nil), set...))).To(BeTrue())
		Expect(set.Equal(set[:2])).To(BeFalse())
		Expect(set.Equal(set.SortedBy(particle.ByPosition))).To(BeFalse())
	})

	It("aggregates mass, charge, momentum and energy", func() {
		Expect(set.TotalMass()).To(Equal(6.0))
		Expect(set.TotalCharge()).To(Equal(1.0))
		Expect(set.Momentum()).To(Equal(vector.New(2, -1, 15)))
		Expect(set.KineticEnergy()).To(BeNumerically("~", 0.5+37.5+2+2, 1e-12))
	})

	It("computes the center of mass", func() {
		com := set.CenterOfMass()
		Expect(com.X).To(BeNumerically("~", 13.0/6, 1e-12))
		Expect(com.Y).To(BeNumerically("~", 2.0/6, 1e-12))
		Expect(com.Z).To(BeNumerically("~", -2.0/6, 1e-12))
	})

	It("has no center of mass without mass", func() {
		com := particle.Set{particle.New("ghost", vector.One, vector.Zero, 0, 0)}.CenterOfMass()
		Expect(math.IsNaN(com.X)).To(BeTrue())
	})
})
