package qregister

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasurement(t *testing.T) {
	Convey("Given a superposed qubit", t, func(c C) {
		r, err := New(3, 0, WithSeed(99))
		So(err, ShouldBeNil)
		So(r.H(0), ShouldBeNil)
		So(r.H(1), ShouldBeNil)

		Convey("Measuring twice returns the same outcome", func(c C) {
			first, err := r.M(0)
			c.So(err, ShouldBeNil)
			second, err := r.M(0)
			c.So(err, ShouldBeNil)
			c.So(second, ShouldEqual, first)
		})

		Convey("After measurement the probability is definite", func(c C) {
			m, err := r.M(0)
			c.So(err, ShouldBeNil)
			p, err := r.Prob(0)
			c.So(err, ShouldBeNil)
			if m {
				c.So(p, ShouldAlmostEqual, 1.0, testEps)
			} else {
				c.So(p, ShouldAlmostEqual, 0.0, testEps)
			}
		})

		Convey("Collapse leaves the untouched qubit superposed", func(c C) {
			_, err := r.M(0)
			c.So(err, ShouldBeNil)
			p, err := r.Prob(1)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 0.5, testEps)
		})

		Convey("Out of range measurement is rejected", func(c C) {
			_, err := r.M(3)
			c.So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a determinate register", t, func(c C) {
		r, err := New(8, 5, WithSeed(4), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("MReg reads the full window value", func(c C) {
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(5))
		})

		Convey("MReg8 is the 8 bit special case", func(c C) {
			m, err := r.MReg8(0)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(5))
		})

		Convey("MReg of a narrow window reads only that window", func(c C) {
			m, err := r.MReg(0, 3)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(5))
			m, err = r.MReg(3, 5)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0))
		})
	})

	Convey("Given SetReg on a window", t, func(c C) {
		r, err := New(8, 0, WithSeed(21), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("The window takes the forced value", func(c C) {
			c.So(r.SetReg(2, 3, 5), ShouldBeNil)
			m, err := r.MReg(2, 3)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(5))
		})

		Convey("The whole-register case resets to a basis state", func(c C) {
			c.So(r.HRange(0, 8), ShouldBeNil)
			c.So(r.SetReg(0, 8, 77), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(77))
		})

		Convey("SetPermutation is the whole-register shorthand", func(c C) {
			c.So(r.SetPermutation(123), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(123))
		})
	})

	Convey("Given probability introspection", t, func(c C) {
		r, err := New(4, 0, WithSeed(55))
		So(err, ShouldBeNil)
		So(r.HRange(0, 4), ShouldBeNil)

		Convey("ProbArray sums to one", func(c C) {
			probs := make([]float64, r.MaxQPower())
			c.So(r.ProbArray(probs), ShouldBeNil)
			sum := 0.0
			for _, p := range probs {
				sum += p
			}
			c.So(sum, ShouldAlmostEqual, 1.0, testEps)
		})

		Convey("A wrong-size buffer is rejected", func(c C) {
			c.So(r.ProbArray(make([]float64, 3)), ShouldNotBeNil)
		})

		Convey("ProbAll of an out of range permutation is rejected", func(c C) {
			_, err := r.ProbAll(16)
			c.So(err, ShouldNotBeNil)
		})
	})
}
