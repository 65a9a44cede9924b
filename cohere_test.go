package qregister

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestComposition(t *testing.T) {
	Convey("Given two basis-state registers", t, func(c C) {
		a, err := New(2, 1, WithSeed(3), WithPhase(1))
		So(err, ShouldBeNil)
		b, err := New(2, 2, WithSeed(3), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("Cohere concatenates with the copy in the high bits", func(c C) {
			c.So(a.Cohere(b), ShouldBeNil)
			c.So(a.QubitCount(), ShouldEqual, 4)
			p, err := a.ProbAll(1 | (2 << 2))
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})

		Convey("The cohered source register is untouched", func(c C) {
			c.So(a.Cohere(b), ShouldBeNil)
			c.So(b.QubitCount(), ShouldEqual, 2)
			p, err := b.ProbAll(2)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})

		Convey("CohereAll stacks several registers in order", func(c C) {
			d, err := New(1, 1, WithSeed(3), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(a.CohereAll(b, d), ShouldBeNil)
			c.So(a.QubitCount(), ShouldEqual, 5)
			p, err := a.ProbAll(1 | (2 << 2) | (1 << 4))
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})
	})

	Convey("Given a freshly cohered separable region", t, func(c C) {
		a, err := New(2, 1, WithSeed(5), WithPhase(1))
		So(err, ShouldBeNil)
		b, err := New(2, 2, WithSeed(5), WithPhase(1))
		So(err, ShouldBeNil)
		So(a.Cohere(b), ShouldBeNil)

		Convey("Decohere extracts it back out intact", func(c C) {
			dest, err := New(2, 0, WithSeed(5), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(a.Decohere(2, 2, dest), ShouldBeNil)

			c.So(a.QubitCount(), ShouldEqual, 2)
			p, err := a.ProbAll(1)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)

			p, err = dest.ProbAll(2)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})

		Convey("A destination of the wrong width is rejected", func(c C) {
			dest, err := New(3, 0, WithSeed(5))
			c.So(err, ShouldBeNil)
			c.So(a.Decohere(2, 2, dest), ShouldNotBeNil)
		})

		Convey("Dispose drops the region", func(c C) {
			c.So(a.Dispose(2, 2), ShouldBeNil)
			c.So(a.QubitCount(), ShouldEqual, 2)
			p, err := a.ProbAll(1)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})
	})

	Convey("Given an interior window of a basis-state register", t, func(c C) {
		r, err := New(4, 0b1001, WithSeed(9), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("Dispose of interior bits stitches the remainder together", func(c C) {
			c.So(r.Dispose(1, 2), ShouldBeNil)
			c.So(r.QubitCount(), ShouldEqual, 2)
			p, err := r.ProbAll(0b11)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})
	})
}
