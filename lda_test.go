package qregister

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSuperposedLDA(t *testing.T) {
	Convey("Given a superposed 3 bit index and an 8 bit value window", t, func(c C) {
		table := []byte{10, 20, 30, 40, 50, 60, 70, 80}
		r, err := New(11, 0, WithSeed(19), WithPhase(1))
		So(err, ShouldBeNil)
		So(r.HRange(0, 3), ShouldBeNil)

		Convey("The load returns the table's expectation", func(c C) {
			avg, err := r.SuperposedLDA(0, 3, 3, 8, table)
			c.So(err, ShouldBeNil)
			c.So(avg, ShouldEqual, uint64(45))
		})

		Convey("Every table value is loaded with equal weight", func(c C) {
			_, err := r.SuperposedLDA(0, 3, 3, 8, table)
			c.So(err, ShouldBeNil)
			for k := uint64(0); k < 8; k++ {
				p, err := r.ProbAll(k | uint64(table[k])<<3)
				c.So(err, ShouldBeNil)
				c.So(p, ShouldAlmostEqual, 1.0/8.0, 1e-9)
			}
		})

		Convey("A short table is rejected", func(c C) {
			_, err := r.SuperposedLDA(0, 3, 3, 8, table[:4])
			c.So(err, ShouldNotBeNil)
		})

		Convey("Overlapping index and value windows are rejected", func(c C) {
			_, err := r.SuperposedLDA(0, 3, 2, 8, table)
			c.So(err, ShouldNotBeNil)
		})
	})
}

func TestSuperposedADCSBC(t *testing.T) {
	Convey("Given a 1 bit index, an 8 bit value and a carry", t, func(c C) {
		table := []byte{5, 7}
		// Index 0, value window holding 3, carry clear.
		r, err := New(10, 3<<1, WithSeed(19), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("ADC adds the addressed value", func(c C) {
			avg, err := r.SuperposedADC(0, 1, 1, 8, 9, table)
			c.So(err, ShouldBeNil)
			c.So(avg, ShouldEqual, uint64(8))

			m, err := r.MReg(1, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(8))
			carry, err := r.M(9)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeFalse)
		})

		Convey("ADC wraps into the carry", func(c C) {
			c.So(r.SetReg(1, 8, 252), ShouldBeNil)
			_, err := r.SuperposedADC(0, 1, 1, 8, 9, table)
			c.So(err, ShouldBeNil)

			m, err := r.MReg(1, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(1))
			carry, err := r.M(9)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeTrue)
		})

		Convey("SBC with a clear carry borrows in", func(c C) {
			_, err := r.SuperposedSBC(0, 1, 1, 8, 9, table)
			c.So(err, ShouldBeNil)

			// 3 - 5 - 1 borrows: the window wraps and the carry stays
			// clear to flag the borrow out.
			m, err := r.MReg(1, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(253))
			carry, err := r.M(9)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeFalse)
		})

		Convey("SBC with a set carry subtracts exactly", func(c C) {
			c.So(r.SetReg(1, 8, 9), ShouldBeNil)
			c.So(r.X(9), ShouldBeNil)
			_, err := r.SuperposedSBC(0, 1, 1, 8, 9, table)
			c.So(err, ShouldBeNil)

			m, err := r.MReg(1, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(4))
			carry, err := r.M(9)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeTrue)
		})
	})
}
