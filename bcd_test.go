package qregister

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBCDArithmetic(t *testing.T) {
	Convey("Given an 8 bit register holding packed decimal 25", t, func(c C) {
		r, err := New(8, 0x25, WithSeed(6), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("INCBCD adds in decimal with nibble carry", func(c C) {
			c.So(r.INCBCD(17, 0, 8), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0x42))
		})

		Convey("DECBCD undoes INCBCD", func(c C) {
			c.So(r.INCBCD(17, 0, 8), ShouldBeNil)
			c.So(r.DECBCD(17, 0, 8), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0x25))
		})

		Convey("A window that does not pack whole nibbles is rejected", func(c C) {
			c.So(r.INCBCD(1, 0, 6), ShouldNotBeNil)
			c.So(r.DECBCD(1, 0, 6), ShouldNotBeNil)
		})
	})

	Convey("Given an invalid BCD pattern", t, func(c C) {
		// 0xA5's high nibble exceeds 9.
		r, err := New(8, 0xA5, WithSeed(6), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("The amplitude passes through unchanged", func(c C) {
			c.So(r.INCBCD(1, 0, 8), ShouldBeNil)
			p, err := r.ProbAll(0xA5)
			c.So(err, ShouldBeNil)
			c.So(p, ShouldAlmostEqual, 1.0, testEps)
		})
	})

	Convey("Given a 9 bit register with a carry qubit", t, func(c C) {
		Convey("INCBCDC carries out of the top nibble", func(c C) {
			r, err := New(9, 0x99, WithSeed(6), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.INCBCDC(1, 0, 8, 8), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0x00))
			carry, err := r.M(8)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeTrue)
		})

		Convey("A set carry feeds the next decimal add", func(c C) {
			r, err := New(9, 0x10|(1<<8), WithSeed(6), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.INCBCDC(5, 0, 8, 8), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0x16))
		})

		Convey("DECBCDC borrows out of the top nibble", func(c C) {
			r, err := New(9, 0x00, WithSeed(6), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.DECBCDC(1, 0, 8, 8), ShouldBeNil)
			m, err := r.MReg(0, 8)
			c.So(err, ShouldBeNil)
			c.So(m, ShouldEqual, uint64(0x99))
			carry, err := r.M(8)
			c.So(err, ShouldBeNil)
			c.So(carry, ShouldBeTrue)
		})
	})
}
