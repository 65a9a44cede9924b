package qregister

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQFT(t *testing.T) {
	Convey("Given QFT of the zero state", t, func(c C) {
		r, err := New(4, 0, WithSeed(101), WithPhase(1))
		So(err, ShouldBeNil)
		So(r.QFT(0, 4), ShouldBeNil)

		Convey("Every permutation is equally likely", func(c C) {
			for k := uint64(0); k < 16; k++ {
				p, err := r.ProbAll(k)
				c.So(err, ShouldBeNil)
				c.So(p, ShouldAlmostEqual, 1.0/16.0, 1e-9)
			}
		})

		Convey("The amplitudes match a classical Fourier transform of the input", func(c C) {
			plan, err := algofft.NewPlan64(16)
			c.So(err, ShouldBeNil)

			in := make([]complex128, 16)
			in[0] = 1
			out := make([]complex128, 16)
			c.So(plan.Forward(out, in), ShouldBeNil)

			// The transform of a unit impulse at zero is flat in any
			// sign or scaling convention; dividing by the zero bin
			// cancels the library's normalization and the engine's
			// output differs only by 1/sqrt(N).
			raw := amps(r)
			for k := range raw {
				ref := out[k] / out[0] / 4.0
				c.So(real(raw[k]), ShouldAlmostEqual, real(ref), 1e-9)
				c.So(imag(raw[k]), ShouldAlmostEqual, imag(ref), 1e-9)
			}
		})
	})

	Convey("Given QFT of a nonzero basis state", t, func(c C) {
		r, err := New(3, 5, WithSeed(101), WithPhase(1))
		So(err, ShouldBeNil)
		So(r.QFT(0, 3), ShouldBeNil)

		Convey("The distribution is still flat", func(c C) {
			for k := uint64(0); k < 8; k++ {
				p, err := r.ProbAll(k)
				c.So(err, ShouldBeNil)
				c.So(p, ShouldAlmostEqual, 1.0/8.0, 1e-9)
			}
		})
	})
}

func TestPhaseFlips(t *testing.T) {
	Convey("Given ZeroPhaseFlip", t, func(c C) {
		r, err := New(3, 0, WithSeed(7), WithPhase(1))
		So(err, ShouldBeNil)
		So(r.H(0), ShouldBeNil)

		Convey("Only the window-zero amplitudes are negated", func(c C) {
			c.So(r.ZeroPhaseFlip(0, 2), ShouldBeNil)
			raw := amps(r)
			c.So(real(raw[0]), ShouldAlmostEqual, -1.0/1.4142135623730951, testEps)
			c.So(real(raw[1]), ShouldAlmostEqual, 1.0/1.4142135623730951, testEps)
		})
	})

	Convey("Given CPhaseFlipIfLess", t, func(c C) {
		Convey("A set flag flips amplitudes below the threshold", func(c C) {
			// Window holds 2, flag at bit 3 set.
			r, err := New(4, 2|(1<<3), WithSeed(7), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.CPhaseFlipIfLess(5, 0, 3, 3), ShouldBeNil)
			raw := amps(r)
			c.So(real(raw[2|(1<<3)]), ShouldAlmostEqual, -1.0, testEps)
		})

		Convey("A clear flag leaves the state alone", func(c C) {
			r, err := New(4, 2, WithSeed(7), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.CPhaseFlipIfLess(5, 0, 3, 3), ShouldBeNil)
			raw := amps(r)
			c.So(real(raw[2]), ShouldAlmostEqual, 1.0, testEps)
		})

		Convey("A window at or above the threshold is untouched", func(c C) {
			r, err := New(4, 6|(1<<3), WithSeed(7), WithPhase(1))
			c.So(err, ShouldBeNil)
			c.So(r.CPhaseFlipIfLess(5, 0, 3, 3), ShouldBeNil)
			raw := amps(r)
			c.So(real(raw[6|(1<<3)]), ShouldAlmostEqual, 1.0, testEps)
		})
	})

	Convey("Given PhaseFlip", t, func(c C) {
		r, err := New(2, 3, WithSeed(7), WithPhase(1))
		So(err, ShouldBeNil)

		Convey("Every amplitude is negated", func(c C) {
			r.PhaseFlip()
			raw := amps(r)
			c.So(real(raw[3]), ShouldAlmostEqual, -1.0, testEps)
		})

		Convey("Applying it twice is the identity", func(c C) {
			before := amps(r)
			r.PhaseFlip()
			r.PhaseFlip()
			c.So(sameState(amps(r), before), ShouldBeTrue)
		})
	})
}
