package qregister

/*
QFT applies the quantum Fourier transform to the window: a Hadamard on
each bit followed by controlled dyadic phase rotations from every
higher bit. The output keeps this engine's conventional bit order and
is not bit-reversed at the end; callers that need the reverse apply it
themselves.
*/
func (r *Register) QFT(start, length int) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	end := start + length
	for i := start; i < end; i++ {
		if err := r.H(i); err != nil {
			return err
		}
		for j := 1; j < end-i; j++ {
			if err := r.CRTDyad(1, 1<<j, i+j, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// ZeroPhaseFlip flips the phase of every amplitude where the window
// equals zero, the quantum analogue of a zero flag.
func (r *Register) ZeroPhaseFlip(start, length int) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	lengthPower := uint64(1) << length
	regMask := (lengthPower - 1) << start

	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		if lcv&^regMask == lcv {
			r.stateVec[lcv] = -r.stateVec[lcv]
		}
	})
	return nil
}

// CPhaseFlipIfLess flips the phase where the window value is less than
// greaterPerm and the flag qubit is set. The 6502 uses its carry flag
// also as a greater-than/less-than flag, for the CMP operation.
func (r *Register) CPhaseFlipIfLess(greaterPerm uint64, start, length, flagIndex int) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	if err := r.checkQubit(flagIndex); err != nil {
		return err
	}
	regMask := ((uint64(1) << length) - 1) << start
	flagMask := uint64(1) << flagIndex

	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		if (lcv&regMask)>>start < greaterPerm && lcv&flagMask == flagMask {
			r.stateVec[lcv] = -r.stateVec[lcv]
		}
	})
	return nil
}

// PhaseFlip flips the global phase, equivalent to Z X Z X on any one
// bit of the register.
func (r *Register) PhaseFlip() {
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		r.stateVec[lcv] = -r.stateVec[lcv]
	})
}
