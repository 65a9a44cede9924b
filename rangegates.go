package qregister

/*
XRange applies X to every bit of the window in one permutation sweep
instead of length kernel passes. This is the template basically all
register-wise gates follow: form masks for the involved and uninvolved
bits, then transfer each amplitude to the index whose involved bits are
transformed, here by inversion, into a fresh buffer.
*/
func (r *Register) XRange(start, length int) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	// Single bit operations are better optimized for this special case.
	if length == 1 {
		return r.X(start)
	}

	inOutMask := ((uint64(1) << length) - 1) << start
	otherMask := (r.maxQPower - 1) ^ inOutMask

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		otherRes := lcv & otherMask
		inOutRes := ^lcv & inOutMask
		nStateVec[inOutRes|otherRes] = r.stateVec[lcv]
	})
	r.resetStateVec(nStateVec)
	return nil
}

/*
SwapRange exchanges two equal-length bit windows. Overlapping windows
fall back to bit-wise swaps; disjoint windows exchange in a single
permutation sweep.
*/
func (r *Register) SwapRange(start1, start2, length int) error {
	if err := r.checkRange(start1, length); err != nil {
		return err
	}
	if err := r.checkRange(start2, length); err != nil {
		return err
	}
	if length == 1 {
		return r.Swap(start1, start2)
	}

	distance := start1 - start2
	if distance < 0 {
		distance = -distance
	}
	if distance < length {
		for i := 0; i < length; i++ {
			if err := r.Swap(start1+i, start2+i); err != nil {
				return err
			}
		}
		return nil
	}

	reg1Mask := ((uint64(1) << length) - 1) << start1
	reg2Mask := ((uint64(1) << length) - 1) << start2
	otherMask := (r.maxQPower - 1) ^ (reg1Mask | reg2Mask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		otherRes := lcv & otherMask
		reg1Res := ((lcv & reg1Mask) >> start1) << start2
		reg2Res := ((lcv & reg2Mask) >> start2) << start1
		nStateVec[reg1Res|reg2Res|otherRes] = r.stateVec[lcv]
	})
	r.resetStateVec(nStateVec)
	return nil
}

// HRange applies the Hadamard gate to each bit of the window.
func (r *Register) HRange(start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.H(start + lcv); err != nil {
			return err
		}
	}
	return nil
}

// YRange applies the Pauli y matrix to each bit of the window.
func (r *Register) YRange(start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.Y(start + lcv); err != nil {
			return err
		}
	}
	return nil
}

// ZRange applies the Pauli z matrix to each bit of the window.
func (r *Register) ZRange(start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.Z(start + lcv); err != nil {
			return err
		}
	}
	return nil
}

// RTRange rotates each bit of the window around the |1> state.
func (r *Register) RTRange(radians float64, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RT(radians, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RTDyadRange is the dyadic-fraction form of RTRange.
func (r *Register) RTDyadRange(numerator, denominator, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RTDyad(numerator, denominator, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RXRange rotates each bit of the window around the Pauli x axis.
func (r *Register) RXRange(radians float64, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RX(radians, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RXDyadRange is the dyadic-fraction form of RXRange.
func (r *Register) RXDyadRange(numerator, denominator, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RXDyad(numerator, denominator, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RYRange rotates each bit of the window around the Pauli y axis.
func (r *Register) RYRange(radians float64, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RY(radians, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RYDyadRange is the dyadic-fraction form of RYRange.
func (r *Register) RYDyadRange(numerator, denominator, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RYDyad(numerator, denominator, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RZRange rotates each bit of the window around the Pauli z axis.
func (r *Register) RZRange(radians float64, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RZ(radians, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// RZDyadRange is the dyadic-fraction form of RZRange.
func (r *Register) RZDyadRange(numerator, denominator, start, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.RZDyad(numerator, denominator, start+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CNOTRange applies CNOT pairwise across two bit ranges.
func (r *Register) CNOTRange(inputStart, targetStart, length int) error {
	if inputStart == targetStart {
		return nil
	}
	for i := 0; i < length; i++ {
		if err := r.CNOT(inputStart+i, targetStart+i); err != nil {
			return err
		}
	}
	return nil
}

// CRTRange applies CRT pairwise across two bit ranges.
func (r *Register) CRTRange(radians float64, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRT(radians, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRTDyadRange is the dyadic-fraction form of CRTRange.
func (r *Register) CRTDyadRange(numerator, denominator, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRTDyad(numerator, denominator, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRXRange applies CRX pairwise across two bit ranges.
func (r *Register) CRXRange(radians float64, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRX(radians, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRXDyadRange is the dyadic-fraction form of CRXRange.
func (r *Register) CRXDyadRange(numerator, denominator, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRXDyad(numerator, denominator, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRYRange applies CRY pairwise across two bit ranges.
func (r *Register) CRYRange(radians float64, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRY(radians, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRYDyadRange is the dyadic-fraction form of CRYRange.
func (r *Register) CRYDyadRange(numerator, denominator, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRYDyad(numerator, denominator, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRZRange applies CRZ pairwise across two bit ranges.
func (r *Register) CRZRange(radians float64, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRZ(radians, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CRZDyadRange is the dyadic-fraction form of CRZRange.
func (r *Register) CRZDyadRange(numerator, denominator, controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CRZDyad(numerator, denominator, controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CYRange applies CY pairwise across two bit ranges.
func (r *Register) CYRange(controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CY(controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}

// CZRange applies CZ pairwise across two bit ranges.
func (r *Register) CZRange(controlStart, targetStart, length int) error {
	for lcv := 0; lcv < length; lcv++ {
		if err := r.CZ(controlStart+lcv, targetStart+lcv); err != nil {
			return err
		}
	}
	return nil
}
