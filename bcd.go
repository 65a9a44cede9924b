package qregister

import "errors"

// errBCDLength rejects BCD windows that do not pack whole nibbles.
var errBCDLength = errors.New("BCD word bit length must be a multiple of 4")

/*
The BCD oracles interpret the window as packed 4-bit decimal nibbles
and run classical decimal arithmetic with carry between nibbles. Any
input nibble above 9 is not valid BCD; those amplitudes pass through
unchanged.
*/

// INCBCD adds a decimal integer to the window, without sign or carry.
func (r *Register) INCBCD(toAdd uint64, inOutStart, length int) error {
	if err := r.checkRange(inOutStart, length); err != nil {
		return err
	}
	nibbleCount := length / 4
	if nibbleCount*4 != length {
		return errBCDLength
	}

	inOutMask := ((uint64(1) << length) - 1) << inOutStart
	otherMask := (r.maxQPower - 1) ^ inOutMask

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		otherRes := lcv & otherMask
		partToAdd := toAdd
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		nibbles := make([]int8, nibbleCount)
		isValid := true
		for j := 0; j < nibbleCount; j++ {
			test1 := int8((inOutInt >> (j * 4)) & 15)
			test2 := int8(partToAdd % 10)
			partToAdd /= 10
			nibbles[j] = test1 + test2
			if test1 > 9 {
				isValid = false
			}
		}
		if isValid {
			outInt := uint64(0)
			for j := 0; j < nibbleCount; j++ {
				if nibbles[j] > 9 {
					nibbles[j] -= 10
					if j+1 < nibbleCount {
						nibbles[j+1]++
					}
				}
				outInt |= uint64(nibbles[j]) << (j * 4)
			}
			nStateVec[(outInt<<inOutStart)|otherRes] = r.stateVec[lcv]
		} else {
			nStateVec[lcv] = r.stateVec[lcv]
		}
	})
	r.resetStateVec(nStateVec)
	return nil
}

/*
INCBCDC adds a decimal integer to the window with carry-in and
carry-out in the carry qubit. The carry is measured and cleared first;
a decimal carry out of the top nibble entangles the carry bit in the
result.
*/
func (r *Register) INCBCDC(toAdd uint64, inOutStart, length, carryIndex int) error {
	if err := r.checkRange(inOutStart, length); err != nil {
		return err
	}
	if err := r.checkQubit(carryIndex); err != nil {
		return err
	}
	nibbleCount := length / 4
	if nibbleCount*4 != length {
		return errBCDLength
	}
	hasCarry, err := r.M(carryIndex)
	if err != nil {
		return err
	}
	if hasCarry {
		if err := r.X(carryIndex); err != nil {
			return err
		}
		toAdd++
	}

	inOutMask := ((uint64(1) << length) - 1) << inOutStart
	carryMask := uint64(1) << carryIndex
	otherMask := (r.maxQPower - 1) ^ (inOutMask | carryMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		partToAdd := toAdd
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		nibbles := make([]int8, nibbleCount)
		isValid := true
		for j := 0; j < nibbleCount; j++ {
			test1 := int8((inOutInt >> (j * 4)) & 15)
			test2 := int8(partToAdd % 10)
			partToAdd /= 10
			nibbles[j] = test1 + test2
			if test1 > 9 || test2 > 9 {
				isValid = false
			}
		}
		if isValid {
			outInt := uint64(0)
			carryRes := uint64(0)
			for j := 0; j < nibbleCount; j++ {
				if nibbles[j] > 9 {
					nibbles[j] -= 10
					if j+1 < nibbleCount {
						nibbles[j+1]++
					} else {
						carryRes = carryMask
					}
				}
				outInt |= uint64(nibbles[j]) << (j * 4)
			}
			outRes := (outInt << inOutStart) | otherRes | carryRes
			nStateVec[outRes] = r.stateVec[lcv]
		} else {
			nStateVec[lcv] = r.stateVec[lcv]
		}
	})
	r.resetStateVec(nStateVec)
	return nil
}

// DECBCD subtracts a decimal integer from the window, without sign or
// carry.
func (r *Register) DECBCD(toSub uint64, inOutStart, length int) error {
	if err := r.checkRange(inOutStart, length); err != nil {
		return err
	}
	nibbleCount := length / 4
	if nibbleCount*4 != length {
		return errBCDLength
	}

	inOutMask := ((uint64(1) << length) - 1) << inOutStart
	otherMask := (r.maxQPower - 1) ^ inOutMask

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		otherRes := lcv & otherMask
		partToSub := toSub
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		nibbles := make([]int8, nibbleCount)
		isValid := true
		for j := 0; j < nibbleCount; j++ {
			test1 := int8((inOutInt >> (j * 4)) & 15)
			test2 := int8(partToSub % 10)
			partToSub /= 10
			nibbles[j] = test1 - test2
			if test1 > 9 {
				isValid = false
			}
		}
		if isValid {
			outInt := uint64(0)
			for j := 0; j < nibbleCount; j++ {
				if nibbles[j] < 0 {
					nibbles[j] += 10
					if j+1 < nibbleCount {
						nibbles[j+1]--
					}
				}
				outInt |= uint64(nibbles[j]) << (j * 4)
			}
			nStateVec[(outInt<<inOutStart)|otherRes] = r.stateVec[lcv]
		} else {
			nStateVec[lcv] = r.stateVec[lcv]
		}
	})
	r.resetStateVec(nStateVec)
	return nil
}

/*
DECBCDC subtracts a decimal integer from the window with borrow-in and
borrow-out in the carry qubit, measured and cleared first.
*/
func (r *Register) DECBCDC(toSub uint64, inOutStart, length, carryIndex int) error {
	if err := r.checkRange(inOutStart, length); err != nil {
		return err
	}
	if err := r.checkQubit(carryIndex); err != nil {
		return err
	}
	nibbleCount := length / 4
	if nibbleCount*4 != length {
		return errBCDLength
	}
	hasCarry, err := r.M(carryIndex)
	if err != nil {
		return err
	}
	if hasCarry {
		if err := r.X(carryIndex); err != nil {
			return err
		}
		toSub++
	}

	inOutMask := ((uint64(1) << length) - 1) << inOutStart
	carryMask := uint64(1) << carryIndex
	otherMask := (r.maxQPower - 1) ^ (inOutMask | carryMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		partToSub := toSub
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		nibbles := make([]int8, nibbleCount)
		isValid := true
		for j := 0; j < nibbleCount; j++ {
			test1 := int8((inOutInt >> (j * 4)) & 15)
			test2 := int8(partToSub % 10)
			partToSub /= 10
			nibbles[j] = test1 - test2
			if test1 > 9 {
				isValid = false
			}
		}
		if isValid {
			outInt := uint64(0)
			carryRes := uint64(0)
			for j := 0; j < nibbleCount; j++ {
				if nibbles[j] < 0 {
					nibbles[j] += 10
					if j+1 < nibbleCount {
						nibbles[j+1]--
					} else {
						carryRes = carryMask
					}
				}
				outInt |= uint64(nibbles[j]) << (j * 4)
			}
			outRes := (outInt << inOutStart) | otherRes | carryRes
			nStateVec[outRes] = r.stateVec[lcv]
		} else {
			nStateVec[lcv] = r.stateVec[lcv]
		}
	})
	r.resetStateVec(nStateVec)
	return nil
}
