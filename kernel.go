package qregister

import "errors"

/*
Kernel is the capability boundary between the register and whatever
executes its permutation sweeps. The host CPU implementation below is
the default; an accelerator holding the same state vector off-process
would implement exactly this surface, and nothing above it. Every
higher-level gate and oracle is composed from these operations plus
plain amplitude reads.

Carry-bearing operations receive their carry-in already measured and
cleared by the register; the kernel only runs the permutation sweep.
*/
type Kernel interface {
	Apply2x2(offset1, offset2 uint64, mtrx [4]complex128, qPowersSorted []uint64, doApplyNorm, doCalcNorm bool) error
	ROL(shift, start, length int)
	ROR(shift, start, length int)
	INCC(toAdd uint64, inOutStart, length, carryIndex int)
	DECC(toSub uint64, inOutStart, length, carryIndex int)
	IndexedLDA(indexStart, indexLength, valueStart, valueLength int, values []byte) uint64
	IndexedADC(indexStart, indexLength, valueStart, valueLength, carryIndex int, carryIn uint64, values []byte) uint64
	IndexedSBC(indexStart, indexLength, valueStart, valueLength, carryIndex int, carryIn uint64, values []byte) uint64
}

// hostKernel runs sweeps on the register's own buffer with the
// register's dispatcher.
type hostKernel struct {
	r *Register
}

/*
Apply2x2 applies an arbitrary 2x2 matrix across one acted bit, under any
number of additional control bits. qPowersSorted holds the single-bit
masks of every involved qubit in ascending order; the sweep enumerates
the pre-images with all of those bits zero, and each pre-image p is
expanded to the amplitude pair (p|offset1, p|offset2) the matrix acts
on. Pairs are disjoint across pre-images, so the update is in-place and
race-free.

When doApplyNorm is set the written pair is also divided by the
pre-sweep running norm, consuming it; when doCalcNorm is set the norm is
recomputed from the full vector after the sweep.
*/
func (k *hostKernel) Apply2x2(offset1, offset2 uint64, mtrx [4]complex128, qPowersSorted []uint64, doApplyNorm, doCalcNorm bool) error {
	r := k.r

	for _, qPower := range qPowersSorted {
		if qPower == 0 || qPower >= r.maxQPower {
			return errors.New("qubit mask outside register")
		}
	}

	nrm := complex(1, 0)
	if doApplyNorm {
		nrm = complex(1.0/r.runningNorm, 0)
	}

	err := r.disp.parForMask(0, r.maxQPower, qPowersSorted, r.qubitCount, func(lcv uint64) {
		y0 := r.stateVec[lcv|offset1]
		y1 := r.stateVec[lcv|offset2]
		r.stateVec[lcv|offset1] = nrm * (mtrx[0]*y0 + mtrx[1]*y1)
		r.stateVec[lcv|offset2] = nrm * (mtrx[2]*y0 + mtrx[3]*y1)
	})
	if err != nil {
		return err
	}

	r.metrics.recordGate()

	if doCalcNorm {
		r.updateRunningNorm()
	} else if doApplyNorm {
		// Applying the norm consumes it.
		r.runningNorm = 1.0
	}

	return nil
}

// rotated returns regInt cyclically rotated left by shift within a
// length-bit window.
func rotated(regInt uint64, shift, length int) uint64 {
	lengthMask := (uint64(1) << length) - 1
	return ((regInt << shift) | (regInt >> (length - shift))) & lengthMask
}

/*
ROL cyclically rotates the bits of the window left by shift. Like every
permutation-preserving oracle, it copies each amplitude to the index
with the window transformed and swaps the fresh buffer in.
*/
func (k *hostKernel) ROL(shift, start, length int) {
	r := k.r
	lengthPower := uint64(1) << length
	regMask := (lengthPower - 1) << start
	otherMask := (r.maxQPower - 1) ^ regMask

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		otherRes := lcv & otherMask
		regRes := lcv & regMask
		regInt := regRes >> start
		outInt := rotated(regInt, shift, length)
		nStateVec[(outInt<<start)|otherRes] = r.stateVec[lcv]
	})
	r.resetStateVec(nStateVec)
}

// ROR cyclically rotates the bits of the window right by shift.
func (k *hostKernel) ROR(shift, start, length int) {
	k.ROL(length-shift, start, length)
}

/*
INCC adds toAdd to the window modulo 2^length, entangling the wrap into
the carry bit. The sweep skips the carry subspace so that carry-out is
written by the arithmetic itself.
*/
func (k *hostKernel) INCC(toAdd uint64, inOutStart, length, carryIndex int) {
	r := k.r
	lengthPower := uint64(1) << length
	carryMask := uint64(1) << carryIndex
	inOutMask := (lengthPower - 1) << inOutStart
	otherMask := (r.maxQPower - 1) ^ (inOutMask | carryMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		outInt := inOutInt + toAdd
		var outRes uint64
		if outInt < lengthPower {
			outRes = (outInt << inOutStart) | otherRes
		} else {
			outRes = ((outInt - lengthPower) << inOutStart) | otherRes | carryMask
		}
		nStateVec[outRes] = r.stateVec[lcv]
	})
	r.resetStateVec(nStateVec)
}

/*
DECC subtracts toSub from the window modulo 2^length, entangling the
borrow into the carry bit.
*/
func (k *hostKernel) DECC(toSub uint64, inOutStart, length, carryIndex int) {
	r := k.r
	lengthPower := uint64(1) << length
	carryMask := uint64(1) << carryIndex
	inOutMask := (lengthPower - 1) << inOutStart
	otherMask := (r.maxQPower - 1) ^ (inOutMask | carryMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		inOutRes := lcv & inOutMask
		inOutInt := inOutRes >> inOutStart
		outInt := inOutInt - toSub + lengthPower
		var outRes uint64
		if outInt < lengthPower {
			outRes = (outInt << inOutStart) | otherRes | carryMask
		} else {
			outRes = ((outInt - lengthPower) << inOutStart) | otherRes
		}
		nStateVec[outRes] = r.stateVec[lcv]
	})
	r.resetStateVec(nStateVec)
}

/*
IndexedLDA loads table values into the value window, superposed over
every index-window pattern. The sweep skips the whole value window (the
caller has already cleared it), reads the index bits of each pre-image,
packs the addressed little-endian bytes into an integer and entangles
it with the index. The return value is the classical expectation of the
loaded value over the new state.
*/
func (k *hostKernel) IndexedLDA(indexStart, indexLength, valueStart, valueLength int, values []byte) uint64 {
	r := k.r
	valueBytes := (valueLength + 7) / 8
	inputMask := ((uint64(1) << indexLength) - 1) << indexStart
	skipPower := uint64(1) << valueStart

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, skipPower, uint(valueLength), func(lcv uint64) {
		inputRes := lcv & inputMask
		inputInt := inputRes >> indexStart
		outputInt := uint64(0)
		for j := 0; j < valueBytes; j++ {
			outputInt |= uint64(values[inputInt*uint64(valueBytes)+uint64(j)]) << (8 * j)
		}
		outputRes := outputInt << valueStart
		nStateVec[outputRes|lcv] = r.stateVec[lcv]
	})

	average := k.expectation(nStateVec, valueStart, valueLength)
	r.resetStateVec(nStateVec)
	return average
}

/*
IndexedADC adds table values, plus carry-in, to the value window. Wraps
past 2^valueLength set the carry bit in the destination index.
*/
func (k *hostKernel) IndexedADC(indexStart, indexLength, valueStart, valueLength, carryIndex int, carryIn uint64, values []byte) uint64 {
	r := k.r
	valueBytes := (valueLength + 7) / 8
	lengthPower := uint64(1) << valueLength
	carryMask := uint64(1) << carryIndex
	inputMask := ((uint64(1) << indexLength) - 1) << indexStart
	outputMask := (lengthPower - 1) << valueStart
	otherMask := (r.maxQPower - 1) &^ (inputMask | outputMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		inputRes := lcv & inputMask
		inputInt := inputRes >> indexStart
		outputRes := lcv & outputMask

		outputInt := uint64(0)
		for j := 0; j < valueBytes; j++ {
			outputInt |= uint64(values[inputInt*uint64(valueBytes)+uint64(j)]) << (8 * j)
		}
		outputInt += (outputRes >> valueStart) + carryIn

		carryRes := uint64(0)
		if outputInt >= lengthPower {
			outputInt -= lengthPower
			carryRes = carryMask
		}
		outputRes = outputInt << valueStart

		nStateVec[outputRes|inputRes|otherRes|carryRes] = r.stateVec[lcv]
	})

	average := k.expectation(nStateVec, valueStart, valueLength)
	r.resetStateVec(nStateVec)
	return average
}

/*
IndexedSBC subtracts table values, minus the borrow encoded in carryIn,
from the value window. A result that does not borrow out sets the carry
bit, matching the subtract-with-carry convention of classical ALUs.
*/
func (k *hostKernel) IndexedSBC(indexStart, indexLength, valueStart, valueLength, carryIndex int, carryIn uint64, values []byte) uint64 {
	r := k.r
	valueBytes := (valueLength + 7) / 8
	lengthPower := uint64(1) << valueLength
	carryMask := uint64(1) << carryIndex
	inputMask := ((uint64(1) << indexLength) - 1) << indexStart
	outputMask := (lengthPower - 1) << valueStart
	otherMask := (r.maxQPower - 1) &^ (inputMask | outputMask)

	nStateVec := make([]complex128, r.maxQPower)
	r.disp.parForSkip(0, r.maxQPower, carryMask, 1, func(lcv uint64) {
		otherRes := lcv & otherMask
		inputRes := lcv & inputMask
		inputInt := inputRes >> indexStart
		outputRes := lcv & outputMask

		outputInt := uint64(0)
		for j := 0; j < valueBytes; j++ {
			outputInt |= uint64(values[inputInt*uint64(valueBytes)+uint64(j)]) << (8 * j)
		}
		outputInt = (outputRes >> valueStart) + (lengthPower - (outputInt + carryIn))

		carryRes := uint64(0)
		if outputInt >= lengthPower {
			outputInt -= lengthPower
			carryRes = carryMask
		}
		outputRes = outputInt << valueStart

		nStateVec[outputRes|inputRes|otherRes|carryRes] = r.stateVec[lcv]
	})

	average := k.expectation(nStateVec, valueStart, valueLength)
	r.resetStateVec(nStateVec)
	return average
}

// expectation computes the rounded classical expectation of the value
// window over nStateVec, returned by the indexed oracles as a test
// convenience.
func (k *hostKernel) expectation(nStateVec []complex128, valueStart, valueLength int) uint64 {
	outputMask := ((uint64(1) << valueLength) - 1) << valueStart
	average := 0.0
	for i := uint64(0); i < k.r.maxQPower; i++ {
		outputInt := (i & outputMask) >> valueStart
		average += norm(nStateVec[i]) * float64(outputInt)
	}
	return uint64(average + 0.5)
}

// applySingleBit lowers an uncontrolled 2x2 matrix onto one qubit.
func (r *Register) applySingleBit(qubit int, mtrx [4]complex128, doCalcNorm bool) error {
	if err := r.checkQubit(qubit); err != nil {
		return err
	}
	qPowers := []uint64{uint64(1) << qubit}
	return r.kern.Apply2x2(0, qPowers[0], mtrx, qPowers, true, doCalcNorm)
}

// applyControlled2x2 lowers a 2x2 matrix onto target within the
// control-set subspace.
func (r *Register) applyControlled2x2(control, target int, mtrx [4]complex128, doCalcNorm bool) error {
	if err := r.checkQubit(control); err != nil {
		return err
	}
	if err := r.checkQubit(target); err != nil {
		return err
	}
	controlPower := uint64(1) << control
	targetPower := uint64(1) << target
	sorted := sortedPowers(controlPower, targetPower)
	return r.kern.Apply2x2(controlPower, controlPower+targetPower, mtrx, sorted, false, doCalcNorm)
}

// applyAntiControlled2x2 lowers a 2x2 matrix onto target within the
// control-clear subspace.
func (r *Register) applyAntiControlled2x2(control, target int, mtrx [4]complex128, doCalcNorm bool) error {
	if err := r.checkQubit(control); err != nil {
		return err
	}
	if err := r.checkQubit(target); err != nil {
		return err
	}
	controlPower := uint64(1) << control
	targetPower := uint64(1) << target
	sorted := sortedPowers(controlPower, targetPower)
	return r.kern.Apply2x2(0, targetPower, mtrx, sorted, false, doCalcNorm)
}

// sortedPowers orders two single-bit masks ascending.
func sortedPowers(a, b uint64) []uint64 {
	if a < b {
		return []uint64{a, b}
	}
	return []uint64{b, a}
}
