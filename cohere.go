package qregister

import (
	"errors"
	"math"

	"github.com/theapemachine/errnie"
)

/*
Cohere combines (a copy of) another register with this one, after this
one's last bit index: the result amplitude at each index is the product
of this register's amplitude over the low bits and the other's over the
high bits. Both registers are normalized first; the other register is
left untouched.
*/
func (r *Register) Cohere(toCopy *Register) error {
	if r.qubitCount+toCopy.qubitCount > maxQubits {
		return errors.New("cohered register would exceed native capacity")
	}

	if r.runningNorm != 1.0 {
		r.normalizeState()
	}
	if toCopy.runningNorm != 1.0 {
		toCopy.normalizeState()
	}

	nQubitCount := r.qubitCount + toCopy.qubitCount
	nMaxQPower := uint64(1) << nQubitCount
	startMask := (uint64(1) << r.qubitCount) - 1
	endMask := ((uint64(1) << toCopy.qubitCount) - 1) << r.qubitCount

	errnie.Info(
		"qregister.Cohere - %v + %v qubits",
		r.qubitCount,
		toCopy.qubitCount,
	)

	nStateVec := make([]complex128, nMaxQPower)
	shift := r.qubitCount
	r.disp.parFor(0, nMaxQPower, func(lcv uint64) {
		nStateVec[lcv] = r.stateVec[lcv&startMask] * toCopy.stateVec[(lcv&endMask)>>shift]
	})

	r.qubitCount = nQubitCount
	r.maxQPower = nMaxQPower
	r.resetStateVec(nStateVec)
	r.updateRunningNorm()
	return nil
}

/*
CohereAll combines (copies of) each register in order, each occupying
the next contiguous qubit block above this one.
*/
func (r *Register) CohereAll(toCopy ...*Register) error {
	nQubitCount := r.qubitCount
	for _, other := range toCopy {
		nQubitCount += other.qubitCount
	}
	if nQubitCount > maxQubits {
		return errors.New("cohered register would exceed native capacity")
	}

	if r.runningNorm != 1.0 {
		r.normalizeState()
	}

	offset := make([]int, len(toCopy))
	mask := make([]uint64, len(toCopy))
	startMask := (uint64(1) << r.qubitCount) - 1

	shift := r.qubitCount
	for i, other := range toCopy {
		if other.runningNorm != 1.0 {
			other.normalizeState()
		}
		mask[i] = ((uint64(1) << other.qubitCount) - 1) << shift
		offset[i] = shift
		shift += other.qubitCount
	}

	nMaxQPower := uint64(1) << nQubitCount
	nStateVec := make([]complex128, nMaxQPower)
	r.disp.parFor(0, nMaxQPower, func(lcv uint64) {
		amp := r.stateVec[lcv&startMask]
		for j, other := range toCopy {
			amp *= other.stateVec[(lcv&mask[j])>>offset[j]]
		}
		nStateVec[lcv] = amp
	})

	r.qubitCount = nQubitCount
	r.maxQPower = nMaxQPower
	r.resetStateVec(nStateVec)
	r.updateRunningNorm()
	return nil
}

/*
Decohere minimally decoheres a window of contiguous bits out of the
register into destination, which must be a freshly initialized register
of exactly the window's length. Both sides are rebuilt from their
marginal probability and a representative phase, the argument of the
last amplitude seen for each pattern. This is a product-state
approximation of the partial trace: it is exact only when the window is
separable from the remainder, and lossy on entangled input.
*/
func (r *Register) Decohere(start, length int, destination *Register) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if destination == nil || destination.qubitCount != length {
		return errors.New("destination must be initialized to the decohered length")
	}

	if r.runningNorm != 1.0 {
		r.normalizeState()
	}

	partPower := uint64(1) << length
	remainderPower := uint64(1) << (r.qubitCount - length)
	mask := (partPower - 1) << start
	startMask := (uint64(1) << start) - 1
	endMask := (r.maxQPower - 1) ^ (mask | startMask)

	partStateProb := make([]float64, partPower)
	remainderStateProb := make([]float64, remainderPower)
	partStateAngle := make([]float64, partPower)
	remainderStateAngle := make([]float64, remainderPower)

	for i := uint64(0); i < r.maxQPower; i++ {
		prob := norm(r.stateVec[i])
		angle := arg(r.stateVec[i])
		partStateProb[(i&mask)>>start] += prob
		partStateAngle[(i&mask)>>start] = angle
		remainderStateProb[(i&startMask)|((i&endMask)>>length)] += prob
		remainderStateAngle[(i&startMask)|((i&endMask)>>length)] = angle
	}

	r.qubitCount = r.qubitCount - length
	r.maxQPower = uint64(1) << r.qubitCount
	r.resetStateVec(make([]complex128, remainderPower))

	for i := uint64(0); i < partPower; i++ {
		destination.stateVec[i] = complex(math.Sqrt(partStateProb[i]), 0) *
			complex(math.Cos(partStateAngle[i]), math.Sin(partStateAngle[i]))
	}

	for i := uint64(0); i < remainderPower; i++ {
		r.stateVec[i] = complex(math.Sqrt(remainderStateProb[i]), 0) *
			complex(math.Cos(remainderStateAngle[i]), math.Sin(remainderStateAngle[i]))
	}

	r.updateRunningNorm()
	destination.updateRunningNorm()
	return nil
}

/*
Dispose traces a window of contiguous bits out of the register and
drops it, with the same product-state approximation as Decohere.
*/
func (r *Register) Dispose(start, length int) error {
	if err := r.checkRange(start, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	if r.runningNorm != 1.0 {
		r.normalizeState()
	}

	partPower := uint64(1) << length
	mask := (partPower - 1) << start
	startMask := (uint64(1) << start) - 1
	endMask := (r.maxQPower - 1) ^ (mask | startMask)
	remainderPower := r.maxQPower >> length

	remainderStateProb := make([]float64, remainderPower)
	remainderStateAngle := make([]float64, remainderPower)

	for i := uint64(0); i < r.maxQPower; i++ {
		prob := norm(r.stateVec[i])
		angle := arg(r.stateVec[i])
		remainderStateProb[(i&startMask)|((i&endMask)>>length)] += prob
		remainderStateAngle[(i&startMask)|((i&endMask)>>length)] = angle
	}

	r.qubitCount = r.qubitCount - length
	r.maxQPower = uint64(1) << r.qubitCount
	r.resetStateVec(make([]complex128, r.maxQPower))

	for i := uint64(0); i < r.maxQPower; i++ {
		r.stateVec[i] = complex(math.Sqrt(remainderStateProb[i]), 0) *
			complex(math.Cos(remainderStateAngle[i]), math.Sin(remainderStateAngle[i]))
	}

	r.updateRunningNorm()
	return nil
}
