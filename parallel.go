package qregister

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"sync/atomic"
)

// parallelFunc is the per-index body of a sweep. It may only write to
// amplitude slots addressed by the index it receives.
type parallelFunc func(lcv uint64)

// incrementFunc maps the logical fetch-and-add counter to a physical
// permutation index, used to skip subspaces during a sweep.
type incrementFunc func(lcv uint64) uint64

/*
dispatcher drives data-parallel sweeps over permutation indices. Every
sweep is a fork-join: it spawns a fixed set of workers that pull logical
indices from a shared atomic counter, map them through an increment
function, and run the body, then joins before returning. There is no
locking inside a sweep; safety rests on bodies writing only to the slots
their index addresses.
*/
type dispatcher struct {
	workers int
	metrics *Metrics
}

/*
parForInc iterates the logical counter over [begin, end), mapping each
value through inc before invoking fn. Mapped indices that land at or past
end terminate that worker, which clamps skip-style enumerations to the
register.
*/
func (d *dispatcher) parForInc(begin, end uint64, inc incrementFunc, fn parallelFunc) {
	if d.metrics != nil {
		d.metrics.recordSweep()
	}

	var idx atomic.Uint64
	idx.Store(begin)

	var wg sync.WaitGroup
	for cpu := 0; cpu < d.workers; cpu++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := idx.Add(1) - 1
				if i >= end {
					return
				}
				i = inc(i)
				// Easiest to clamp on end.
				if i >= end {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// parFor invokes fn for every index in [begin, end).
func (d *dispatcher) parFor(begin, end uint64, fn parallelFunc) {
	d.parForInc(begin, end, func(i uint64) uint64 { return i }, fn)
}

/*
parForSkip enumerates the indices whose maskWidth bits starting at
skipMask's position are zero: the pre-image space of an oracle that
writes those bits. For each logical counter value the skipped bits are
opened up by splitting the counter around the mask and shifting the high
half past the hole.
*/
func (d *dispatcher) parForSkip(begin, end, skipMask uint64, maskWidth uint, fn parallelFunc) {
	lowMask := skipMask - 1
	highMask := ^(lowMask | (skipMask<<maskWidth - skipMask))

	d.parForInc(begin, end, func(i uint64) uint64 {
		return ((i << maskWidth) & highMask) | (i & lowMask)
	}, fn)
}

/*
parForMask generalizes parForSkip to any number of disjoint single-bit
holes, supplied in ascending order. The counter is pushed apart one mask
at a time, so the sweep visits exactly the indices with every masked bit
held at zero.
*/
func (d *dispatcher) parForMask(begin, end uint64, maskArray []uint64, qubitCount int, fn parallelFunc) error {
	if len(maskArray) > qubitCount {
		return errors.New("too many masks")
	}
	for i := 1; i < len(maskArray); i++ {
		if maskArray[i] <= maskArray[i-1] {
			return errors.New("masks must be unique and ordered by size")
		}
	}

	masks := make([][2]uint64, len(maskArray))
	for i, q := range maskArray {
		masks[i][0] = q - 1              // low mask
		masks[i][1] = ^(masks[i][0] | q) // high mask
	}

	d.parForInc(begin, end, func(i uint64) uint64 {
		// Push i apart, one mask at a time.
		for _, m := range masks {
			i = ((i << 1) & m[1]) | (i & m[0])
		}
		return i
	}, fn)

	return nil
}

/*
parNorm computes sqrt of the summed squared magnitudes of stateVec in
parallel. Workers accumulate into private partials which are combined
after the join, so no amplitude is read under contention.
*/
func (d *dispatcher) parNorm(maxQPower uint64, stateVec []complex128) float64 {
	var idx atomic.Uint64
	parts := make([]float64, d.workers)

	var wg sync.WaitGroup
	for cpu := 0; cpu < d.workers; cpu++ {
		wg.Add(1)
		go func(cpu int) {
			defer wg.Done()
			sqrNorm := 0.0
			for {
				i := idx.Add(1) - 1
				if i >= maxQPower {
					break
				}
				sqrNorm += norm(stateVec[i])
			}
			parts[cpu] = sqrNorm
		}(cpu)
	}
	wg.Wait()

	nrmSqr := 0.0
	for _, p := range parts {
		nrmSqr += p
	}
	return math.Sqrt(nrmSqr)
}

/*
parProb sums the squared magnitudes of the indices with every bit of
mask set, with the same per-worker partial scheme as parNorm.
*/
func (d *dispatcher) parProb(maxQPower uint64, stateVec []complex128, mask uint64) float64 {
	var idx atomic.Uint64
	parts := make([]float64, d.workers)

	var wg sync.WaitGroup
	for cpu := 0; cpu < d.workers; cpu++ {
		wg.Add(1)
		go func(cpu int) {
			defer wg.Done()
			sum := 0.0
			for {
				i := idx.Add(1) - 1
				if i >= maxQPower {
					break
				}
				if i&mask == mask {
					sum += norm(stateVec[i])
				}
			}
			parts[cpu] = sum
		}(cpu)
	}
	wg.Wait()

	chance := 0.0
	for _, p := range parts {
		chance += p
	}
	return chance
}

// norm is the squared magnitude of a single amplitude.
func norm(amp complex128) float64 {
	return real(amp)*real(amp) + imag(amp)*imag(amp)
}

// arg is the phase angle of a single amplitude.
func arg(amp complex128) float64 {
	return cmplx.Phase(amp)
}
