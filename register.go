// Package qregister is a multithreaded, universal quantum register
// simulator. It keeps the dense amplitude vector of an n-qubit system
// and applies unitary gates, measurements, register composition and
// arithmetic oracles to it with data-parallel, bit-masked sweeps,
// allowing (nonphysical) register cloning and direct measurement of
// probability and phase.
package qregister

import (
	"errors"
	"math"
	"math/rand"

	"github.com/theapemachine/errnie"
)

// maxQubits bounds a register to permutation indices that fit the
// native index type (and an addressable amplitude slice).
const maxQubits = 62

// minNorm is the squared magnitude below which an amplitude is snapped
// to zero during normalization.
const minNorm = 1e-15

/*
Register is a coherent unit of qubits. It exclusively owns a dense
amplitude vector of length 2^n indexed by permutation: bit q of an index
encodes the computational-basis value of qubit q, little-endian. Gates,
oracles and measurements mutate the vector through fork-join sweeps;
amplitude-scaling operations leave their drift in runningNorm, which
observable operations fold back to one before reading.

A Register is not safe for concurrent use by multiple goroutines; the
parallelism lives inside each operation.
*/
type Register struct {
	qubitCount  int
	maxQPower   uint64
	stateVec    []complex128
	runningNorm float64

	rng  *rand.Rand
	seed int64

	disp    dispatcher
	kern    Kernel
	metrics *Metrics
}

/*
New initializes a register of qubits in the pure basis state initState:
the index whose bits are the desired |0>/|1> pattern. The amplitude of
that state is set on the unit circle at a random angle unless WithPhase
pins it. The kernel variant is selected here; everything above it is
composed against the Kernel interface.
*/
func New(qubits int, initState uint64, opts ...Option) (*Register, error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if qubits < 1 || qubits > maxQubits {
		return nil, errors.New("cannot instantiate a register with greater capacity than native types on emulating system")
	}
	maxQPower := uint64(1) << qubits
	if initState >= maxQPower {
		return nil, errors.New("initial state outside register")
	}

	r := &Register{
		qubitCount:  qubits,
		maxQPower:   maxQPower,
		stateVec:    make([]complex128, maxQPower),
		runningNorm: 1.0,
		seed:        cfg.Seed,
		metrics:     NewMetrics(),
	}
	r.disp = dispatcher{workers: cfg.Workers, metrics: r.metrics}
	r.kern = &hostKernel{r: r}

	if cfg.Rand != nil {
		r.rng = cfg.Rand
	} else {
		r.rng = rand.New(rand.NewSource(cfg.Seed))
	}

	phaseFac := cfg.PhaseFac
	if !cfg.hasPhase {
		angle := r.rand() * 2.0 * math.Pi
		phaseFac = complex(math.Cos(angle), math.Sin(angle))
	}
	r.stateVec[initState] = phaseFac

	errnie.Info(
		"qregister.New - qubits %v, initState %v, workers %v",
		qubits,
		initState,
		cfg.Workers,
	)

	return r, nil
}

/*
Clone initializes a register with the same exact quantum state as src,
sharing its generator. Cloning a state is impossible on physical
hardware; it exists to let a test fork an experiment mid-flight.
*/
func Clone(src *Register) *Register {
	r := &Register{
		qubitCount:  src.qubitCount,
		maxQPower:   src.maxQPower,
		stateVec:    make([]complex128, src.maxQPower),
		runningNorm: src.runningNorm,
		rng:         src.rng,
		seed:        src.seed,
		metrics:     NewMetrics(),
	}
	r.disp = dispatcher{workers: src.disp.workers, metrics: r.metrics}
	r.kern = &hostKernel{r: r}
	copy(r.stateVec, src.stateVec)
	return r
}

// QubitCount returns the number of qubits in the register.
func (r *Register) QubitCount() int { return r.qubitCount }

// MaxQPower returns 2^QubitCount, the length of the amplitude vector.
func (r *Register) MaxQPower() uint64 { return r.maxQPower }

// Metrics exposes the register's work counters.
func (r *Register) Metrics() *Metrics { return r.metrics }

// SetRandomSeed reseeds the register's generator, primarily for tests.
func (r *Register) SetRandomSeed(seed int64) {
	r.seed = seed
	r.rng.Seed(seed)
}

// rand draws from [0, 1). It is only ever called from the controlling
// goroutine, never from inside a sweep.
func (r *Register) rand() float64 {
	return r.rng.Float64()
}

/*
CloneRawState copies the exact amplitude vector into output, which must
hold MaxQPower elements. Direct amplitude access is nonphysical; it is
the test seam for everything else.
*/
func (r *Register) CloneRawState(output []complex128) error {
	if uint64(len(output)) != r.maxQPower {
		return errors.New("output buffer length must equal MaxQPower")
	}
	if r.runningNorm != 1.0 {
		r.normalizeState()
	}
	copy(output, r.stateVec)
	return nil
}

// SetQuantumState overwrites the amplitude vector from inputState,
// which must hold MaxQPower elements and be normalized by the caller.
func (r *Register) SetQuantumState(inputState []complex128) error {
	if uint64(len(inputState)) != r.maxQPower {
		return errors.New("input buffer length must equal MaxQPower")
	}
	copy(r.stateVec, inputState)
	r.runningNorm = 1.0
	return nil
}

// resetStateVec swaps in a freshly computed amplitude buffer, releasing
// the old one from the register's point of view.
func (r *Register) resetStateVec(nStateVec []complex128) {
	r.stateVec = nStateVec
}

// normalizeState divides every amplitude by the running norm, snapping
// near-zero magnitudes to exactly zero, and marks the register clean.
func (r *Register) normalizeState() {
	nrm := complex(r.runningNorm, 0)
	r.disp.parFor(0, r.maxQPower, func(lcv uint64) {
		r.stateVec[lcv] /= nrm
		if norm(r.stateVec[lcv]) < minNorm {
			r.stateVec[lcv] = complex(0, 0)
		}
	})
	r.runningNorm = 1.0
}

// updateRunningNorm recomputes the cached norm from the amplitudes.
func (r *Register) updateRunningNorm() {
	r.runningNorm = r.disp.parNorm(r.maxQPower, r.stateVec)
}

// checkQubit validates a single qubit index.
func (r *Register) checkQubit(q int) error {
	if q < 0 || q >= r.qubitCount {
		return errors.New("operation on bit index greater than total bits")
	}
	return nil
}

// checkRange validates a contiguous qubit window.
func (r *Register) checkRange(start, length int) error {
	if length < 0 || start < 0 || start+length > r.qubitCount {
		return errors.New("operation on bit range greater than total bits")
	}
	return nil
}
