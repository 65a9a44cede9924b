package main

import (
	"fmt"

	"github.com/theapemachine/qregister"
)

// step is one named operation of a demo circuit.
type step struct {
	label string
	apply func(r *qregister.Register) error
}

// circuit is a named sequence of steps over a fixed-width register.
type circuit struct {
	name   string
	qubits int
	steps  []step
}

func gate(label string, apply func(r *qregister.Register) error) step {
	return step{label: label, apply: apply}
}

// demoCircuits are the built-in programs the visualizer steps through.
func demoCircuits() []circuit {
	return []circuit{
		{
			name:   "Bell pair",
			qubits: 2,
			steps: []step{
				gate("H 0", func(r *qregister.Register) error { return r.H(0) }),
				gate("CNOT 0 1", func(r *qregister.Register) error { return r.CNOT(0, 1) }),
			},
		},
		{
			name:   "GHZ",
			qubits: 4,
			steps: []step{
				gate("H 0", func(r *qregister.Register) error { return r.H(0) }),
				gate("CNOT 0 1", func(r *qregister.Register) error { return r.CNOT(0, 1) }),
				gate("CNOT 1 2", func(r *qregister.Register) error { return r.CNOT(1, 2) }),
				gate("CNOT 2 3", func(r *qregister.Register) error { return r.CNOT(2, 3) }),
			},
		},
		{
			name:   "QFT",
			qubits: 4,
			steps: []step{
				gate("QFT 0..3", func(r *qregister.Register) error { return r.QFT(0, 4) }),
				gate("ROL 1", func(r *qregister.Register) error { return r.ROL(1, 0, 4) }),
			},
		},
		{
			name:   "Counter",
			qubits: 4,
			steps: []step{
				gate("H 0..1", func(r *qregister.Register) error { return r.HRange(0, 2) }),
				gate("INC 3", func(r *qregister.Register) error { return r.INC(3, 0, 4) }),
				gate("DEC 1", func(r *qregister.Register) error { return r.DEC(1, 0, 4) }),
			},
		},
	}
}

// build initializes a fresh register for the circuit at the given
// starting permutation.
func (c circuit) build(initState uint64) (*qregister.Register, error) {
	if initState >= uint64(1)<<c.qubits {
		return nil, fmt.Errorf("initial state %d outside a %d qubit register", initState, c.qubits)
	}
	return qregister.New(c.qubits, initState, qregister.WithPhase(1))
}
