package qregister

import (
	"errors"
	"math"
)

func pauliX() [4]complex128 {
	return [4]complex128{0, 1, 1, 0}
}

func pauliY() [4]complex128 {
	return [4]complex128{0, complex(0, -1), complex(0, 1), 0}
}

func pauliZ() [4]complex128 {
	return [4]complex128{1, 0, 0, -1}
}

// X applies the Pauli x ("not") matrix to the qubit.
func (r *Register) X(qubit int) error {
	return r.applySingleBit(qubit, pauliX(), false)
}

// Y applies the Pauli y matrix to the qubit.
func (r *Register) Y(qubit int) error {
	return r.applySingleBit(qubit, pauliY(), false)
}

// Z applies the Pauli z matrix to the qubit.
func (r *Register) Z(qubit int) error {
	return r.applySingleBit(qubit, pauliZ(), false)
}

// H applies the Hadamard gate to the qubit.
func (r *Register) H(qubit int) error {
	hFac := complex(1.0/math.Sqrt2, 0)
	had := [4]complex128{hFac, hFac, hFac, -hFac}
	return r.applySingleBit(qubit, had, true)
}

// RT rotates the qubit around the |1> state, multiplying the |1>
// amplitude by e^(i*theta/2).
func (r *Register) RT(radians float64, qubit int) error {
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{1, 0, 0, complex(cosine, sine)}
	return r.applySingleBit(qubit, mtrx, true)
}

// RTDyad rotates the qubit around the |1> state by a dyadic fraction of
// pi. Dyadic operation angle sign is reversed from the radian rotation
// operators and lacks a division by a factor of two.
func (r *Register) RTDyad(numerator, denominator, qubit int) error {
	return r.RT((-math.Pi*float64(numerator)*2)/float64(denominator), qubit)
}

// RX rotates the qubit as e^(-i*theta/2) around the Pauli x axis.
func (r *Register) RX(radians float64, qubit int) error {
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, 0), complex(0, -sine), complex(0, -sine), complex(cosine, 0)}
	return r.applySingleBit(qubit, mtrx, true)
}

// RXDyad is the dyadic-fraction form of RX.
func (r *Register) RXDyad(numerator, denominator, qubit int) error {
	return r.RX((-math.Pi*float64(numerator)*2)/float64(denominator), qubit)
}

// RY rotates the qubit as e^(-i*theta/2) around the Pauli y axis.
func (r *Register) RY(radians float64, qubit int) error {
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, 0), complex(-sine, 0), complex(sine, 0), complex(cosine, 0)}
	return r.applySingleBit(qubit, mtrx, true)
}

// RYDyad is the dyadic-fraction form of RY.
func (r *Register) RYDyad(numerator, denominator, qubit int) error {
	return r.RY((-math.Pi*float64(numerator)*2)/float64(denominator), qubit)
}

// RZ rotates the qubit as e^(-i*theta/2) around the Pauli z axis.
func (r *Register) RZ(radians float64, qubit int) error {
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, -sine), 0, 0, complex(cosine, sine)}
	return r.applySingleBit(qubit, mtrx, true)
}

// RZDyad is the dyadic-fraction form of RZ.
func (r *Register) RZDyad(numerator, denominator, qubit int) error {
	return r.RZ((-math.Pi*float64(numerator)*2)/float64(denominator), qubit)
}

// CNOT flips target when control is set.
func (r *Register) CNOT(control, target int) error {
	if control == target {
		return errors.New("CNOT control bit cannot also be target")
	}
	return r.applyControlled2x2(control, target, pauliX(), false)
}

// AntiCNOT flips target when control is clear.
func (r *Register) AntiCNOT(control, target int) error {
	if control == target {
		return errors.New("AntiCNOT control bit cannot also be target")
	}
	return r.applyAntiControlled2x2(control, target, pauliX(), false)
}

// CCNOT flips target when both controls are set.
func (r *Register) CCNOT(control1, control2, target int) error {
	if control1 == control2 {
		return errors.New("CCNOT control bits cannot be same bit")
	}
	if control1 == target || control2 == target {
		return errors.New("CCNOT control bits cannot also be target")
	}
	if err := r.checkQubit(control1); err != nil {
		return err
	}
	if err := r.checkQubit(control2); err != nil {
		return err
	}
	if err := r.checkQubit(target); err != nil {
		return err
	}

	c1 := uint64(1) << control1
	c2 := uint64(1) << control2
	t := uint64(1) << target
	sorted := sortedThree(c1, c2, t)
	return r.kern.Apply2x2(c1+c2, c1+c2+t, pauliX(), sorted, false, false)
}

// AntiCCNOT flips target when both controls are clear.
func (r *Register) AntiCCNOT(control1, control2, target int) error {
	if control1 == control2 {
		return errors.New("AntiCCNOT control bits cannot be same bit")
	}
	if control1 == target || control2 == target {
		return errors.New("AntiCCNOT control bits cannot also be target")
	}
	if err := r.checkQubit(control1); err != nil {
		return err
	}
	if err := r.checkQubit(control2); err != nil {
		return err
	}
	if err := r.checkQubit(target); err != nil {
		return err
	}

	c1 := uint64(1) << control1
	c2 := uint64(1) << control2
	t := uint64(1) << target
	sorted := sortedThree(c1, c2, t)
	return r.kern.Apply2x2(0, t, pauliX(), sorted, false, false)
}

// CY applies the Pauli y matrix to target when control is set.
func (r *Register) CY(control, target int) error {
	if control == target {
		return errors.New("CY control bit cannot also be target")
	}
	return r.applyControlled2x2(control, target, pauliY(), false)
}

// CZ applies the Pauli z matrix to target when control is set.
func (r *Register) CZ(control, target int) error {
	if control == target {
		return errors.New("CZ control bit cannot also be target")
	}
	return r.applyControlled2x2(control, target, pauliZ(), false)
}

// CRT rotates target around |1> when control is set.
func (r *Register) CRT(radians float64, control, target int) error {
	if control == target {
		return errors.New("CRT control bit cannot also be target")
	}
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{1, 0, 0, complex(cosine, sine)}
	return r.applyControlled2x2(control, target, mtrx, true)
}

// CRTDyad is the dyadic-fraction form of CRT.
func (r *Register) CRTDyad(numerator, denominator, control, target int) error {
	if control == target {
		return errors.New("CRTDyad control bit cannot also be target")
	}
	return r.CRT((-math.Pi*float64(numerator)*2)/float64(denominator), control, target)
}

// CRX rotates target around the Pauli x axis when control is set.
func (r *Register) CRX(radians float64, control, target int) error {
	if control == target {
		return errors.New("CRX control bit cannot also be target")
	}
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, 0), complex(0, -sine), complex(0, -sine), complex(cosine, 0)}
	return r.applyControlled2x2(control, target, mtrx, true)
}

// CRXDyad is the dyadic-fraction form of CRX.
func (r *Register) CRXDyad(numerator, denominator, control, target int) error {
	if control == target {
		return errors.New("CRXDyad control bit cannot also be target")
	}
	return r.CRX((-math.Pi*float64(numerator)*2)/float64(denominator), control, target)
}

// CRY rotates target around the Pauli y axis when control is set.
func (r *Register) CRY(radians float64, control, target int) error {
	if control == target {
		return errors.New("CRY control bit cannot also be target")
	}
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, 0), complex(-sine, 0), complex(sine, 0), complex(cosine, 0)}
	return r.applyControlled2x2(control, target, mtrx, true)
}

// CRYDyad is the dyadic-fraction form of CRY.
func (r *Register) CRYDyad(numerator, denominator, control, target int) error {
	if control == target {
		return errors.New("CRYDyad control bit cannot also be target")
	}
	return r.CRY((-math.Pi*float64(numerator)*2)/float64(denominator), control, target)
}

// CRZ rotates target around the Pauli z axis when control is set.
func (r *Register) CRZ(radians float64, control, target int) error {
	if control == target {
		return errors.New("CRZ control bit cannot also be target")
	}
	cosine := math.Cos(radians / 2.0)
	sine := math.Sin(radians / 2.0)
	mtrx := [4]complex128{complex(cosine, -sine), 0, 0, complex(cosine, sine)}
	return r.applyControlled2x2(control, target, mtrx, true)
}

// CRZDyad is the dyadic-fraction form of CRZ.
func (r *Register) CRZDyad(numerator, denominator, control, target int) error {
	if control == target {
		return errors.New("CRZDyad control bit cannot also be target")
	}
	return r.CRZ((-math.Pi*float64(numerator)*2)/float64(denominator), control, target)
}

/*
Swap exchanges the values of two qubits. Same-index swaps are the
identity and return immediately.
*/
func (r *Register) Swap(qubit1, qubit2 int) error {
	if qubit1 == qubit2 {
		return nil
	}
	if err := r.checkQubit(qubit1); err != nil {
		return err
	}
	if err := r.checkQubit(qubit2); err != nil {
		return err
	}

	q1 := uint64(1) << qubit1
	q2 := uint64(1) << qubit2
	sorted := sortedPowers(q1, q2)
	return r.kern.Apply2x2(q2, q1, pauliX(), sorted, false, false)
}

// SetBit forces the qubit to the pure |0> (false) or |1> (true) state by
// measuring it and conditionally applying X.
func (r *Register) SetBit(qubit int, value bool) error {
	measured, err := r.M(qubit)
	if err != nil {
		return err
	}
	if value != measured {
		return r.X(qubit)
	}
	return nil
}

// Reverse reverses the order of the qubits in [first, last) by pairwise
// swaps.
func (r *Register) Reverse(first, last int) error {
	for (first < last) && (first < (last - 1)) {
		last--
		if err := r.Swap(first, last); err != nil {
			return err
		}
		first++
	}
	return nil
}

// sortedThree orders three single-bit masks ascending.
func sortedThree(a, b, c uint64) []uint64 {
	s := []uint64{a, b, c}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	return s
}
