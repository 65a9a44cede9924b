package qregister

import "errors"

/*
AND compares two qubits and stores the result in outputBit. The output
must be a third bit, or the same bit as both inputs; an output that
coincides with exactly one input has no reversible compilation.
*/
func (r *Register) AND(inputBit1, inputBit2, outputBit int) error {
	// Same bit, no action necessary.
	if inputBit1 == inputBit2 && inputBit2 == outputBit {
		return nil
	}

	if inputBit1 == outputBit || inputBit2 == outputBit {
		return errors.New("invalid AND arguments")
	}

	if err := r.SetBit(outputBit, false); err != nil {
		return err
	}
	if inputBit1 == inputBit2 {
		return r.CNOT(inputBit1, outputBit)
	}
	return r.CCNOT(inputBit1, inputBit2, outputBit)
}

// CLAND compares a qubit with a classical bit and stores the result in
// outputBit.
func (r *Register) CLAND(inputQBit int, inputClassicalBit bool, outputBit int) error {
	if !inputClassicalBit {
		return r.SetBit(outputBit, false)
	}
	if inputQBit != outputBit {
		if err := r.SetBit(outputBit, false); err != nil {
			return err
		}
		return r.CNOT(inputQBit, outputBit)
	}
	return nil
}

// OR compares two qubits and stores the result in outputBit.
func (r *Register) OR(inputBit1, inputBit2, outputBit int) error {
	// Same bit, no action necessary.
	if inputBit1 == inputBit2 && inputBit2 == outputBit {
		return nil
	}

	if inputBit1 == outputBit || inputBit2 == outputBit {
		return errors.New("invalid OR arguments")
	}

	if err := r.SetBit(outputBit, true); err != nil {
		return err
	}
	if inputBit1 == inputBit2 {
		return r.AntiCNOT(inputBit1, outputBit)
	}
	return r.AntiCCNOT(inputBit1, inputBit2, outputBit)
}

// CLOR compares a qubit with a classical bit and stores the result in
// outputBit.
func (r *Register) CLOR(inputQBit int, inputClassicalBit bool, outputBit int) error {
	if inputClassicalBit {
		return r.SetBit(outputBit, true)
	}
	if inputQBit != outputBit {
		if err := r.SetBit(outputBit, false); err != nil {
			return err
		}
		return r.CNOT(inputQBit, outputBit)
	}
	return nil
}

// XOR compares two qubits and stores the result in outputBit. Unlike
// AND and OR, an output coinciding with one input compiles to a single
// CNOT from the other.
func (r *Register) XOR(inputBit1, inputBit2, outputBit int) error {
	if inputBit1 == inputBit2 && inputBit2 == outputBit {
		return r.SetBit(outputBit, false)
	}

	if inputBit1 == outputBit {
		return r.CNOT(inputBit2, outputBit)
	}
	if inputBit2 == outputBit {
		return r.CNOT(inputBit1, outputBit)
	}

	if err := r.SetBit(outputBit, false); err != nil {
		return err
	}
	if err := r.CNOT(inputBit1, outputBit); err != nil {
		return err
	}
	return r.CNOT(inputBit2, outputBit)
}

// CLXOR compares a qubit with a classical bit and stores the result in
// outputBit.
func (r *Register) CLXOR(inputQBit int, inputClassicalBit bool, outputBit int) error {
	if inputQBit != outputBit {
		if err := r.SetBit(outputBit, inputClassicalBit); err != nil {
			return err
		}
		return r.CNOT(inputQBit, outputBit)
	}
	if inputClassicalBit {
		return r.X(outputBit)
	}
	return nil
}

// ANDRange ANDs two bit ranges into the range starting at outputStart.
func (r *Register) ANDRange(inputStart1, inputStart2, outputStart, length int) error {
	if inputStart1 == inputStart2 && inputStart2 == outputStart {
		return nil
	}
	for i := 0; i < length; i++ {
		if err := r.AND(inputStart1+i, inputStart2+i, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}

// CLANDRange ANDs a bit range with a classical integer, bit for bit.
func (r *Register) CLANDRange(qInputStart int, classicalInput uint64, outputStart, length int) error {
	for i := 0; i < length; i++ {
		cBit := (uint64(1)<<i)&classicalInput != 0
		if err := r.CLAND(qInputStart+i, cBit, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}

// ORRange ORs two bit ranges into the range starting at outputStart.
func (r *Register) ORRange(inputStart1, inputStart2, outputStart, length int) error {
	if inputStart1 == inputStart2 && inputStart2 == outputStart {
		return nil
	}
	for i := 0; i < length; i++ {
		if err := r.OR(inputStart1+i, inputStart2+i, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}

// CLORRange ORs a bit range with a classical integer, bit for bit.
func (r *Register) CLORRange(qInputStart int, classicalInput uint64, outputStart, length int) error {
	for i := 0; i < length; i++ {
		cBit := (uint64(1)<<i)&classicalInput != 0
		if err := r.CLOR(qInputStart+i, cBit, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}

// XORRange XORs two bit ranges into the range starting at outputStart.
func (r *Register) XORRange(inputStart1, inputStart2, outputStart, length int) error {
	if inputStart1 == inputStart2 && inputStart2 == outputStart {
		return nil
	}
	for i := 0; i < length; i++ {
		if err := r.XOR(inputStart1+i, inputStart2+i, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}

// CLXORRange XORs a bit range with a classical integer, bit for bit.
func (r *Register) CLXORRange(qInputStart int, classicalInput uint64, outputStart, length int) error {
	for i := 0; i < length; i++ {
		cBit := (uint64(1)<<i)&classicalInput != 0
		if err := r.CLXOR(qInputStart+i, cBit, outputStart+i); err != nil {
			return err
		}
	}
	return nil
}
