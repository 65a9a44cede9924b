package qregister

import "errors"

// checkTable validates the index/value geometry and that the table
// holds a value for every possible index.
func (r *Register) checkTable(indexStart, indexLength, valueStart, valueLength int, values []byte) error {
	if err := r.checkRange(indexStart, indexLength); err != nil {
		return err
	}
	if err := r.checkRange(valueStart, valueLength); err != nil {
		return err
	}
	if indexStart+indexLength > valueStart && valueStart+valueLength > indexStart {
		return errors.New("index and value windows cannot overlap")
	}
	valueBytes := (valueLength + 7) / 8
	if len(values) < (1<<indexLength)*valueBytes {
		return errors.New("table must hold a value for every index")
	}
	return nil
}

/*
SuperposedLDA clears the value window, then loads it from classical
memory superposed over every index-window pattern: each pre-image
entangles the table value addressed by its index bits, packed
little-endian across bytes. The return is the rounded classical
expectation of the loaded value, for test convenience.
*/
func (r *Register) SuperposedLDA(indexStart, indexLength, valueStart, valueLength int, values []byte) (uint64, error) {
	if err := r.checkTable(indexStart, indexLength, valueStart, valueLength, values); err != nil {
		return 0, err
	}
	if err := r.SetReg(valueStart, valueLength, 0); err != nil {
		return 0, err
	}
	return r.kern.IndexedLDA(indexStart, indexLength, valueStart, valueLength, values), nil
}

/*
SuperposedADC adds classical table values, addressed by the index
window, to the quantum value window with carry. The carry qubit is
measured (consumed) for carry-in and written by the sweep for
carry-out.
*/
func (r *Register) SuperposedADC(indexStart, indexLength, valueStart, valueLength, carryIndex int, values []byte) (uint64, error) {
	if err := r.checkTable(indexStart, indexLength, valueStart, valueLength, values); err != nil {
		return 0, err
	}
	if err := r.checkQubit(carryIndex); err != nil {
		return 0, err
	}

	carryIn := uint64(0)
	hasCarry, err := r.M(carryIndex)
	if err != nil {
		return 0, err
	}
	if hasCarry {
		// We always clear the carry after testing for carry in.
		carryIn = 1
		if err := r.X(carryIndex); err != nil {
			return 0, err
		}
	}

	return r.kern.IndexedADC(indexStart, indexLength, valueStart, valueLength, carryIndex, carryIn, values), nil
}

/*
SuperposedSBC subtracts classical table values, addressed by the index
window, from the quantum value window with borrow. A set carry going in
means no borrow; carry-out is set when the subtraction does not borrow.
*/
func (r *Register) SuperposedSBC(indexStart, indexLength, valueStart, valueLength, carryIndex int, values []byte) (uint64, error) {
	if err := r.checkTable(indexStart, indexLength, valueStart, valueLength, values); err != nil {
		return 0, err
	}
	if err := r.checkQubit(carryIndex); err != nil {
		return 0, err
	}

	carryIn := uint64(1)
	hasCarry, err := r.M(carryIndex)
	if err != nil {
		return 0, err
	}
	if hasCarry {
		// A set carry is no borrow in; it is cleared before the sweep.
		carryIn = 0
		if err := r.X(carryIndex); err != nil {
			return 0, err
		}
	}

	return r.kern.IndexedSBC(indexStart, indexLength, valueStart, valueLength, carryIndex, carryIn, values), nil
}
