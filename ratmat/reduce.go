package ratmat

import (
	"fmt"
	"math/big"
)

// RowReduce returns the reduced row echelon form of m together with the
// list of pivot columns, in order. m is not modified.
func (m *Matrix) RowReduce() (*Matrix, []int) {
	retVal := m.Copy()
	var pivotCols []int
	pivotRow := 0
	for col := 0; col < retVal.numCols && pivotRow < retVal.numRows; col++ {
		// Find a row at or below pivotRow with a nonzero entry in col
		nonzeroRow := -1
		for row := pivotRow; row < retVal.numRows; row++ {
			if retVal.values[row*retVal.numCols+col].Sign() != 0 {
				nonzeroRow = row
				break
			}
		}
		if nonzeroRow == -1 {
			continue
		}
		retVal.swapRows(pivotRow, nonzeroRow)

		// Scale the pivot row so the pivot entry is 1
		pivot := new(big.Rat).Set(retVal.values[pivotRow*retVal.numCols+col])
		for j := col; j < retVal.numCols; j++ {
			entry := retVal.values[pivotRow*retVal.numCols+j]
			entry.Quo(entry, pivot)
		}

		// Eliminate col from every other row
		for row := 0; row < retVal.numRows; row++ {
			if row == pivotRow {
				continue
			}
			factor := new(big.Rat).Set(retVal.values[row*retVal.numCols+col])
			if factor.Sign() == 0 {
				continue
			}
			for j := col; j < retVal.numCols; j++ {
				product := new(big.Rat).Mul(factor, retVal.values[pivotRow*retVal.numCols+j])
				entry := retVal.values[row*retVal.numCols+j]
				entry.Sub(entry, product)
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	return retVal, pivotCols
}

// Rank returns the rank of m.
func (m *Matrix) Rank() int {
	_, pivotCols := m.RowReduce()
	return len(pivotCols)
}

// NonzeroRows returns a copy of m with its zero rows removed. The column
// count is preserved even if no rows remain.
func (m *Matrix) NonzeroRows() *Matrix {
	var rows [][]*big.Rat
	for i := 0; i < m.numRows; i++ {
		row, _ := m.Row(i)
		zero := true
		for _, value := range row {
			if value.Sign() != 0 {
				zero = false
				break
			}
		}
		if !zero {
			rows = append(rows, row)
		}
	}
	retVal, _ := NewFromRows(rows)
	if retVal.numRows == 0 {
		retVal.numCols = m.numCols
	}
	return retVal
}

// Kernel returns a row-reduced basis of the right null space of m, one
// basis vector per row. A matrix with no rows has the full ambient space
// as its kernel, so the identity is returned in that case. If the kernel
// is trivial, the result has zero rows and NumCols(m) columns.
func (m *Matrix) Kernel() (*Matrix, error) {
	if m.numCols == 0 {
		return nil, fmt.Errorf("Matrix.Kernel: matrix has no columns")
	}
	if m.numRows == 0 {
		return NewIdentity(m.numCols)
	}
	reduced, pivotCols := m.RowReduce()
	isPivot := make([]bool, m.numCols)
	for _, col := range pivotCols {
		isPivot[col] = true
	}
	var rows [][]*big.Rat
	for free := 0; free < m.numCols; free++ {
		if isPivot[free] {
			continue
		}
		vector := make([]*big.Rat, m.numCols)
		for j := range vector {
			vector[j] = big.NewRat(0, 1)
		}
		vector[free] = big.NewRat(1, 1)
		for pivotRow, col := range pivotCols {
			entry, err := reduced.Get(pivotRow, free)
			if err != nil {
				return nil, fmt.Errorf("Matrix.Kernel: %s", err.Error())
			}
			vector[col] = entry.Neg(entry)
		}
		rows = append(rows, vector)
	}
	if len(rows) == 0 {
		empty, err := NewEmpty(0, 0)
		if err != nil {
			return nil, fmt.Errorf("Matrix.Kernel: %s", err.Error())
		}
		empty.numCols = m.numCols
		return empty, nil
	}
	kernel, err := NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Kernel: %s", err.Error())
	}
	reducedKernel, _ := kernel.RowReduce()
	return reducedKernel, nil
}

// Solve returns a particular solution x of m x = b, where b has one entry
// per row of m. The second return value reports whether the system is
// consistent; when it is false, the solution is nil. Underdetermined
// systems are solved with all free variables set to zero.
func (m *Matrix) Solve(b []*big.Rat) ([]*big.Rat, bool, error) {
	if len(b) != m.numRows {
		return nil, false, fmt.Errorf(
			"Matrix.Solve: right-hand side has length %d but the matrix has %d rows",
			len(b), m.numRows,
		)
	}

	// Row-reduce the augmented matrix [m | b]
	augmented, err := NewEmpty(m.numRows, m.numCols+1)
	if err != nil {
		return nil, false, fmt.Errorf("Matrix.Solve: %s", err.Error())
	}
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			augmented.values[i*augmented.numCols+j] = new(big.Rat).Set(m.values[i*m.numCols+j])
		}
		augmented.values[i*augmented.numCols+m.numCols] = new(big.Rat).Set(b[i])
	}
	reduced, pivotCols := augmented.RowReduce()

	// A pivot in the last column means the system is inconsistent
	for _, col := range pivotCols {
		if col == m.numCols {
			return nil, false, nil
		}
	}
	solution := make([]*big.Rat, m.numCols)
	for j := range solution {
		solution[j] = big.NewRat(0, 1)
	}
	for pivotRow, col := range pivotCols {
		entry, err := reduced.Get(pivotRow, m.numCols)
		if err != nil {
			return nil, false, fmt.Errorf("Matrix.Solve: %s", err.Error())
		}
		solution[col] = entry
	}
	return solution, true, nil
}

// swapRows swaps rows i and j in place. Callers guarantee i and j are in
// range.
func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	for col := 0; col < m.numCols; col++ {
		m.values[i*m.numCols+col], m.values[j*m.numCols+col] =
			m.values[j*m.numCols+col], m.values[i*m.numCols+col]
	}
}

// PrimitiveVector scales a rational vector to the shortest integer vector
// with the same direction: it multiplies by the least common multiple of
// the denominators, then divides by the greatest common divisor of the
// resulting entries. The zero vector is returned unchanged. An entry of
// the result that does not fit in an int64 is an error, since downstream
// weight arithmetic is performed in int64.
func PrimitiveVector(v []*big.Rat) ([]int64, error) {
	retVal := make([]int64, len(v))
	lcm := big.NewInt(1)
	for _, value := range v {
		lcm = lcmInt(lcm, value.Denom())
	}
	gcd := big.NewInt(0)
	scaled := make([]*big.Int, len(v))
	for i, value := range v {
		numerator := new(big.Int).Mul(value.Num(), new(big.Int).Quo(lcm, value.Denom()))
		scaled[i] = numerator
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(numerator))
	}
	if gcd.Sign() == 0 {
		return retVal, nil // the zero vector is its own normal form
	}
	for i, numerator := range scaled {
		entry := new(big.Int).Quo(numerator, gcd)
		if !entry.IsInt64() {
			return nil, fmt.Errorf(
				"PrimitiveVector: entry %d = %s does not fit in an int64", i, entry.String(),
			)
		}
		retVal[i] = entry.Int64()
	}
	return retVal, nil
}

// lcmInt returns the least common multiple of two positive big integers.
func lcmInt(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	return new(big.Int).Mul(a, new(big.Int).Quo(b, gcd))
}
