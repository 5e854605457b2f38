// Package ratmat represents matrices with exact rational entries.
//
// Entries are *big.Rat, stored row-major in a flat slice. All operations
// are exact; there is no floating point anywhere in this package.
package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a numRows x numCols matrix of rational numbers. A Matrix may
// have zero rows while retaining a positive column count, which matters to
// clients that read the column count of an empty row-reduction result.
type Matrix struct {
	values  []*big.Rat
	numRows int
	numCols int
}

// NewEmpty returns a numRows x numCols matrix with 0s in each entry.
// Negative dimensions are an error.
func NewEmpty(numRows int, numCols int) (*Matrix, error) {
	if numRows < 0 || numCols < 0 {
		return nil, fmt.Errorf(
			"Matrix.NewEmpty: illegal number of rows %d or columns %d", numRows, numCols,
		)
	}
	retVal := &Matrix{
		values:  make([]*big.Rat, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for i := range retVal.values {
		retVal.values[i] = big.NewRat(0, 1)
	}
	return retVal, nil
}

// NewFromInt64Array creates a matrix with integer entries from input with
// dimensions numRows x numCols. If the dimensions do not match the length
// of the input, an error is returned.
func NewFromInt64Array(input []int64, numRows int, numCols int) (*Matrix, error) {
	if len(input) != numRows*numCols {
		return nil, fmt.Errorf(
			"Matrix.NewFromInt64Array: length %d of input does not match dimensions %d x %d",
			len(input), numRows, numCols,
		)
	}
	retVal, err := NewEmpty(numRows, numCols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.NewFromInt64Array: %s", err.Error())
	}
	for index, value := range input {
		retVal.values[index] = big.NewRat(value, 1)
	}
	return retVal, nil
}

// NewFromRows creates a matrix whose rows are copies of the provided rows,
// which must all have equal length. An empty row list yields a 0 x 0 matrix.
func NewFromRows(rows [][]*big.Rat) (*Matrix, error) {
	if len(rows) == 0 {
		return NewEmpty(0, 0)
	}
	numCols := len(rows[0])
	retVal, err := NewEmpty(len(rows), numCols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.NewFromRows: %s", err.Error())
	}
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf(
				"Matrix.NewFromRows: row %d has length %d but row 0 has length %d",
				i, len(row), numCols,
			)
		}
		for j, value := range row {
			if value == nil {
				return nil, fmt.Errorf("Matrix.NewFromRows: nil entry at (%d,%d)", i, j)
			}
			retVal.values[i*numCols+j] = new(big.Rat).Set(value)
		}
	}
	return retVal, nil
}

// NewIdentity returns a dim x dim identity matrix. If dim < 1, an error is
// returned.
func NewIdentity(dim int) (*Matrix, error) {
	if dim < 1 {
		return nil, fmt.Errorf("Matrix.NewIdentity: dimension %d < 1", dim)
	}
	retVal, err := NewEmpty(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("Matrix.NewIdentity: %s", err.Error())
	}
	for i := 0; i < dim; i++ {
		retVal.values[i*dim+i] = big.NewRat(1, 1)
	}
	return retVal, nil
}

// NumRows returns the number of rows in m.
func (m *Matrix) NumRows() int { return m.numRows }

// NumCols returns the number of columns in m.
func (m *Matrix) NumCols() int { return m.numCols }

// Get returns a copy of the entry at (row, col), or an error if (row, col)
// is out of range.
func (m *Matrix) Get(row, col int) (*big.Rat, error) {
	if row < 0 || m.numRows <= row || col < 0 || m.numCols <= col {
		return nil, fmt.Errorf(
			"Matrix.Get: index (%d,%d) out of range for %d x %d matrix",
			row, col, m.numRows, m.numCols,
		)
	}
	return new(big.Rat).Set(m.values[row*m.numCols+col]), nil
}

// Set copies value into the entry at (row, col), or returns an error if
// (row, col) is out of range.
func (m *Matrix) Set(row, col int, value *big.Rat) error {
	if row < 0 || m.numRows <= row || col < 0 || m.numCols <= col {
		return fmt.Errorf(
			"Matrix.Set: index (%d,%d) out of range for %d x %d matrix",
			row, col, m.numRows, m.numCols,
		)
	}
	m.values[row*m.numCols+col] = new(big.Rat).Set(value)
	return nil
}

// Row returns a copy of the requested row.
func (m *Matrix) Row(row int) ([]*big.Rat, error) {
	if row < 0 || m.numRows <= row {
		return nil, fmt.Errorf(
			"Matrix.Row: row %d out of range for %d x %d matrix", row, m.numRows, m.numCols,
		)
	}
	retVal := make([]*big.Rat, m.numCols)
	for j := 0; j < m.numCols; j++ {
		retVal[j] = new(big.Rat).Set(m.values[row*m.numCols+j])
	}
	return retVal, nil
}

// Column returns a copy of the requested column.
func (m *Matrix) Column(col int) ([]*big.Rat, error) {
	if col < 0 || m.numCols <= col {
		return nil, fmt.Errorf(
			"Matrix.Column: column %d out of range for %d x %d matrix",
			col, m.numRows, m.numCols,
		)
	}
	retVal := make([]*big.Rat, m.numRows)
	for i := 0; i < m.numRows; i++ {
		retVal[i] = new(big.Rat).Set(m.values[i*m.numCols+col])
	}
	return retVal, nil
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	retVal := &Matrix{
		values:  make([]*big.Rat, len(m.values)),
		numRows: m.numRows,
		numCols: m.numCols,
	}
	for i, value := range m.values {
		retVal.values[i] = new(big.Rat).Set(value)
	}
	return retVal
}

// Equals returns whether m and other have the same dimensions and equal
// entries.
func (m *Matrix) Equals(other *Matrix) bool {
	if m.numRows != other.numRows || m.numCols != other.numCols {
		return false
	}
	for i := range m.values {
		if m.values[i].Cmp(other.values[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero returns whether every entry of m is zero. An empty matrix is zero.
func (m *Matrix) IsZero() bool {
	for _, value := range m.values {
		if value.Sign() != 0 {
			return false
		}
	}
	return true
}

// String returns a human-readable rendering of m, one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.numRows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.numCols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(m.values[i*m.numCols+j].RatString())
		}
		sb.WriteString("]")
		if i+1 < m.numRows {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
