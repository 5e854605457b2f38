package ratmat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowReduce(t *testing.T) {
	m, err := NewFromInt64Array([]int64{
		1, 2, 3,
		2, 4, 6,
		1, 1, 1,
	}, 3, 3)
	assert.NoError(t, err)
	reduced, pivotCols := m.RowReduce()
	assert.Equal(t, []int{0, 1}, pivotCols)
	expected, err := NewFromInt64Array([]int64{
		1, 0, -1,
		0, 1, 2,
		0, 0, 0,
	}, 3, 3)
	assert.NoError(t, err)
	assert.True(t, expected.Equals(reduced), "got\n%v", reduced)

	// The receiver is not modified
	original, err := NewFromInt64Array([]int64{1, 2, 3, 2, 4, 6, 1, 1, 1}, 3, 3)
	assert.NoError(t, err)
	assert.True(t, original.Equals(m))
}

func TestRowReduceNeedsSwap(t *testing.T) {
	m, err := NewFromInt64Array([]int64{
		0, 1,
		2, 0,
	}, 2, 2)
	assert.NoError(t, err)
	reduced, pivotCols := m.RowReduce()
	assert.Equal(t, []int{0, 1}, pivotCols)
	identity, err := NewIdentity(2)
	assert.NoError(t, err)
	assert.True(t, identity.Equals(reduced))
}

func TestRank(t *testing.T) {
	m, err := NewFromInt64Array([]int64{
		1, 0, 0, -1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	}, 3, 4)
	assert.NoError(t, err)
	assert.Equal(t, 3, m.Rank())

	zero, err := NewEmpty(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 0, zero.Rank())
}

func TestNonzeroRows(t *testing.T) {
	m, err := NewFromInt64Array([]int64{
		0, 0, 0,
		1, 2, 3,
		0, 0, 0,
	}, 3, 3)
	assert.NoError(t, err)
	nonzero := m.NonzeroRows()
	assert.Equal(t, 1, nonzero.NumRows())
	assert.Equal(t, 3, nonzero.NumCols())
	row, err := nonzero.Row(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, row[2].Cmp(big.NewRat(3, 1)))

	// All-zero input keeps the column count
	zero, err := NewEmpty(2, 5)
	assert.NoError(t, err)
	empty := zero.NonzeroRows()
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 5, empty.NumCols())
}

func TestKernel(t *testing.T) {
	// Kernel of [1 -1 -1 1] contains (1,1,0,0), (1,0,1,0), (-1,0,0,1)
	m, err := NewFromInt64Array([]int64{1, -1, -1, 1}, 1, 4)
	assert.NoError(t, err)
	kernel, err := m.Kernel()
	assert.NoError(t, err)
	assert.Equal(t, 3, kernel.NumRows())
	assert.Equal(t, 4, kernel.NumCols())
	for i := 0; i < kernel.NumRows(); i++ {
		row, err := kernel.Row(i)
		assert.NoError(t, err)
		sum := new(big.Rat)
		sum.Add(sum, row[0])
		sum.Sub(sum, row[1])
		sum.Sub(sum, row[2])
		sum.Add(sum, row[3])
		assert.Equal(t, 0, sum.Sign(), "kernel row %d is not in the kernel", i)
	}
}

func TestKernelOfEmptyMatrixIsEverything(t *testing.T) {
	m, err := NewEmpty(0, 3)
	assert.NoError(t, err)
	kernel, err := m.Kernel()
	assert.NoError(t, err)
	identity, err := NewIdentity(3)
	assert.NoError(t, err)
	assert.True(t, identity.Equals(kernel))
}

func TestKernelTrivial(t *testing.T) {
	identity, err := NewIdentity(3)
	assert.NoError(t, err)
	kernel, err := identity.Kernel()
	assert.NoError(t, err)
	assert.Equal(t, 0, kernel.NumRows())
	assert.Equal(t, 3, kernel.NumCols())
}

func TestKernelNoColumns(t *testing.T) {
	m, err := NewEmpty(2, 0)
	assert.NoError(t, err)
	_, err = m.Kernel()
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	// x + y = 3, x - y = 1 has the unique solution (2, 1)
	m, err := NewFromInt64Array([]int64{1, 1, 1, -1}, 2, 2)
	assert.NoError(t, err)
	solution, consistent, err := m.Solve([]*big.Rat{big.NewRat(3, 1), big.NewRat(1, 1)})
	assert.NoError(t, err)
	assert.True(t, consistent)
	assert.Equal(t, 0, solution[0].Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, solution[1].Cmp(big.NewRat(1, 1)))
}

func TestSolveUnderdetermined(t *testing.T) {
	// x + y = 2 with free y = 0 yields x = 2
	m, err := NewFromInt64Array([]int64{1, 1}, 1, 2)
	assert.NoError(t, err)
	solution, consistent, err := m.Solve([]*big.Rat{big.NewRat(2, 1)})
	assert.NoError(t, err)
	assert.True(t, consistent)
	assert.Equal(t, 0, solution[0].Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, solution[1].Sign())
}

func TestSolveInconsistent(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 1, 1, 1}, 2, 2)
	assert.NoError(t, err)
	solution, consistent, err := m.Solve([]*big.Rat{big.NewRat(1, 1), big.NewRat(2, 1)})
	assert.NoError(t, err)
	assert.False(t, consistent)
	assert.Nil(t, solution)

	_, _, err = m.Solve([]*big.Rat{big.NewRat(1, 1)})
	assert.Error(t, err)
}

func TestPrimitiveVector(t *testing.T) {
	primitive, err := PrimitiveVector([]*big.Rat{
		big.NewRat(1, 2), big.NewRat(-3, 4), big.NewRat(0, 1),
	})
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, -3, 0}, primitive)

	// Common integer factors are divided out
	primitive, err = PrimitiveVector([]*big.Rat{big.NewRat(4, 1), big.NewRat(-6, 1)})
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, -3}, primitive)
}

func TestPrimitiveVectorZero(t *testing.T) {
	primitive, err := PrimitiveVector([]*big.Rat{big.NewRat(0, 1), big.NewRat(0, 1)})
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, primitive)
}

func TestPrimitiveVectorOverflow(t *testing.T) {
	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 70))
	_, err := PrimitiveVector([]*big.Rat{huge, big.NewRat(1, 1)})
	assert.Error(t, err)
}
