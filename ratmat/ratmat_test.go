package ratmat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromInt64Array(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 3, m.NumCols())
	entry, err := m.Get(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(6, 1)))

	// Mismatched dimensions
	m, err = NewFromInt64Array([]int64{1, 2, 3}, 2, 2)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestNewEmpty(t *testing.T) {
	m, err := NewEmpty(0, 4)
	assert.NoError(t, err)
	assert.Equal(t, 0, m.NumRows())
	assert.Equal(t, 4, m.NumCols())

	_, err = NewEmpty(-1, 2)
	assert.Error(t, err)
}

func TestNewFromRows(t *testing.T) {
	m, err := NewFromRows([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(0, 1)},
		{big.NewRat(-1, 1), big.NewRat(3, 4)},
	})
	assert.NoError(t, err)
	entry, err := m.Get(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(3, 4)))

	// Ragged rows
	_, err = NewFromRows([][]*big.Rat{
		{big.NewRat(1, 1)},
		{big.NewRat(1, 1), big.NewRat(2, 1)},
	})
	assert.Error(t, err)
}

func TestNewIdentity(t *testing.T) {
	identity, err := NewIdentity(3)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			entry, err := identity.Get(i, j)
			assert.NoError(t, err)
			if i == j {
				assert.Equal(t, 0, entry.Cmp(big.NewRat(1, 1)))
			} else {
				assert.Equal(t, 0, entry.Sign())
			}
		}
	}
	_, err = NewIdentity(0)
	assert.Error(t, err)
}

func TestGetSetOutOfRange(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 2, 3, 4}, 2, 2)
	assert.NoError(t, err)
	_, err = m.Get(2, 0)
	assert.Error(t, err)
	_, err = m.Get(0, -1)
	assert.Error(t, err)
	assert.Error(t, m.Set(0, 2, big.NewRat(1, 1)))
}

func TestGetReturnsACopy(t *testing.T) {
	m, err := NewFromInt64Array([]int64{7}, 1, 1)
	assert.NoError(t, err)
	entry, err := m.Get(0, 0)
	assert.NoError(t, err)
	entry.SetInt64(0)
	again, err := m.Get(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, again.Cmp(big.NewRat(7, 1)))
}

func TestRowColumn(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.NoError(t, err)
	row, err := m.Row(1)
	assert.NoError(t, err)
	assert.Len(t, row, 3)
	assert.Equal(t, 0, row[0].Cmp(big.NewRat(4, 1)))
	column, err := m.Column(2)
	assert.NoError(t, err)
	assert.Len(t, column, 2)
	assert.Equal(t, 0, column[1].Cmp(big.NewRat(6, 1)))
	_, err = m.Row(5)
	assert.Error(t, err)
	_, err = m.Column(3)
	assert.Error(t, err)
}

func TestEqualsAndCopy(t *testing.T) {
	m, err := NewFromInt64Array([]int64{1, 2, 3, 4}, 2, 2)
	assert.NoError(t, err)
	copied := m.Copy()
	assert.True(t, m.Equals(copied))
	assert.NoError(t, copied.Set(0, 0, big.NewRat(9, 1)))
	assert.False(t, m.Equals(copied))

	other, err := NewFromInt64Array([]int64{1, 2, 3, 4}, 4, 1)
	assert.NoError(t, err)
	assert.False(t, m.Equals(other))
}

func TestIsZero(t *testing.T) {
	zero, err := NewEmpty(2, 2)
	assert.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.NoError(t, zero.Set(1, 0, big.NewRat(1, 3)))
	assert.False(t, zero.IsZero())
}

func TestString(t *testing.T) {
	m, err := NewFromRows([][]*big.Rat{{big.NewRat(1, 2), big.NewRat(-3, 1)}})
	assert.NoError(t, err)
	assert.Equal(t, "[1/2 -3]", m.String())
}
