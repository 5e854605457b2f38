package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightOf(t *testing.T) {
	assert.Equal(t, int64(2), WeightOf([]int{1, 0, 0, 1}, []int64{1, 0, 0, 1}))
	assert.Equal(t, int64(0), WeightOf([]int{0, 1, 1, 0}, []int64{1, 0, 0, 1}))
	assert.Equal(t, int64(-7), WeightOf([]int{2, 1}, []int64{-2, -3}))
}

func TestNegateInt64(t *testing.T) {
	assert.Equal(t, []int64{-1, 0, 2}, NegateInt64([]int64{1, 0, -2}))
	assert.Equal(t, []int64{}, NegateInt64(nil))
}

func TestSortedCopy(t *testing.T) {
	assert.Equal(t, []int{1, 2, 5}, SortedCopy([]int{5, 2, 1, 2, 5}))
	assert.Equal(t, []int{}, SortedCopy(nil))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Complement(4, []int{0, 2}))
	assert.Equal(t, []int{0, 1, 2}, Complement(3, nil))
	assert.Nil(t, Complement(2, []int{0, 1}))
}

func TestContainsAndIsSubset(t *testing.T) {
	assert.True(t, Contains([]int{3, 1}, 1))
	assert.False(t, Contains([]int{3, 1}, 2))
	assert.True(t, IsSubset([]int{1, 3}, []int{3, 2, 1}))
	assert.False(t, IsSubset([]int{1, 4}, []int{3, 2, 1}))
	assert.True(t, IsSubset(nil, nil))
}

func TestValidateIndexSet(t *testing.T) {
	assert.NoError(t, ValidateIndexSet(4, []int{0, 3, 1}))
	assert.NoError(t, ValidateIndexSet(4, nil))
	assert.Error(t, ValidateIndexSet(4, []int{4}))
	assert.Error(t, ValidateIndexSet(4, []int{-1}))
	assert.Error(t, ValidateIndexSet(4, []int{2, 2}))
}
