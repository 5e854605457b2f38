// Package util holds small integer helpers shared by the other packages:
// weight/exponent dot products and index-set algebra over a fixed variable
// ordering. Variable subsets are always handled as integer index sets, never
// by comparing symbolic names, so an externally re-sorted variable list
// cannot change their meaning.
package util

import (
	"fmt"
	"sort"
)

// WeightOf returns sum(w[i] exp[i]), the weight of the monomial with
// exponent vector exp under the weight vector w. WeightOf trusts its
// inputs to have equal length.
func WeightOf(exp []int, w []int64) int64 {
	var retVal int64
	for i, e := range exp {
		retVal += w[i] * int64(e)
	}
	return retVal
}

// NegateInt64 returns a new vector with every entry of v negated.
func NegateInt64(v []int64) []int64 {
	retVal := make([]int64, len(v))
	for i, value := range v {
		retVal[i] = -value
	}
	return retVal
}

// SortedCopy returns a sorted copy of the index set s with duplicates
// removed.
func SortedCopy(s []int) []int {
	retVal := make([]int, 0, len(s))
	seen := make(map[int]bool, len(s))
	for _, index := range s {
		if !seen[index] {
			seen[index] = true
			retVal = append(retVal, index)
		}
	}
	sort.Ints(retVal)
	return retVal
}

// Complement returns the sorted complement of the index set s within
// {0, ..., n-1}.
func Complement(n int, s []int) []int {
	inSet := make([]bool, n)
	for _, index := range s {
		if 0 <= index && index < n {
			inSet[index] = true
		}
	}
	var retVal []int
	for i := 0; i < n; i++ {
		if !inSet[i] {
			retVal = append(retVal, i)
		}
	}
	return retVal
}

// Contains returns whether the index set s contains index.
func Contains(s []int, index int) bool {
	for _, member := range s {
		if member == index {
			return true
		}
	}
	return false
}

// IsSubset returns whether every member of sub is a member of super.
func IsSubset(sub, super []int) bool {
	for _, index := range sub {
		if !Contains(super, index) {
			return false
		}
	}
	return true
}

// ValidateIndexSet returns an error unless every member of s lies in
// {0, ..., n-1} and no member repeats.
func ValidateIndexSet(n int, s []int) error {
	seen := make(map[int]bool, len(s))
	for _, index := range s {
		if index < 0 || n <= index {
			return fmt.Errorf("ValidateIndexSet: index %d out of range [0,%d)", index, n)
		}
		if seen[index] {
			return fmt.Errorf("ValidateIndexSet: index %d repeats", index)
		}
		seen[index] = true
	}
	return nil
}
