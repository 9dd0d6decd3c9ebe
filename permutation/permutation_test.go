package permutation_test

import (
	"testing"

	"github.com/katalvlaran/dmperm/permutation"
	"github.com/stretchr/testify/require"
)

func applySwaps(n int, swaps []permutation.Swap) []int {
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	for _, s := range swaps {
		cur[s.P], cur[s.Q] = cur[s.Q], cur[s.P]
	}
	return cur
}

func TestPermutationSequenceFromOrder_Identity(t *testing.T) {
	swaps, err := permutation.PermutationSequenceFromOrder([]int{0, 1, 2})
	require.NoError(t, err)
	require.Empty(t, swaps)
}

func TestPermutationSequenceFromOrder_Reverse(t *testing.T) {
	order := []int{3, 2, 1, 0}
	swaps, err := permutation.PermutationSequenceFromOrder(order)
	require.NoError(t, err)
	require.Equal(t, order, applySwaps(4, swaps))
}

func TestPermutationSequenceFromOrder_Arbitrary(t *testing.T) {
	order := []int{2, 0, 3, 1}
	swaps, err := permutation.PermutationSequenceFromOrder(order)
	require.NoError(t, err)
	require.Equal(t, order, applySwaps(4, swaps))
}

func TestPermutationSequenceFromOrder_Invalid(t *testing.T) {
	_, err := permutation.PermutationSequenceFromOrder([]int{0, 0})
	require.ErrorIs(t, err, permutation.ErrNotAPermutation)

	_, err = permutation.PermutationSequenceFromOrder([]int{0, 2})
	require.ErrorIs(t, err, permutation.ErrNotAPermutation)
}
