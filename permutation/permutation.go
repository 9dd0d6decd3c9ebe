package permutation

// PermutationSequenceFromOrder converts order (order[p] = original index
// that must end up at position p) into the sequence of swaps that
// realizes it when applied left-to-right starting from the identity.
//
// Steps:
//  1. Validate: order is a permutation of [0, len(order)).
//  2. Maintain current, the array-in-progress, plus its inverse
//     position, so that "where is value v right now" is O(1).
//  3. For each position p in ascending order, if current[p] != order[p],
//     locate q = position(order[p]), emit Swap{p, q}, and apply it to
//     current and position.
//
// Complexity: O(n).
func PermutationSequenceFromOrder(order []int) ([]Swap, error) {
	n := len(order)
	if err := validatePermutation(order); err != nil {
		return nil, err
	}

	current := make([]int, n)
	position := make([]int, n)
	for i := 0; i < n; i++ {
		current[i] = i
		position[i] = i
	}

	var swaps []Swap
	for p := 0; p < n; p++ {
		if current[p] == order[p] {
			continue
		}
		q := position[order[p]]
		swaps = append(swaps, Swap{P: p, Q: q})

		current[p], current[q] = current[q], current[p]
		position[current[p]] = p
		position[current[q]] = q
	}

	return swaps, nil
}

func validatePermutation(order []int) error {
	n := len(order)
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return ErrNotAPermutation
		}
		seen[v] = true
	}
	return nil
}
