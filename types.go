package dmperm

// Structure is the diagnostic result of UpperBlockTriangularStructure: a
// full description of the block-triangular decomposition beyond the bare
// permutation sequences.
type Structure struct {
	// MatchingSize is the number of matched row/column pairs.
	MatchingSize int
	// BlockSizes gives the size of each diagonal block, in the order
	// blocks appear along the diagonal after permutation.
	BlockSizes []int
	// RowOrder and ColOrder list, for each position along the matched
	// subset, the original row/column index placed there.
	RowOrder []int
	ColOrder []int
	// ComponentOfRow maps every row (matched or not) to its component id
	// in the dependency graph's strongly connected partition.
	ComponentOfRow []int
}
