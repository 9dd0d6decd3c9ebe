package permutation

// Swap is one transposition in a permutation sequence: exchange the
// elements currently at positions P and Q.
type Swap struct {
	P, Q int
}
