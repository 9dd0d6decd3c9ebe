package matching

// Unmatched is the sentinel value stored in RowToCol / ColToRow for an
// unmatched row or column.
const Unmatched = -1

// Matching is the result of MaximumMatching: two partial arrays, mutually
// inverse on their defined (non-Unmatched) entries.
type Matching struct {
	RowToCol []int // len == n; RowToCol[i] == Unmatched if row i is unmatched
	ColToRow []int // len == m; ColToRow[j] == Unmatched if col j is unmatched
	Size     int   // number of matched pairs
}

// Options configures MaximumMatching.
//
// GreedyInit – if true (the default), seed the matching with a cheap
// greedy pass (scan rows in order, claim the first unmatched column)
// before running Hopcroft–Karp's BFS/DFS phases. This never changes the
// final matching's size or its determinism, since every subsequent phase
// still layers and augments from whatever free rows remain; it only
// shortens the number of phases needed on inputs where a simple greedy
// match already covers most rows.
type Options struct {
	GreedyInit bool
}

// Option is a functional option for MaximumMatching.
type Option func(*Options)

// WithGreedyInit toggles the greedy seeding pass. Disable it to measure
// or compare Hopcroft–Karp's phase count in isolation.
func WithGreedyInit(enabled bool) Option {
	return func(o *Options) {
		o.GreedyInit = enabled
	}
}

// DefaultOptions returns the default Options: greedy seeding enabled.
func DefaultOptions() Options {
	return Options{GreedyInit: true}
}
