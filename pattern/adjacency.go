package pattern

// BuildRowAdjacency scans m through isZero and returns, for each row, the
// ascending list of columns holding a structural nonzero.
//
// Steps:
//  1. Validate: m != nil, m.Rows() >= 0, m.Cols() >= 0.
//  2. Allocate one slice per row.
//  3. Scan (i, j) in row-major order, appending j whenever !isZero(v).
//
// Zero rows or zero columns are not an error: they describe the empty
// matrix and its degenerate relatives, and yield a Sparsity with no
// adjacency to report, not a failure. Columns within a row are produced
// in strictly increasing order because the scan itself is in increasing
// column order; no separate sort is needed. Complexity: O(n*m) entry
// accesses.
func BuildRowAdjacency[T any](m Matrix[T], isZero IsZero[T]) (*Sparsity, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if isZero == nil {
		return nil, ErrNilIsZero
	}
	n, c := m.Rows(), m.Cols()
	if n < 0 || c < 0 {
		return nil, ErrInvalidDimensions
	}

	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		var cols []int
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, &EntryError{Row: i, Col: j, Err: err}
			}
			if !isZero(v) {
				cols = append(cols, j)
			}
		}
		rows[i] = cols
	}

	return &Sparsity{NumRows: n, NumCols: c, Rows: rows}, nil
}
