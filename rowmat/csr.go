package rowmat

// CSRFloat64 exposes a compressed-sparse-row float64 matrix as a RowSource.
//
// The triplet layout is the usual one: indptr has rows+1 entries with
// indptr[0] == 0 and indptr[rows] == len(values); row i owns the stored
// entries values[indptr[i]:indptr[i+1]] at columns indices[indptr[i]:indptr[i+1]].
type CSRFloat64 struct {
	rows, cols int
	indptr     []int     // len rows+1, non-decreasing
	indices    []int     // column index per stored entry, each in [0, cols)
	values     []float64 // stored entries, len == len(indices)
}

// NewCSRFloat64 wraps a CSR triplet as a RowSource.
//
// The slices are retained as read-only views; the caller must not mutate
// them while the source is in use. The whole structure is validated once,
// in O(rows + nnz), so Row can stay cheap. Returns ErrBadShape when the
// triplet is incoherent: wrong indptr length, decreasing indptr, a final
// offset that disagrees with len(values), mismatched indices/values
// lengths, or a column index outside [0, cols).
func NewCSRFloat64(rows, cols int, indptr, indices []int, values []float64) (*CSRFloat64, error) {
	if err := validateCSR(rows, cols, indptr, indices, len(values)); err != nil {
		return nil, err
	}

	return &CSRFloat64{rows: rows, cols: cols, indptr: indptr, indices: indices, values: values}, nil
}

// Dims returns the (rows, cols) extent.
func (m *CSRFloat64) Dims() (rows, cols int) { return m.rows, m.cols }

// Row zero-fills dst and scatters the stored entries of row i into it.
// When a column index repeats within a row, the last stored value wins.
func (m *CSRFloat64) Row(i int, dst []float64) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}
	if len(dst) != m.cols {
		return ErrBufferLen
	}
	start, end := m.indptr[i], m.indptr[i+1]
	if start < 0 || end < start || end > len(m.values) {
		return ErrCorruptStorage
	}
	for j := range dst {
		dst[j] = 0
	}
	for k := start; k < end; k++ {
		j := m.indices[k]
		if j < 0 || j >= m.cols {
			return ErrCorruptStorage
		}
		dst[j] = m.values[k]
	}

	return nil
}

// CSRInt32 exposes a compressed-sparse-row int32 matrix as a RowSource,
// upcasting each stored entry to float64 on read. The triplet layout
// matches CSRFloat64.
type CSRInt32 struct {
	rows, cols int
	indptr     []int   // len rows+1, non-decreasing
	indices    []int   // column index per stored entry, each in [0, cols)
	values     []int32 // stored entries, len == len(indices)
}

// NewCSRInt32 wraps a CSR triplet as a RowSource.
//
// Validation and ownership rules match NewCSRFloat64.
func NewCSRInt32(rows, cols int, indptr, indices []int, values []int32) (*CSRInt32, error) {
	if err := validateCSR(rows, cols, indptr, indices, len(values)); err != nil {
		return nil, err
	}

	return &CSRInt32{rows: rows, cols: cols, indptr: indptr, indices: indices, values: values}, nil
}

// Dims returns the (rows, cols) extent.
func (m *CSRInt32) Dims() (rows, cols int) { return m.rows, m.cols }

// Row zero-fills dst and scatters the stored entries of row i into it,
// converting each int32 entry to float64. When a column index repeats
// within a row, the last stored value wins.
func (m *CSRInt32) Row(i int, dst []float64) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}
	if len(dst) != m.cols {
		return ErrBufferLen
	}
	start, end := m.indptr[i], m.indptr[i+1]
	if start < 0 || end < start || end > len(m.values) {
		return ErrCorruptStorage
	}
	for j := range dst {
		dst[j] = 0
	}
	for k := start; k < end; k++ {
		j := m.indices[k]
		if j < 0 || j >= m.cols {
			return ErrCorruptStorage
		}
		dst[j] = float64(m.values[k])
	}

	return nil
}

// validateCSR checks the structural coherence of a CSR triplet.
// nvalues is the length of the concrete values slice.
func validateCSR(rows, cols int, indptr, indices []int, nvalues int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if len(indptr) != rows+1 || indptr[0] != 0 || indptr[rows] != nvalues || len(indices) != nvalues {
		return ErrBadShape
	}
	for i := 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return ErrBadShape
		}
	}
	for _, j := range indices {
		if j < 0 || j >= cols {
			return ErrBadShape
		}
	}

	return nil
}
