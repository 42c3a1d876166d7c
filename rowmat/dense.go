package rowmat

// DenseFloat64 exposes a flat row-major float64 slice as a RowSource.
type DenseFloat64 struct {
	rows, cols int
	data       []float64 // row-major backing, len == rows*cols
}

// NewDenseFloat64 wraps a flat row-major backing slice.
//
// The slice is retained as a read-only view; the caller must not mutate it
// while the source is in use. Returns ErrBadShape on negative dimensions or
// when len(data) != rows*cols.
func NewDenseFloat64(rows, cols int, data []float64) (*DenseFloat64, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}

	return &DenseFloat64{rows: rows, cols: cols, data: data}, nil
}

// DenseFromRows flattens a slice-of-rows into fresh row-major storage.
//
// The input is deep-copied, so later mutation of rows does not affect the
// source. Every row must have the same length (ErrNonRectangular otherwise);
// an empty input yields a 0x0 source.
func DenseFromRows(rows [][]float64) (*DenseFloat64, error) {
	if len(rows) == 0 {
		return &DenseFloat64{}, nil
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrNonRectangular
		}
		data = append(data, r...)
	}

	return &DenseFloat64{rows: len(rows), cols: cols, data: data}, nil
}

// Dims returns the (rows, cols) extent.
func (m *DenseFloat64) Dims() (rows, cols int) { return m.rows, m.cols }

// Row copies row i into dst.
func (m *DenseFloat64) Row(i int, dst []float64) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}
	if len(dst) != m.cols {
		return ErrBufferLen
	}
	copy(dst, m.data[i*m.cols:(i+1)*m.cols])

	return nil
}

// DenseInt32 exposes a flat row-major int32 slice as a RowSource,
// upcasting each element to float64 on read.
type DenseInt32 struct {
	rows, cols int
	data       []int32 // row-major backing, len == rows*cols
}

// NewDenseInt32 wraps a flat row-major backing slice.
//
// The slice is retained as a read-only view; the caller must not mutate it
// while the source is in use. Returns ErrBadShape on negative dimensions or
// when len(data) != rows*cols.
func NewDenseInt32(rows, cols int, data []int32) (*DenseInt32, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}

	return &DenseInt32{rows: rows, cols: cols, data: data}, nil
}

// Dims returns the (rows, cols) extent.
func (m *DenseInt32) Dims() (rows, cols int) { return m.rows, m.cols }

// Row copies row i into dst, converting each int32 element to float64.
func (m *DenseInt32) Row(i int, dst []float64) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}
	if len(dst) != m.cols {
		return ErrBufferLen
	}
	src := m.data[i*m.cols : (i+1)*m.cols]
	for j, v := range src {
		dst[j] = float64(v)
	}

	return nil
}
