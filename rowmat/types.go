package rowmat

// RowSource is the read contract shared by every matrix encoding in this
// package. Rows index features, columns index observations.
//
// Implementations must be safe for concurrent Row calls as long as the
// backing storage is not mutated.
type RowSource interface {
	// Dims returns the (rows, cols) extent of the matrix.
	Dims() (rows, cols int)

	// Row copies logical row i into dst and returns nil on success.
	//
	// Returns ErrOutOfRange when i is outside [0, rows) and ErrBufferLen
	// when len(dst) != cols. Implementations never retain dst.
	Row(i int, dst []float64) error
}
