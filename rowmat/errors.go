package rowmat

import "errors"

// Sentinel errors returned by rowmat constructors and RowSource.Row.
// Callers should match them with errors.Is.
var (
	// ErrBadShape reports negative dimensions, a backing slice whose length
	// disagrees with rows*cols, or a CSR structure whose indptr/indices/values
	// triplet is incoherent at construction.
	ErrBadShape = errors.New("rowmat: bad shape")

	// ErrNonRectangular reports DenseFromRows input whose rows differ in length.
	ErrNonRectangular = errors.New("rowmat: non-rectangular input")

	// ErrOutOfRange reports a row index outside [0, rows).
	ErrOutOfRange = errors.New("rowmat: row index out of range")

	// ErrBufferLen reports a destination buffer whose length differs from
	// the source column count.
	ErrBufferLen = errors.New("rowmat: buffer length mismatch")

	// ErrCorruptStorage reports a CSR structure that was valid at construction
	// but violated at read time, i.e. a backing slice mutated afterwards.
	ErrCorruptStorage = errors.New("rowmat: corrupt storage")
)
