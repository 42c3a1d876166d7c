package linmodel

import "errors"

// Sentinel errors returned by linmodel constructors and Projector.ApplyQt.
// Callers should match them with errors.Is.
var (
	// ErrBadFactor reports a compact QR factor whose shape, stride, backing
	// length or qraux length is incoherent, or a coefficient count outside
	// [1, ncells].
	ErrBadFactor = errors.New("linmodel: bad QR factor")

	// ErrBadDesign reports a design matrix whose shape, stride or backing
	// length is incoherent, or that has fewer rows than columns.
	ErrBadDesign = errors.New("linmodel: bad design matrix")

	// ErrDimensionMismatch reports a vector whose length differs from the
	// ncells the factor was built for.
	ErrDimensionMismatch = errors.New("linmodel: dimension mismatch")
)
