package residual

import "errors"

// Sentinel errors returned by Compute and the transform constructors.
// Callers should match them with errors.Is. Row-read failures from the
// rowmat source and context cancellation pass through unchanged.
var (
	// ErrNilSource reports a nil matrix source.
	ErrNilSource = errors.New("residual: nil source")

	// ErrNilFit reports a nil model fit.
	ErrNilFit = errors.New("residual: nil fit")

	// ErrNilTransform reports a nil value transform.
	ErrNilTransform = errors.New("residual: nil transform")

	// ErrDimensionMismatch reports disagreement between the matrix column
	// count, the fit's ncells, or the transform's expected row length.
	ErrDimensionMismatch = errors.New("residual: dimension mismatch")

	// ErrNoResidualDF reports a fully saturated model (ncoefs == ncells),
	// which leaves zero residual degrees of freedom to divide by.
	ErrNoResidualDF = errors.New("residual: no residual degrees of freedom")

	// ErrBadSizeFactor reports a size factor that is not strictly positive
	// and finite.
	ErrBadSizeFactor = errors.New("residual: bad size factor")

	// ErrBadPseudocount reports a pseudocount that is not strictly positive
	// and finite.
	ErrBadPseudocount = errors.New("residual: bad pseudocount")
)
