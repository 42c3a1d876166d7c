package residual

import "math"

// Transform mutates one decoded row in place before the mean and the
// projection are taken. Implementations must be safe for concurrent Apply
// calls on distinct buffers.
type Transform interface {
	// Validate reports whether the transform can serve rows of ncells
	// observations. The driver calls it once, before the sweep.
	Validate(ncells int) error

	// Apply rewrites buf element-wise. The driver guarantees len(buf)
	// matches the ncells accepted by Validate.
	Apply(buf []float64)
}

// Identity returns the pass-through transform used for raw-value
// statistics.
func Identity() Transform { return identity{} }

type identity struct{}

func (identity) Validate(int) error { return nil }

func (identity) Apply([]float64) {}

// LogNorm returns the log-normalization transform
//
//	y[j] = log2(x[j]/sizeFactors[j] + pseudocount)
//
// with one size factor per observation, aligned by position. sizeFactors is
// retained as a read-only view; the caller must not mutate it while the
// transform is in use.
//
// Construction rejects size factors that are not strictly positive and
// finite (ErrBadSizeFactor) and pseudocounts that are not strictly positive
// and finite (ErrBadPseudocount). Value-domain trouble inside rows is not
// policed here: a negative entry can push x/sf + pseudocount to or below
// zero, in which case the logarithm yields NaN (or -Inf at exactly zero)
// and flows through that row's statistics without touching other rows.
func LogNorm(sizeFactors []float64, pseudocount float64) (Transform, error) {
	if math.IsNaN(pseudocount) || math.IsInf(pseudocount, 0) || pseudocount <= 0 {
		return nil, ErrBadPseudocount
	}
	for _, sf := range sizeFactors {
		if math.IsNaN(sf) || math.IsInf(sf, 0) || sf <= 0 {
			return nil, ErrBadSizeFactor
		}
	}

	return &logNorm{sf: sizeFactors, pseudo: pseudocount}, nil
}

type logNorm struct {
	sf     []float64
	pseudo float64
}

func (t *logNorm) Validate(ncells int) error {
	if len(t.sf) != ncells {
		return ErrDimensionMismatch
	}

	return nil
}

func (t *logNorm) Apply(buf []float64) {
	for j, v := range buf {
		buf[j] = math.Log2(v/t.sf[j] + t.pseudo)
	}
}
