package linmodel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Fit is an immutable compact QR factorization of a linear-model design
// over ncells observations and ncoefs coefficients.
type Fit struct {
	ncells, ncoefs int
	qr             blas64.General // compact factor, tight stride == ncoefs
	tau            []float64      // reflector scalars, len == ncoefs
	lwork          int            // optimal Ormqr scratch size for ncells x 1 targets
}

// NewFit wraps an existing compact QR factor.
//
// qr must be the ncells x ncoefs output of a dgeqrf-style routine: R in the
// upper triangle, Householder reflector tails below the diagonal. qraux must
// hold the ncoefs reflector scalars (LAPACK's tau). Both are deep-copied, so
// the caller's buffers stay free for reuse.
//
// Returns ErrBadFactor when the factor header is structurally incoherent,
// when ncoefs is outside [1, ncells], or when len(qraux) != ncoefs.
func NewFit(qr blas64.General, qraux []float64) (*Fit, error) {
	if err := checkGeneral(qr, ErrBadFactor); err != nil {
		return nil, err
	}
	if qr.Cols > qr.Rows || len(qraux) != qr.Cols {
		return nil, ErrBadFactor
	}

	tau := make([]float64, len(qraux))
	copy(tau, qraux)

	return finishFit(cloneTight(qr), tau), nil
}

// FromDesign factors an ncells x ncoefs design matrix with lapack64.Geqrf
// and wraps the result. The design is deep-copied first, so the caller's
// buffer is not overwritten by the in-place factorization.
//
// Returns ErrBadDesign when the design header is structurally incoherent or
// has fewer rows than columns. Rank deficiency is not detected: Q stays
// orthonormal either way, which is all residual projection needs.
func FromDesign(design blas64.General) (*Fit, error) {
	if err := checkGeneral(design, ErrBadDesign); err != nil {
		return nil, err
	}
	if design.Cols > design.Rows {
		return nil, ErrBadDesign
	}

	a := cloneTight(design)
	tau := make([]float64, a.Cols)

	// Workspace query first, then the actual factorization.
	work := make([]float64, 1)
	lapack64.Geqrf(a, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqrf(a, tau, work, len(work))

	return finishFit(a, tau), nil
}

// finishFit stores the factor and runs the Ormqr workspace query for
// ncells x 1 targets, so every Projector allocates exactly once.
func finishFit(qr blas64.General, tau []float64) *Fit {
	f := &Fit{ncells: qr.Rows, ncoefs: qr.Cols, qr: qr, tau: tau}

	c := blas64.General{Rows: f.ncells, Cols: 1, Stride: 1, Data: make([]float64, f.ncells)}
	query := make([]float64, 1)
	lapack64.Ormqr(blas.Left, blas.Trans, f.qr, f.tau, c, query, -1)
	if f.lwork = int(query[0]); f.lwork < 1 {
		f.lwork = 1
	}

	return f
}

// Ncells returns the number of observations the design covers.
func (f *Fit) Ncells() int { return f.ncells }

// Ncoefs returns the number of model coefficients.
func (f *Fit) Ncoefs() int { return f.ncoefs }

// Projector returns a fresh applier with its own LAPACK scratch buffer.
// The underlying Fit is shared read-only; the Projector itself is not safe
// for concurrent use, so create one per goroutine.
func (f *Fit) Projector() *Projector {
	return &Projector{fit: f, work: make([]float64, f.lwork)}
}

// Projector applies the orthogonal factor of one Fit to vectors in place.
type Projector struct {
	fit  *Fit
	work []float64 // Ormqr scratch, len == fit.lwork
}

// ApplyQt overwrites x with Qt*x, where Q is the full ncells x ncells
// orthogonal factor.
//
// On return, x[:ncoefs] holds the fitted-subspace coordinates and
// x[ncoefs:] the residual-subspace coordinates. Returns
// ErrDimensionMismatch when len(x) != ncells; x is untouched on error.
func (p *Projector) ApplyQt(x []float64) error {
	if len(x) != p.fit.ncells {
		return ErrDimensionMismatch
	}

	c := blas64.General{Rows: p.fit.ncells, Cols: 1, Stride: 1, Data: x}
	lapack64.Ormqr(blas.Left, blas.Trans, p.fit.qr, p.fit.tau, c, p.work, len(p.work))

	return nil
}

// checkGeneral validates a row-major matrix header against its backing
// slice and returns sentinel when any structural rule is broken.
func checkGeneral(a blas64.General, sentinel error) error {
	if a.Rows < 1 || a.Cols < 1 {
		return sentinel
	}
	if a.Stride < a.Cols {
		return sentinel
	}
	if len(a.Data) < (a.Rows-1)*a.Stride+a.Cols {
		return sentinel
	}

	return nil
}

// cloneTight deep-copies a into fresh storage with stride == cols.
func cloneTight(a blas64.General) blas64.General {
	out := blas64.General{Rows: a.Rows, Cols: a.Cols, Stride: a.Cols, Data: make([]float64, a.Rows*a.Cols)}
	for i := 0; i < a.Rows; i++ {
		copy(out.Data[i*out.Stride:i*out.Stride+out.Cols], a.Data[i*a.Stride:i*a.Stride+a.Cols])
	}

	return out
}
