// Package linmodel holds a fitted linear-model design in compact QR form
// and applies the orthogonal factor to observation vectors.
//
// What:
//
//   - Fit wraps a QR factorization of an ncells x ncoefs design matrix:
//     R in the upper triangle, Householder reflector tails below the
//     diagonal, and the qraux scalar per reflector (LAPACK dgeqrf
//     layout; qraux is LAPACK's tau).
//   - FromDesign factors a raw design matrix into that form via
//     lapack64.Geqrf, for callers who do not already carry a factor.
//   - Projector applies Qt (the transpose of the full orthogonal factor)
//     to a length-ncells vector in place via lapack64.Ormqr. After the
//     call, entries [0, ncoefs) are the fitted-subspace coordinates and
//     entries [ncoefs, ncells) are the residual-subspace coordinates.
//
// Why:
//
//   - Residual statistics need only the squared norm of the residual
//     coordinates, so applying Qt beats forming the hat matrix: O(ncells
//     * ncoefs) per vector instead of O(ncells^2), and no dense
//     ncells x ncells intermediate ever exists.
//   - Q is orthonormal, so the transform preserves Euclidean norms and
//     splits them exactly between the two coordinate ranges.
//
// Conventions:
//
//   - Constructors deep-copy their numeric inputs into tight storage;
//     a Fit is immutable afterwards and safe for concurrent use.
//   - Projector owns the LAPACK scratch buffer and is NOT safe for
//     concurrent use. Create one per goroutine via Fit.Projector.
//   - Validation is structural (shapes, strides, backing lengths).
//     Element values, including NaN and Inf, pass through untouched.
//
// Complexity:
//
//   - FromDesign: O(ncells * ncoefs^2) once.
//   - ApplyQt:    O(ncells * ncoefs) per vector, zero allocations.
//
// Errors:
//
//   - ErrBadFactor: incoherent compact factor handed to NewFit.
//   - ErrBadDesign: incoherent design matrix handed to FromDesign.
//   - ErrDimensionMismatch: vector length differs from ncells.
package linmodel
