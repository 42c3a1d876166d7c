// Package residual computes feature-wise means and residual variances of
// an expression matrix under a fitted linear model.
//
// What:
//
// For every matrix row (one feature measured across ncells observations)
// the sweep performs one fixed pipeline:
//
//	row i ──get──▶ buffer ──transform──▶ mean[i]
//	                  │
//	                  └──Qt──▶ ‖tail‖² / (ncells-ncoefs) ──▶ variance[i]
//
//  1. Read row i into a reusable buffer (rowmat.RowSource).
//  2. Apply the value transform in place: Identity for raw statistics, or
//     LogNorm for log2(x/sizeFactor + pseudocount) normalization.
//  3. mean[i] = sum(buffer) / ncells, over the transformed values.
//  4. Apply Qt from the model's QR factorization (linmodel.Projector),
//     rotating the buffer into fitted + residual coordinates.
//  5. variance[i] = squared norm of the ncells-ncoefs residual
//     coordinates, divided by the residual degrees of freedom.
//
// Why:
//
//   - The orthogonal rotation reproduces the residual sum of squares of
//     the direct (I-H)x projection without ever forming the hat matrix,
//     in O(ncells*ncoefs) per row with one reused buffer.
//   - Rows are independent, so the sweep optionally fans out across
//     workers with per-worker buffers and disjoint output ranges, and
//     returns bit-identical results at any worker count.
//
// Entry points:
//
//   - Compute: the generic driver over any RowSource and Transform.
//   - ComputeNone / ComputeLogNorm: the two standard variants.
//
// Numeric policy:
//
//   - Structural problems (nil inputs, shape mismatches, zero residual
//     degrees of freedom, invalid size factors or pseudocount, storage
//     corruption) fail fast; no partial results are returned.
//   - Value-domain problems inside a row do not abort the sweep: a log
//     argument at or below zero yields -Inf or NaN, which propagates
//     through that row's mean and variance and leaves other rows intact.
//
// Errors:
//
//   - ErrNilSource / ErrNilFit / ErrNilTransform: missing collaborator.
//   - ErrDimensionMismatch: matrix columns, model ncells and transform
//     length disagree.
//   - ErrNoResidualDF: ncoefs == ncells, a fully saturated model.
//   - ErrBadSizeFactor / ErrBadPseudocount: invalid LogNorm parameters.
//   - Row-read failures and context cancellation surface unchanged.
package residual
