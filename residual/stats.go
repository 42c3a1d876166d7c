package residual

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/resvar/linmodel"
	"github.com/katalvlaran/resvar/rowmat"
)

// Compute sweeps every row of src through the transform and the model's
// orthogonal projection, producing per-row means and residual variances.
//
// The driver proceeds as follows:
//
//  1. Validate the collaborators once, before the loop: non-nil inputs,
//     matrix columns equal to the fit's ncells, at least one residual
//     degree of freedom, and a transform that accepts rows of that length.
//  2. Allocate the two output vectors, one entry per matrix row.
//  3. Sweep the row range, sequentially or in contiguous chunks across
//     opts.Workers goroutines; every worker owns its row buffer and its
//     projector and writes disjoint output entries.
//  4. Per row: read, transform in place, take the mean, rotate by Qt, and
//     divide the squared norm of the residual coordinates by the residual
//     degrees of freedom ncells - ncoefs.
//
// Cancellation is checked between row iterations via opts.Ctx. On any
// failure (row read, cancellation) the whole call aborts with no partial
// results. Outputs are deterministic and bit-identical across repeated
// calls and across worker counts.
func Compute(src rowmat.RowSource, fit *linmodel.Fit, transform Transform, opts Options) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if fit == nil {
		return nil, ErrNilFit
	}
	if transform == nil {
		return nil, ErrNilTransform
	}

	rows, cols := src.Dims()
	if cols != fit.Ncells() {
		return nil, ErrDimensionMismatch
	}
	if fit.Ncoefs() == fit.Ncells() {
		return nil, ErrNoResidualDF
	}
	if err := transform.Validate(cols); err != nil {
		return nil, err
	}

	opts = opts.normalize()
	out := &Result{Means: make([]float64, rows), Variances: make([]float64, rows)}
	if rows == 0 {
		return out, nil
	}

	workers := opts.Workers
	if workers > rows {
		workers = rows
	}
	if workers == 1 {
		if err := sweep(opts.Ctx, src, fit, transform, out, 0, rows); err != nil {
			return nil, err
		}

		return out, nil
	}

	g, ctx := errgroup.WithContext(opts.Ctx)
	chunk := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += chunk {
		lo := lo // per-iteration copy: the closure below must not share the loop variable under the go 1.21 capture rules
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		g.Go(func() error {
			return sweep(ctx, src, fit, transform, out, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ComputeNone runs the sweep with the identity transform: means and
// residual variances of the matrix values exactly as stored.
func ComputeNone(src rowmat.RowSource, fit *linmodel.Fit, opts Options) (*Result, error) {
	return Compute(src, fit, Identity(), opts)
}

// ComputeLogNorm runs the sweep with the log-normalization transform
// log2(x/sizeFactors + pseudocount). See LogNorm for the parameter rules.
func ComputeLogNorm(src rowmat.RowSource, fit *linmodel.Fit, sizeFactors []float64, pseudocount float64, opts Options) (*Result, error) {
	transform, err := LogNorm(sizeFactors, pseudocount)
	if err != nil {
		return nil, err
	}

	return Compute(src, fit, transform, opts)
}

// sweep processes rows [lo, hi) with its own buffer and projector, filling
// out.Means[i] and out.Variances[i] for every i in the range.
func sweep(ctx context.Context, src rowmat.RowSource, fit *linmodel.Fit, transform Transform, out *Result, lo, hi int) error {
	var (
		ncells = fit.Ncells()
		ncoefs = fit.Ncoefs()
		df     = float64(ncells - ncoefs)
		buf    = make([]float64, ncells)
		proj   = fit.Projector()
	)

	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := src.Row(i, buf); err != nil {
			return err
		}
		transform.Apply(buf)
		out.Means[i] = floats.Sum(buf) / float64(ncells)
		if err := proj.ApplyQt(buf); err != nil {
			return err
		}
		tail := buf[ncoefs:]
		out.Variances[i] = floats.Dot(tail, tail) / df
	}

	return nil
}
