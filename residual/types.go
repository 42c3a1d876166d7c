package residual

import "context"

// DefaultWorkers keeps the row sweep sequential unless the caller opts in
// to parallelism.
const DefaultWorkers = 1

// Options tunes one Compute call.
type Options struct {
	// Workers is the number of goroutines sweeping rows. Values below 2
	// keep the sweep sequential on the calling goroutine; higher values
	// split the row range into contiguous chunks, one buffer and one
	// projector per worker. The results are bit-identical at any count.
	Workers int

	// Ctx cancels the sweep between row iterations. Nil means
	// context.Background(), i.e. never canceled.
	Ctx context.Context
}

// DefaultOptions returns the sequential, non-cancellable configuration.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers, Ctx: context.Background()}
}

// normalize fills zero values so the driver can rely on a non-nil context
// and a worker count of at least one.
func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o
}

// Result carries the two per-row output vectors of one sweep, aligned with
// the source's row order.
type Result struct {
	// Means holds the post-transform mean of every row.
	Means []float64

	// Variances holds the residual variance of every row: the squared norm
	// of its residual-subspace coordinates divided by ncells - ncoefs.
	Variances []float64
}
