package enrich

import (
	"context"
	"sync/atomic"

	"go.trai.ch/wodl/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives the number of processed records and the total.
type ProgressFunc func(done, total int)

// Driver applies strategies to every record of a batch.
type Driver struct {
	strategies  []Strategy
	concurrency int
	every       int
	progress    ProgressFunc
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithConcurrency processes up to n records at a time. Values below 2 keep the run sequential.
func WithConcurrency(n int) DriverOption {
	return func(d *Driver) {
		d.concurrency = n
	}
}

// WithProgress calls fn after every n processed records.
func WithProgress(n int, fn ProgressFunc) DriverOption {
	return func(d *Driver) {
		d.every = n
		d.progress = fn
	}
}

// NewDriver creates a Driver applying strategies in the given order.
func NewDriver(strategies []Strategy, opts ...DriverOption) *Driver {
	d := &Driver{
		strategies:  strategies,
		concurrency: 1,
		every:       domain.DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run returns enriched copies of records in input order. The input records are not modified.
// It only fails when ctx is cancelled.
func (d *Driver) Run(ctx context.Context, records []domain.Record) ([]domain.Record, error) {
	out := make([]domain.Record, len(records))
	total := len(records)
	var done atomic.Int64

	enrichOne := func(ctx context.Context, i int) {
		rec := records[i].Clone()
		if rec != nil {
			for _, s := range d.strategies {
				s.Apply(ctx, rec)
			}
		}
		out[i] = rec

		n := int(done.Add(1))
		if d.progress != nil && d.every > 0 && n%d.every == 0 {
			d.progress(n, total)
		}
	}

	if d.concurrency < 2 {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			enrichOne(ctx, i)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			enrichOne(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
