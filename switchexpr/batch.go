package switchexpr

import (
	"context"
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
	"golang.org/x/sync/errgroup"
)

import (
	"github.com/jpenilla/vineflower/config"
	"github.com/jpenilla/vineflower/stmt"
)

// RunAll runs a Pass over every graph, opts.Workers() methods at a time.
// Method graphs share nothing, so each gets its own Pass. done, when not
// nil, is called once per finished graph and must be safe for concurrent
// use.
func RunAll(ctx context.Context, opts *config.Options, graphs []*stmt.Graph, done func(*stmt.Graph)) (*Report, error) {
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(opts.Workers())

	var mu sync.Mutex
	total := NewReport()

	for _, g := range graphs {
		g := g
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			p := NewPass(opts)
			if _, err := p.Run(g); err != nil {
				return errors.Errorf("method %v: %v", g.Name, err)
			}
			mu.Lock()
			total.Merge(p.Report())
			mu.Unlock()
			if done != nil {
				done(g)
			}
			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}
