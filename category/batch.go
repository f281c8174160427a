// SPDX-License-Identifier: MIT

package category

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Pair is one composition request: First;Second.
type Pair[Hom any] struct {
	First, Second Hom
}

// ComposeBatch composes every pair independently, at most WithJobs at a time,
// and returns the composites in input order.
//
// The first failing composition cancels the rest; its error is returned
// wrapped with the pair index.
func ComposeBatch[Ob, Hom any](ctx context.Context, c Category[Ob, Hom], pairs []Pair[Hom], opts ...Option) ([]Hom, error) {
	if c == nil {
		return nil, ErrNilCategory
	}
	o := resolve(opts)

	out := make([]Hom, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.jobs)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := c.Compose(p.First, p.Second)
			if err != nil {
				return fmt.Errorf("category: ComposeBatch pair %d: %w", i, err)
			}
			out[i] = h

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
