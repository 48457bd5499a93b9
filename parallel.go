package roseredis

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// InParallel executes independent pipelines concurrently. Results line up with pipelines.
// The first error is returned once every pipeline has finished; pipelines are not
// cancelled mid-batch.
func InParallel(ctx context.Context, pipelines ...*Pipeline) ([]*Map, error) {

	out := make([]*Map, len(pipelines))

	var g errgroup.Group
	for i, p := range pipelines {
		g.Go(func() error {
			res, err := p.Exec(ctx)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
