package internal

import "golang.org/x/sync/errgroup"

// Gather runs fn over every input in parallel and collects results in input
// order. The first failure wins; partial results are discarded. All fan-out
// reads in the aggregation paths go through this one primitive.
func Gather[T, R any](inputs []T, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(inputs))

	var g errgroup.Group
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			r, err := fn(in)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
