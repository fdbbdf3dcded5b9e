package future

import "context"

// AwaitAll launches every handle, then waits for each in order and collects
// the values. On the first wait failure it returns the values gathered so
// far together with that error.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	if len(futures) == 0 {
		return nil, ErrNoFutures
	}

	// Launch everything up front so the handles run concurrently instead of
	// one per Await.
	for _, f := range futures {
		f.start()
	}

	results := make([]T, len(futures))
	for i, f := range futures {
		v, err := f.Await(ctx)
		results[i] = v
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// AwaitAny launches every handle and waits for the first recorded outcome.
// It returns the winner's index along with its value or error. Only the
// winner is consumed; the remaining handles keep their values for later
// polling.
func AwaitAny[T any](ctx context.Context, futures ...*Future[T]) (int, T, error) {
	var zero T
	if len(futures) == 0 {
		return -1, zero, ErrNoFutures
	}

	for _, f := range futures {
		f.start()
	}

	winner := make(chan int, 1)
	for i, f := range futures {
		go func(index int, f *Future[T]) {
			select {
			case <-f.done:
				select {
				case winner <- index:
				default:
					// Another future was recorded first.
				}
			case <-ctx.Done():
			}
		}(i, f)
	}

	select {
	case index := <-winner:
		v, err := futures[index].Poll()
		return index, v, err
	case <-ctx.Done():
		return -1, zero, ctx.Err()
	}
}
