// Package executor provides the bounded-concurrency engine behind bulk
// PAN-OS configuration operations.
//
// The package implements a worker pool with per-item error isolation,
// a retry wrapper with exponential backoff, and lock-protected
// progress/utilization accounting that a UI can poll while a batch runs.
//
// # Basic Usage
//
// Create a pool with a handler, submit items, execute:
//
//	pool, err := executor.New(10, func(ctx context.Context, it executor.Item[model.Address]) (string, error) {
//	    return client.SetAddress(ctx, deviceGroup, it.Payload)
//	})
//	if err != nil {
//	    return err
//	}
//
//	for _, addr := range addresses {
//	    pool.Submit(executor.Item[model.Address]{Label: addr.Name, Payload: addr})
//	}
//
//	summary, err := pool.Execute(ctx)
//
// # Progress Reporting
//
// Poll Snapshot from a ticker while Execute runs:
//
//	snap := pool.Snapshot()
//	fmt.Printf("%d/%d done, %d active\n", snap.Completed, snap.Total, snap.Active)
//
// # Retry
//
// Remote calls wrap themselves in Retry with a transience predicate, so
// the pool only observes final outcomes:
//
//	value, attempts, err := executor.Retry(ctx, policy, op)
//
// # Guarantees
//
//   - At most N handlers run concurrently for a pool of size N
//   - The summary holds exactly one result per submitted item
//   - An individual item failure never aborts the batch
//   - On cancellation, in-flight items finish (up to a grace period)
//     and undispatched items fail with ErrCancelled
//   - The active set and result accounting are safe under concurrent
//     access; sharing inside the handler is the handler's concern
package executor
