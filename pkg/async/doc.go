// Package async provides a small generic Future type for running a
// computation in its own goroutine and collecting its result later.
//
// Async starts the supplied function and immediately returns a *Future.
// The caller waits with Await, bounds the wait with AwaitWithTimeout, or
// polls with IsComplete. WaitAll collects the results of several futures,
// preserving order.
//
// The validation engine's asynchronous branch is built on this package:
// every CheckAsync/ValidateAsync/TestAsync call dispatches one future, and
// completions are observed whenever the future resolves.
//
// # Usage
//
//	future := async.Async(ctx, value, func(ctx context.Context, v string) (string, error) {
//	    return expensiveNormalize(ctx, v)
//	})
//
//	result, err := future.Await()
//
// If the context is already cancelled when Async runs, the future resolves
// with the context error without invoking the function.
package async
