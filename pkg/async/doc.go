// Package async runs a single computation in its own goroutine and hands back
// a generic Future for its result.
//
// Async starts the function immediately. The caller continues with other work
// and later collects the result with Await, or with AwaitContext to stop
// waiting once a context is done. IsComplete and Done allow polling and
// select-based composition.
//
// A context that is already done when Async is called completes the Future with
// the context error and the function never runs. A panic inside the function is
// recovered and reported as ErrPanic, so a misbehaving callback cannot crash the
// process.
//
// # Usage
//
//	future := async.Async(ctx, reader, func(ctx context.Context, r Reader) (Reading, error) {
//	    return r.Read(ctx)
//	})
//
//	// do other work …
//
//	reading, err := future.AwaitContext(ctx)
//	if err != nil {
//	    // ctx.Err(), ErrPanic or the callback error
//	}
package async
