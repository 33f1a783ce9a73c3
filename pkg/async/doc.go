// Package async provides a single-resolution Promise/Future pair used to
// adapt callback-based APIs into awaitable results.
//
// The package is centred around two linked generic types. New returns a
// *Promise and its *Future: the promise is handed to whatever code owns the
// completion callback, the future is returned to the caller. The first call
// to Resolve or Reject completes the future; every later completion attempt
// is silently ignored, so wrapping callbacks that might fire more than once
// is safe.
//
// # Usage
//
//	import "github.com/dmitrymomot/notifykit/pkg/async"
//
//	func fetchSettings(center Center) *async.Future[Settings] {
//	    p, f := async.New[Settings]()
//	    center.NotificationSettings(func(s Settings) {
//	        p.Resolve(s)
//	    })
//	    return f
//	}
//
//	settings, err := fetchSettings(center).Await(ctx)
//
// # Cancellation
//
// Futures cannot be cancelled. Await(ctx) stops waiting when the context is
// done, but the underlying operation keeps running and may still complete
// the future afterwards. This mirrors the platform APIs being wrapped, which
// expose no cancellation of their own.
//
// # Error Handling
//
// Await returns whatever error the promise was rejected with, or the context
// error when the wait was abandoned. AwaitWithTimeout returns ErrTimeout if
// the deadline passes first.
package async
