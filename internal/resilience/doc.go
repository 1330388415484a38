// Package resilience groups the fault tolerance helpers used when the service
// talks to anything outside its own process.
//
// Subpackages:
//   - circuitbreaker wraps github.com/sony/gobreaker for remote asset fetches
//   - retry implements exponential backoff with jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.LogoFetchConfig())
//	err := retry.WithBackoff(ctx, retry.LogoFetchConfig(), func() error {
//	    _, err := cb.Execute(func() (interface{}, error) {
//	        return fetch(ctx)
//	    })
//	    return err
//	})
package resilience
