// Package retry provides a generic retry loop and pluggable retry strategies
// for network calls that may fail transiently.
package retry

import (
	"errors"
	"math"
	"time"
)

// WithDefaultExponentialDelay is an exponential backoff strategy with 5 max
// retries, 500ms initial delay, and 30000ms max delay.
var WithDefaultExponentialDelay = WithExponentialBackoffFn(5, 500, 30000)

// RetryStrategyFunc decides, given the number of retries so far, whether the
// work function should be invoked again. It is expected to sleep any backoff
// delay before returning.
type RetryStrategyFunc func(int) bool

// Call executes a function repeatedly until it succeeds, returns an error
// wrapping ErrNonRetryable, or the retry strategy indicates that no more
// retries should be attempted.
//
// If no retry strategy is provided, it defaults to WithDefaultExponentialDelay.
//
// Returns the result from the work function and any error that occurred if
// retries are exhausted.
func Call[T any](
	work func() (T, error),
	retryStrategy ...RetryStrategyFunc,
) (T, error) {
	var result T
	var err error
	if retryStrategy == nil {
		retryStrategy = []RetryStrategyFunc{WithDefaultExponentialDelay}
	}

	for retryCount := 0; ; retryCount++ {
		result, err = work()
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNonRetryable) {
			return result, err
		}
		if !retryStrategy[0](retryCount) {
			return result, err
		}
	}
}

// WithExponentialBackoffFn creates a retry strategy with exponential backoff.
func WithExponentialBackoffFn(
	maxRetryCount int,
	initialDelayMs int,
	maxDelayMs int,
) func(retryCount int) bool {
	return func(retryCount int) bool {
		if retryCount > maxRetryCount {
			return false
		}

		backoffDelay := initialDelayMs * int(math.Pow(2, float64(retryCount)))
		delay := min(backoffDelay, maxDelayMs)
		time.Sleep(time.Duration(delay) * time.Millisecond)
		return true
	}
}
