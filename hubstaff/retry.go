package hubstaff

import (
	"context"
	"errors"
	"time"
)

const (
	retryAttempts     = 3
	defaultRetryDelay = time.Second
)

// withRetry makes one logical request+parse attempt durable against transient
// failure: up to retryAttempts tries with a fixed delay in between. Schema
// and authentication failures are permanent and abort immediately; after the
// last failed try the original error is returned unchanged.
func withRetry(ctx context.Context, delay time.Duration, attempt func() error) error {
	var err error
	for try := 0; try < retryAttempts; try++ {
		if try > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		err = attempt()
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return err
		}
	}
	return err
}

// isPermanent reports whether retrying cannot fix the failure. Retrying a
// schema mismatch would only hide a real contract violation.
func isPermanent(err error) bool {
	var validationErr *ValidationError
	var authErr *AuthError
	return errors.As(err, &validationErr) || errors.As(err, &authErr)
}
