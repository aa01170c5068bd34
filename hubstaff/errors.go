package hubstaff

import "fmt"

// TransportError covers connection failures, timeouts, and non-2xx responses.
// Status is zero when the request never produced a response.
type TransportError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("request %s %s failed with status %d: %v", e.Method, e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError marks a response body that does not conform to the declared
// schema. It is never retried.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid response field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AuthError is a definitive sign-in rejection. The session is unusable and no
// further calls are attempted.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected with status %d: %v", e.Status, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
