package recommend

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the service answered 2xx with a body that
// is not JSON or does not match the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// NetworkError indicates the service could not be reached or the
// connection failed mid-request.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError indicates the service answered, but not successfully:
// either a non-2xx status or a malformed payload.
type ServiceError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: service error (HTTP %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: service error (HTTP %d)", e.Op, e.StatusCode)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// UserMessage turns an error from a Service into a short message suitable
// for showing inline. It never returns an empty string for a non-nil err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Could not reach the recommendation service. Check your connection and try again."
	}

	if errors.Is(err, ErrMalformedResponse) {
		return "The recommendation service sent an unexpected response. Please try again."
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return fmt.Sprintf("The recommendation service returned an error (HTTP %d). Please try again.", svcErr.StatusCode)
	}

	return "Prediction failed. Please try again."
}
