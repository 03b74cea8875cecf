package grocy

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus matches every *StatusError via errors.Is.
var ErrUnexpectedStatus = errors.New("grocy returned unexpected status")

// StatusError reports a non-success HTTP response from Grocy.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to retrieve %s: grocy returned status code %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// StatusCode extracts the HTTP status code from err, if any.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}
