package client

import (
	"fmt"
)

// TransportError reports a request that did not produce a server envelope:
// the connection failed, the server answered with an unexpected status, or
// the body could not be decoded. Failures the server reports as data are
// returned in task.Response.Error instead.
type TransportError struct {
	Route      string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("request to %s failed", e.Route)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// retryable reports whether the request may succeed if sent again.
func (e *TransportError) retryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}
