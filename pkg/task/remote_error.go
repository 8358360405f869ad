package task

import (
	"fmt"
	"strings"

	"github.com/steamship-core/steamship-go/internal/wire"
)

// RemoteError describes a failure reported by the server. It is returned as
// data inside a Response, never raised by this package.
type RemoteError struct {
	Code       string
	Message    string
	Suggestion string
}

// RemoteErrorFromMap decodes the wire form {message, suggestion, code}.
// Missing or mistyped fields are left empty.
func RemoteErrorFromMap(v any) *RemoteError {
	m := wire.Map(v)
	return &RemoteError{
		Code:       wire.String(m, "code"),
		Message:    wire.String(m, "message"),
		Suggestion: wire.String(m, "suggestion"),
	}
}

// Error renders "[code]", the message and "Suggestion: ..." on separate lines,
// skipping the parts that are empty.
func (e *RemoteError) Error() string {
	var parts []string
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Suggestion != "" {
		parts = append(parts, fmt.Sprintf("Suggestion: %s", e.Suggestion))
	}
	return strings.Join(parts, "\n")
}

func (e *RemoteError) String() string {
	return e.Error()
}
