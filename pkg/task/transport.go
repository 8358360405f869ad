package task

import (
	"context"
)

// Routes used by the task model.
const (
	RouteTaskStatus        = "task/status"
	RouteTaskCommentCreate = "task/comment/create"
	RouteTaskCommentList   = "task/comment/list"
	RouteTaskCommentDelete = "task/comment/delete"
)

// Routing selects the space (tenant) a request is executed in. Empty fields
// fall back to the transport's configured defaults.
type Routing struct {
	SpaceID     string
	SpaceHandle string
}

// Envelope is a server reply before it is shaped into a typed Response.
//
//	{"data": ..., "status": {"taskId": ..., "taskStatus": ...}, "error": {"message": ...}}
type Envelope struct {
	Data   any            `json:"data,omitempty"`
	Status map[string]any `json:"status,omitempty"`
	Error  map[string]any `json:"error,omitempty"`
}

// Poster is the transport capability consumed by tasks and responses.
// Implementations return an error only for transport or protocol failures;
// failures reported by the server belong in Envelope.Error.
type Poster interface {
	Post(ctx context.Context, route string, payload any, routing Routing) (*Envelope, error)
}

// Decoder converts a decoded JSON value into T. Decoders must be total: a
// missing or malformed field yields its zero value rather than a failure.
type Decoder[T any] func(v any) T

// Raw is the identity decoder, used when the payload type is not known ahead
// of time.
func Raw(v any) any {
	return v
}

// Post issues a request and shapes the reply into a Response[T].
func Post[T any](ctx context.Context, p Poster, route string, payload any, decode Decoder[T], routing Routing) (*Response[T], error) {
	env, err := p.Post(ctx, route, payload, routing)
	if err != nil {
		return nil, err
	}
	return FromEnvelope(env, decode, routing), nil
}

// FromEnvelope builds a Response from a server reply. A nil envelope yields an
// empty response.
func FromEnvelope[T any](env *Envelope, decode Decoder[T], routing Routing) *Response[T] {
	resp := &Response[T]{
		decode:  decode,
		routing: routing,
	}
	if env == nil {
		return resp
	}

	if env.Status != nil {
		resp.Task = TaskFromMap(env.Status)
		resp.Task.routing = routing
	}
	if env.Data != nil && decode != nil {
		data := decode(env.Data)
		resp.Data = &data
	}
	if env.Error != nil {
		resp.Error = RemoteErrorFromMap(env.Error)
	} else if resp.Task != nil && resp.Task.Status == StatusFailed && resp.Task.StatusMessage != "" {
		resp.Error = &RemoteError{Message: resp.Task.StatusMessage}
	}
	return resp
}
