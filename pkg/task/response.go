package task

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	DefaultMaxWait    = 60 * time.Second
	DefaultRetryDelay = 1 * time.Second
)

// Response is the envelope returned by every call. It is in one of three
// logical states:
//   - synchronous success: Data set, Task and Error nil
//   - asynchronous pending: Task set, Data and Error nil
//   - failure: Error set, Data nil
//
// The states overlap while a pending response is being refreshed, e.g. a
// finished task keeps its Task snapshot and gains Data.
type Response[T any] struct {
	Task  *Task
	Data  *T
	Error *RemoteError

	decode  Decoder[T]
	routing Routing
}

// NewResponse returns an empty response whose later refreshes decode payloads
// with decode.
func NewResponse[T any](decode Decoder[T], routing Routing) *Response[T] {
	return &Response[T]{decode: decode, routing: routing}
}

// Update merges a newer response into r. Data is only replaced when other
// carries data; Error is always replaced, so a successful refresh clears a
// previous error.
func (r *Response[T]) Update(other *Response[T]) {
	if other == nil {
		return
	}
	if r.Task != nil && other.Task != nil {
		r.Task.Update(other.Task)
	}
	if other.Data != nil {
		r.Data = other.Data
	}
	r.Error = other.Error
}

// Check refreshes the response with a single status round trip. It does
// nothing when there is no task to poll. Reply data is only taken as the
// result once the task has succeeded.
func (r *Response[T]) Check(ctx context.Context, p Poster) error {
	if r.Task == nil {
		return nil
	}
	req := StatusRequest{TaskID: r.Task.ID}
	next, err := Post(ctx, p, RouteTaskStatus, req, r.decode, r.routing)
	if err != nil {
		return err
	}
	if next.Task == nil || next.Task.Status != StatusSucceeded {
		next.Data = nil
	}
	r.Update(next)
	return nil
}

// WaitOption configures Wait.
type WaitOption func(*waitOptions)

type waitOptions struct {
	maxWait    time.Duration
	retryDelay time.Duration
	logger     hclog.Logger
}

// WithMaxWait bounds the total time spent polling.
func WithMaxWait(d time.Duration) WaitOption {
	return func(o *waitOptions) { o.maxWait = d }
}

// WithRetryDelay sets the pause between status checks.
func WithRetryDelay(d time.Duration) WaitOption {
	return func(o *waitOptions) { o.retryDelay = d }
}

// WithLogger logs each poll at debug level.
func WithLogger(logger hclog.Logger) WaitOption {
	return func(o *waitOptions) { o.logger = logger }
}

// Wait polls until the task succeeds or fails, or until the max wait elapses.
//
// Without a task Wait returns at once. Otherwise the first check happens
// immediately and is always followed by one retry delay, even when the task
// is already terminal, giving the server time to settle the task's result.
// Reaching the max wait is not an error: callers inspect Task.Status and
// Error afterwards. The server-side task keeps running regardless. Wait
// returns an error only when a status request fails or ctx is done.
func (r *Response[T]) Wait(ctx context.Context, p Poster, opts ...WaitOption) error {
	o := waitOptions{
		maxWait:    DefaultMaxWait,
		retryDelay: DefaultRetryDelay,
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if r.Task == nil {
		return nil
	}

	start := time.Now()
	if err := r.Check(ctx, p); err != nil {
		return err
	}
	if err := sleep(ctx, o.retryDelay); err != nil {
		return err
	}
	if r.finished() {
		return nil
	}

	for time.Since(start) < o.maxWait {
		if err := sleep(ctx, o.retryDelay); err != nil {
			return err
		}
		if err := r.Check(ctx, p); err != nil {
			return err
		}
		o.logger.Debug("polled task",
			"task_id", r.Task.ID,
			"status", r.Task.Status.String(),
			"elapsed", time.Since(start),
		)
		if r.finished() {
			return nil
		}
	}

	o.logger.Debug("stopped waiting for task",
		"task_id", r.Task.ID,
		"status", r.Task.Status.String(),
		"max_wait", o.maxWait,
	)
	return nil
}

func (r *Response[T]) finished() bool {
	return r.Task == nil || r.Task.Status.IsTerminal()
}

// AddComment forwards to the task. It returns nil, nil when there is no task.
func (r *Response[T]) AddComment(ctx context.Context, p Poster, in CommentInput) (*Response[TaskComment], error) {
	if r.Task == nil {
		return nil, nil
	}
	return r.Task.AddComment(ctx, p, in)
}

// ListComments forwards to the task. It returns nil, nil when there is no task.
func (r *Response[T]) ListComments(ctx context.Context, p Poster, filter CommentFilter) (*Response[TaskCommentList], error) {
	if r.Task == nil {
		return nil, nil
	}
	return r.Task.ListComments(ctx, p, filter)
}

// DeleteComment forwards to the task. It returns nil, nil when there is no task.
func (r *Response[T]) DeleteComment(ctx context.Context, p Poster, taskCommentID string) (*Response[TaskComment], error) {
	if r.Task == nil {
		return nil, nil
	}
	return r.Task.DeleteComment(ctx, p, taskCommentID)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
