package task

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/steamship-core/steamship-go/internal/wire"
)

// Task is the client-side view of an asynchronous unit of work. It reflects
// the last snapshot observed from the server and is mutated in place by
// Update. The server enforces status ordering; the client does not.
type Task struct {
	ID             string
	Status         Status
	StatusMessage  string
	CreatedOn      string
	LastModifiedOn string

	routing Routing
}

// NewTask returns a handle for an existing task, e.g. one whose id was
// stored by the caller. Its status is unknown until refreshed.
func NewTask(id string, routing Routing) *Task {
	return &Task{ID: id, routing: routing}
}

// TaskFromMap decodes the wire form of a task. Absent or mistyped fields are
// left empty; decoding never fails.
func TaskFromMap(v any) *Task {
	m := wire.Map(v)
	return &Task{
		ID:             wire.String(m, "taskId"),
		Status:         Status(wire.String(m, "taskStatus")),
		StatusMessage:  wire.String(m, "taskStatusMessage"),
		CreatedOn:      wire.String(m, "taskCreatedOn"),
		LastModifiedOn: wire.String(m, "taskLastModifiedOn"),
	}
}

// Update copies a fresher snapshot into t. A nil snapshot means the task was
// lost: only Status is cleared and every other field is kept.
func (t *Task) Update(other *Task) {
	if other == nil {
		t.Status = ""
		return
	}
	t.ID = other.ID
	t.Status = other.Status
	t.StatusMessage = other.StatusMessage
	t.CreatedOn = other.CreatedOn
	t.LastModifiedOn = other.LastModifiedOn
}

// CreatedTime parses CreatedOn.
func (t *Task) CreatedTime() (time.Time, error) {
	return parseTimestamp("taskCreatedOn", t.CreatedOn)
}

// LastModifiedTime parses LastModifiedOn.
func (t *Task) LastModifiedTime() (time.Time, error) {
	return parseTimestamp("taskLastModifiedOn", t.LastModifiedOn)
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is not set", field)
	}
	ts, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return ts, nil
}

// AddComment attaches a comment to the task.
func (t *Task) AddComment(ctx context.Context, p Poster, in CommentInput) (*Response[TaskComment], error) {
	upsert := true
	if in.Upsert != nil {
		upsert = *in.Upsert
	}
	req := addCommentRequest{
		TaskID:        t.ID,
		ExternalID:    in.ExternalID,
		ExternalType:  in.ExternalType,
		ExternalGroup: in.ExternalGroup,
		Metadata:      EncodeMetadata(in.Metadata),
		Upsert:        upsert,
	}
	return Post(ctx, p, RouteTaskCommentCreate, req, TaskCommentFromMap, t.routing)
}

// ListComments lists the comments attached to the task, optionally narrowed by
// external correlation fields.
func (t *Task) ListComments(ctx context.Context, p Poster, filter CommentFilter) (*Response[TaskCommentList], error) {
	req := listCommentsRequest{
		TaskID:        t.ID,
		ExternalID:    filter.ExternalID,
		ExternalType:  filter.ExternalType,
		ExternalGroup: filter.ExternalGroup,
	}
	return Post(ctx, p, RouteTaskCommentList, req, TaskCommentListFromMap, t.routing)
}

// DeleteComment removes a comment by its id.
func (t *Task) DeleteComment(ctx context.Context, p Poster, taskCommentID string) (*Response[TaskComment], error) {
	req := deleteCommentRequest{TaskCommentID: taskCommentID}
	return Post(ctx, p, RouteTaskCommentDelete, req, TaskCommentFromMap, t.routing)
}
