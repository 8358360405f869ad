package task

import (
	"github.com/steamship-core/steamship-go/internal/wire"
)

// TaskComment is an annotation attached to a task. The External* fields are
// free-form tags used to correlate the comment with records in other systems.
type TaskComment struct {
	UserID        string
	TaskID        string
	TaskCommentID string
	ExternalID    string
	ExternalType  string
	ExternalGroup string
	Metadata      any
	CreatedAt     string
}

// TaskCommentList is the reply of a comment listing.
type TaskCommentList struct {
	Comments []TaskComment
}

// CommentInput describes a comment to create. Upsert defaults to true when nil.
type CommentInput struct {
	ExternalID    string
	ExternalType  string
	ExternalGroup string
	Metadata      any
	Upsert        *bool
}

// CommentFilter narrows a comment listing. Empty fields match everything.
type CommentFilter struct {
	ExternalID    string
	ExternalType  string
	ExternalGroup string
}

type addCommentRequest struct {
	TaskID        string `json:"taskId"`
	ExternalID    string `json:"externalId,omitempty"`
	ExternalType  string `json:"externalType,omitempty"`
	ExternalGroup string `json:"externalGroup,omitempty"`
	Metadata      string `json:"metadata,omitempty"`
	Upsert        bool   `json:"upsert"`
}

type listCommentsRequest struct {
	TaskID        string `json:"taskId"`
	ExternalID    string `json:"externalId,omitempty"`
	ExternalType  string `json:"externalType,omitempty"`
	ExternalGroup string `json:"externalGroup,omitempty"`
}

type deleteCommentRequest struct {
	TaskCommentID string `json:"taskCommentId"`
}

// StatusRequest is the body of a task/status call.
type StatusRequest struct {
	TaskID string `json:"taskId"`
}

// TaskCommentFromMap decodes a comment, parsing its metadata string.
func TaskCommentFromMap(v any) TaskComment {
	m := wire.Map(v)
	return TaskComment{
		UserID:        wire.String(m, "userId"),
		TaskID:        wire.String(m, "taskId"),
		TaskCommentID: wire.String(m, "taskCommentId"),
		ExternalID:    wire.String(m, "externalId"),
		ExternalType:  wire.String(m, "externalType"),
		ExternalGroup: wire.String(m, "externalGroup"),
		Metadata:      DecodeMetadata(wire.String(m, "metadata")),
		CreatedAt:     wire.String(m, "createdAt"),
	}
}

// TaskCommentListFromMap decodes {comments: [...]}.
func TaskCommentListFromMap(v any) TaskCommentList {
	items := wire.Slice(wire.Map(v)["comments"])
	list := TaskCommentList{Comments: make([]TaskComment, 0, len(items))}
	for _, item := range items {
		list.Comments = append(list.Comments, TaskCommentFromMap(item))
	}
	return list
}
