package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskFromMap(t *testing.T) {
	task := TaskFromMap(map[string]any{
		"taskId":             "task-1",
		"taskStatus":         "running",
		"taskStatusMessage":  "embedding 3 of 10",
		"taskCreatedOn":      "2022-03-01T10:00:00Z",
		"taskLastModifiedOn": "2022-03-01T10:00:05Z",
		"unknown":            "ignored",
	})

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, StatusRunning, task.Status)
	assert.Equal(t, "embedding 3 of 10", task.StatusMessage)
	assert.Equal(t, "2022-03-01T10:00:00Z", task.CreatedOn)
	assert.Equal(t, "2022-03-01T10:00:05Z", task.LastModifiedOn)
}

func TestTaskFromMap_Partial(t *testing.T) {
	task := TaskFromMap(map[string]any{"taskId": "task-1", "taskStatus": 7.0})
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, Status(""), task.Status)
	assert.Empty(t, task.StatusMessage)

	assert.Equal(t, &Task{}, TaskFromMap(nil))
	assert.Equal(t, &Task{}, TaskFromMap([]any{"not", "a", "task"}))
}

func TestTask_Update(t *testing.T) {
	a := &Task{ID: "a", Status: StatusWaiting, StatusMessage: "queued", CreatedOn: "c1", LastModifiedOn: "m1"}
	b := &Task{ID: "a", Status: StatusSucceeded, StatusMessage: "", CreatedOn: "c1", LastModifiedOn: "m2"}

	a.Update(b)

	assert.Equal(t, b.ID, a.ID)
	assert.Equal(t, b.Status, a.Status)
	assert.Equal(t, b.StatusMessage, a.StatusMessage)
	assert.Equal(t, b.CreatedOn, a.CreatedOn)
	assert.Equal(t, b.LastModifiedOn, a.LastModifiedOn)
}

func TestTask_UpdateNil(t *testing.T) {
	a := &Task{ID: "a", Status: StatusRunning, StatusMessage: "working", CreatedOn: "c1", LastModifiedOn: "m1"}

	a.Update(nil)

	assert.Equal(t, Status(""), a.Status)
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "working", a.StatusMessage)
	assert.Equal(t, "c1", a.CreatedOn)
	assert.Equal(t, "m1", a.LastModifiedOn)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.True(t, StatusSucceeded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, Status("").IsTerminal())
	assert.Equal(t, "unknown", Status("").String())
}

func TestTask_Timestamps(t *testing.T) {
	task := &Task{CreatedOn: "2022-03-01T10:00:00Z", LastModifiedOn: "2022-03-01 10:00:05"}

	created, err := task.CreatedTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 3, 1, 10, 0, 0, 0, time.UTC), created.UTC())

	modified, err := task.LastModifiedTime()
	require.NoError(t, err)
	assert.Equal(t, 5, modified.Second())

	_, err = (&Task{}).CreatedTime()
	assert.Error(t, err)

	_, err = (&Task{LastModifiedOn: "not a date"}).LastModifiedTime()
	assert.Error(t, err)
}

func TestTask_AddComment(t *testing.T) {
	ctx := context.Background()
	p := new(MockPoster)
	task := NewTask("task-1", Routing{SpaceHandle: "research"})

	expected := addCommentRequest{
		TaskID:        "task-1",
		ExternalID:    "ticket-9",
		ExternalType:  "jira",
		ExternalGroup: "review",
		Metadata:      `{"a":1}`,
		Upsert:        true,
	}
	p.On("Post", mock.Anything, RouteTaskCommentCreate, expected, Routing{SpaceHandle: "research"}).
		Return(&Envelope{Data: map[string]any{
			"taskId":        "task-1",
			"taskCommentId": "comment-1",
			"externalId":    "ticket-9",
			"externalType":  "jira",
			"externalGroup": "review",
			"metadata":      `{"a":1}`,
			"createdAt":     "2022-03-01T10:00:00Z",
		}}, nil).Once()

	resp, err := task.AddComment(ctx, p, CommentInput{
		ExternalID:    "ticket-9",
		ExternalType:  "jira",
		ExternalGroup: "review",
		Metadata:      map[string]any{"a": 1},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.Nil(t, resp.Task)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "comment-1", resp.Data.TaskCommentID)
	assert.Equal(t, map[string]any{"a": 1.0}, resp.Data.Metadata)
	p.AssertExpectations(t)
}

func TestTask_AddCommentWithoutUpsert(t *testing.T) {
	p := new(MockPoster)
	task := &Task{ID: "task-1"}
	upsert := false

	p.On("Post", mock.Anything, RouteTaskCommentCreate, addCommentRequest{TaskID: "task-1", Upsert: false}, Routing{}).
		Return(&Envelope{Error: map[string]any{"message": "comment exists", "code": "Conflict"}}, nil).Once()

	resp, err := task.AddComment(context.Background(), p, CommentInput{Upsert: &upsert})
	require.NoError(t, err)

	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "[Conflict]\ncomment exists", resp.Error.Error())
	p.AssertExpectations(t)
}

func TestTask_ListComments(t *testing.T) {
	p := new(MockPoster)
	task := &Task{ID: "task-1"}

	p.On("Post", mock.Anything, RouteTaskCommentList, listCommentsRequest{TaskID: "task-1", ExternalType: "jira"}, Routing{}).
		Return(&Envelope{Data: map[string]any{
			"comments": []any{
				map[string]any{"taskCommentId": "c1", "metadata": "plain note"},
				map[string]any{"taskCommentId": "c2", "metadata": `[1,2]`},
				"junk",
			},
		}}, nil).Once()

	resp, err := task.ListComments(context.Background(), p, CommentFilter{ExternalType: "jira"})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Comments, 3)

	assert.Equal(t, "plain note", resp.Data.Comments[0].Metadata)
	assert.Equal(t, []any{1.0, 2.0}, resp.Data.Comments[1].Metadata)
	assert.Equal(t, TaskComment{}, resp.Data.Comments[2])
	p.AssertExpectations(t)
}

func TestTask_DeleteComment(t *testing.T) {
	p := new(MockPoster)
	task := &Task{ID: "task-1"}

	p.On("Post", mock.Anything, RouteTaskCommentDelete, deleteCommentRequest{TaskCommentID: "c1"}, Routing{}).
		Return(&Envelope{Data: map[string]any{"taskCommentId": "c1", "taskId": "task-1"}}, nil).Once()

	resp, err := task.DeleteComment(context.Background(), p, "c1")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "c1", resp.Data.TaskCommentID)
	p.AssertExpectations(t)
}

func TestTask_CommentTransportError(t *testing.T) {
	p := new(MockPoster)
	task := &Task{ID: "task-1"}

	p.On("Post", mock.Anything, RouteTaskCommentDelete, mock.Anything, Routing{}).
		Return(nil, assert.AnError).Once()

	resp, err := task.DeleteComment(context.Background(), p, "c1")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
}
