package client

import (
	"context"

	"github.com/steamship-core/steamship-go/pkg/task"
)

// GetTask fetches the current state of any task by id. The payload of a
// finished task is left undecoded.
func (c *Client) GetTask(ctx context.Context, taskID string, routing task.Routing) (*task.Response[any], error) {
	return task.Post(ctx, c, task.RouteTaskStatus, task.StatusRequest{TaskID: taskID}, task.Raw, routing)
}
