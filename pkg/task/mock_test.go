package task

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPoster mocks the Poster interface.
type MockPoster struct {
	mock.Mock
}

func (m *MockPoster) Post(ctx context.Context, route string, payload any, routing Routing) (*Envelope, error) {
	args := m.Called(ctx, route, payload, routing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Envelope), args.Error(1)
}

func statusEnvelope(id string, status Status, data any) *Envelope {
	return &Envelope{
		Data: data,
		Status: map[string]any{
			"taskId":             id,
			"taskStatus":         string(status),
			"taskCreatedOn":      "2022-03-01T10:00:00Z",
			"taskLastModifiedOn": "2022-03-01T10:00:05Z",
		},
	}
}
