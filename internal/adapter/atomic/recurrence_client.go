package atomic

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

// RecurrenceClient talks to the recurrence routes, which live on the task
// service in current deployments.
type RecurrenceClient struct {
	client
}

func NewRecurrenceClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *RecurrenceClient {
	return &RecurrenceClient{client: newClient("recurrence", baseURL, "/task/", httpClient, logger)}
}

func (c *RecurrenceClient) GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error) {
	var recurrence *recurrenceWire
	if err := c.do(ctx, "get recurrence", http.MethodGet, "/recurrence/"+url.PathEscape(recurrenceID), nil, &recurrence); err != nil {
		return nil, notFoundAs(err, domain.ErrRecurrenceNotFound)
	}
	if recurrence == nil {
		return nil, domain.ErrRecurrenceNotFound
	}
	result := recurrence.toDomain()
	return &result, nil
}

func (c *RecurrenceClient) ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error) {
	var recurrences []recurrenceWire
	if err := c.do(ctx, "list recurrences", http.MethodGet, "/recurrence/task/"+url.PathEscape(taskID), nil, &recurrences); err != nil {
		if isNotFound(err) {
			return []domain.Recurrence{}, nil
		}
		return nil, err
	}

	result := make([]domain.Recurrence, 0, len(recurrences))
	for _, recurrence := range recurrences {
		result = append(result, recurrence.toDomain())
	}
	return result, nil
}

func (c *RecurrenceClient) CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error {
	err := c.do(ctx, "create recurrence", http.MethodPost, "/recurrence", fromRecurrence(recurrence), nil)
	return notFoundAs(err, domain.ErrTaskNotFound)
}

func (c *RecurrenceClient) UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error {
	err := c.do(ctx, "update recurrence", http.MethodPut, "/recurrence/"+url.PathEscape(recurrenceID), fromRecurrence(recurrence), nil)
	return notFoundAs(err, domain.ErrRecurrenceNotFound)
}

func (c *RecurrenceClient) DeleteRecurrence(ctx context.Context, recurrenceID string) error {
	err := c.do(ctx, "delete recurrence", http.MethodDelete, "/recurrence/"+url.PathEscape(recurrenceID), nil, nil)
	return notFoundAs(err, domain.ErrRecurrenceNotFound)
}

var _ ports.RecurrenceClient = (*RecurrenceClient)(nil)
