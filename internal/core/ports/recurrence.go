package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

// RecurrenceClient is the recurrence endpoint set of the atomic task service.
type RecurrenceClient interface {
	GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error)
	ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error)
	CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error
	UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error
	DeleteRecurrence(ctx context.Context, recurrenceID string) error
}

type RecurrenceService interface {
	GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error)
	ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error)
	CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error
	UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error
	DeleteRecurrence(ctx context.Context, recurrenceID string) error
}
