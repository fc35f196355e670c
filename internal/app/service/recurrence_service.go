package service

import (
	"context"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

// RecurrenceService forwards recurrence calls to the task service unchanged.
type RecurrenceService struct {
	recurrences ports.RecurrenceClient
	logger      *zap.Logger
}

func NewRecurrenceService(recurrences ports.RecurrenceClient, logger *zap.Logger) *RecurrenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecurrenceService{recurrences: recurrences, logger: logger}
}

func (s *RecurrenceService) GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error) {
	recurrence, err := s.recurrences.GetRecurrence(ctx, recurrenceID)
	if err != nil {
		return nil, err
	}
	if recurrence == nil {
		return nil, domain.ErrRecurrenceNotFound
	}
	return recurrence, nil
}

func (s *RecurrenceService) ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error) {
	recurrences, err := s.recurrences.ListRecurrencesByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if recurrences == nil {
		return []domain.Recurrence{}, nil
	}
	return recurrences, nil
}

func (s *RecurrenceService) CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error {
	s.logger.Debug("creating recurrence", zap.String("task_id", recurrence.TaskID), zap.String("frequency", recurrence.Frequency))
	return s.recurrences.CreateRecurrence(ctx, recurrence)
}

// UpdateRecurrence forces the path id onto the payload.
func (s *RecurrenceService) UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error {
	recurrence.ID = recurrenceID
	return s.recurrences.UpdateRecurrence(ctx, recurrenceID, recurrence)
}

func (s *RecurrenceService) DeleteRecurrence(ctx context.Context, recurrenceID string) error {
	return s.recurrences.DeleteRecurrence(ctx, recurrenceID)
}

var _ ports.RecurrenceService = (*RecurrenceService)(nil)
