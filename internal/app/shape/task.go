// Package shape translates between inbound requests, atomic service records
// and the composite objects returned to callers.
package shape

import (
	"context"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/participant"
)

// TaskEnricher attaches owner profile data to a translated task.
type TaskEnricher interface {
	EnrichTask(ctx context.Context, task *domain.Task) error
}

type TaskTranslator struct {
	reconciler *participant.Reconciler
	enricher   TaskEnricher
}

func NewTaskTranslator(reconciler *participant.Reconciler, enricher TaskEnricher) *TaskTranslator {
	return &TaskTranslator{reconciler: reconciler, enricher: enricher}
}

// ToTask converts a stored record and enriches it with owner details. A nil
// record yields a nil task without touching the profile service.
func (t *TaskTranslator) ToTask(ctx context.Context, record *domain.TaskRecord) (*domain.Task, error) {
	if record == nil {
		return nil, nil
	}

	owner, collaborators := t.reconciler.Split(record.Participants)
	task := &domain.Task{
		ID:            record.ID,
		Title:         record.Title,
		ProjectID:     record.ProjectID,
		Deadline:      record.Deadline,
		Description:   record.Description,
		Status:        record.Status,
		Collaborators: collaborators,
		Owner:         owner,
		Parent:        copyString(record.ParentTaskID),
		Priority:      record.Priority,
	}

	if err := t.enricher.EnrichTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Owner returns the validated owner of record without enriching it.
func (t *TaskTranslator) Owner(record *domain.TaskRecord) *string {
	if record == nil {
		return nil
	}
	owner, _ := t.reconciler.Split(record.Participants)
	return owner
}

// ToTasks maps records in order. Nil entries are skipped and the result is
// never nil.
func (t *TaskTranslator) ToTasks(ctx context.Context, records []*domain.TaskRecord) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		task, err := t.ToTask(ctx, record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ToUpsert builds the atomic service payload for a create or update request.
func (t *TaskTranslator) ToUpsert(input domain.TaskInput) domain.TaskUpsert {
	return domain.TaskUpsert{
		ParentTaskID: copyString(input.Parent),
		ProjectID:    input.ProjectID,
		Title:        input.Title,
		Deadline:     input.Deadline,
		Description:  input.Description,
		Status:       input.Status,
		Participants: t.reconciler.Reconcile(input.Owner, input.Collaborators),
		Priority:     input.Priority,
	}
}

// ToRecord is the inverse of ToTask for the stored fields. Enrichment data and
// timestamps are not part of a composite task and are left empty.
func (t *TaskTranslator) ToRecord(task *domain.Task) *domain.TaskRecord {
	if task == nil {
		return nil
	}
	return &domain.TaskRecord{
		ID:           task.ID,
		ParentTaskID: copyString(task.Parent),
		ProjectID:    task.ProjectID,
		Title:        task.Title,
		Deadline:     task.Deadline,
		Description:  task.Description,
		Status:       task.Status,
		Participants: t.reconciler.Reconcile(task.Owner, task.Collaborators),
		Priority:     task.Priority,
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
