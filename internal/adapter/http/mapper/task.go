package mapper

import (
	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToTaskItems(tasks []*domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		if task == nil {
			continue
		}
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task *domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:              task.ID,
		Title:           task.Title,
		ProjectID:       task.ProjectID,
		Deadline:        task.Deadline,
		Description:     task.Description,
		Status:          task.Status,
		Collaborators:   task.Collaborators,
		Owner:           task.Owner,
		Parent:          task.Parent,
		OwnerName:       task.OwnerName,
		OwnerDepartment: task.OwnerDepartment,
		Priority:        task.Priority,
	}

	if item.Collaborators == nil {
		item.Collaborators = []string{}
	}

	return item
}

func ToTaskInput(req dto.TaskRequest) domain.TaskInput {
	return domain.TaskInput{
		Title:         req.Title,
		Deadline:      req.Deadline,
		ProjectID:     req.ProjectID,
		Description:   req.Description,
		Status:        req.Status,
		Owner:         req.Owner,
		Collaborators: req.Collaborators,
		Parent:        req.Parent,
		Priority:      req.Priority,
	}
}
