package mapper

import (
	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToProjectItems(projects []*domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		if project == nil {
			continue
		}
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project *domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
		Owner:           project.Owner,
		Collaborators:   project.Collaborators,
		OwnerName:       project.OwnerName,
		OwnerDepartment: project.OwnerDepartment,
		TaskList:        project.TaskIDs,
	}

	if item.Collaborators == nil {
		item.Collaborators = []string{}
	}
	if item.TaskList == nil {
		item.TaskList = []string{}
	}

	return item
}

func ToCollaboratorsResponse(update *domain.CollaboratorsUpdate) dto.CollaboratorsResponse {
	resp := dto.CollaboratorsResponse{Message: update.Message}
	if update.Project != nil {
		item := ToProjectItem(update.Project)
		resp.Project = &item
	}
	return resp
}
