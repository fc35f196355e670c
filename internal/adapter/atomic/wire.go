package atomic

import "taskhub/internal/core/domain"

type participantWire struct {
	IsOwner   bool   `json:"is_owner"`
	ProfileID string `json:"profile_id"`
}

type taskRecordWire struct {
	ID           string            `json:"id"`
	ParentTaskID *string           `json:"parent_task_id"`
	ProjectID    string            `json:"project_id"`
	Title        string            `json:"title"`
	Deadline     string            `json:"deadline"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
	Participants []participantWire `json:"participants"`
	Priority     int               `json:"priority"`
}

type taskUpsertWire struct {
	ParentTaskID *string           `json:"parent_task_id"`
	ProjectID    string            `json:"project_id"`
	Title        string            `json:"title"`
	Deadline     string            `json:"deadline"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	Participants []participantWire `json:"participants"`
	Priority     int               `json:"priority"`
}

type projectCollaboratorWire struct {
	ProfileID string `json:"profile_id"`
	IsOwner   bool   `json:"is_owner"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Collaborators stays nil when the key is absent or null, which tells the
// translator to fall back to the member sub-resources.
type projectRecordWire struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	CreatedAt     string                    `json:"created_at"`
	UpdatedAt     string                    `json:"updated_at"`
	Owner         *string                   `json:"owner"`
	Collaborators []projectCollaboratorWire `json:"collaborators"`
	TaskList      []string                  `json:"tasklist"`
}

type newProjectWire struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Owner         *string  `json:"owner,omitempty"`
	Collaborators []string `json:"collaborators"`
}

type collaboratorsWire struct {
	Collaborators []string `json:"collaborators"`
}

type changeOwnerWire struct {
	NewOwnerID string `json:"new_owner_id"`
}

type projectMutationWire struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Project *projectRecordWire `json:"project"`
}

type projectOwnerWire struct {
	ProfileID *string `json:"profile_id"`
}

type userProfileWire struct {
	ID             string `json:"id"`
	DepartmentID   string `json:"department_id"`
	TeamID         string `json:"team_id"`
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"`
	DepartmentName string `json:"department_name"`
	TeamName       string `json:"team_name"`
}

type recurrenceWire struct {
	ID             string  `json:"id,omitempty"`
	TaskID         string  `json:"task_id"`
	Frequency      string  `json:"frequency"`
	Interval       int     `json:"interval"`
	NextOccurrence *string `json:"next_occurrence,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
}

func toParticipants(wire []participantWire) []domain.Participant {
	if wire == nil {
		return nil
	}
	participants := make([]domain.Participant, 0, len(wire))
	for _, p := range wire {
		participants = append(participants, domain.Participant{IsOwner: p.IsOwner, ProfileID: p.ProfileID})
	}
	return participants
}

func fromParticipants(participants []domain.Participant) []participantWire {
	wire := make([]participantWire, 0, len(participants))
	for _, p := range participants {
		wire = append(wire, participantWire{IsOwner: p.IsOwner, ProfileID: p.ProfileID})
	}
	return wire
}

func (w *taskRecordWire) toDomain() *domain.TaskRecord {
	return &domain.TaskRecord{
		ID:           w.ID,
		ParentTaskID: w.ParentTaskID,
		ProjectID:    w.ProjectID,
		Title:        w.Title,
		Deadline:     w.Deadline,
		Description:  w.Description,
		Status:       w.Status,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
		Participants: toParticipants(w.Participants),
		Priority:     w.Priority,
	}
}

func fromTaskUpsert(payload domain.TaskUpsert) taskUpsertWire {
	return taskUpsertWire{
		ParentTaskID: payload.ParentTaskID,
		ProjectID:    payload.ProjectID,
		Title:        payload.Title,
		Deadline:     payload.Deadline,
		Description:  payload.Description,
		Status:       payload.Status,
		Participants: fromParticipants(payload.Participants),
		Priority:     payload.Priority,
	}
}

func toCollaboratorParticipants(wire []projectCollaboratorWire) []domain.Participant {
	if wire == nil {
		return nil
	}
	participants := make([]domain.Participant, 0, len(wire))
	for _, c := range wire {
		participants = append(participants, domain.Participant{IsOwner: c.IsOwner, ProfileID: c.ProfileID})
	}
	return participants
}

func (w *projectRecordWire) toDomain() *domain.ProjectRecord {
	return &domain.ProjectRecord{
		ID:           w.ID,
		Title:        w.Title,
		Description:  w.Description,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
		Owner:        w.Owner,
		Participants: toCollaboratorParticipants(w.Collaborators),
		TaskIDs:      w.TaskList,
	}
}

func (w *userProfileWire) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		ID:             w.ID,
		DisplayName:    w.DisplayName,
		DepartmentID:   w.DepartmentID,
		DepartmentName: w.DepartmentName,
		TeamID:         w.TeamID,
		TeamName:       w.TeamName,
		Role:           w.Role,
	}
}

func (w recurrenceWire) toDomain() domain.Recurrence {
	return domain.Recurrence{
		ID:             w.ID,
		TaskID:         w.TaskID,
		Frequency:      w.Frequency,
		Interval:       w.Interval,
		NextOccurrence: w.NextOccurrence,
		EndDate:        w.EndDate,
	}
}

func fromRecurrence(r domain.Recurrence) recurrenceWire {
	return recurrenceWire{
		ID:             r.ID,
		TaskID:         r.TaskID,
		Frequency:      r.Frequency,
		Interval:       r.Interval,
		NextOccurrence: r.NextOccurrence,
		EndDate:        r.EndDate,
	}
}
