package dto

type ProjectItem struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	Owner           *string  `json:"owner"`
	Collaborators   []string `json:"collaborators"`
	OwnerName       *string  `json:"ownerName"`
	OwnerDepartment *string  `json:"ownerDepartment"`
	TaskList        []string `json:"tasklist"`
}

type NewProjectRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description"`
	Owner         *string  `json:"owner"`
	Collaborators []string `json:"collaborators"`
}

type UpdateProjectRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Collaborators []string `json:"collaborators"`
	TaskList      []string `json:"tasklist"`
}

type UpdateCollaboratorsRequest struct {
	Collaborators []string `json:"collaborators"`
}

type ChangeOwnerRequest struct {
	NewOwnerID string `json:"new_owner_id" binding:"required"`
}

type CollaboratorsResponse struct {
	Message string       `json:"message"`
	Project *ProjectItem `json:"project,omitempty"`
}
