package domain

// ProjectRecord is a project as stored by the atomic project service.
// Participants is nil when the service did not embed them.
type ProjectRecord struct {
	ID           string
	Title        string
	Description  string
	CreatedAt    string
	UpdatedAt    string
	Owner        *string
	Participants []Participant
	TaskIDs      []string
}

// Project is the composite project returned to callers.
type Project struct {
	ID              string
	Title           string
	Description     string
	CreatedAt       string
	UpdatedAt       string
	Owner           *string
	Collaborators   []string
	OwnerName       *string
	OwnerDepartment *string
	TaskIDs         []string
}

type NewProjectInput struct {
	Title         string
	Description   string
	Owner         *string
	Collaborators []string
}

// NewProjectPayload is sent to the atomic project service on create.
type NewProjectPayload struct {
	Title         string
	Description   string
	Owner         *string
	Collaborators []string
}

// UpdateProjectInput carries a partial update. Nil fields are left untouched.
type UpdateProjectInput struct {
	Title         *string
	Description   *string
	Collaborators []string
	// CollaboratorsSet distinguishes an explicit empty list from an absent one.
	CollaboratorsSet bool
	TaskIDs          []string
	TaskIDsSet       bool
}

// CollaboratorsUpdate is the result of a collaborator replacement.
type CollaboratorsUpdate struct {
	Message string
	Project *Project
}
