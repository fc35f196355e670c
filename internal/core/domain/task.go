package domain

// UnknownOwner is substituted for owner name and department when the owner
// cannot be resolved.
const UnknownOwner = "Unknown"

// Participant ties a task or project to a profile.
type Participant struct {
	IsOwner   bool
	ProfileID string
}

// TaskRecord is a task as stored by the atomic task service.
type TaskRecord struct {
	ID           string
	ParentTaskID *string
	ProjectID    string
	Title        string
	Deadline     string
	Description  string
	Status       string
	CreatedAt    string
	UpdatedAt    string
	Participants []Participant
	Priority     int
}

// Task is the composite task returned to callers.
type Task struct {
	ID              string
	Title           string
	ProjectID       string
	Deadline        string
	Description     string
	Status          string
	Collaborators   []string
	Owner           *string
	Parent          *string
	OwnerName       *string
	OwnerDepartment *string
	Priority        int
}

// TaskInput is a create or update request for a task.
type TaskInput struct {
	Title         string
	Deadline      string
	ProjectID     string
	Description   string
	Status        string
	Owner         *string
	Collaborators []string
	Parent        *string
	Priority      int
}

// TaskUpsert is the payload sent to the atomic task service.
type TaskUpsert struct {
	ParentTaskID *string
	ProjectID    string
	Title        string
	Deadline     string
	Description  string
	Status       string
	Participants []Participant
	Priority     int
}
