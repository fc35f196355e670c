package domain

// UserProfile is owned by the profile service and never mutated here.
type UserProfile struct {
	ID             string
	DisplayName    string
	DepartmentID   string
	DepartmentName string
	TeamID         string
	TeamName       string
	Role           string
}
