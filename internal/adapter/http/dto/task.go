package dto

type TaskItem struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	ProjectID       string   `json:"project_id"`
	Deadline        string   `json:"deadline"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	Collaborators   []string `json:"collaborators"`
	Owner           *string  `json:"owner"`
	Parent          *string  `json:"parent"`
	OwnerName       *string  `json:"ownerName"`
	OwnerDepartment *string  `json:"ownerDepartment"`
	Priority        int      `json:"priority"`
}

type TaskRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Deadline      string   `json:"deadline"`
	ProjectID     string   `json:"project_id"`
	Description   string   `json:"description" binding:"max=65535"`
	Status        string   `json:"status"`
	Owner         *string  `json:"owner"`
	Collaborators []string `json:"collaborators"`
	Parent        *string  `json:"parent"`
	Priority      int      `json:"priority" binding:"gte=0,lte=10"`
}
