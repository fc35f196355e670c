package dto

type RecurrenceItem struct {
	ID             string  `json:"id"`
	TaskID         string  `json:"task_id"`
	Frequency      string  `json:"frequency"`
	Interval       int     `json:"interval"`
	NextOccurrence *string `json:"next_occurrence,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
}

type RecurrenceRequest struct {
	TaskID         string  `json:"task_id" binding:"required"`
	Frequency      string  `json:"frequency" binding:"required"`
	Interval       int     `json:"interval" binding:"required,gt=0"`
	NextOccurrence *string `json:"next_occurrence"`
	EndDate        *string `json:"end_date"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
