package domain

type Recurrence struct {
	ID             string
	TaskID         string
	Frequency      string
	Interval       int
	NextOccurrence *string
	EndDate        *string
}
