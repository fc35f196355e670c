package mapper

import (
	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToRecurrenceItems(recurrences []domain.Recurrence) []dto.RecurrenceItem {
	items := make([]dto.RecurrenceItem, 0, len(recurrences))
	for _, recurrence := range recurrences {
		items = append(items, ToRecurrenceItem(recurrence))
	}
	return items
}

func ToRecurrenceItem(recurrence domain.Recurrence) dto.RecurrenceItem {
	return dto.RecurrenceItem{
		ID:             recurrence.ID,
		TaskID:         recurrence.TaskID,
		Frequency:      recurrence.Frequency,
		Interval:       recurrence.Interval,
		NextOccurrence: recurrence.NextOccurrence,
		EndDate:        recurrence.EndDate,
	}
}
