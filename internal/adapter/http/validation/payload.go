package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/core/domain"
)

var (
	ErrInvalidTaskPayload       = errors.New("invalid task payload")
	ErrInvalidProjectPayload    = errors.New("invalid project payload")
	ErrInvalidOwnerPayload      = errors.New("invalid owner payload")
	ErrInvalidRecurrencePayload = errors.New("invalid recurrence payload")
)

var projectUpdateFields = []string{"title", "description", "collaborators", "tasklist"}

func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	input := mapper.ToTaskInput(req)
	input.Title = title
	input.Status = strings.TrimSpace(req.Status)
	return input, nil
}

func BuildNewProjectInput(req dto.NewProjectRequest) (domain.NewProjectInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.NewProjectInput{}, ErrInvalidProjectPayload
	}

	return domain.NewProjectInput{
		Title:         title,
		Description:   req.Description,
		Owner:         req.Owner,
		Collaborators: req.Collaborators,
	}, nil
}

// BuildUpdateProjectInput applies only the fields present in raw. A null
// collaborators or tasklist clears the list.
func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasAnyJSONField(raw, projectUpdateFields...) {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		title = &value
	}

	if hasJSONField(raw, "description") && (isJSONNull(raw["description"]) || req.Description == nil) {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	input := domain.UpdateProjectInput{
		Title:            title,
		Description:      req.Description,
		CollaboratorsSet: hasJSONField(raw, "collaborators"),
		TaskIDsSet:       hasJSONField(raw, "tasklist"),
	}
	if input.CollaboratorsSet {
		input.Collaborators = nonNil(req.Collaborators)
	}
	if input.TaskIDsSet {
		input.TaskIDs = nonNil(req.TaskList)
	}
	return input, nil
}

func BuildNewOwnerID(req dto.ChangeOwnerRequest) (string, error) {
	owner := strings.TrimSpace(req.NewOwnerID)
	if owner == "" {
		return "", ErrInvalidOwnerPayload
	}
	return owner, nil
}

func BuildRecurrence(req dto.RecurrenceRequest) (domain.Recurrence, error) {
	taskID := strings.TrimSpace(req.TaskID)
	frequency := strings.TrimSpace(req.Frequency)
	if taskID == "" || frequency == "" || req.Interval <= 0 {
		return domain.Recurrence{}, ErrInvalidRecurrencePayload
	}

	return domain.Recurrence{
		TaskID:         taskID,
		Frequency:      frequency,
		Interval:       req.Interval,
		NextOccurrence: req.NextOccurrence,
		EndDate:        req.EndDate,
	}, nil
}

// DecodeObject unmarshals body into dst and also returns the raw top level
// fields so callers can tell an absent key from a null one.
func DecodeObject(body []byte, dst any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON object")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, err
	}
	return raw, nil
}

func hasAnyJSONField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
