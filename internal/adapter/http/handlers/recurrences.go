package handlers

import (
	"net/http"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	recurrenceCreated = "Recurrence created successfully"
	recurrenceUpdated = "Recurrence updated successfully"
)

type RecurrenceHandler struct {
	recurrenceService ports.RecurrenceService
	ids               identifier.Validator
}

func NewRecurrenceHandler(recurrenceService ports.RecurrenceService, ids identifier.Validator) *RecurrenceHandler {
	return &RecurrenceHandler{recurrenceService: recurrenceService, ids: ids}
}

func (h *RecurrenceHandler) GetRecurrence(c *gin.Context) {
	recurrenceID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	recurrence, err := h.recurrenceService.GetRecurrence(c.Request.Context(), recurrenceID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetRecurrence, apierrors.MsgInvalidID, zap.String("recurrence_id", recurrenceID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurrenceItem(*recurrence))
}

func (h *RecurrenceHandler) ListRecurrencesByTask(c *gin.Context) {
	taskID, ok := h.ids.Validate(c.Param("taskId"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	recurrences, err := h.recurrenceService.ListRecurrencesByTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListRecurrence, apierrors.MsgInvalidID, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurrenceItems(recurrences))
}

func (h *RecurrenceHandler) CreateRecurrence(c *gin.Context) {
	recurrence, ok := h.bindRecurrence(c)
	if !ok {
		return
	}

	if err := h.recurrenceService.CreateRecurrence(c.Request.Context(), recurrence); err != nil {
		respondError(c, err, apierrors.MsgFailCreateRecurrence, apierrors.MsgInvalidRecurrencePayload, zap.String("task_id", recurrence.TaskID))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: recurrenceCreated})
}

func (h *RecurrenceHandler) UpdateRecurrence(c *gin.Context) {
	recurrenceID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	recurrence, ok := h.bindRecurrence(c)
	if !ok {
		return
	}

	if err := h.recurrenceService.UpdateRecurrence(c.Request.Context(), recurrenceID, recurrence); err != nil {
		respondError(c, err, apierrors.MsgFailUpdateRecurrence, apierrors.MsgInvalidRecurrencePayload, zap.String("recurrence_id", recurrenceID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: recurrenceUpdated})
}

func (h *RecurrenceHandler) DeleteRecurrence(c *gin.Context) {
	recurrenceID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	if err := h.recurrenceService.DeleteRecurrence(c.Request.Context(), recurrenceID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteRecurrence, apierrors.MsgInvalidID, zap.String("recurrence_id", recurrenceID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecurrenceHandler) bindRecurrence(c *gin.Context) (recurrence domain.Recurrence, ok bool) {
	var req dto.RecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidRecurrencePayload)
		return recurrence, false
	}

	recurrence, err := validation.BuildRecurrence(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidRecurrencePayload)
		return recurrence, false
	}
	return recurrence, true
}
