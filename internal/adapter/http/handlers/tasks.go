package handlers

import (
	"net/http"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
	ids         identifier.Validator
}

func NewTaskHandler(taskService ports.TaskService, ids identifier.Validator) *TaskHandler {
	return &TaskHandler{taskService: taskService, ids: ids}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, apierrors.MsgInvalidID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ListTasksByUser(c *gin.Context) {
	userID, ok := h.ids.Validate(c.Param("userId"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	tasks, err := h.taskService.ListTasksByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, apierrors.MsgInvalidID, zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, apierrors.MsgInvalidID, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	subtasks, err := h.taskService.ListSubtasks(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListSubtasks, apierrors.MsgInvalidID, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(subtasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, apierrors.MsgInvalidTaskPayload)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, apierrors.MsgInvalidTaskPayload, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, apierrors.MsgInvalidID, zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
