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

type ProjectHandler struct {
	projectService ports.ProjectService
	ids            identifier.Validator
}

func NewProjectHandler(projectService ports.ProjectService, ids identifier.Validator) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, ids: ids}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProject, apierrors.MsgInvalidID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) ListProjectsByUser(c *gin.Context) {
	userID, ok := h.ids.Validate(c.Param("userId"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	projects, err := h.projectService.ListProjectsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProject, apierrors.MsgInvalidID, zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetProject, apierrors.MsgInvalidID, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.NewProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildNewProjectInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateProject, apierrors.MsgInvalidProjectPayload)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	var req dto.UpdateProjectRequest
	raw, err := validation.DecodeObject(body, &req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject, apierrors.MsgInvalidProjectPayload, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteProject, apierrors.MsgInvalidID, zap.String("project_id", projectID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ReplaceCollaborators(c *gin.Context) {
	projectID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	var req dto.UpdateCollaboratorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	update, err := h.projectService.ReplaceCollaborators(c.Request.Context(), projectID, req.Collaborators)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCollaborators, apierrors.MsgInvalidProjectPayload, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCollaboratorsResponse(update))
}

func (h *ProjectHandler) ChangeOwner(c *gin.Context) {
	projectID, ok := h.ids.Validate(c.Param("id"))
	if !ok {
		badRequest(c, apierrors.MsgInvalidID)
		return
	}

	var req dto.ChangeOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidOwnerPayload)
		return
	}

	newOwnerID, err := validation.BuildNewOwnerID(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidOwnerPayload)
		return
	}

	project, err := h.projectService.ChangeOwner(c.Request.Context(), projectID, newOwnerID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailChangeOwner, apierrors.MsgInvalidOwnerPayload, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}
