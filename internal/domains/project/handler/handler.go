package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// getPrincipal extracts the authenticated identity set by AuthMiddleware
func getPrincipal(c *gin.Context) (shared.Principal, bool) {
	idStr := c.GetString(shared.CtxUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return shared.Principal{}, false
	}
	return shared.Principal{
		ID:    id,
		Email: c.GetString("email"),
		Role:  c.GetString(shared.CtxUserRole),
	}, true
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListProjects lists published projects
// GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var req model.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, projects, response.NewMeta(req.Page, req.Limit, total))
}

// GetProjectBySlug returns a published project detail
// GET /api/v1/projects/:slug
func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, "get", err)
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}

	response.Success(c, http.StatusOK, project)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// AdminListProjects lists all projects including unpublished
// GET /api/v1/admin/projects
func (h *ProjectHandler) AdminListProjects(c *gin.Context) {
	var req model.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	projects, total, err := h.projectService.AdminList(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "admin list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, projects, response.NewMeta(req.Page, req.Limit, total))
}

// AdminGetProject returns any project by id
// GET /api/v1/admin/projects/:id
func (h *ProjectHandler) AdminGetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.AdminGetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin get", err)
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}

	response.Success(c, http.StatusOK, project)
}

// CreateProject creates a project
// POST /api/v1/admin/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.respondError(c, "create", err)
		return
	}

	log.Info().
		Str("project_id", project.ID.String()).
		Str("slug", project.Slug).
		Str("created_by", principal.ID.String()).
		Msg("Project created")

	response.Success(c, http.StatusCreated, project)
}

// UpdateProject partially updates a project
// PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	var req model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, "update", err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// DeleteProject removes a project
// DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// respondError maps domain errors to HTTP responses. Validation and
// not-found surface verbatim; everything else is logged with context
// and reported generically.
func (h *ProjectHandler) respondError(c *gin.Context, op string, err error) {
	if fields := response.FieldErrors(err); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	switch {
	case errors.Is(err, model.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	case errors.Is(err, model.ErrSlugExhausted):
		log.Error().Err(err).Str("op", op).Msg("Slug allocation exhausted")
		response.InternalServerError(c, "Could not allocate identifier")
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("op", op).Msg("Project store timeout")
		response.ServiceUnavailable(c, "Service temporarily unavailable")
	default:
		log.Error().Err(err).Str("op", op).Msg("Project operation failed")
		response.InternalServerError(c, "Failed to process project request")
	}
}
