package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
)

type SkillHandler struct {
	skillService service.SkillService
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

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

// ListSkills lists published skills grouped by category
// GET /api/v1/skills
func (h *SkillHandler) ListSkills(c *gin.Context) {
	var req model.ListSkillsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	skills, total, err := h.skillService.List(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, model.GroupByCategory(skills), response.NewMeta(req.Page, req.Limit, total))
}

// GetSkillBySlug returns a published skill detail
// GET /api/v1/skills/:slug
func (h *SkillHandler) GetSkillBySlug(c *gin.Context) {
	skill, err := h.skillService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, "get", err)
		return
	}
	if skill == nil {
		response.NotFound(c, "Skill not found")
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// AdminListSkills lists all skills including unpublished
// GET /api/v1/admin/skills
func (h *SkillHandler) AdminListSkills(c *gin.Context) {
	var req model.ListSkillsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	skills, total, err := h.skillService.AdminList(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "admin list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, skills, response.NewMeta(req.Page, req.Limit, total))
}

// AdminGetSkill returns any skill by id
// GET /api/v1/admin/skills/:id
func (h *SkillHandler) AdminGetSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	skill, err := h.skillService.AdminGetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin get", err)
		return
	}
	if skill == nil {
		response.NotFound(c, "Skill not found")
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// CreateSkill creates a skill
// POST /api/v1/admin/skills
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.respondError(c, "create", err)
		return
	}

	log.Info().
		Str("skill_id", skill.ID.String()).
		Str("slug", skill.Slug).
		Str("created_by", principal.ID.String()).
		Msg("Skill created")

	response.Success(c, http.StatusCreated, skill)
}

// UpdateSkill partially updates a skill
// PUT /api/v1/admin/skills/:id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	var req model.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, "update", err)
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// DeleteSkill removes a skill
// DELETE /api/v1/admin/skills/:id
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

func (h *SkillHandler) respondError(c *gin.Context, op string, err error) {
	if fields := response.FieldErrors(err); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	switch {
	case errors.Is(err, model.ErrSkillNotFound):
		response.NotFound(c, "Skill not found")
	case errors.Is(err, model.ErrSlugExhausted):
		log.Error().Err(err).Str("op", op).Msg("Slug allocation exhausted")
		response.InternalServerError(c, "Could not allocate identifier")
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("op", op).Msg("Skill store timeout")
		response.ServiceUnavailable(c, "Service temporarily unavailable")
	default:
		log.Error().Err(err).Str("op", op).Msg("Skill operation failed")
		response.InternalServerError(c, "Failed to process skill request")
	}
}
