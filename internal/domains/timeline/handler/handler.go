package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/timeline/model"
	"portfolio-backend/internal/domains/timeline/service"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
)

type TimelineHandler struct {
	timelineService service.TimelineService
}

func NewTimelineHandler(timelineService service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
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

// ListTimeline lists published timeline entries
// GET /api/v1/timeline
func (h *TimelineHandler) ListTimeline(c *gin.Context) {
	var req model.ListTimelineItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.timelineService.List(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(req.Page, req.Limit, total))
}

// GetTimelineItemBySlug returns a published timeline entry
// GET /api/v1/timeline/:slug
func (h *TimelineHandler) GetTimelineItemBySlug(c *gin.Context) {
	item, err := h.timelineService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, "get", err)
		return
	}
	if item == nil {
		response.NotFound(c, "Timeline item not found")
		return
	}

	response.Success(c, http.StatusOK, item)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// AdminListTimeline lists all timeline entries including unpublished
// GET /api/v1/admin/timeline
func (h *TimelineHandler) AdminListTimeline(c *gin.Context) {
	var req model.ListTimelineItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.timelineService.AdminList(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "admin list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(req.Page, req.Limit, total))
}

// AdminGetTimelineItem returns any timeline entry by id
// GET /api/v1/admin/timeline/:id
func (h *TimelineHandler) AdminGetTimelineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid timeline item ID")
		return
	}

	item, err := h.timelineService.AdminGetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin get", err)
		return
	}
	if item == nil {
		response.NotFound(c, "Timeline item not found")
		return
	}

	response.Success(c, http.StatusOK, item)
}

// CreateTimelineItem creates a timeline entry
// POST /api/v1/admin/timeline
func (h *TimelineHandler) CreateTimelineItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateTimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.timelineService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.respondError(c, "create", err)
		return
	}

	log.Info().
		Str("timeline_id", item.ID.String()).
		Str("slug", item.Slug).
		Str("created_by", principal.ID.String()).
		Msg("Timeline item created")

	response.Success(c, http.StatusCreated, item)
}

// UpdateTimelineItem partially updates a timeline entry
// PUT /api/v1/admin/timeline/:id
func (h *TimelineHandler) UpdateTimelineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid timeline item ID")
		return
	}

	var req model.UpdateTimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.timelineService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, "update", err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// DeleteTimelineItem removes a timeline entry
// DELETE /api/v1/admin/timeline/:id
func (h *TimelineHandler) DeleteTimelineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid timeline item ID")
		return
	}

	if err := h.timelineService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Timeline item deleted successfully"})
}

func (h *TimelineHandler) respondError(c *gin.Context, op string, err error) {
	if fields := response.FieldErrors(err); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	switch {
	case errors.Is(err, model.ErrTimelineItemNotFound):
		response.NotFound(c, "Timeline item not found")
	case errors.Is(err, model.ErrSlugExhausted):
		log.Error().Err(err).Str("op", op).Msg("Slug allocation exhausted")
		response.InternalServerError(c, "Could not allocate identifier")
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("op", op).Msg("Timeline store timeout")
		response.ServiceUnavailable(c, "Service temporarily unavailable")
	default:
		log.Error().Err(err).Str("op", op).Msg("Timeline operation failed")
		response.InternalServerError(c, "Failed to process timeline request")
	}
}
