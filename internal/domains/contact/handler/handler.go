package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// SubmitContactMessage accepts a message from the public contact form
// POST /api/v1/contact
func (h *ContactHandler) SubmitContactMessage(c *gin.Context) {
	var req model.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meta := service.SubmitMeta{
		IPAddress: middleware.GetClientIPFromContext(c.Request.Context()),
		UserAgent: c.Request.UserAgent(),
		Source:    model.SourceContactForm,
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req, meta)
	if err != nil {
		if errors.Is(err, model.ErrSpamDetected) {
			// Spam gets a bland success shape so bots learn nothing
			log.Warn().
				Str("ip", meta.IPAddress).
				Msg("Contact submission rejected as spam")
			response.Success(c, http.StatusOK, gin.H{"message": "Thank you for your message"})
			return
		}
		h.respondError(c, "submit", err)
		return
	}

	log.Info().
		Str("message_id", msg.ID.String()).
		Str("email", msg.Email).
		Msg("Contact message received")

	response.Success(c, http.StatusCreated, gin.H{
		"id":      msg.ID,
		"message": "Thank you for your message",
	})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// AdminListMessages lists the inbox with filters
// GET /api/v1/admin/messages
func (h *ContactHandler) AdminListMessages(c *gin.Context) {
	var req model.ListContactMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	messages, total, err := h.contactService.AdminList(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "list", err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, messages, response.NewMeta(req.Page, req.Limit, total))
}

// AdminGetMessage returns one message and marks it read
// GET /api/v1/admin/messages/:id
func (h *ContactHandler) AdminGetMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	msg, err := h.contactService.AdminGet(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get", err)
		return
	}

	response.Success(c, http.StatusOK, msg)
}

// AdminUpdateMessage updates triage fields on a message
// PUT /api/v1/admin/messages/:id
func (h *ContactHandler) AdminUpdateMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	var req model.UpdateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.contactService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, "update", err)
		return
	}

	response.Success(c, http.StatusOK, msg)
}

// AdminDeleteMessage removes a message
// DELETE /api/v1/admin/messages/:id
func (h *ContactHandler) AdminDeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// AdminInboxStats returns inbox counters
// GET /api/v1/admin/messages/stats
func (h *ContactHandler) AdminInboxStats(c *gin.Context) {
	stats, err := h.contactService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, "stats", err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *ContactHandler) respondError(c *gin.Context, op string, err error) {
	if fields := response.FieldErrors(err); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	var transition *model.InvalidTransitionError
	switch {
	case errors.Is(err, model.ErrMessageNotFound):
		response.NotFound(c, "Message not found")
	case errors.As(err, &transition):
		response.BadRequest(c, transition.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("op", op).Msg("Contact store timeout")
		response.ServiceUnavailable(c, "Service temporarily unavailable")
	default:
		log.Error().Err(err).Str("op", op).Msg("Contact operation failed")
		response.InternalServerError(c, "Failed to process contact request")
	}
}
