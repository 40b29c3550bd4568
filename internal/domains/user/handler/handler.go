package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/service"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Login authenticates an admin and returns a JWT
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if fields := response.FieldErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, model.ErrUserInactive):
			response.Forbidden(c, "Account is disabled")
		default:
			log.Error().Err(err).Msg("Login failed")
			response.InternalServerError(c, "Failed to sign in")
		}
		return
	}

	log.Info().
		Str("user_id", result.User.ID.String()).
		Msg("User signed in")

	response.Success(c, http.StatusOK, result)
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	id, err := uuid.Parse(c.GetString(shared.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.Unauthorized(c, "Unauthorized")
			return
		}
		log.Error().Err(err).Msg("Failed to load profile")
		response.InternalServerError(c, "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, user)
}
