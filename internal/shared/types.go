package shared

import "github.com/google/uuid"

// Asynq task type names
const (
	TypeIncrementProjectView = "project:increment_view"
	TypeContactNotify        = "contact:notify"
)

// Context keys set by middleware and read by handlers
const (
	CtxUserID   = "user_id"
	CtxUserRole = "role"
	CtxClientIP = "client_ip"
)

// Principal is the authenticated identity attached to a request
// by the auth middleware. Handlers pass it down to services; the
// services never re-verify credentials.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// IncrementViewPayload is the task payload for project view increments
type IncrementViewPayload struct {
	ProjectID uuid.UUID `json:"project_id"`
}

// ContactNotifyPayload is the task payload for contact notifications
type ContactNotifyPayload struct {
	MessageID uuid.UUID `json:"message_id"`
}
