package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message statuses
const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// Message priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Message sources
const (
	SourceContactForm = "contact-form"
	SourceEmail       = "email"
	SourceLinkedIn    = "linkedin"
	SourceOther       = "other"
)

var Statuses = []interface{}{StatusUnread, StatusRead, StatusReplied, StatusArchived}
var Priorities = []interface{}{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
var Sources = []interface{}{SourceContactForm, SourceEmail, SourceLinkedIn, SourceOther}

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrSpamDetected    = errors.New("message flagged as spam")
)

// InvalidTransitionError reports a rejected status change
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move message from %s to %s", e.From, e.To)
}

// ContactMessage is an inbound message from the public contact form
type ContactMessage struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Company string    `json:"company,omitempty"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`

	Status   string `json:"status"`
	Priority string `json:"priority"`
	Source   string `json:"source"`

	IPAddress string   `json:"ip_address,omitempty"`
	UserAgent string   `json:"user_agent,omitempty"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes,omitempty"`

	Replied   bool       `json:"replied"`
	RepliedAt *time.Time `json:"replied_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CanTransition reports whether a status change is allowed. The machine
// is one-directional: unread -> read -> replied, with replied and
// archived reachable from any state. A message never goes back to unread.
func CanTransition(from, to string) bool {
	switch to {
	case StatusUnread:
		return from == StatusUnread
	case StatusRead:
		return from == StatusUnread || from == StatusRead
	case StatusReplied, StatusArchived:
		return true
	default:
		return false
	}
}

// InboxStats summarizes the admin inbox
type InboxStats struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	ThisWeek int `json:"this_week"`
}
