package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateContactMessageRequest is the public contact form payload.
// Website is a honeypot field: humans never see it, bots fill it in.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website"`
}

func (r CreateContactMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, is.E164),
		validation.Field(&r.Company, validation.Length(0, 100)),
		validation.Field(&r.Subject, validation.Required, validation.Length(5, 150)),
		validation.Field(&r.Message, validation.Required, validation.Length(10, 2000)),
	)
}

// IsHoneypotTripped reports whether the hidden field was filled in
func (r CreateContactMessageRequest) IsHoneypotTripped() bool {
	return r.Website != ""
}

// UpdateContactMessageRequest admin-side triage update
type UpdateContactMessageRequest struct {
	Status   *string   `json:"status"`
	Priority *string   `json:"priority"`
	Tags     *[]string `json:"tags"`
	Notes    *string   `json:"notes"`
}

func (r UpdateContactMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.In(Statuses...)),
		validation.Field(&r.Priority, validation.In(Priorities...)),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}

// ListContactMessagesRequest filter/sort/pagination for the inbox
type ListContactMessagesRequest struct {
	Page     int        `form:"page"`
	Limit    int        `form:"limit"`
	Status   string     `form:"status"`
	Priority string     `form:"priority"`
	Search   string     `form:"search"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Sort     string     `form:"sort"`
}

func (r *ListContactMessagesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

// ContactFilter repository-level query
type ContactFilter struct {
	Status   string
	Priority string
	Search   string
	From     *time.Time
	To       *time.Time
	Sort     string
	Page     int
	Limit    int
}
