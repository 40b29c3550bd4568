package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTimelineItemRequest request to create a timeline entry
type CreateTimelineItemRequest struct {
	Title        string        `json:"title"`
	Organization string        `json:"organization"`
	Location     string        `json:"location"`
	Description  string        `json:"description"`
	Type         string        `json:"type"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      *time.Time    `json:"end_date"`
	Current      bool          `json:"current"`
	Skills       []string      `json:"skills"`
	Achievements []string      `json:"achievements"`
	Links        TimelineLinks `json:"links"`
	Featured     bool          `json:"featured"`
	Published    *bool         `json:"published"`
	SortOrder    int           `json:"order"`
}

func (r CreateTimelineItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Organization, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Location, validation.Length(0, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 1000)),
		validation.Field(&r.Type, validation.Required, validation.In(Types...)),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.Skills, validation.Each(validation.Length(1, 30))),
		validation.Field(&r.Achievements, validation.Each(validation.Length(1, 200))),
	)
}

// UpdateTimelineItemRequest partial update with allow-listed fields
type UpdateTimelineItemRequest struct {
	Title        *string        `json:"title"`
	Organization *string        `json:"organization"`
	Location     *string        `json:"location"`
	Description  *string        `json:"description"`
	Type         *string        `json:"type"`
	StartDate    *time.Time     `json:"start_date"`
	EndDate      *time.Time     `json:"end_date"`
	Current      *bool          `json:"current"`
	Skills       *[]string      `json:"skills"`
	Achievements *[]string      `json:"achievements"`
	Links        *TimelineLinks `json:"links"`
	Featured     *bool          `json:"featured"`
	Published    *bool          `json:"published"`
	SortOrder    *int           `json:"order"`
}

func (r UpdateTimelineItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Organization, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Location, validation.Length(0, 100)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, 1000)),
		validation.Field(&r.Type, validation.In(Types...)),
	)
}

// ListTimelineItemsRequest filter/sort/pagination for timeline listings
type ListTimelineItemsRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Type     string `form:"type"`
	Featured *bool  `form:"featured"`
	Current  *bool  `form:"current"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

func (r *ListTimelineItemsRequest) Normalize() {
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

// TimelineFilter repository-level query
type TimelineFilter struct {
	Published *bool
	Type      string
	Featured  *bool
	Current   *bool
	Search    string
	Sort      string
	Page      int
	Limit     int
}
