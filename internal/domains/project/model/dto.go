package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateProjectRequest request to create a project
type CreateProjectRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Content      string         `json:"content"`
	Technologies []string       `json:"technologies"`
	Category     string         `json:"category"`
	Status       string         `json:"status"`
	Featured     bool           `json:"featured"`
	Published    *bool          `json:"published"` // defaults to true
	Images       []ProjectImage `json:"images"`
	Links        ProjectLinks   `json:"links"`
	StartDate    *time.Time     `json:"start_date"` // defaults to now
	EndDate      *time.Time     `json:"end_date"`
	SortOrder    int            `json:"order"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Category, validation.Required, validation.In(Categories...)),
		validation.Field(&r.Status, validation.In(Statuses...)),
		validation.Field(&r.Technologies, validation.Each(validation.Length(1, 30))),
		validation.Field(&r.Images, validation.Each(validation.By(validateImage))),
	)
}

func validateImage(value interface{}) error {
	img, _ := value.(ProjectImage)
	return validation.ValidateStruct(&img,
		validation.Field(&img.URL, validation.Required, is.URL),
	)
}

// UpdateProjectRequest is a partial update; only the allow-listed
// fields below can be changed, nil means "leave unchanged".
type UpdateProjectRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Content      *string         `json:"content"`
	Technologies *[]string       `json:"technologies"`
	Category     *string         `json:"category"`
	Status       *string         `json:"status"`
	Featured     *bool           `json:"featured"`
	Published    *bool           `json:"published"`
	Images       *[]ProjectImage `json:"images"`
	Links        *ProjectLinks   `json:"links"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	SortOrder    *int            `json:"order"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Category, validation.In(Categories...)),
		validation.Field(&r.Status, validation.In(Statuses...)),
	)
}

// ListProjectsRequest filter/sort/pagination for project listings
type ListProjectsRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Featured *bool  `form:"featured"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

func (r *ListProjectsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Sort == "" {
		r.Sort = "-created_at"
	}
}

// ProjectFilter is the repository-level query built from a list request.
// Published=nil means "all records" (admin); public callers always get
// a forced Published=true.
type ProjectFilter struct {
	Published *bool
	Category  string
	Featured  *bool
	Status    string
	Search    string
	Sort      string
	Page      int
	Limit     int
}
