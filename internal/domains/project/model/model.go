package model

import (
	"time"

	"github.com/google/uuid"
)

// Project categories
const (
	CategoryWeb     = "web"
	CategoryMobile  = "mobile"
	CategoryDesktop = "desktop"
	CategoryAPI     = "api"
	CategoryOther   = "other"
)

// Project statuses
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on-hold"
)

var Categories = []interface{}{CategoryWeb, CategoryMobile, CategoryDesktop, CategoryAPI, CategoryOther}
var Statuses = []interface{}{StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold}

// Project represents a portfolio project entity
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`

	Technologies []string       `json:"technologies"`
	Category     string         `json:"category"`
	Status       string         `json:"status"`
	Featured     bool           `json:"featured"`
	Published    bool           `json:"published"`
	Images       []ProjectImage `json:"images"`
	Links        ProjectLinks   `json:"links"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	SortOrder int `json:"order"`
	Views     int `json:"views"`

	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectImage is one gallery entry of a project
type ProjectImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// ProjectLinks holds the external links of a project
type ProjectLinks struct {
	Live   string `json:"live"`
	GitHub string `json:"github"`
	Demo   string `json:"demo"`
}

// DurationDays returns the project duration in days, nil while ongoing
func (p *Project) DurationDays() *int {
	if p.EndDate == nil {
		return nil
	}
	days := int(p.EndDate.Sub(p.StartDate).Hours()/24 + 0.5)
	return &days
}
