package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Timeline entry types
const (
	TypeEducation     = "education"
	TypeExperience    = "experience"
	TypeProject       = "project"
	TypeAchievement   = "achievement"
	TypeCertification = "certification"
	TypeOther         = "other"
)

var Types = []interface{}{TypeEducation, TypeExperience, TypeProject, TypeAchievement, TypeCertification, TypeOther}

var (
	ErrTimelineItemNotFound = errors.New("timeline item not found")
	ErrSlugTaken            = errors.New("slug already taken")
	ErrSlugExhausted        = errors.New("could not allocate a unique slug")
)

// TimelineLinks external references for a timeline entry
type TimelineLinks struct {
	Website     string `json:"website,omitempty"`
	Certificate string `json:"certificate,omitempty"`
}

// TimelineItem is one entry of the career/education timeline
type TimelineItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`

	Organization string `json:"organization"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Type         string `json:"type"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Current   bool       `json:"current"`

	Skills       []string      `json:"skills"`
	Achievements []string      `json:"achievements"`
	Links        TimelineLinks `json:"links"`

	Featured  bool `json:"featured"`
	Published bool `json:"published"`
	SortOrder int  `json:"order"`

	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration returns the elapsed time of the entry, using now for
// entries still marked current.
func (t *TimelineItem) Duration(now time.Time) time.Duration {
	end := now
	if t.EndDate != nil {
		end = *t.EndDate
	}
	if end.Before(t.StartDate) {
		return 0
	}
	return end.Sub(t.StartDate)
}
