package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Skill categories
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevOps   = "devops"
	CategoryDesign   = "design"
	CategoryOther    = "other"
)

// Experience levels
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

var Categories = []interface{}{CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryDevOps, CategoryDesign, CategoryOther}
var ExperienceLevels = []interface{}{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert}

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrSlugTaken     = errors.New("slug already taken")
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

// Skill represents one entry of the skills matrix
type Skill struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`

	Category          string `json:"category"`
	Proficiency       int    `json:"proficiency"` // 1-10
	Experience        string `json:"experience"`
	YearsOfExperience int    `json:"years_of_experience"`
	Description       string `json:"description"`
	Icon              string `json:"icon"`
	Color             string `json:"color"` // hex, e.g. #3B82F6

	Featured  bool `json:"featured"`
	Published bool `json:"published"`
	SortOrder int  `json:"order"`

	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
