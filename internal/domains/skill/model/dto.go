package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var colorRule = validation.Match(hexColorPattern).Error("must be a valid hex color")

// CreateSkillRequest request to create a skill
type CreateSkillRequest struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Proficiency       int    `json:"proficiency"`
	Experience        string `json:"experience"`
	YearsOfExperience int    `json:"years_of_experience"`
	Description       string `json:"description"`
	Icon              string `json:"icon"`
	Color             string `json:"color"`
	Featured          bool   `json:"featured"`
	Published         *bool  `json:"published"`
	SortOrder         int    `json:"order"`
}

func (r CreateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Category, validation.Required, validation.In(Categories...)),
		validation.Field(&r.Proficiency, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&r.Experience, validation.In(ExperienceLevels...)),
		validation.Field(&r.YearsOfExperience, validation.Min(0)),
		validation.Field(&r.Description, validation.Length(0, 200)),
		validation.Field(&r.Color, colorRule),
	)
}

// UpdateSkillRequest partial update with allow-listed fields
type UpdateSkillRequest struct {
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Proficiency       *int    `json:"proficiency"`
	Experience        *string `json:"experience"`
	YearsOfExperience *int    `json:"years_of_experience"`
	Description       *string `json:"description"`
	Icon              *string `json:"icon"`
	Color             *string `json:"color"`
	Featured          *bool   `json:"featured"`
	Published         *bool   `json:"published"`
	SortOrder         *int    `json:"order"`
}

func (r UpdateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Category, validation.In(Categories...)),
		validation.Field(&r.Proficiency, validation.Min(1), validation.Max(10)),
		validation.Field(&r.Experience, validation.In(ExperienceLevels...)),
		validation.Field(&r.YearsOfExperience, validation.Min(0)),
		validation.Field(&r.Description, validation.Length(0, 200)),
		validation.Field(&r.Color, colorRule),
	)
}

// ListSkillsRequest filter/sort/pagination for skill listings
type ListSkillsRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

func (r *ListSkillsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 50
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

// SkillFilter repository-level query
type SkillFilter struct {
	Published *bool
	Category  string
	Featured  *bool
	Search    string
	Sort      string
	Page      int
	Limit     int
}

// GroupedSkillsResponse is the public listing payload: the flat page
// plus a by-category view for the skills matrix UI.
type GroupedSkillsResponse struct {
	Skills     []*Skill            `json:"skills"`
	Grouped    map[string][]*Skill `json:"grouped"`
	Categories []string            `json:"categories"`
}

func GroupByCategory(skills []*Skill) *GroupedSkillsResponse {
	grouped := make(map[string][]*Skill)
	var categories []string
	for _, s := range skills {
		if _, seen := grouped[s.Category]; !seen {
			categories = append(categories, s.Category)
		}
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return &GroupedSkillsResponse{
		Skills:     skills,
		Grouped:    grouped,
		Categories: categories,
	}
}
