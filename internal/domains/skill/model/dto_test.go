package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	skills := []*Skill{
		{Name: "Go", Category: CategoryBackend},
		{Name: "React", Category: CategoryFrontend},
		{Name: "PostgreSQL", Category: CategoryDatabase},
		{Name: "Gin", Category: CategoryBackend},
	}

	grouped := GroupByCategory(skills)

	// category order follows first appearance
	assert.Equal(t, []string{CategoryBackend, CategoryFrontend, CategoryDatabase}, grouped.Categories)
	require.Len(t, grouped.Grouped[CategoryBackend], 2)
	assert.Equal(t, "Go", grouped.Grouped[CategoryBackend][0].Name)
	assert.Equal(t, "Gin", grouped.Grouped[CategoryBackend][1].Name)
	assert.Len(t, grouped.Skills, 4)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	grouped := GroupByCategory(nil)
	assert.Empty(t, grouped.Skills)
	assert.Empty(t, grouped.Categories)
}

func TestCreateSkillRequestValidate(t *testing.T) {
	valid := CreateSkillRequest{
		Name:        "Go",
		Category:    CategoryBackend,
		Proficiency: 8,
		Color:       "#00ADD8",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateSkillRequest)
	}{
		{"missing name", func(r *CreateSkillRequest) { r.Name = "" }},
		{"bad category", func(r *CreateSkillRequest) { r.Category = "cooking" }},
		{"proficiency too high", func(r *CreateSkillRequest) { r.Proficiency = 11 }},
		{"proficiency zero", func(r *CreateSkillRequest) { r.Proficiency = 0 }},
		{"bad color", func(r *CreateSkillRequest) { r.Color = "blue" }},
		{"bad experience", func(r *CreateSkillRequest) { r.Experience = "wizard" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
