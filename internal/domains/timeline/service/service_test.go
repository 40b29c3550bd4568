package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/timeline/model"
	"portfolio-backend/internal/shared"
)

type fakeTimelineRepository struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.TimelineItem
}

func newFakeTimelineRepository() *fakeTimelineRepository {
	return &fakeTimelineRepository{items: make(map[uuid.UUID]*model.TimelineItem)}
}

func (f *fakeTimelineRepository) Create(ctx context.Context, item *model.TimelineItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.Slug == item.Slug {
			return model.ErrSlugTaken
		}
	}
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeTimelineRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimelineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeTimelineRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.TimelineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.Slug == slug && (!publishedOnly || item.Published) {
			clone := *item
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTimelineRepository) Update(ctx context.Context, item *model.TimelineItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return model.ErrTimelineItemNotFound
	}
	for id, existing := range f.items {
		if id != item.ID && existing.Slug == item.Slug {
			return model.ErrSlugTaken
		}
	}
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeTimelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return model.ErrTimelineItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTimelineRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if id != excludeID && item.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTimelineRepository) List(ctx context.Context, filter model.TimelineFilter) ([]*model.TimelineItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.TimelineItem
	for _, item := range f.items {
		if filter.Published != nil && item.Published != *filter.Published {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func validTimelineRequest(title string) model.CreateTimelineItemRequest {
	return model.CreateTimelineItemRequest{
		Title:        title,
		Organization: "Acme Corp",
		Description:  "Built and ran the platform team.",
		Type:         model.TypeExperience,
		StartDate:    time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTimelineItem(t *testing.T) {
	ctx := context.Background()
	principal := shared.Principal{ID: uuid.New(), Role: "admin"}

	t.Run("slug from title", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		item, err := svc.Create(ctx, principal, validTimelineRequest("Senior Engineer"))
		require.NoError(t, err)
		assert.Equal(t, "senior-engineer", item.Slug)
		assert.True(t, item.Published)
	})

	t.Run("current position drops end date", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		req := validTimelineRequest("Current Role")
		end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		req.EndDate = &end
		req.Current = true

		item, err := svc.Create(ctx, principal, req)
		require.NoError(t, err)
		assert.True(t, item.Current)
		assert.Nil(t, item.EndDate)
	})

	t.Run("duplicate titles get suffixes", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		first, err := svc.Create(ctx, principal, validTimelineRequest("Engineer"))
		require.NoError(t, err)
		second, err := svc.Create(ctx, principal, validTimelineRequest("Engineer"))
		require.NoError(t, err)

		assert.Equal(t, "engineer", first.Slug)
		assert.Equal(t, "engineer-1", second.Slug)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		_, err := svc.Create(ctx, principal, model.CreateTimelineItemRequest{Title: "No org"})
		require.Error(t, err)
	})

	t.Run("missing description rejected", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		req := validTimelineRequest("Undocumented Role")
		req.Description = ""
		_, err := svc.Create(ctx, principal, req)
		require.Error(t, err)
	})

	t.Run("type outside the enum rejected", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		for _, bad := range []string{"work", "hobby"} {
			req := validTimelineRequest("Typed Role")
			req.Type = bad
			_, err := svc.Create(ctx, principal, req)
			require.Error(t, err, "type %q must be rejected", bad)
		}
	})

	t.Run("all enum types accepted", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		for i, typ := range []string{
			model.TypeEducation, model.TypeExperience, model.TypeProject,
			model.TypeAchievement, model.TypeCertification, model.TypeOther,
		} {
			req := validTimelineRequest(fmt.Sprintf("Role %d", i))
			req.Type = typ
			_, err := svc.Create(ctx, principal, req)
			require.NoError(t, err, "type %q must be accepted", typ)
		}
	})
}

func TestUpdateTimelineItem(t *testing.T) {
	ctx := context.Background()
	principal := shared.Principal{ID: uuid.New(), Role: "admin"}

	t.Run("marking current clears end date", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		req := validTimelineRequest("Role")
		end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		req.EndDate = &end

		item, err := svc.Create(ctx, principal, req)
		require.NoError(t, err)
		require.NotNil(t, item.EndDate)

		current := true
		updated, err := svc.Update(ctx, item.ID, model.UpdateTimelineItemRequest{Current: &current})
		require.NoError(t, err)
		assert.True(t, updated.Current)
		assert.Nil(t, updated.EndDate)
	})

	t.Run("missing item yields not found", func(t *testing.T) {
		svc := NewTimelineService(newFakeTimelineRepository())

		org := "Elsewhere"
		_, err := svc.Update(ctx, uuid.New(), model.UpdateTimelineItemRequest{Organization: &org})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrTimelineItemNotFound)
	})
}
