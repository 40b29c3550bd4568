package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/shared"
)

// fakeProjectRepository is an in-memory stand-in backing the service
// tests. Slug uniqueness is enforced the way the store does it: the
// insert fails with ErrSlugTaken.
type fakeProjectRepository struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*model.Project

	// failNextCreates forces ErrSlugTaken on the next n Create calls,
	// simulating a concurrent writer winning the race
	failNextCreates int
}

func newFakeProjectRepository() *fakeProjectRepository {
	return &fakeProjectRepository{projects: make(map[uuid.UUID]*model.Project)}
}

func (f *fakeProjectRepository) Create(ctx context.Context, p *model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNextCreates > 0 {
		f.failNextCreates--
		return model.ErrSlugTaken
	}
	for _, existing := range f.projects {
		if existing.Slug == p.Slug {
			return model.ErrSlugTaken
		}
	}
	clone := *p
	f.projects[p.ID] = &clone
	return nil
}

func (f *fakeProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeProjectRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.Slug == slug && (!publishedOnly || p.Published) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepository) Update(ctx context.Context, p *model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[p.ID]; !ok {
		return model.ErrProjectNotFound
	}
	for id, existing := range f.projects {
		if id != p.ID && existing.Slug == p.Slug {
			return model.ErrSlugTaken
		}
	}
	clone := *p
	f.projects[p.ID] = &clone
	return nil
}

func (f *fakeProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return model.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.projects {
		if id != excludeID && p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepository) List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Project
	for _, p := range f.projects {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeProjectRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return model.ErrProjectNotFound
	}
	p.Views++
	return nil
}

type fakeViewCounter struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
	err      error
}

func (f *fakeViewCounter) EnqueueIncrementView(projectID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, projectID)
	return nil
}

func (f *fakeViewCounter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enqueued)
}

func testPrincipal() shared.Principal {
	return shared.Principal{ID: uuid.New(), Email: "admin@example.com", Role: "admin"}
}

func validCreateRequest(title string) model.CreateProjectRequest {
	return model.CreateProjectRequest{
		Title:       title,
		Description: "A thing I built",
		Content:     "Long-form write-up",
		Category:    model.CategoryWeb,
		Status:      model.StatusCompleted,
	}
}

func TestCreateProjectSlugs(t *testing.T) {
	ctx := context.Background()

	t.Run("slug derived from title", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("My Amazing App"))
		require.NoError(t, err)
		assert.Equal(t, "my-amazing-app", p.Slug)
	})

	t.Run("collisions get numeric suffixes", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

		first, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Portfolio Site"))
		require.NoError(t, err)
		second, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Portfolio Site"))
		require.NoError(t, err)
		third, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Portfolio Site"))
		require.NoError(t, err)

		assert.Equal(t, "portfolio-site", first.Slug)
		assert.Equal(t, "portfolio-site-1", second.Slug)
		assert.Equal(t, "portfolio-site-2", third.Slug)
	})

	t.Run("punctuation-only title falls back to id slug", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("!!!"))
		require.NoError(t, err)
		assert.NotEmpty(t, p.Slug)
		assert.Contains(t, p.Slug, "project-")
	})

	t.Run("retries when a concurrent writer wins the slug", func(t *testing.T) {
		repo := newFakeProjectRepository()
		repo.failNextCreates = 2
		svc := NewProjectService(repo, &fakeViewCounter{})

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Raced Title"))
		require.NoError(t, err)
		assert.Equal(t, "raced-title", p.Slug)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		repo := newFakeProjectRepository()
		repo.failNextCreates = maxSlugAttempts
		svc := NewProjectService(repo, &fakeViewCounter{})

		_, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Doomed Title"))
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSlugExhausted)
	})
}

func TestCreateProjectValidation(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

	req := model.CreateProjectRequest{
		Title:    "",
		Category: "not-a-category",
	}
	_, err := svc.Create(context.Background(), testPrincipal(), req)
	require.Error(t, err)
}

func TestUpdateProjectSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("slug untouched when title unchanged", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})
		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Stable Title"))
		require.NoError(t, err)

		desc := "new description"
		updated, err := svc.Update(ctx, p.ID, model.UpdateProjectRequest{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "stable-title", updated.Slug)
		assert.Equal(t, "new description", updated.Description)
	})

	t.Run("slug regenerated when title changes", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})
		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Old Name"))
		require.NoError(t, err)

		title := "New Name"
		updated, err := svc.Update(ctx, p.ID, model.UpdateProjectRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "new-name", updated.Slug)
	})

	t.Run("record keeps its own slug on rename round-trip", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})
		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Same Title"))
		require.NoError(t, err)

		// Renaming to its own current title must not pick up a suffix:
		// the uniqueness check excludes the record itself
		title := "Same Title"
		updated, err := svc.Update(ctx, p.ID, model.UpdateProjectRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "same-title", updated.Slug)
	})

	t.Run("missing project yields not found", func(t *testing.T) {
		svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

		title := "Whatever"
		_, err := svc.Update(ctx, uuid.New(), model.UpdateProjectRequest{Title: &title})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrProjectNotFound)
	})
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepository(), &fakeViewCounter{})

	p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Short Lived"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	// Second delete reports the record as gone
	err = svc.Delete(ctx, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestViewCounterEnqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("public read enqueues an increment", func(t *testing.T) {
		views := &fakeViewCounter{}
		svc := NewProjectService(newFakeProjectRepository(), views)

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Viewed Project"))
		require.NoError(t, err)

		got, err := svc.GetBySlug(ctx, p.Slug)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 1, views.count())
	})

	t.Run("admin read does not count a view", func(t *testing.T) {
		views := &fakeViewCounter{}
		svc := NewProjectService(newFakeProjectRepository(), views)

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Dashboard Read"))
		require.NoError(t, err)

		_, err = svc.AdminGetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, views.count())
	})

	t.Run("enqueue failure never fails the read", func(t *testing.T) {
		views := &fakeViewCounter{err: assert.AnError}
		svc := NewProjectService(newFakeProjectRepository(), views)

		p, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Resilient Read"))
		require.NoError(t, err)

		got, err := svc.GetBySlug(ctx, p.Slug)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("missing slug enqueues nothing", func(t *testing.T) {
		views := &fakeViewCounter{}
		svc := NewProjectService(newFakeProjectRepository(), views)

		got, err := svc.GetBySlug(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 0, views.count())
	})
}

func TestPublicListForcesPublished(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectRepository()
	svc := NewProjectService(repo, &fakeViewCounter{})

	_, err := svc.Create(ctx, testPrincipal(), validCreateRequest("Visible"))
	require.NoError(t, err)

	hidden := validCreateRequest("Hidden")
	unpublished := false
	hidden.Published = &unpublished
	_, err = svc.Create(ctx, testPrincipal(), hidden)
	require.NoError(t, err)

	public, total, err := svc.List(ctx, model.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, public, 1)
	assert.Equal(t, "visible", public[0].Slug)

	all, total, err := svc.AdminList(ctx, model.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
