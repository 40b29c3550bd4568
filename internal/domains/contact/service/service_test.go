package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact/model"
)

type fakeContactRepository struct {
	mu       sync.Mutex
	messages map[uuid.UUID]*model.ContactMessage
}

func newFakeContactRepository() *fakeContactRepository {
	return &fakeContactRepository{messages: make(map[uuid.UUID]*model.ContactMessage)}
}

func (f *fakeContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *msg
	f.messages[msg.ID] = &clone
	return nil
}

func (f *fakeContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := f.messages[id]; ok {
		clone := *msg
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeContactRepository) Update(ctx context.Context, msg *model.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[msg.ID]; !ok {
		return model.ErrMessageNotFound
	}
	clone := *msg
	f.messages[msg.ID] = &clone
	return nil
}

func (f *fakeContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[id]; !ok {
		return model.ErrMessageNotFound
	}
	delete(f.messages, id)
	return nil
}

func (f *fakeContactRepository) List(ctx context.Context, filter model.ContactFilter) ([]*model.ContactMessage, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.ContactMessage
	for _, msg := range f.messages {
		if filter.Status != "" && msg.Status != filter.Status {
			continue
		}
		clone := *msg
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeContactRepository) Stats(ctx context.Context) (*model.InboxStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &model.InboxStats{}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, msg := range f.messages {
		stats.Total++
		if msg.Status == model.StatusUnread {
			stats.Unread++
		}
		if msg.CreatedAt.After(weekAgo) {
			stats.ThisWeek++
		}
	}
	return stats, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
	err      error
}

func (f *fakeNotifier) EnqueueContactNotify(messageID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, messageID)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enqueued)
}

func validSubmission() model.CreateContactMessageRequest {
	return model.CreateContactMessageRequest{
		Name:    "Jane Doe",
		Email:   "Jane@Example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a potential collaboration.",
	}
}

func testMeta() SubmitMeta {
	return SubmitMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent"}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores message and queues notification", func(t *testing.T) {
		repo := newFakeContactRepository()
		notifier := &fakeNotifier{}
		svc := NewContactService(repo, notifier)

		msg, err := svc.Submit(ctx, validSubmission(), testMeta())
		require.NoError(t, err)

		assert.Equal(t, model.StatusUnread, msg.Status)
		assert.Equal(t, model.PriorityMedium, msg.Priority)
		assert.Equal(t, model.SourceContactForm, msg.Source)
		assert.Equal(t, "jane@example.com", msg.Email)
		assert.Equal(t, "203.0.113.7", msg.IPAddress)
		assert.Equal(t, 1, notifier.count())
	})

	t.Run("phone is trimmed and stored", func(t *testing.T) {
		repo := newFakeContactRepository()
		svc := NewContactService(repo, &fakeNotifier{})

		req := validSubmission()
		req.Phone = " +15551234567 "

		msg, err := svc.Submit(ctx, req, testMeta())
		require.NoError(t, err)
		assert.Equal(t, "+15551234567", msg.Phone)
	})

	t.Run("explicit source wins over the default", func(t *testing.T) {
		svc := NewContactService(newFakeContactRepository(), &fakeNotifier{})

		meta := testMeta()
		meta.Source = model.SourceLinkedIn
		msg, err := svc.Submit(ctx, validSubmission(), meta)
		require.NoError(t, err)
		assert.Equal(t, model.SourceLinkedIn, msg.Source)
	})

	t.Run("honeypot rejects silently", func(t *testing.T) {
		repo := newFakeContactRepository()
		notifier := &fakeNotifier{}
		svc := NewContactService(repo, notifier)

		req := validSubmission()
		req.Website = "http://bot.example.com"

		_, err := svc.Submit(ctx, req, testMeta())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSpamDetected)
		assert.Equal(t, 0, notifier.count())
		assert.Empty(t, repo.messages)
	})

	t.Run("spam keyword rejects", func(t *testing.T) {
		repo := newFakeContactRepository()
		svc := NewContactService(repo, &fakeNotifier{})

		req := validSubmission()
		req.Message = "We offer the best SEO services for your website today."

		_, err := svc.Submit(ctx, req, testMeta())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSpamDetected)
		assert.Empty(t, repo.messages)
	})

	t.Run("invalid payload returns validation error", func(t *testing.T) {
		svc := NewContactService(newFakeContactRepository(), &fakeNotifier{})

		req := model.CreateContactMessageRequest{
			Name:    "J",
			Email:   "not-an-email",
			Subject: "hey",
			Message: "short",
		}
		_, err := svc.Submit(ctx, req, testMeta())
		require.Error(t, err)
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		repo := newFakeContactRepository()
		svc := NewContactService(repo, &fakeNotifier{err: assert.AnError})

		msg, err := svc.Submit(ctx, validSubmission(), testMeta())
		require.NoError(t, err)
		assert.NotNil(t, repo.messages[msg.ID])
	})
}

func TestAdminGetMarksRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepository()
	svc := NewContactService(repo, &fakeNotifier{})

	msg, err := svc.Submit(ctx, validSubmission(), testMeta())
	require.NoError(t, err)
	require.Equal(t, model.StatusUnread, msg.Status)

	got, err := svc.AdminGet(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, got.Status)

	// stays read on the second look
	again, err := svc.AdminGet(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, again.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T) (ContactService, *model.ContactMessage) {
		svc := NewContactService(newFakeContactRepository(), &fakeNotifier{})
		msg, err := svc.Submit(ctx, validSubmission(), testMeta())
		require.NoError(t, err)
		return svc, msg
	}

	t.Run("replied sets flag and timestamp", func(t *testing.T) {
		svc, msg := submit(t)

		status := model.StatusReplied
		updated, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.StatusReplied, updated.Status)
		assert.True(t, updated.Replied)
		require.NotNil(t, updated.RepliedAt)
	})

	t.Run("archive from any state", func(t *testing.T) {
		svc, msg := submit(t)

		status := model.StatusArchived
		updated, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.StatusArchived, updated.Status)
	})

	t.Run("read cannot follow replied", func(t *testing.T) {
		svc, msg := submit(t)

		replied := model.StatusReplied
		_, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &replied})
		require.NoError(t, err)

		read := model.StatusRead
		_, err = svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &read})
		require.Error(t, err)

		var transition *model.InvalidTransitionError
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, model.StatusReplied, transition.From)
		assert.Equal(t, model.StatusRead, transition.To)
	})

	t.Run("cannot return to unread once handled", func(t *testing.T) {
		for _, via := range []string{model.StatusRead, model.StatusReplied, model.StatusArchived} {
			svc, msg := submit(t)

			step := via
			_, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &step})
			require.NoError(t, err)

			unread := model.StatusUnread
			_, err = svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &unread})
			require.Error(t, err, "expected %s -> unread to be rejected", via)

			var transition *model.InvalidTransitionError
			require.ErrorAs(t, err, &transition)
			assert.Equal(t, via, transition.From)
			assert.Equal(t, model.StatusUnread, transition.To)
		}
	})

	t.Run("unknown status rejected by validation", func(t *testing.T) {
		svc, msg := submit(t)

		status := "bogus"
		_, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{Status: &status})
		require.Error(t, err)
	})

	t.Run("triage fields update", func(t *testing.T) {
		svc, msg := submit(t)

		priority := model.PriorityHigh
		notes := "follow up next week"
		tags := []string{"freelance", "urgent"}
		updated, err := svc.Update(ctx, msg.ID, model.UpdateContactMessageRequest{
			Priority: &priority,
			Notes:    &notes,
			Tags:     &tags,
		})
		require.NoError(t, err)
		assert.Equal(t, model.PriorityHigh, updated.Priority)
		assert.Equal(t, "follow up next week", updated.Notes)
		assert.Equal(t, []string{"freelance", "urgent"}, updated.Tags)
	})
}

func TestInboxStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepository()
	svc := NewContactService(repo, &fakeNotifier{})

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, validSubmission(), testMeta())
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Unread)
	assert.Equal(t, 3, stats.ThisWeek)
}
