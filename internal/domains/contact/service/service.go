package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/repository"
)

// spamKeywords trips the cheap content filter. Matches are rejected
// before anything is stored.
var spamKeywords = []string{
	"viagra",
	"casino",
	"lottery",
	"bitcoin investment",
	"crypto investment",
	"seo services",
	"buy followers",
	"work from home opportunity",
}

type contactService struct {
	repo     repository.ContactRepository
	notifier Notifier
}

func NewContactService(repo repository.ContactRepository, notifier Notifier) ContactService {
	return &contactService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *contactService) Submit(ctx context.Context, req model.CreateContactMessageRequest, meta SubmitMeta) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.IsHoneypotTripped() || isSpam(req) {
		return nil, model.ErrSpamDetected
	}

	now := time.Now().UTC()
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    model.StatusUnread,
		Priority:  model.PriorityMedium,
		Source:    meta.Source,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if msg.Source == "" {
		msg.Source = model.SourceContactForm
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Fire-and-forget: the sender got their message in, notification
	// delivery is the worker's problem
	if err := s.notifier.EnqueueContactNotify(msg.ID); err != nil {
		log.Error().Err(err).
			Str("message_id", msg.ID.String()).
			Msg("Failed to enqueue contact notification")
	}

	return msg, nil
}

func (s *contactService) AdminList(ctx context.Context, req model.ListContactMessagesRequest) ([]*model.ContactMessage, int, error) {
	req.Normalize()
	return s.repo.List(ctx, model.ContactFilter{
		Status:   req.Status,
		Priority: req.Priority,
		Search:   req.Search,
		From:     req.From,
		To:       req.To,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	})
}

func (s *contactService) AdminGet(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, model.ErrMessageNotFound
	}

	if msg.Status == model.StatusUnread {
		msg.Status = model.StatusRead
		msg.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, msg); err != nil {
			// The read still succeeds; the flag catches up next time
			log.Warn().Err(err).
				Str("message_id", msg.ID.String()).
				Msg("Failed to mark message as read")
		}
	}

	return msg, nil
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, req model.UpdateContactMessageRequest) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, model.ErrMessageNotFound
	}

	if req.Status != nil && *req.Status != msg.Status {
		if !model.CanTransition(msg.Status, *req.Status) {
			return nil, &model.InvalidTransitionError{From: msg.Status, To: *req.Status}
		}
		msg.Status = *req.Status
		if msg.Status == model.StatusReplied && !msg.Replied {
			now := time.Now().UTC()
			msg.Replied = true
			msg.RepliedAt = &now
		}
	}
	if req.Priority != nil {
		msg.Priority = *req.Priority
	}
	if req.Tags != nil {
		msg.Tags = *req.Tags
	}
	if req.Notes != nil {
		msg.Notes = *req.Notes
	}
	msg.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactService) Stats(ctx context.Context) (*model.InboxStats, error) {
	return s.repo.Stats(ctx)
}

func isSpam(req model.CreateContactMessageRequest) bool {
	content := strings.ToLower(req.Subject + " " + req.Message)
	for _, kw := range spamKeywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
