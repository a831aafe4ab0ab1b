package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Emit stores a notification without failing the caller. Lifecycle
// operations must succeed even when the notification insert does not, so
// persistence errors are logged and swallowed.
func (s *Service) Emit(ctx context.Context, userID *uuid.UUID, typ, title, message string) {
	if !ValidType(typ) {
		s.logger.Warn().Str("type", typ).Str("title", title).Msg("dropping notification with unknown type")
		return
	}
	n := &Notification{UserID: userID, Type: typ, Title: title, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("type", typ).Str("title", title).Msg("failed to store notification")
	}
}

// Broadcast emits a notification addressed to every user.
func (s *Service) Broadcast(ctx context.Context, typ, title, message string) {
	s.Emit(ctx, nil, typ, title, message)
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Notification, int, error) {
	return s.repo.ListForUser(ctx, userID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}
