package service

import (
	"context"

	"github.com/wallnote/wallnote/internal/domain"
	"github.com/wallnote/wallnote/internal/repository"
	"github.com/wallnote/wallnote/pkg/log"
)

// WriteFailurePolicy decides what a failed insert means for the caller.
// Swapping the policy is the single place where the choice between
// surfacing and absorbing write failures is made.
type WriteFailurePolicy func(ctx context.Context, err error) error

// SwallowWriteFailure logs the failed write and reports success. The
// message is lost and the user is redirected as if it was saved.
func SwallowWriteFailure(ctx context.Context, err error) error {
	l := log.Ctx(ctx)
	l.Error().Err(err).Msg("failed to store message, dropping it")
	return nil
}

// messageServiceImpl implements MessageService.
type messageServiceImpl struct {
	repo           repository.MessageRepository
	onWriteFailure WriteFailurePolicy
}

// NewMessageService creates a message service with the default
// write-failure policy.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{
		repo:           repo,
		onWriteFailure: SwallowWriteFailure,
	}
}

// Post stores one message. Absent and empty text are treated the same:
// logged and skipped without an error.
func (s *messageServiceImpl) Post(ctx context.Context, text string) error {
	l := log.Ctx(ctx)

	if text == "" {
		l.Info().Msg("empty message received, skipping")
		return nil
	}

	msg, err := s.repo.Insert(ctx, text)
	if err != nil {
		return s.onWriteFailure(ctx, err)
	}

	l.Info().Uint(log.FieldMessageID, msg.ID).Msg("message stored")
	return nil
}

// ListRecent returns up to limit messages, newest first. Store failures
// degrade to an empty list so pages depending on it always render.
func (s *messageServiceImpl) ListRecent(ctx context.Context, limit int) []domain.Message {
	messages, err := s.repo.Recent(ctx, limit)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to load recent messages, showing none")
		return []domain.Message{}
	}
	return messages
}
