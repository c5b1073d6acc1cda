package service

import (
	"context"

	"github.com/wallnote/wallnote/internal/domain"
)

// MessageService defines the message board use-cases.
type MessageService interface {
	// Post stores a new message. Empty text is skipped with a log line
	// and a failed write is absorbed by the write-failure policy, so
	// callers normally proceed as if the post succeeded.
	Post(ctx context.Context, text string) error
	// ListRecent returns up to limit messages, newest first. It never
	// fails; an unreachable store degrades to an empty slice.
	ListRecent(ctx context.Context, limit int) []domain.Message
}
