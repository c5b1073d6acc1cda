package repository

import (
	"context"
	"errors"

	"github.com/wallnote/wallnote/internal/domain"
)

var ErrTextRequired = errors.New("message text must not be empty")

// MessageRepository defines the interface for message persistence.
// Messages are append-only: there is no update or delete.
type MessageRepository interface {
	// Insert appends one message and returns it with its store-assigned id.
	Insert(ctx context.Context, text string) (*domain.Message, error)
	// Recent returns up to limit messages, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Message, error)
}
