package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/wallnote/wallnote/internal/domain"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Insert appends one row and returns the message with its assigned id.
// A failed insert leaves the store unchanged; the single statement runs
// in its own transaction and rolls back on error.
func (r *GormMessageRepository) Insert(ctx context.Context, text string) (*domain.Message, error) {
	if text == "" {
		return nil, ErrTextRequired
	}

	model := &domain.MessageModel{Text: text}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return model.ToDomain(), nil
}

// Recent returns up to limit messages ordered by id descending. Fewer
// rows than limit are returned when the table is short.
func (r *GormMessageRepository) Recent(ctx context.Context, limit int) ([]domain.Message, error) {
	var models []domain.MessageModel
	result := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("query recent messages: %w", result.Error)
	}

	messages := make([]domain.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *models[i].ToDomain())
	}
	return messages, nil
}
