package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasker-bot/internal/model"
)

// ChatRepository maps MAX chat ids to internal chat rows.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetOrCreate returns the chat with the given MAX id, creating it lazily
// on first reference.
func (r *ChatRepository) GetOrCreate(ctx context.Context, maxChatID, name string) (*model.Chat, error) {
	if maxChatID == "" {
		return nil, fmt.Errorf("chat id is empty")
	}

	var chat model.Chat
	db := r.db.WithContext(ctx)
	err := db.Where("max_chat_id = ?", maxChatID).First(&chat).Error
	switch {
	case err == nil:
		return &chat, nil
	case err == gorm.ErrRecordNotFound:
		if name == "" {
			name = fmt.Sprintf("Chat %s", maxChatID)
		}
		chat = model.Chat{MaxChatID: maxChatID, Name: name}
		if err := db.Create(&chat).Error; err != nil {
			return nil, fmt.Errorf("create chat: %w", err)
		}
		return &chat, nil
	default:
		return nil, fmt.Errorf("find chat: %w", err)
	}
}
