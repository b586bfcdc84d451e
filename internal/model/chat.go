package model

import "time"

// Chat maps a MAX chat to an internal id. Rows are created lazily on
// first reference and never deleted.
type Chat struct {
	ID        uint   `gorm:"primaryKey"`
	MaxChatID string `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
