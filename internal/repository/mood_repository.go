package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasker-bot/internal/model"
)

// MoodRepository appends mood log rows. Logs are never updated or deleted.
type MoodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Log inserts one mood record. The level must already be validated by the
// caller; the range check here is the final guard before the insert.
func (r *MoodRepository) Log(ctx context.Context, userID int64, level int, ritual model.RitualType) error {
	if level < model.MoodLevelMin || level > model.MoodLevelMax {
		return fmt.Errorf("mood level %d out of range", level)
	}

	entry := model.MoodLog{
		UserID:     userID,
		Level:      level,
		RitualType: ritual,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("log mood: %w", err)
	}
	return nil
}

// CountForUser returns how many mood rows exist for the user.
func (r *MoodRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MoodLog{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
