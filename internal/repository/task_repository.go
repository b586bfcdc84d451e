package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tasker-bot/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListActiveForUser returns active tasks in the chat visible to the user
// (creator or assignee), nearest deadline first, nulls last, then newest first.
func (r *TaskRepository) ListActiveForUser(ctx context.Context, chatID uint, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("chat_id = ? AND (creator_id = ? OR assignee_id = ?) AND status = ?", chatID, userID, userID, model.TaskActive).
		Order("deadline ASC NULLS LAST, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CompleteIfOwned marks the task completed in a single conditional UPDATE:
// only an active task whose creator or assignee is the given user matches.
// completed_at is therefore set exactly once. Returns whether a row changed.
func (r *TaskRepository) CompleteIfOwned(ctx context.Context, taskID uint, userID int64, completedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ? AND (creator_id = ? OR assignee_id = ?)", taskID, model.TaskActive, userID, userID).
		Updates(map[string]interface{}{
			"status":       model.TaskCompleted,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return false, fmt.Errorf("complete task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ArchiveIfOwned moves an active task owned by the user to the archive.
// Same ownership guard as CompleteIfOwned. Returns whether a row changed.
func (r *TaskRepository) ArchiveIfOwned(ctx context.Context, taskID uint, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ? AND (creator_id = ? OR assignee_id = ?)", taskID, model.TaskActive, userID, userID).
		Update("status", model.TaskArchived)
	if res.Error != nil {
		return false, fmt.Errorf("archive task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListArchiveForChat returns the chat's completed and archived tasks,
// most recently completed first.
func (r *TaskRepository) ListArchiveForChat(ctx context.Context, chatID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("chat_id = ? AND status IN ?", chatID, []model.TaskStatus{model.TaskCompleted, model.TaskArchived}).
		Order("completed_at DESC NULLS LAST, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
