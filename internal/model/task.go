package model

import "time"

// TaskStatus is forward-only: active tasks become completed or archived,
// never the other way around.
type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
	TaskArchived  TaskStatus = "archived"
)

// Task represents a single item tracked by the bot.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	ChatID      uint `gorm:"index"`
	CreatorID   int64
	AssigneeID  *int64
	Title       string
	Description string
	Tag         string
	Status      TaskStatus `gorm:"default:active;index"`
	Deadline    *time.Time
	ReminderAt  *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
