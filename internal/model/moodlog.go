package model

import "time"

// RitualType names the two daily check-ins.
type RitualType string

const (
	RitualMorning RitualType = "morning"
	RitualEvening RitualType = "evening"
)

const (
	MoodLevelMin = 1
	MoodLevelMax = 7
)

// MoodLog is an append-only record of a self-reported mood score tied to
// a ritual occurrence.
type MoodLog struct {
	ID         uint  `gorm:"primaryKey"`
	UserID     int64 `gorm:"index"`
	Level      int
	RitualType RitualType
	CreatedAt  time.Time
}
