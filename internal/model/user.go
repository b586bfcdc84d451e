package model

import "time"

// OnboardingStep tracks where a user is in the first-run setup dialogue.
type OnboardingStep string

const (
	StepNone        OnboardingStep = "none"
	StepMorningTime OnboardingStep = "morning_time"
	StepEveningTime OnboardingStep = "evening_time"
	StepCompleted   OnboardingStep = "completed"
)

// CanTransitionTo reports whether the step may move to next. Steps only
// advance forward, except that a re-issued /start resets any step back
// to morning_time.
func (s OnboardingStep) CanTransitionTo(next OnboardingStep) bool {
	if next == StepMorningTime {
		return true
	}
	switch s {
	case StepMorningTime:
		return next == StepEveningTime
	case StepEveningTime:
		return next == StepCompleted
	}
	return false
}

// InProgress reports whether the user is mid-onboarding, i.e. free-form
// text is consumed by the setup dialogue instead of command routing.
func (s OnboardingStep) InProgress() bool {
	return s == StepMorningTime || s == StepEveningTime
}

// User stores MAX user metadata and ritual settings.
type User struct {
	ID                uint  `gorm:"primaryKey"`
	MaxUserID         int64 `gorm:"uniqueIndex"`
	FirstName         string
	LastName          string
	OnboardingStep    OnboardingStep `gorm:"default:none"`
	MorningRitualTime *string
	EveningRitualTime *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RitualTimeFor returns the stored "HH:MM" string for the given ritual,
// or nil if it has not been configured yet.
func (u *User) RitualTimeFor(ritual RitualType) *string {
	if ritual == RitualEvening {
		return u.EveningRitualTime
	}
	return u.MorningRitualTime
}
