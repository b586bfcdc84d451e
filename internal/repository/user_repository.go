package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasker-bot/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate finds or creates a user based on MaxUserID and refreshes basic profile info.
// New users start with onboarding step "none".
func (r *UserRepository) GetOrCreate(ctx context.Context, maxUserID int64, firstName, lastName string) (*model.User, error) {
	var user model.User
	db := r.db.WithContext(ctx)
	err := db.Where("max_user_id = ?", maxUserID).First(&user).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{}
		if firstName != "" {
			updates["first_name"] = firstName
		}
		if lastName != "" {
			updates["last_name"] = lastName
		}
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				return nil, fmt.Errorf("update user: %w", err)
			}
		}
		return &user, nil
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			MaxUserID:      maxUserID,
			FirstName:      firstName,
			LastName:       lastName,
			OnboardingStep: model.StepNone,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) FindByMaxID(ctx context.Context, maxUserID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("max_user_id = ?", maxUserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetOnboardingStep advances the user's onboarding step with a single
// conditional UPDATE. The WHERE clause enforces the allowed transitions,
// so a concurrent writer cannot move the step backwards: the statement
// simply matches no rows. Returns whether a row changed.
func (r *UserRepository) SetOnboardingStep(ctx context.Context, maxUserID int64, to model.OnboardingStep) (bool, error) {
	from := allowedFromSteps(to)
	if len(from) == 0 {
		return false, fmt.Errorf("no valid transition to step %q", to)
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("max_user_id = ? AND onboarding_step IN ?", maxUserID, from).
		Update("onboarding_step", to)
	if res.Error != nil {
		return false, fmt.Errorf("update onboarding step: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// allowedFromSteps lists the steps a transition to the given step may start from.
func allowedFromSteps(to model.OnboardingStep) []model.OnboardingStep {
	all := []model.OnboardingStep{model.StepNone, model.StepMorningTime, model.StepEveningTime, model.StepCompleted}
	var from []model.OnboardingStep
	for _, s := range all {
		if s.CanTransitionTo(to) {
			from = append(from, s)
		}
	}
	return from
}

// SetRitualTime stores a "HH:MM" time for the given ritual. The value is
// assumed to be validated by the caller.
func (r *UserRepository) SetRitualTime(ctx context.Context, maxUserID int64, ritual model.RitualType, timeStr string) error {
	column := "morning_ritual_time"
	if ritual == model.RitualEvening {
		column = "evening_ritual_time"
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("max_user_id = ?", maxUserID).
		Update(column, timeStr)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s: user %d not found", column, maxUserID)
	}
	return nil
}

// ListOnboarded returns users who finished onboarding and have at least
// one ritual time configured. The ritual scheduler scans this set every minute.
func (r *UserRepository) ListOnboarded(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("onboarding_step = ? AND (morning_ritual_time IS NOT NULL OR evening_ritual_time IS NOT NULL)", model.StepCompleted).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
