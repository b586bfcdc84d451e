package bot

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"tasker-bot/internal/model"
)

// Strict 24-hour HH:MM: hours 00-23, minutes 00-59, leading zeros required.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// startOnboarding handles /start and bot_started events: the user is
// created if absent, the step resets to morning_time and the greeting
// with the first prompt goes out. This overrides any other state.
func (b *Bot) startOnboarding(ctx context.Context, userID int64, firstName, lastName string) {
	user, err := b.users.GetOrCreate(ctx, userID, firstName, lastName)
	if err != nil {
		log.Printf("start onboarding for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	if _, err := b.users.SetOnboardingStep(ctx, userID, model.StepMorningTime); err != nil {
		log.Printf("reset onboarding for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	name := strings.TrimSpace(user.FirstName)
	if name == "" {
		name = fallbackName
	}

	b.send(ctx, userID, fmt.Sprintf(textGreeting, name))
}

// handleOnboardingInput consumes one message while the setup dialogue is
// in progress. Invalid input re-prompts and leaves the step unchanged.
func (b *Bot) handleOnboardingInput(ctx context.Context, user *model.User, text string) {
	switch user.OnboardingStep {
	case model.StepMorningTime:
		if !timePattern.MatchString(text) {
			b.send(ctx, user.MaxUserID, textBadTimeMorning)
			return
		}
		if err := b.saveRitualTime(ctx, user.MaxUserID, model.RitualMorning, text, model.StepEveningTime); err != nil {
			log.Printf("save morning time for %d: %v", user.MaxUserID, err)
			b.apologize(ctx, user.MaxUserID)
			return
		}
		b.send(ctx, user.MaxUserID, textMorningSaved)
	case model.StepEveningTime:
		if !timePattern.MatchString(text) {
			b.send(ctx, user.MaxUserID, textBadTimeEvening)
			return
		}
		if err := b.saveRitualTime(ctx, user.MaxUserID, model.RitualEvening, text, model.StepCompleted); err != nil {
			log.Printf("save evening time for %d: %v", user.MaxUserID, err)
			b.apologize(ctx, user.MaxUserID)
			return
		}
		b.send(ctx, user.MaxUserID, textOnboardingDone)
	}
}

func (b *Bot) saveRitualTime(ctx context.Context, userID int64, ritual model.RitualType, timeStr string, next model.OnboardingStep) error {
	if err := b.users.SetRitualTime(ctx, userID, ritual, timeStr); err != nil {
		return err
	}
	ok, err := b.users.SetOnboardingStep(ctx, userID, next)
	if err != nil {
		return err
	}
	if !ok {
		// A concurrent /start already reset the dialogue; the step guard
		// refused the forward move, so keep the current prompt flow.
		return fmt.Errorf("step transition to %q rejected", next)
	}
	return nil
}
