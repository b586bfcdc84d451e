package bot

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"tasker-bot/internal/model"
)

// handleMoodResponse interprets a digit-only message as a 1-7 mood score.
// Out-of-range values get a corrective reply and nothing is logged.
func (b *Bot) handleMoodResponse(ctx context.Context, userID int64, text string) {
	level, err := strconv.Atoi(text)
	if err != nil {
		return
	}

	if level < model.MoodLevelMin || level > model.MoodLevelMax {
		b.send(ctx, userID, textMoodRange)
		return
	}

	ritualType := model.RitualMorning
	user, err := b.users.FindByMaxID(ctx, userID)
	switch {
	case err == nil:
		ritualType = ritualTypeFor(user, time.Now())
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Unknown user defaults to a morning ritual.
	default:
		log.Printf("mood: load user %d: %v", userID, err)
	}

	if err := b.moods.Log(ctx, userID, level, ritualType); err != nil {
		log.Printf("log mood for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	b.send(ctx, userID, b.rituals.ReplyFor(ritualType, level))
}

// ritualTypeFor infers which ritual a bare mood reply answers. With both
// times configured the numerically closer one in minutes-of-day wins and
// ties go to morning; with one configured that one wins; with none the
// default is morning.
func ritualTypeFor(user *model.User, now time.Time) model.RitualType {
	morning := user.MorningRitualTime
	evening := user.EveningRitualTime

	switch {
	case morning != nil && evening != nil:
		current := now.Hour()*60 + now.Minute()
		diffMorning := absInt(current - minutesOfDay(*morning))
		diffEvening := absInt(current - minutesOfDay(*evening))
		if diffEvening < diffMorning {
			return model.RitualEvening
		}
		return model.RitualMorning
	case evening != nil:
		return model.RitualEvening
	default:
		return model.RitualMorning
	}
}

// minutesOfDay converts a stored "HH:MM" string to minutes since midnight.
// Stored values are validated on input, so parse failures yield zero.
func minutesOfDay(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
