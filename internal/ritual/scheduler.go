package ritual

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tasker-bot/internal/model"
)

// UserSource lists users eligible for ritual prompts.
type UserSource interface {
	ListOnboarded(ctx context.Context) ([]model.User, error)
}

// Sender delivers a ritual prompt; implementations fall back to text-only
// delivery when the image cannot be attached.
type Sender interface {
	SendMessageWithImage(ctx context.Context, userID int64, text, imagePath string) error
}

// Scheduler fires ritual prompts at the start of every minute for users
// whose configured time matches the current wall clock.
type Scheduler struct {
	cron   *cron.Cron
	users  UserSource
	sender Sender
	cfg    Config
}

func NewScheduler(loc *time.Location, users UserSource, sender Sender, cfg Config) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		users:  users,
		sender: sender,
		cfg:    cfg,
	}

	// Second 0 of every minute.
	if _, err := s.cron.AddFunc("0 * * * * *", s.tick); err != nil {
		return nil, fmt.Errorf("schedule ritual check: %w", err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[info] ritual scheduler started (checking every minute)")
}

// Stop halts the cron and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()
	s.tickAt(ctx, time.Now())
}

// tickAt runs one scheduler pass against the given clock reading. A user
// whose morning and evening times are identical gets both prompts in the
// same pass. Failures are logged per user and never abort the pass.
func (s *Scheduler) tickAt(ctx context.Context, now time.Time) {
	users, err := s.users.ListOnboarded(ctx)
	if err != nil {
		log.Printf("ritual tick: list users: %v", err)
		return
	}

	current := now.Format("15:04")

	for _, user := range users {
		for _, ritual := range []model.RitualType{model.RitualMorning, model.RitualEvening} {
			configured := user.RitualTimeFor(ritual)
			if configured == nil || *configured != current {
				continue
			}
			if err := s.send(ctx, user.MaxUserID, ritual); err != nil {
				log.Printf("ritual %s to %d: %v", ritual, user.MaxUserID, err)
			}
		}
	}
}

func (s *Scheduler) send(ctx context.Context, userID int64, ritual model.RitualType) error {
	prompt := s.cfg.PromptFor(ritual)
	text := prompt.Text + "\n\n" + s.cfg.MoodInstruction
	return s.sender.SendMessageWithImage(ctx, userID, text, prompt.ImagePath)
}
