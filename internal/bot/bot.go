package bot

import (
	"context"
	"log"

	"tasker-bot/internal/maxapi"
	"tasker-bot/internal/repository"
	"tasker-bot/internal/ritual"
)

// Gateway is the slice of the MAX API the conversation core needs.
type Gateway interface {
	Updates(ctx context.Context, marker int64, timeoutSec int) ([]maxapi.Update, int64, error)
	SendMessage(ctx context.Context, userID int64, text string) error
}

// Bot wires the update loop to the conversation handlers and storage.
type Bot struct {
	gw      Gateway
	users   *repository.UserRepository
	chats   *repository.ChatRepository
	tasks   *repository.TaskRepository
	moods   *repository.MoodRepository
	rituals ritual.Config
}

func New(gw Gateway, users *repository.UserRepository, chats *repository.ChatRepository, tasks *repository.TaskRepository, moods *repository.MoodRepository, rituals ritual.Config) *Bot {
	return &Bot{
		gw:      gw,
		users:   users,
		chats:   chats,
		tasks:   tasks,
		moods:   moods,
		rituals: rituals,
	}
}

// send delivers a reply and logs delivery failures. One attempt only:
// a lost reply is preferable to a stuck update loop.
func (b *Bot) send(ctx context.Context, userID int64, text string) {
	if err := b.gw.SendMessage(ctx, userID, text); err != nil {
		log.Printf("send to %d: %v", userID, err)
	}
}

// apologize sends the generic failure reply used when storage misbehaves
// mid-command. The underlying error is logged by the caller.
func (b *Bot) apologize(ctx context.Context, userID int64) {
	b.send(ctx, userID, textGenericError)
}
