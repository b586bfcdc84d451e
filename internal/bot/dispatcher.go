package bot

import (
	"context"
	"log"
	"strconv"
	"strings"

	"tasker-bot/internal/maxapi"
)

// dispatchUpdate classifies one raw update. Malformed updates are skipped
// with a warning and never surface to the poll loop.
func (b *Bot) dispatchUpdate(ctx context.Context, upd maxapi.Update) {
	switch upd.UpdateType {
	case maxapi.UpdateMessageCreated:
		if upd.Message == nil {
			log.Printf("[warn] message_created update without message")
			return
		}
		b.handleMessage(ctx, upd.Message)
	case maxapi.UpdateBotStarted:
		if upd.UserID == 0 {
			log.Printf("[warn] bot_started update without user_id")
			return
		}
		var firstName, lastName string
		if upd.User != nil {
			firstName = upd.User.FirstName
			lastName = upd.User.LastName
		}
		log.Printf("[info] user %d started the bot", upd.UserID)
		b.startOnboarding(ctx, upd.UserID, firstName, lastName)
	default:
		log.Printf("[warn] ignoring update type %q", upd.UpdateType)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *maxapi.Message) {
	text := strings.TrimSpace(msg.Body.Text)
	if text == "" {
		log.Printf("[warn] skipping message with empty text")
		return
	}

	userID, chatID, ok := extractIdentity(msg)
	if !ok {
		log.Printf("[warn] skipping message without sender id")
		return
	}

	var firstName, lastName string
	if msg.Sender != nil {
		firstName = msg.Sender.FirstName
		lastName = msg.Sender.LastName
	}

	log.Printf("[info] message from %d in chat %s: %.50s", userID, chatID, text)
	b.route(ctx, userID, chatID, text, firstName, lastName)
}

// extractIdentity pulls the sender and chat ids out of a message.
// Sender: sender.user_id, falling back to from.user_id. Chat:
// recipient.chat_id, then chat.id, then the sender's own id (a 1:1 chat).
func extractIdentity(msg *maxapi.Message) (int64, string, bool) {
	var userID int64
	if msg.Sender != nil {
		userID = msg.Sender.UserID
	}
	if userID == 0 && msg.From != nil {
		userID = msg.From.UserID
	}
	if userID == 0 {
		return 0, "", false
	}

	var chatID string
	switch {
	case msg.Recipient != nil && msg.Recipient.ChatID != 0:
		chatID = strconv.FormatInt(msg.Recipient.ChatID, 10)
	case msg.Chat != nil && msg.Chat.ID != 0:
		chatID = strconv.FormatInt(msg.Chat.ID, 10)
	default:
		chatID = strconv.FormatInt(userID, 10)
	}

	return userID, chatID, true
}
