package bot

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
)

// Commands understood by the router.
const (
	cmdStart       = "/start"
	cmdTasks       = "/задачи"
	cmdComplete    = "/готово"
	cmdCreate      = "/создать"
	cmdArchiveList = "/архив"
	cmdArchive     = "/в_архив"
	cmdHelp        = "/помощь"
	cmdHelpEn      = "/help"
)

type commandHandler func(ctx context.Context, userID int64, chatID, text string)

// commandRoute pairs a matcher with its handler. Routes are evaluated in
// order, so the slice encodes the command precedence.
type commandRoute struct {
	match  func(text string) bool
	handle commandHandler
}

func (b *Bot) commandRoutes() []commandRoute {
	return []commandRoute{
		{exact(cmdTasks), b.handleListTasks},
		{prefix(cmdComplete), b.handleCompleteTask},
		{prefix(cmdCreate), b.handleCreateTask},
		{exact(cmdArchiveList), b.handleArchiveList},
		{prefix(cmdArchive), b.handleArchiveTask},
		{exact(cmdHelp, cmdHelpEn), b.handleHelp},
	}
}

func exact(commands ...string) func(string) bool {
	return func(text string) bool {
		for _, c := range commands {
			if text == c {
				return true
			}
		}
		return false
	}
}

func prefix(command string) func(string) bool {
	return func(text string) bool {
		return strings.HasPrefix(text, command)
	}
}

// route decides who consumes the message: /start always (re-)enters
// onboarding, an in-progress onboarding dialogue intercepts all text,
// then the command table, then bare digits as a mood reply. Anything
// else is silently ignored.
func (b *Bot) route(ctx context.Context, userID int64, chatID, text, firstName, lastName string) {
	if text == cmdStart {
		b.startOnboarding(ctx, userID, firstName, lastName)
		return
	}

	user, err := b.users.FindByMaxID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("load user %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	if user != nil && user.OnboardingStep.InProgress() {
		b.handleOnboardingInput(ctx, user, text)
		return
	}

	for _, r := range b.commandRoutes() {
		if r.match(text) {
			r.handle(ctx, userID, chatID, text)
			return
		}
	}

	if strings.HasPrefix(text, "/") {
		b.send(ctx, userID, textUnknownCommand)
		return
	}

	if isDigits(text) {
		b.handleMoodResponse(ctx, userID, text)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
