package bot

import (
	"context"
	"log"
	"time"

	"tasker-bot/internal/maxapi"
)

const (
	pollTimeoutSec = 60
	idleDelay      = time.Second
	errorBackoff   = 5 * time.Second
)

// Run drives the long-poll loop until ctx is cancelled. The marker lives
// only in this loop: a restart re-polls from zero, so delivery of the
// historical backlog is not guaranteed across restarts.
func (b *Bot) Run(ctx context.Context) error {
	log.Println("[info] start polling updates")

	var marker int64
	for {
		updates, next, err := b.gw.Updates(ctx, marker, pollTimeoutSec)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// A transport timeout is a normal empty long-poll round.
			if maxapi.IsTimeout(err) {
				continue
			}
			log.Printf("poll updates: %v", err)
			if !sleepCtx(ctx, errorBackoff) {
				return ctx.Err()
			}
			continue
		}

		// The gateway's marker is monotonic; it only ever moves forward
		// here, and only after a successful fetch.
		marker = next

		if len(updates) == 0 {
			// Guards against tight-looping when the gateway answers
			// immediately without real long-poll support.
			if !sleepCtx(ctx, idleDelay) {
				return ctx.Err()
			}
			continue
		}

		for _, upd := range updates {
			b.dispatchUpdate(ctx, upd)
		}
	}
}

// sleepCtx waits for d, returning false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
