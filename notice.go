package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// pushNotice queues a transient notice on a Wordle session. Each notice
// carries its own deadline; a fire-and-forget timer prunes it after expiry
// so the snapshot stays clean even without further input events. When the
// cap is reached the oldest notice is dropped first.
//
// The timer callback runs on a runtime goroutine, so every access to
// game.Notices goes through the session's mutex.
func (app *App) pushNotice(sessionID string, game *WordleState, message string) {
	now := time.Now()
	notice := Notice{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(app.NoticeTTL),
	}

	game.mu.Lock()
	game.Notices = append(game.Notices, notice)
	if len(game.Notices) > MaxNotices {
		game.Notices = game.Notices[len(game.Notices)-MaxNotices:]
	}
	game.mu.Unlock()

	time.AfterFunc(app.NoticeTTL, func() {
		app.expireNotices(sessionID)
	})
}

// expireNotices drops expired notices from a session. Overlapping timers
// are harmless: pruning is idempotent and each call only removes notices
// whose deadline has passed.
func (app *App) expireNotices(sessionID string) {
	app.SessionMutex.RLock()
	game, exists := app.WordleSessions[sessionID]
	app.SessionMutex.RUnlock()
	if !exists {
		return
	}

	game.mu.Lock()
	game.Notices = lo.Filter(game.Notices, func(n Notice, _ int) bool {
		return time.Now().Before(n.ExpiresAt)
	})
	game.mu.Unlock()
}

// activeNotices returns the messages of notices that have not yet expired.
func (g *WordleState) activeNotices() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	active := lo.Filter(g.Notices, func(n Notice, _ int) bool {
		return time.Now().Before(n.ExpiresAt)
	})
	return lo.Map(active, func(n Notice, _ int) string {
		return n.Message
	})
}
