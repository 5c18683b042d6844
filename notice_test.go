package main

import (
	"context"
	"testing"
	"time"
)

// TestNoticeCap checks at most MaxNotices are retained, dropping oldest first.
func TestNoticeCap(t *testing.T) {
	app := testApp(t, []string{"ÄPPLE"})
	app.NoticeTTL = time.Minute
	game := app.createNewWordle(context.Background(), "test-session-ncap1")

	for i := 0; i < MaxNotices+3; i++ {
		app.pushNotice("test-session-ncap1", game, ErrorNotInWordList)
	}

	game.mu.Lock()
	defer game.mu.Unlock()
	if len(game.Notices) != MaxNotices {
		t.Errorf("notices = %d, want %d", len(game.Notices), MaxNotices)
	}
	for i := 1; i < len(game.Notices); i++ {
		if game.Notices[i].CreatedAt.Before(game.Notices[i-1].CreatedAt) {
			t.Error("notices out of order after cap eviction")
		}
	}
}

// TestNoticeExpiry checks expired notices are pruned and fresh ones kept.
func TestNoticeExpiry(t *testing.T) {
	app := testApp(t, []string{"ÄPPLE"})
	app.NoticeTTL = time.Minute
	game := app.createNewWordle(context.Background(), "test-session-nexp1")

	app.pushNotice("test-session-nexp1", game, "old")
	game.mu.Lock()
	game.Notices[0].ExpiresAt = time.Now().Add(-time.Second)
	game.mu.Unlock()
	app.pushNotice("test-session-nexp1", game, "fresh")

	app.expireNotices("test-session-nexp1")

	game.mu.Lock()
	defer game.mu.Unlock()
	if len(game.Notices) != 1 || game.Notices[0].Message != "fresh" {
		t.Errorf("expected only fresh notice, got %+v", game.Notices)
	}
}

// TestNoticePushWhileTimersFire interleaves pushes and snapshot reads with
// live expiry timers on a short TTL, so timer goroutines rewrite the notice
// slice while the request path touches it. Run with -race this fails if any
// side skips the session mutex.
func TestNoticePushWhileTimersFire(t *testing.T) {
	app := testApp(t, []string{"ÄPPLE"})
	app.NoticeTTL = time.Millisecond
	game := app.createNewWordle(context.Background(), "test-session-ntimer")

	for i := 0; i < 100; i++ {
		app.pushNotice("test-session-ntimer", game, ErrorNotInWordList)
		_ = app.wordleSnapshot(game)
	}

	time.Sleep(20 * time.Millisecond)
	app.expireNotices("test-session-ntimer")

	game.mu.Lock()
	remaining := len(game.Notices)
	game.mu.Unlock()
	if remaining != 0 {
		t.Errorf("notices = %d after all deadlines passed, want 0", remaining)
	}
}

// TestNoticeExpiryUnknownSession checks pruning an evicted session is a no-op.
func TestNoticeExpiryUnknownSession(t *testing.T) {
	app := testApp(t, []string{"ÄPPLE"})
	app.expireNotices("never-created-session")
}

// TestWordleSnapshotSkipsExpiredNotices checks snapshots drop stale notices
// even before a timer fires.
func TestWordleSnapshotSkipsExpiredNotices(t *testing.T) {
	app := testApp(t, []string{"ÄPPLE"})
	app.NoticeTTL = time.Minute
	game := app.createNewWordle(context.Background(), "test-session-nsnap")

	app.pushNotice("test-session-nsnap", game, "stale")
	game.mu.Lock()
	game.Notices[0].ExpiresAt = time.Now().Add(-time.Second)
	game.mu.Unlock()
	app.pushNotice("test-session-nsnap", game, "live")

	snap := app.wordleSnapshot(game)
	if len(snap.Notices) != 1 || snap.Notices[0] != "live" {
		t.Errorf("snapshot notices = %v, want [live]", snap.Notices)
	}
}
