package service

import (
	"context"
	"sync"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Feed manages the in-memory view of a user's notification list. Reads
// replace the whole list (last refresh wins); read-state mutations are
// optimistic: local state flips first and the backend sync is best-effort
// with no rollback.
type Feed struct {
	api ports.NotificationAPI
	log logger.Logger

	mu    sync.Mutex
	items []domain.Notification
}

func NewFeed(api ports.NotificationAPI, log logger.Logger) *Feed {
	return &Feed{api: api, log: log}
}

func (f *Feed) Refresh(ctx context.Context, userID int64, unreadOnly bool) error {
	items, err := f.api.Notifications(ctx, userID, unreadOnly)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.items = items
	f.mu.Unlock()
	return nil
}

func (f *Feed) Items() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Groups partitions the feed by calendar date relative to now. Every
// notification lands in exactly one bucket; the comparison uses the date
// component only, in now's location.
type Groups struct {
	Today     []domain.Notification
	Yesterday []domain.Notification
	Earlier   []domain.Notification
}

func (f *Feed) Grouped(now time.Time) Groups {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	var g Groups
	for _, n := range f.Items() {
		ts := n.CreatedAt.In(now.Location())
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, now.Location())
		switch {
		case day.Equal(today):
			g.Today = append(g.Today, n)
		case day.Equal(yesterday):
			g.Yesterday = append(g.Yesterday, n)
		default:
			g.Earlier = append(g.Earlier, n)
		}
	}
	return g
}

// MarkRead flips the local read flag immediately and syncs the backend
// best-effort. The local state is never rolled back on sync failure.
func (f *Feed) MarkRead(ctx context.Context, id int64) {
	f.mu.Lock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			break
		}
	}
	f.mu.Unlock()

	if err := f.api.MarkNotificationRead(ctx, id); err != nil {
		f.log.Error("failed to sync read state",
			logger.Int64("notification_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (f *Feed) MarkAllRead(ctx context.Context, userID int64) {
	f.mu.Lock()
	for i := range f.items {
		f.items[i].Read = true
	}
	f.mu.Unlock()

	if err := f.api.MarkAllNotificationsRead(ctx, userID); err != nil {
		f.log.Error("failed to sync read-all state",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}

// Delete removes the notification from the local list immediately and
// propagates the deletion to the backend best-effort.
func (f *Feed) Delete(ctx context.Context, id int64) {
	f.mu.Lock()
	kept := f.items[:0]
	for _, n := range f.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.items = kept
	f.mu.Unlock()

	if err := f.api.DeleteNotification(ctx, id); err != nil {
		f.log.Error("failed to delete notification on backend",
			logger.Int64("notification_id", id),
			logger.String("error", err.Error()),
		)
	}
}
