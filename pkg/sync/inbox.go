package sync

import (
	"context"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Inbox is the notification store. The unread count is fetched
// independently of the list so the badge can update without paging the
// inbox, and every local read-state change adjusts it, floored at
// zero.
type Inbox struct {
	*List[models.Notification]
	gw gateway.Notifications

	unread int
}

func notificationID(n models.Notification) string { return n.ID }

// NewInbox builds the notification store.
func NewInbox(gw gateway.Notifications, limit int) *Inbox {
	return &Inbox{
		List: NewList(gw.List, notificationID, limit),
		gw:   gw,
	}
}

// UnreadCount returns the cached unread badge count.
func (in *Inbox) UnreadCount() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.unread
}

// RefreshUnread re-fetches the unread count from the backend.
func (in *Inbox) RefreshUnread(ctx context.Context) error {
	count, err := in.gw.UnreadCount(ctx)
	if err != nil {
		return err
	}
	in.mu.Lock()
	in.unread = count
	in.mu.Unlock()
	return nil
}

// MarkRead marks one notification read, optimistically. The unread
// count drops by one only if the notification was unread.
func (in *Inbox) MarkRead(ctx context.Context, id string) error {
	in.mu.Lock()
	idx := in.indexOf(id)
	if idx < 0 {
		in.mu.Unlock()
		return nil
	}
	snapshot := in.items[idx]
	snapshotUnread := in.unread
	if !in.items[idx].IsRead {
		in.items[idx].IsRead = true
		in.decUnreadLocked()
	}
	in.mu.Unlock()

	confirmed, err := in.gw.MarkRead(ctx, id)

	in.mu.Lock()
	defer in.mu.Unlock()
	idx = in.indexOf(id)
	if err != nil {
		if idx >= 0 {
			in.items[idx] = snapshot
		}
		in.unread = snapshotUnread
		logging.L().Warn("mark-read failed, rolled back", zap.String("id", id), zap.Error(err))
		return err
	}
	if idx >= 0 {
		in.items[idx] = confirmed
	}
	return nil
}

// MarkAllRead marks every notification read and zeroes the count.
// Calling it on an already-read inbox is a no-op server-side and
// leaves the local state unchanged.
func (in *Inbox) MarkAllRead(ctx context.Context) error {
	in.mu.Lock()
	snapshot := append([]models.Notification(nil), in.items...)
	snapshotUnread := in.unread
	for i := range in.items {
		in.items[i].IsRead = true
	}
	in.unread = 0
	in.mu.Unlock()

	if err := in.gw.MarkAllRead(ctx); err != nil {
		in.mu.Lock()
		in.items = snapshot
		in.unread = snapshotUnread
		in.mu.Unlock()
		logging.L().Warn("mark-all-read failed, rolled back", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a notification remotely, then locally. Deleting an
// unread notification also drops the badge count.
func (in *Inbox) Delete(ctx context.Context, id string) error {
	if err := in.gw.Delete(ctx, id); err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	idx := in.indexOf(id)
	if idx < 0 {
		return nil
	}
	if !in.items[idx].IsRead {
		in.decUnreadLocked()
	}
	in.items = append(in.items[:idx], in.items[idx+1:]...)
	return nil
}

// decUnreadLocked is called with in.mu held.
func (in *Inbox) decUnreadLocked() {
	if in.unread > 0 {
		in.unread--
	}
}
