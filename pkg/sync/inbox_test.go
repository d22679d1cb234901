package sync_test

import (
	"context"
	"fmt"
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
	"github.com/swan07222/RealScroll-app/pkg/sync"
)

type fakeNotifications struct {
	mu           stdsync.Mutex
	items        []models.Notification
	markAllCalls int
	markReadErr  error
	markAllError error
}

func newFakeNotifications(total, unread int) *fakeNotifications {
	f := &fakeNotifications{}
	for i := 0; i < total; i++ {
		f.items = append(f.items, models.Notification{
			ID:     fmt.Sprintf("n-%d", i),
			Type:   models.NotificationLike,
			IsRead: i >= unread,
		})
	}
	return f
}

func (f *fakeNotifications) List(ctx context.Context, page, limit int) (models.Page[models.Notification], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Page[models.Notification]{
		Items:    append([]models.Notification(nil), f.items...),
		PageInfo: models.PageInfo{Page: page, Limit: limit, Total: len(f.items)},
	}, nil
}

func (f *fakeNotifications) UnreadCount(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.items {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotifications) MarkRead(ctx context.Context, id string) (models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markReadErr != nil {
		return models.Notification{}, f.markReadErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
			return f.items[i], nil
		}
	}
	return models.Notification{}, &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Notification not found"}
}

func (f *fakeNotifications) MarkAllRead(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markAllCalls++
	if f.markAllError != nil {
		return f.markAllError
	}
	for i := range f.items {
		f.items[i].IsRead = true
	}
	return nil
}

func (f *fakeNotifications) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Notification not found"}
}

func TestInboxUnreadTracking(t *testing.T) {
	gw := newFakeNotifications(8, 3)
	in := sync.NewInbox(gw, 20)
	ctx := context.Background()

	require.NoError(t, in.Fetch(ctx, 1))
	require.NoError(t, in.RefreshUnread(ctx))
	assert.Equal(t, 3, in.UnreadCount())

	require.NoError(t, in.MarkRead(ctx, "n-0"))
	assert.Equal(t, 2, in.UnreadCount())

	// Marking an already-read notification does not change the count.
	require.NoError(t, in.MarkRead(ctx, "n-0"))
	assert.Equal(t, 2, in.UnreadCount())
}

func TestInboxMarkAllReadIdempotent(t *testing.T) {
	gw := newFakeNotifications(8, 3)
	in := sync.NewInbox(gw, 20)
	ctx := context.Background()
	require.NoError(t, in.Fetch(ctx, 1))
	require.NoError(t, in.RefreshUnread(ctx))

	require.NoError(t, in.MarkAllRead(ctx))
	assert.Equal(t, 0, in.UnreadCount())
	for _, n := range in.Items() {
		assert.True(t, n.IsRead)
	}

	// Second call is safe and leaves everything read.
	require.NoError(t, in.MarkAllRead(ctx))
	assert.Equal(t, 0, in.UnreadCount())
	assert.Equal(t, 2, gw.markAllCalls)
}

func TestInboxMarkReadRollsBack(t *testing.T) {
	gw := newFakeNotifications(8, 3)
	in := sync.NewInbox(gw, 20)
	ctx := context.Background()
	require.NoError(t, in.Fetch(ctx, 1))
	require.NoError(t, in.RefreshUnread(ctx))

	gw.mu.Lock()
	gw.markReadErr = &api.APIError{StatusCode: 500, Message: "Internal server error"}
	gw.mu.Unlock()

	err := in.MarkRead(ctx, "n-1")
	require.Error(t, err)
	assert.Equal(t, 3, in.UnreadCount(), "failed mark-read must restore the count")
	for _, n := range in.Items() {
		if n.ID == "n-1" {
			assert.False(t, n.IsRead)
		}
	}
}

func TestInboxDeleteUnreadDecrements(t *testing.T) {
	gw := newFakeNotifications(8, 3)
	in := sync.NewInbox(gw, 20)
	ctx := context.Background()
	require.NoError(t, in.Fetch(ctx, 1))
	require.NoError(t, in.RefreshUnread(ctx))

	require.NoError(t, in.Delete(ctx, "n-1")) // unread
	assert.Equal(t, 2, in.UnreadCount())
	assert.Len(t, in.Items(), 7)

	require.NoError(t, in.Delete(ctx, "n-5")) // read
	assert.Equal(t, 2, in.UnreadCount())
}
