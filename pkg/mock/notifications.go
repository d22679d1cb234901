package mock

import (
	"context"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type mockNotifications struct {
	d *Data
}

func (g *mockNotifications) List(ctx context.Context, page, limit int) (models.Page[models.Notification], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	return paginate(g.d.notifications, page, limit), nil
}

func (g *mockNotifications) UnreadCount(ctx context.Context) (int, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	count := 0
	for _, n := range g.d.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (g *mockNotifications) MarkRead(ctx context.Context, id string) (models.Notification, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.notifications {
		if g.d.notifications[i].ID == id {
			g.d.notifications[i].IsRead = true
			return g.d.notifications[i], nil
		}
	}
	return models.Notification{}, errNotFound("Notification not found")
}

func (g *mockNotifications) MarkAllRead(ctx context.Context) error {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.notifications {
		g.d.notifications[i].IsRead = true
	}
	return nil
}

func (g *mockNotifications) Delete(ctx context.Context, id string) error {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.notifications {
		if g.d.notifications[i].ID == id {
			g.d.notifications = append(g.d.notifications[:i], g.d.notifications[i+1:]...)
			return nil
		}
	}
	return errNotFound("Notification not found")
}
