package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

type remotePosts struct {
	c *api.Client
}

func (g *remotePosts) Feed(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
	return api.GetPage[models.Post](ctx, g.c, "/posts/feed?"+pageQuery(page, limit))
}

func (g *remotePosts) ByID(ctx context.Context, id string) (models.Post, error) {
	return api.Get[models.Post](ctx, g.c, "/posts/"+url.PathEscape(id))
}

func (g *remotePosts) ByUser(ctx context.Context, userID string, page, limit int) (models.Page[models.Post], error) {
	return api.GetPage[models.Post](ctx, g.c,
		"/users/"+url.PathEscape(userID)+"/posts?"+pageQuery(page, limit))
}

// Create uploads the post as multipart form data so media can ride along
// with the text fields.
func (g *remotePosts) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	fields := map[string]string{
		"content":   input.Content,
		"mediaType": input.MediaType,
	}
	if input.Location != "" {
		fields["location"] = input.Location
	}
	if len(input.Tags) > 0 {
		tags, err := json.Marshal(input.Tags)
		if err != nil {
			return models.Post{}, err
		}
		fields["tags"] = string(tags)
	}

	var media io.Reader
	var mediaName string
	if input.MediaPath != "" {
		f, err := os.Open(input.MediaPath)
		if err != nil {
			return models.Post{}, fmt.Errorf("open media: %w", err)
		}
		defer f.Close()
		media = f
		mediaName = filepath.Base(input.MediaPath)
	}

	return api.Upload[models.Post](ctx, g.c, "/posts", fields, "media", mediaName, media)
}

func (g *remotePosts) Like(ctx context.Context, id string) (models.Post, error) {
	return api.Post[models.Post](ctx, g.c, "/posts/"+url.PathEscape(id)+"/like", nil)
}

func (g *remotePosts) Save(ctx context.Context, id string) (models.Post, error) {
	return api.Post[models.Post](ctx, g.c, "/posts/"+url.PathEscape(id)+"/save", nil)
}

func (g *remotePosts) Delete(ctx context.Context, id string) error {
	_, err := api.Delete[any](ctx, g.c, "/posts/"+url.PathEscape(id))
	return err
}

func (g *remotePosts) Search(ctx context.Context, query string, page, limit int) (models.Page[models.Post], error) {
	return api.GetPage[models.Post](ctx, g.c,
		"/posts/search?q="+url.QueryEscape(query)+"&"+pageQuery(page, limit))
}

type remoteComments struct {
	c *api.Client
}

func (g *remoteComments) ForPost(ctx context.Context, postID string, page, limit int) (models.Page[models.Comment], error) {
	return api.GetPage[models.Comment](ctx, g.c,
		"/posts/"+url.PathEscape(postID)+"/comments?"+pageQuery(page, limit))
}

func (g *remoteComments) Add(ctx context.Context, postID, content, parentID string) (models.Comment, error) {
	body := map[string]string{"content": content}
	if parentID != "" {
		body["parentId"] = parentID
	}
	return api.Post[models.Comment](ctx, g.c, "/posts/"+url.PathEscape(postID)+"/comments", body)
}

func (g *remoteComments) Like(ctx context.Context, id string) (models.Comment, error) {
	return api.Post[models.Comment](ctx, g.c, "/comments/"+url.PathEscape(id)+"/like", nil)
}

func (g *remoteComments) Delete(ctx context.Context, id string) error {
	_, err := api.Delete[any](ctx, g.c, "/comments/"+url.PathEscape(id))
	return err
}

type remoteNotifications struct {
	c *api.Client
}

func (g *remoteNotifications) List(ctx context.Context, page, limit int) (models.Page[models.Notification], error) {
	return api.GetPage[models.Notification](ctx, g.c, "/notifications?"+pageQuery(page, limit))
}

func (g *remoteNotifications) UnreadCount(ctx context.Context) (int, error) {
	res, err := api.Get[struct {
		Count int `json:"count"`
	}](ctx, g.c, "/notifications/unread-count")
	return res.Count, err
}

func (g *remoteNotifications) MarkRead(ctx context.Context, id string) (models.Notification, error) {
	return api.Patch[models.Notification](ctx, g.c, "/notifications/"+url.PathEscape(id)+"/read", nil)
}

func (g *remoteNotifications) MarkAllRead(ctx context.Context) error {
	_, err := api.Post[any](ctx, g.c, "/notifications/read-all", nil)
	return err
}

func (g *remoteNotifications) Delete(ctx context.Context, id string) error {
	_, err := api.Delete[any](ctx, g.c, "/notifications/"+url.PathEscape(id))
	return err
}
