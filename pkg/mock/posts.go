package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type mockPosts struct {
	d *Data
}

func (g *mockPosts) Feed(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	return paginate(g.d.posts, page, limit), nil
}

func (g *mockPosts) ByID(ctx context.Context, id string) (models.Post, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for _, p := range g.d.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, errNotFound("Post not found")
}

func (g *mockPosts) ByUser(ctx context.Context, userID string, page, limit int) (models.Page[models.Post], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	var owned []models.Post
	for _, p := range g.d.posts {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return paginate(owned, page, limit), nil
}

func (g *mockPosts) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	if input.Content == "" && input.MediaPath == "" {
		return models.Post{}, errInvalid("Post content is required")
	}

	now := time.Now().UTC()
	owner := g.d.current
	post := models.Post{
		ID:     uuid.NewString(),
		UserID: owner.ID,
		User: models.PostAuthor{
			ID:          owner.ID,
			Username:    owner.Username,
			DisplayName: owner.DisplayName,
			Avatar:      owner.Avatar,
			IsVerified:  owner.IsVerified,
		},
		Content:   input.Content,
		MediaType: input.MediaType,
		Location:  input.Location,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.MediaPath != "" {
		post.MediaURL = "mock://media/" + post.ID
	}

	g.d.posts = append([]models.Post{post}, g.d.posts...)
	return post, nil
}

func (g *mockPosts) Like(ctx context.Context, id string) (models.Post, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.posts {
		if g.d.posts[i].ID != id {
			continue
		}
		p := &g.d.posts[i]
		if p.IsLiked {
			p.IsLiked = false
			p.LikesCount--
		} else {
			p.IsLiked = true
			p.LikesCount++
		}
		return *p, nil
	}
	return models.Post{}, errNotFound("Post not found")
}

func (g *mockPosts) Save(ctx context.Context, id string) (models.Post, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.posts {
		if g.d.posts[i].ID != id {
			continue
		}
		g.d.posts[i].IsSaved = !g.d.posts[i].IsSaved
		return g.d.posts[i], nil
	}
	return models.Post{}, errNotFound("Post not found")
}

func (g *mockPosts) Delete(ctx context.Context, id string) error {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.posts {
		if g.d.posts[i].ID == id {
			g.d.posts = append(g.d.posts[:i], g.d.posts[i+1:]...)
			delete(g.d.comments, id)
			return nil
		}
	}
	return errNotFound("Post not found")
}

func (g *mockPosts) Search(ctx context.Context, query string, page, limit int) (models.Page[models.Post], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	var hits []models.Post
	for _, p := range g.d.posts {
		if matchesQuery(p.Content, p.Tags, query) {
			hits = append(hits, p)
		}
	}
	return paginate(hits, page, limit), nil
}
