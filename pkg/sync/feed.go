package sync

import (
	"context"

	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Feed is the paginated post store backing the home feed and user
// profile grids. Like and Save apply optimistically and roll back on
// failure; Create and Delete are primary actions whose errors surface
// to the caller.
type Feed struct {
	*List[models.Post]
	posts gateway.Posts
}

func postID(p models.Post) string { return p.ID }

// NewFeed builds a store over the home feed.
func NewFeed(posts gateway.Posts, limit int) *Feed {
	return &Feed{
		List:  NewList(posts.Feed, postID, limit),
		posts: posts,
	}
}

// NewUserPosts builds a store over one user's posts.
func NewUserPosts(posts gateway.Posts, userID string, limit int) *Feed {
	fetch := func(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
		return posts.ByUser(ctx, userID, page, limit)
	}
	return &Feed{
		List:  NewList(fetch, postID, limit),
		posts: posts,
	}
}

// Like toggles the like on a cached post.
func (f *Feed) Like(ctx context.Context, id string) error {
	return f.mutate(ctx, id,
		func(p *models.Post) {
			if p.IsLiked {
				p.IsLiked = false
				p.LikesCount--
			} else {
				p.IsLiked = true
				p.LikesCount++
			}
		},
		func(ctx context.Context) (models.Post, error) {
			return f.posts.Like(ctx, id)
		})
}

// Save toggles the bookmark on a cached post.
func (f *Feed) Save(ctx context.Context, id string) error {
	return f.mutate(ctx, id,
		func(p *models.Post) { p.IsSaved = !p.IsSaved },
		func(ctx context.Context) (models.Post, error) {
			return f.posts.Save(ctx, id)
		})
}

// Create publishes a new post and prepends the server-confirmed entity
// to the cache.
func (f *Feed) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	created, err := f.posts.Create(ctx, input)
	if err != nil {
		return models.Post{}, err
	}
	f.prepend(created)
	return created, nil
}

// Delete removes a post remotely, then from the cache.
func (f *Feed) Delete(ctx context.Context, id string) error {
	if err := f.posts.Delete(ctx, id); err != nil {
		return err
	}
	f.remove(id)
	return nil
}
