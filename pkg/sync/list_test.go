package sync_test

import (
	"context"
	"fmt"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
	"github.com/swan07222/RealScroll-app/pkg/sync"
)

// fakePosts serves a fixed slice of posts page by page and counts
// every call, so tests can assert which operations hit the network.
type fakePosts struct {
	mu        stdsync.Mutex
	posts     []models.Post
	feedCalls int
	feedErr   error
	likeErr   error
	gate      chan struct{} // when set, Feed blocks until the gate closes
}

func newFakePosts(n int) *fakePosts {
	f := &fakePosts{}
	for i := 0; i < n; i++ {
		f.posts = append(f.posts, models.Post{
			ID:         fmt.Sprintf("post-%d", i),
			Content:    fmt.Sprintf("post number %d", i),
			LikesCount: i,
		})
	}
	return f
}

func (f *fakePosts) Feed(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
	f.mu.Lock()
	f.feedCalls++
	err := f.feedErr
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return models.Page[models.Post]{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	start := (page - 1) * limit
	if start > len(f.posts) {
		start = len(f.posts)
	}
	end := start + limit
	if end > len(f.posts) {
		end = len(f.posts)
	}
	return models.Page[models.Post]{
		Items: append([]models.Post(nil), f.posts[start:end]...),
		PageInfo: models.PageInfo{
			Page: page, Limit: limit, Total: len(f.posts),
			HasNext: end < len(f.posts),
		},
	}, nil
}

func (f *fakePosts) ByID(ctx context.Context, id string) (models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Post not found"}
}

func (f *fakePosts) ByUser(ctx context.Context, userID string, page, limit int) (models.Page[models.Post], error) {
	return f.Feed(ctx, page, limit)
}

func (f *fakePosts) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	p := models.Post{ID: "post-created", Content: input.Content}
	f.mu.Lock()
	f.posts = append([]models.Post{p}, f.posts...)
	f.mu.Unlock()
	return p, nil
}

func (f *fakePosts) Like(ctx context.Context, id string) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likeErr != nil {
		return models.Post{}, f.likeErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			if f.posts[i].IsLiked {
				f.posts[i].IsLiked = false
				f.posts[i].LikesCount--
			} else {
				f.posts[i].IsLiked = true
				f.posts[i].LikesCount++
			}
			return f.posts[i], nil
		}
	}
	return models.Post{}, &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Post not found"}
}

func (f *fakePosts) Save(ctx context.Context, id string) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].IsSaved = !f.posts[i].IsSaved
			return f.posts[i], nil
		}
	}
	return models.Post{}, &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Post not found"}
}

func (f *fakePosts) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return &api.APIError{StatusCode: 404, Code: "NOT_FOUND", Message: "Post not found"}
}

func (f *fakePosts) Search(ctx context.Context, query string, page, limit int) (models.Page[models.Post], error) {
	return f.Feed(ctx, page, limit)
}

func (f *fakePosts) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.feedCalls
}

func TestFeedPaginatesToExhaustion(t *testing.T) {
	// 25 posts at 10 per page: fetch, two load-mores, then nothing.
	gw := newFakePosts(25)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()

	require.NoError(t, feed.Fetch(ctx, 1))
	assert.Len(t, feed.Items(), 10)
	assert.True(t, feed.HasMore())

	require.NoError(t, feed.LoadMore(ctx))
	assert.Len(t, feed.Items(), 20)

	require.NoError(t, feed.LoadMore(ctx))
	assert.Len(t, feed.Items(), 25)
	assert.False(t, feed.HasMore())
	assert.Equal(t, 3, gw.calls())

	// Exhausted: no further network call.
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, 3, gw.calls())
	assert.Len(t, feed.Items(), 25)

	// No duplicates across the three pages.
	seen := map[string]bool{}
	for _, p := range feed.Items() {
		assert.False(t, seen[p.ID], "duplicate %s", p.ID)
		seen[p.ID] = true
	}
}

func TestLoadMoreDroppedWhileInFlight(t *testing.T) {
	gw := newFakePosts(25)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))

	gate := make(chan struct{})
	gw.mu.Lock()
	gw.gate = gate
	gw.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.LoadMore(ctx)
	}()

	// Wait for the in-flight fetch to claim the slot.
	for !feed.IsLoading() {
		time.Sleep(time.Millisecond)
	}
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, 2, gw.calls(), "second LoadMore must be dropped without a call")

	close(gate)
	<-done
	assert.Len(t, feed.Items(), 20)
}

func TestFetchFailurePreservesCache(t *testing.T) {
	gw := newFakePosts(25)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))

	gw.mu.Lock()
	gw.feedErr = &api.APIError{StatusCode: 500, Message: "Internal server error"}
	gw.mu.Unlock()

	err := feed.LoadMore(ctx)
	require.Error(t, err)
	assert.Len(t, feed.Items(), 10, "failed page must not disturb cached items")
	assert.Error(t, feed.Err())

	gw.mu.Lock()
	gw.feedErr = nil
	gw.mu.Unlock()

	require.NoError(t, feed.LoadMore(ctx))
	assert.NoError(t, feed.Err(), "error clears on the next success")
	assert.Len(t, feed.Items(), 20)
}

func TestRefreshReplacesAndFlags(t *testing.T) {
	gw := newFakePosts(25)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))
	require.NoError(t, feed.LoadMore(ctx))
	require.Len(t, feed.Items(), 20)

	require.NoError(t, feed.Refresh(ctx))
	assert.Len(t, feed.Items(), 10, "refresh resets to page 1")
	assert.False(t, feed.IsRefreshing())
}

func TestLikeRoundTripMatchesServer(t *testing.T) {
	gw := newFakePosts(5)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))

	require.NoError(t, feed.Like(ctx, "post-2"))

	server, err := gw.ByID(ctx, "post-2")
	require.NoError(t, err)
	var cached models.Post
	for _, p := range feed.Items() {
		if p.ID == "post-2" {
			cached = p
		}
	}
	assert.Equal(t, server, cached, "cached entity must equal the server-confirmed one")
	assert.True(t, cached.IsLiked)
	assert.Equal(t, 3, cached.LikesCount)
}

func TestLikeFailureRollsBack(t *testing.T) {
	gw := newFakePosts(5)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))
	before := feed.Items()

	gw.mu.Lock()
	gw.likeErr = &api.APIError{StatusCode: 500, Message: "Internal server error"}
	gw.mu.Unlock()

	err := feed.Like(ctx, "post-2")
	require.Error(t, err)
	assert.Equal(t, before, feed.Items(), "failed mutation must restore the snapshot")
}

func TestFeedSharesOneListHandle(t *testing.T) {
	// The specialized stores hold the core list by pointer; anything
	// reading through the embedded handle must observe mutations made
	// through the store, not a construction-time copy.
	gw := newFakePosts(5)
	feed := sync.NewFeed(gw, 10)
	handle := feed.List
	ctx := context.Background()

	require.NoError(t, feed.Fetch(ctx, 1))
	assert.Len(t, handle.Items(), 5)

	require.NoError(t, feed.Like(ctx, "post-2"))
	for _, p := range handle.Items() {
		if p.ID == "post-2" {
			assert.True(t, p.IsLiked)
		}
	}
}

func TestCreatePrependsAndDeleteRemoves(t *testing.T) {
	gw := newFakePosts(5)
	feed := sync.NewFeed(gw, 10)
	ctx := context.Background()
	require.NoError(t, feed.Fetch(ctx, 1))

	created, err := feed.Create(ctx, models.CreatePostInput{Content: "hello feed"})
	require.NoError(t, err)
	items := feed.Items()
	require.Len(t, items, 6)
	assert.Equal(t, created.ID, items[0].ID)

	require.NoError(t, feed.Delete(ctx, created.ID))
	assert.Len(t, feed.Items(), 5)
}
