package sync

import (
	"context"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Thread is the comment store for a single post. Top-level comments
// are the paginated list; replies live nested one level deep inside
// their parent, so a reply never appears at the top level.
type Thread struct {
	*List[models.Comment]
	comments gateway.Comments
	postID   string
}

func commentID(c models.Comment) string { return c.ID }

// NewThread builds a store over the comments of one post.
func NewThread(comments gateway.Comments, postID string, limit int) *Thread {
	fetch := func(ctx context.Context, page, limit int) (models.Page[models.Comment], error) {
		return comments.ForPost(ctx, postID, page, limit)
	}
	return &Thread{
		List:     NewList(fetch, commentID, limit),
		comments: comments,
		postID:   postID,
	}
}

// Add posts a comment. With an empty parentID the confirmed comment is
// prepended to the top level; with a parent it is appended to the
// parent's replies and the parent's reply count bumped.
func (t *Thread) Add(ctx context.Context, content, parentID string) (models.Comment, error) {
	created, err := t.comments.Add(ctx, t.postID, content, parentID)
	if err != nil {
		return models.Comment{}, err
	}

	if parentID == "" {
		t.prepend(created)
		return created, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	idx := t.indexOf(parentID)
	if idx < 0 {
		// Parent fell off the cached pages; the reply exists
		// server-side and shows up on the next fetch.
		return created, nil
	}
	t.items[idx].Replies = append(t.items[idx].Replies, created)
	t.items[idx].RepliesCount++
	return created, nil
}

// LikeComment toggles the like on a comment or one of its replies,
// optimistically with rollback.
func (t *Thread) LikeComment(ctx context.Context, id string) error {
	t.mu.Lock()
	parentIdx, replyIdx := t.locate(id)
	if parentIdx < 0 {
		t.mu.Unlock()
		return nil
	}
	target := t.target(parentIdx, replyIdx)
	snapshot := *target
	if target.IsLiked {
		target.IsLiked = false
		target.LikesCount--
	} else {
		target.IsLiked = true
		target.LikesCount++
	}
	t.mu.Unlock()

	confirmed, err := t.comments.Like(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()
	parentIdx, replyIdx = t.locate(id)
	if parentIdx < 0 {
		return err
	}
	target = t.target(parentIdx, replyIdx)
	if err != nil {
		*target = snapshot
		logging.L().Warn("comment like failed, rolled back", zap.String("id", id), zap.Error(err))
		return err
	}
	// Keep the locally cached replies; the server payload for a
	// top-level comment does not carry them.
	confirmed.Replies = target.Replies
	*target = confirmed
	return nil
}

// Delete removes a comment remotely, then from the cache. Deleting a
// parent drops its replies with it.
func (t *Thread) Delete(ctx context.Context, id string) error {
	if err := t.comments.Delete(ctx, id); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	parentIdx, replyIdx := t.locate(id)
	if parentIdx < 0 {
		return nil
	}
	if replyIdx < 0 {
		t.items = append(t.items[:parentIdx], t.items[parentIdx+1:]...)
		return nil
	}
	parent := &t.items[parentIdx]
	parent.Replies = append(parent.Replies[:replyIdx], parent.Replies[replyIdx+1:]...)
	if parent.RepliesCount > 0 {
		parent.RepliesCount--
	}
	return nil
}

// locate finds a comment by id. It returns the top-level index and,
// when the id names a reply, the index inside that parent's replies
// (-1 for a top-level hit). Called with t.mu held.
func (t *Thread) locate(id string) (parentIdx, replyIdx int) {
	for i, c := range t.items {
		if c.ID == id {
			return i, -1
		}
		for j, r := range c.Replies {
			if r.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}

// target is called with t.mu held and indexes from locate.
func (t *Thread) target(parentIdx, replyIdx int) *models.Comment {
	if replyIdx < 0 {
		return &t.items[parentIdx]
	}
	return &t.items[parentIdx].Replies[replyIdx]
}
