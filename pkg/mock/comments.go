package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type mockComments struct {
	d *Data
}

func (g *mockComments) ForPost(ctx context.Context, postID string, page, limit int) (models.Page[models.Comment], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	return paginate(g.d.comments[postID], page, limit), nil
}

func (g *mockComments) Add(ctx context.Context, postID, content, parentID string) (models.Comment, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	if content == "" {
		return models.Comment{}, errInvalid("Comment content is required")
	}

	postIdx := -1
	for i := range g.d.posts {
		if g.d.posts[i].ID == postID {
			postIdx = i
			break
		}
	}
	if postIdx < 0 {
		return models.Comment{}, errNotFound("Post not found")
	}

	now := time.Now().UTC()
	author := g.d.current
	comment := models.Comment{
		ID:     uuid.NewString(),
		PostID: postID,
		UserID: author.ID,
		User: models.PostAuthor{
			ID:          author.ID,
			Username:    author.Username,
			DisplayName: author.DisplayName,
			Avatar:      author.Avatar,
			IsVerified:  author.IsVerified,
		},
		Content:   content,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if parentID != "" {
		list := g.d.comments[postID]
		for i := range list {
			if list[i].ID == parentID {
				list[i].Replies = append(list[i].Replies, comment)
				list[i].RepliesCount++
				g.d.posts[postIdx].CommentsCount++
				return comment, nil
			}
		}
		return models.Comment{}, errNotFound("Comment not found")
	}

	g.d.comments[postID] = append([]models.Comment{comment}, g.d.comments[postID]...)
	g.d.posts[postIdx].CommentsCount++
	return comment, nil
}

func (g *mockComments) Like(ctx context.Context, id string) (models.Comment, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for postID := range g.d.comments {
		list := g.d.comments[postID]
		for i := range list {
			if list[i].ID == id {
				toggleCommentLike(&list[i])
				return list[i], nil
			}
			for r := range list[i].Replies {
				if list[i].Replies[r].ID == id {
					toggleCommentLike(&list[i].Replies[r])
					return list[i].Replies[r], nil
				}
			}
		}
	}
	return models.Comment{}, errNotFound("Comment not found")
}

func toggleCommentLike(c *models.Comment) {
	if c.IsLiked {
		c.IsLiked = false
		c.LikesCount--
	} else {
		c.IsLiked = true
		c.LikesCount++
	}
}

func (g *mockComments) Delete(ctx context.Context, id string) error {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for postID, list := range g.d.comments {
		for i := range list {
			if list[i].ID == id {
				g.d.comments[postID] = append(list[:i], list[i+1:]...)
				g.decrementPostComments(postID)
				return nil
			}
			for r := range list[i].Replies {
				if list[i].Replies[r].ID == id {
					list[i].Replies = append(list[i].Replies[:r], list[i].Replies[r+1:]...)
					if list[i].RepliesCount > 0 {
						list[i].RepliesCount--
					}
					g.decrementPostComments(postID)
					return nil
				}
			}
		}
	}
	return errNotFound("Comment not found")
}

func (g *mockComments) decrementPostComments(postID string) {
	for i := range g.d.posts {
		if g.d.posts[i].ID == postID && g.d.posts[i].CommentsCount > 0 {
			g.d.posts[i].CommentsCount--
			return
		}
	}
}
