package mock

import (
	"context"
	"testing"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

func TestFeedPagination(t *testing.T) {
	set := NewSet(NewData())
	ctx := context.Background()

	first, err := set.Posts.Feed(ctx, 1, 10)
	if err != nil {
		t.Fatalf("Feed page 1: %v", err)
	}
	if len(first.Items) != 10 {
		t.Fatalf("page 1 items = %d, want 10", len(first.Items))
	}
	if first.Total != 25 || first.TotalPages != 3 {
		t.Errorf("total = %d, totalPages = %d, want 25 and 3", first.Total, first.TotalPages)
	}
	if !first.HasNext || first.HasPrev {
		t.Errorf("page 1 hasNext = %v, hasPrev = %v", first.HasNext, first.HasPrev)
	}

	last, err := set.Posts.Feed(ctx, 3, 10)
	if err != nil {
		t.Fatalf("Feed page 3: %v", err)
	}
	if len(last.Items) != 5 {
		t.Errorf("page 3 items = %d, want 5", len(last.Items))
	}
	if last.HasNext || !last.HasPrev {
		t.Errorf("page 3 hasNext = %v, hasPrev = %v", last.HasNext, last.HasPrev)
	}

	past, err := set.Posts.Feed(ctx, 9, 10)
	if err != nil {
		t.Fatalf("Feed past end: %v", err)
	}
	if len(past.Items) != 0 {
		t.Errorf("past-end items = %d, want 0", len(past.Items))
	}
}

func TestLikeToggle(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()
	id := d.FirstPostID()

	before, err := set.Posts.ByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	liked, err := set.Posts.Like(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !liked.IsLiked || liked.LikesCount != before.LikesCount+1 {
		t.Errorf("after like: isLiked = %v, likesCount = %d, want true and %d",
			liked.IsLiked, liked.LikesCount, before.LikesCount+1)
	}

	unliked, err := set.Posts.Like(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if unliked.IsLiked || unliked.LikesCount != before.LikesCount {
		t.Errorf("after unlike: isLiked = %v, likesCount = %d, want false and %d",
			unliked.IsLiked, unliked.LikesCount, before.LikesCount)
	}
}

func TestPostNotFound(t *testing.T) {
	set := NewSet(NewData())

	_, err := set.Posts.ByID(context.Background(), "no-such-post")
	apiErr, ok := api.AsAPIError(err)
	if !ok {
		t.Fatalf("error type = %T, want *api.APIError", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Code != "NOT_FOUND" {
		t.Errorf("status = %d, code = %q", apiErr.StatusCode, apiErr.Code)
	}
}

func TestCreatePostPrepends(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()

	created, err := set.Posts.Create(ctx, models.CreatePostInput{Content: "fresh off the press"})
	if err != nil {
		t.Fatal(err)
	}
	if created.UserID != d.CurrentUser().ID {
		t.Errorf("created post owner = %q, want current user", created.UserID)
	}

	feed, err := set.Posts.Feed(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if feed.Items[0].ID != created.ID {
		t.Errorf("feed head = %q, want %q", feed.Items[0].ID, created.ID)
	}
	if feed.Total != 26 {
		t.Errorf("total = %d, want 26", feed.Total)
	}
}

func TestAddReplyNestsUnderParent(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()
	postID := d.FirstPostID()

	page, err := set.Comments.ForPost(ctx, postID, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	parent := page.Items[0]

	reply, err := set.Comments.Add(ctx, postID, "agreed!", parent.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reply.ParentID != parent.ID {
		t.Errorf("reply parentId = %q, want %q", reply.ParentID, parent.ID)
	}

	after, err := set.Comments.ForPost(ctx, postID, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Items) != len(page.Items) {
		t.Errorf("top-level count changed: %d -> %d", len(page.Items), len(after.Items))
	}
	got := after.Items[0]
	if got.RepliesCount != parent.RepliesCount+1 || len(got.Replies) == 0 {
		t.Errorf("parent repliesCount = %d, replies = %d", got.RepliesCount, len(got.Replies))
	}
}

func TestFollowToggleAdjustsCount(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()

	target := d.users[1]

	following, err := set.Users.Follow(ctx, target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !following {
		t.Fatal("first toggle should follow")
	}
	profile, err := set.Users.Profile(ctx, target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !profile.IsFollowing || profile.FollowersCount != target.FollowersCount+1 {
		t.Errorf("after follow: isFollowing = %v, followers = %d, want true and %d",
			profile.IsFollowing, profile.FollowersCount, target.FollowersCount+1)
	}

	following, err = set.Users.Follow(ctx, target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if following {
		t.Fatal("second toggle should unfollow")
	}
}

func TestUnreadCountTracksMarkRead(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()

	count, err := set.Notifications.UnreadCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("seeded unread = %d, want 5", count)
	}

	page, err := set.Notifications.List(ctx, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	var unreadID string
	for _, n := range page.Items {
		if !n.IsRead {
			unreadID = n.ID
			break
		}
	}

	marked, err := set.Notifications.MarkRead(ctx, unreadID)
	if err != nil {
		t.Fatal(err)
	}
	if !marked.IsRead {
		t.Error("MarkRead returned unread notification")
	}
	count, _ = set.Notifications.UnreadCount(ctx)
	if count != 4 {
		t.Errorf("unread after MarkRead = %d, want 4", count)
	}

	if err := set.Notifications.MarkAllRead(ctx); err != nil {
		t.Fatal(err)
	}
	count, _ = set.Notifications.UnreadCount(ctx)
	if count != 0 {
		t.Errorf("unread after MarkAllRead = %d, want 0", count)
	}
}

func TestVerifyOTP(t *testing.T) {
	set := NewSet(NewData())
	ctx := context.Background()

	if _, err := set.Auth.SendOTP(ctx, "+15550001111"); err != nil {
		t.Fatal(err)
	}

	_, err := set.Auth.VerifyOTP(ctx, "+15550001111", "000000")
	apiErr, ok := api.AsAPIError(err)
	if !ok || apiErr.StatusCode != 401 {
		t.Fatalf("wrong-code error = %v, want 401 APIError", err)
	}

	authed, err := set.Auth.VerifyOTP(ctx, "+15550001111", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if authed.Token == "" || authed.RefreshToken == "" {
		t.Error("verify returned empty token pair")
	}
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	d := NewData()
	set := NewSet(d)
	ctx := context.Background()

	_, err := set.Users.UpdateProfile(ctx, models.UpdateProfileInput{Username: "maya.codes"})
	apiErr, ok := api.AsAPIError(err)
	if !ok || apiErr.StatusCode != 409 {
		t.Fatalf("duplicate username error = %v, want 409 APIError", err)
	}

	updated, err := set.Users.UpdateProfile(ctx, models.UpdateProfileInput{Bio: "new bio"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Bio != "new bio" {
		t.Errorf("bio = %q", updated.Bio)
	}
	if updated.Username != "johndoe" {
		t.Errorf("username changed unexpectedly: %q", updated.Username)
	}
}
