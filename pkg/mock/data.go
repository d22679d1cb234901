// Package mock implements the gateway interfaces over in-memory fixture
// data for offline development. The same mock.Data backs both the
// in-process gateways and the standalone mock server, so the two modes
// agree on semantics.
package mock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Data is the shared fixture store. All access goes through the gateway
// methods, which lock it; concurrent stores can safely share one Data.
type Data struct {
	mu sync.Mutex

	current       models.User
	users         []models.User
	posts         []models.Post
	comments      map[string][]models.Comment
	notifications []models.Notification
	following     map[string]bool

	otpCode string
}

// id derives a stable uuid from a fixture label so ids survive reseeding
// and can be referenced from tests.
func id(label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("realscroll/"+label)).String()
}

var seedNames = []struct {
	username string
	display  string
}{
	{"johndoe", "John Doe"},
	{"maya.codes", "Maya Chen"},
	{"wanderlust_sam", "Sam Okafor"},
	{"pixel_rita", "Rita Alves"},
	{"kenji.frames", "Kenji Watanabe"},
	{"luna_draws", "Luna Petrova"},
}

// NewData seeds a deterministic fixture set: six users (the first is the
// session user), a feed of posts with comments, and a notification inbox
// with a mix of read and unread entries.
func NewData() *Data {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	d := &Data{
		comments:  make(map[string][]models.Comment),
		following: make(map[string]bool),
		otpCode:   "123456",
	}

	for i, n := range seedNames {
		uid := id("user/" + n.username)
		d.users = append(d.users, models.User{
			ID:             uid,
			Username:       n.username,
			DisplayName:    n.display,
			Email:          n.username + "@example.com",
			Avatar:         "https://i.pravatar.cc/150?u=" + uid,
			Bio:            "Keeping it real on RealScroll.",
			IsVerified:     i%2 == 0,
			FollowersCount: 120 + i*37,
			FollowingCount: 80 + i*11,
			CreatedAt:      base.AddDate(0, -i, 0),
			UpdatedAt:      base,
		})
	}
	d.current = d.users[0]

	captions := []string{
		"Golden hour over the harbor, no filter needed.",
		"Finally shipped the side project. Small wins count.",
		"Street food tour, day three. Send help.",
		"Sketchbook page from this morning's commute.",
		"Trail run above the fog line.",
		"New studio setup, same old coffee stains.",
	}
	tagSets := [][]string{
		{"sunset", "nofilter"},
		{"buildinpublic", "golang"},
		{"foodie", "travel"},
		{"sketch", "art"},
		{"trailrunning"},
		{"studio", "wip"},
	}

	for i := 0; i < 25; i++ {
		author := d.users[i%len(d.users)]
		post := models.Post{
			ID:     id(fmt.Sprintf("post/%d", i)),
			UserID: author.ID,
			User: models.PostAuthor{
				ID:          author.ID,
				Username:    author.Username,
				DisplayName: author.DisplayName,
				Avatar:      author.Avatar,
				IsVerified:  author.IsVerified,
			},
			Content:       captions[i%len(captions)],
			MediaType:     "image",
			MediaURL:      fmt.Sprintf("https://picsum.photos/800/600?random=%d", i),
			ThumbnailURL:  fmt.Sprintf("https://picsum.photos/400/300?random=%d", i),
			LikesCount:    14 + (i*7)%90,
			CommentsCount: 2 + i%4,
			SharesCount:   i % 5,
			Tags:          tagSets[i%len(tagSets)],
			CreatedAt:     base.Add(-time.Duration(i) * 3 * time.Hour),
			UpdatedAt:     base.Add(-time.Duration(i) * 3 * time.Hour),
		}
		d.posts = append(d.posts, post)

		for c := 0; c < 2+i%4; c++ {
			commenter := d.users[(i+c+1)%len(d.users)]
			d.comments[post.ID] = append(d.comments[post.ID], models.Comment{
				ID:     id(fmt.Sprintf("comment/%d/%d", i, c)),
				PostID: post.ID,
				UserID: commenter.ID,
				User: models.PostAuthor{
					ID:          commenter.ID,
					Username:    commenter.Username,
					DisplayName: commenter.DisplayName,
					Avatar:      commenter.Avatar,
					IsVerified:  commenter.IsVerified,
				},
				Content:    "This is great, love the vibe.",
				LikesCount: (i + c) % 9,
				CreatedAt:  post.CreatedAt.Add(time.Duration(c+1) * 12 * time.Minute),
				UpdatedAt:  post.CreatedAt.Add(time.Duration(c+1) * 12 * time.Minute),
			})
		}
	}

	kinds := []models.NotificationType{
		models.NotificationLike, models.NotificationComment, models.NotificationFollow,
		models.NotificationMention, models.NotificationReply, models.NotificationSystem,
	}
	for i := 0; i < 12; i++ {
		actor := d.users[1+(i%(len(d.users)-1))]
		n := models.Notification{
			ID:      id(fmt.Sprintf("notification/%d", i)),
			Type:    kinds[i%len(kinds)],
			UserID:  d.current.ID,
			ActorID: actor.ID,
			Actor: models.Actor{
				ID:          actor.ID,
				Username:    actor.Username,
				DisplayName: actor.DisplayName,
				Avatar:      actor.Avatar,
			},
			Message:   actor.DisplayName + " interacted with your post",
			IsRead:    i >= 5,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
		if kinds[i%len(kinds)] != models.NotificationFollow && kinds[i%len(kinds)] != models.NotificationSystem {
			n.PostID = d.posts[i%len(d.posts)].ID
		}
		d.notifications = append(d.notifications, n)
	}

	return d
}

// SetOTPCode overrides the accepted one-time code. The mock server
// wires this from OTP_CODE.
func (d *Data) SetOTPCode(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code != "" {
		d.otpCode = code
	}
}

// CurrentUser returns the seeded session user.
func (d *Data) CurrentUser() models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// FirstPostID returns the id of the newest seeded post.
func (d *Data) FirstPostID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.posts[0].ID
}

func paginate[T any](items []T, page, limit int) models.Page[T] {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := (total + limit - 1) / limit
	return models.Page[T]{
		Items: append([]T(nil), items[start:end]...),
		PageInfo: models.PageInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    end < total,
			HasPrev:    page > 1,
		},
	}
}

func matchesQuery(content string, tags []string, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(content), q) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
