// Package models defines the client-side projections of RealScroll server
// resources. The client never owns canonical state; these types cache what
// the backend last confirmed.
package models

import "time"

// User is a RealScroll account with its social counters.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"displayName"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	IsVerified     bool      `json:"isVerified"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	PostsCount     int       `json:"postsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserProfile is a User viewed by another user, carrying the
// viewer-relative relationship flags.
type UserProfile struct {
	User
	IsFollowing  bool `json:"isFollowing"`
	IsFollowedBy bool `json:"isFollowedBy"`
}

// AuthUser is the login/register/verify-otp payload: the user plus the
// token pair that starts a session.
type AuthUser struct {
	User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is the result of a refresh-token exchange.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// PostAuthor is the embedded author snapshot on a Post.
type PostAuthor struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
	IsVerified  bool   `json:"isVerified"`
}

// Post is a feed entry with its counters and viewer-relative flags.
type Post struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	User          PostAuthor `json:"user"`
	Content       string     `json:"content"`
	MediaType     string     `json:"mediaType"` // image, video or text
	MediaURL      string     `json:"mediaUrl,omitempty"`
	ThumbnailURL  string     `json:"thumbnailUrl,omitempty"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	SharesCount   int        `json:"sharesCount"`
	IsLiked       bool       `json:"isLiked"`
	IsSaved       bool       `json:"isSaved"`
	IsVerified    bool       `json:"isVerified"`
	Location      string     `json:"location,omitempty"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CreatePostInput is the client-side input for creating a post. MediaPath
// points at a local file that is uploaded as multipart form data.
type CreatePostInput struct {
	Content   string
	MediaType string
	MediaPath string
	Location  string
	Tags      []string
}

// Comment belongs to a post. Replies nest exactly one level; a reply
// carries the ParentID of the top-level comment it answers.
type Comment struct {
	ID           string     `json:"id"`
	PostID       string     `json:"postId"`
	UserID       string     `json:"userId"`
	User         PostAuthor `json:"user"`
	Content      string     `json:"content"`
	LikesCount   int        `json:"likesCount"`
	IsLiked      bool       `json:"isLiked"`
	RepliesCount int        `json:"repliesCount"`
	ParentID     string     `json:"parentId,omitempty"`
	Replies      []Comment  `json:"replies,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NotificationType classifies a notification event.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationMention NotificationType = "mention"
	NotificationReply   NotificationType = "reply"
	NotificationSystem  NotificationType = "system"
)

// Actor is the user who caused a notification.
type Actor struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

// Notification is a typed event addressed to the current user.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	UserID    string           `json:"userId"`
	ActorID   string           `json:"actorId"`
	Actor     Actor            `json:"actor"`
	PostID    string           `json:"postId,omitempty"`
	CommentID string           `json:"commentId,omitempty"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// UpdateProfileInput holds the PATCH /users/me fields. Empty fields are
// omitted from the request.
type UpdateProfileInput struct {
	DisplayName string `json:"displayName,omitempty"`
	Username    string `json:"username,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// RegisterInput holds the POST /auth/register fields.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}
