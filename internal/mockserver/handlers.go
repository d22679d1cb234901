package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Posts.Feed(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handlePostByID(w http.ResponseWriter, r *http.Request) {
	post, err := s.set.Posts.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, post)
}

func (s *Server) handleUserPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Posts.ByUser(r.Context(), r.PathValue("id"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

// handleCreatePost accepts the multipart form the client sends. The
// media part is read and discarded; the fixture store keeps URLs, not
// bytes.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeErrorString(w, http.StatusBadRequest, "Invalid multipart form", "BAD_REQUEST")
		return
	}
	input := models.CreatePostInput{
		Content:   r.FormValue("content"),
		MediaType: r.FormValue("mediaType"),
		Location:  r.FormValue("location"),
	}
	if raw := r.FormValue("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Tags); err != nil {
			writeErrorString(w, http.StatusBadRequest, "Invalid tags", "VALIDATION")
			return
		}
	}
	if file, header, err := r.FormFile("media"); err == nil {
		file.Close()
		if header != nil && input.MediaType == "" {
			input.MediaType = "image"
		}
	}

	post, err := s.set.Posts.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, post)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	post, err := s.set.Posts.Like(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, post)
}

func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	post, err := s.set.Posts.Save(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.set.Posts.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"deleted": true})
}

func (s *Server) handleSearchPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Posts.Search(r.Context(), r.URL.Query().Get("q"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Comments.ForPost(r.Context(), r.PathValue("id"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[struct {
		Content  string `json:"content"`
		ParentID string `json:"parentId"`
	}](w, r)
	if !ok {
		return
	}
	comment, err := s.set.Comments.Add(r.Context(), r.PathValue("id"), body.Content, body.ParentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, comment)
}

func (s *Server) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	comment, err := s.set.Comments.Like(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, comment)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.set.Comments.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"deleted": true})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Notifications.List(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.set.Notifications.UnreadCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int{"count": count})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := s.set.Notifications.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, n)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := s.set.Notifications.MarkAllRead(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"marked": true})
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := s.set.Notifications.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"deleted": true})
}

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := s.set.Users.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, user)
}

func (s *Server) handleUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := s.set.Users.ByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, user)
}

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.set.Users.Profile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, profile)
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	following, err := s.set.Users.Follow(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"following": following})
}

func (s *Server) handleFollowers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Users.Followers(r.Context(), r.PathValue("id"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handleFollowing(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Users.Following(r.Context(), r.PathValue("id"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.UpdateProfileInput](w, r)
	if !ok {
		return
	}
	user, err := s.set.Users.UpdateProfile(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, user)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	res, err := s.set.Users.Search(r.Context(), r.URL.Query().Get("q"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, res)
}
