package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
)

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, errors.InvalidArg("invalid " + name)
	}
	return id, nil
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var cmd content.CreatePostCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	post, err := s.content.CreatePost(r.Context(), userIDFromContext(r.Context()), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, post)
}

// subforumFilter reads the optional subforum filter off the query string.
// "subforum_id" is accepted as an alias.
func subforumFilter(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("subforum")
	if raw == "" {
		raw = r.URL.Query().Get("subforum_id")
	}
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.InvalidArg("invalid subforum filter")
	}
	return &id, nil
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := content.ListPostsQuery{
		SubscribedOnly: r.URL.Query().Get("subscribed") == "true",
	}
	filter, err := subforumFilter(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	q.SubforumID = filter
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	posts, err := s.content.ListPosts(r.Context(), userIDFromContext(r.Context()), q)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	post, err := s.content.GetPost(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.content.DeletePost(r.Context(), id, userIDFromContext(r.Context())); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "post_id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	toggle, err := s.content.ToggleLike(r.Context(), userIDFromContext(r.Context()), postID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": toggle.Status()})
}

func (s *Server) handleToggleSave(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "post_id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	toggle, err := s.content.ToggleSave(r.Context(), userIDFromContext(r.Context()), postID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": toggle.Status()})
}

func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathUUID(r, "user_id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	toggle, err := s.content.ToggleFollow(r.Context(), userIDFromContext(r.Context()), targetID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": toggle.Status()})
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "post_id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	var body struct {
		Body string `json:"body"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	comment, err := s.content.AddComment(r.Context(), userIDFromContext(r.Context()), postID, body.Body)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, comment)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CommentID uuid.UUID `json:"comment_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.content.DeleteComment(r.Context(), body.CommentID); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	results, err := s.content.Search(r.Context(), body.Query)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, results)
}

// handleOwnProfile includes saved posts; the public variant below does not.
func (s *Server) handleOwnProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.content.GetProfile(r.Context(), userIDFromContext(r.Context()), true)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "user_id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	profile, err := s.content.GetProfile(r.Context(), userID, false)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, profile)
}
