package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
)

func (s *Server) handleCreateSubforum(w http.ResponseWriter, r *http.Request) {
	var cmd subforum.CreateSubforumCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	sf, err := s.subforums.Create(r.Context(), userIDFromContext(r.Context()), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, sf)
}

func (s *Server) handleListSubforums(w http.ResponseWriter, r *http.Request) {
	subforums, err := s.subforums.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, subforums)
}

func (s *Server) handleTrendingSubforums(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	subforums, err := s.subforums.ListTrending(r.Context(), userIDFromContext(r.Context()), limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, subforums)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.subforums.ListTags(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, tags)
}

func (s *Server) handleGetSubforum(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	sf, err := s.subforums.Get(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sf)
}

func (s *Server) handleSubforumPosts(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	posts, err := s.subforums.ListPosts(r.Context(), userIDFromContext(r.Context()), id, page, perPage)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, posts)
}

func (s *Server) handleSubforumStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	stats, err := s.subforums.RecomputeStats(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	result, err := s.subforums.Subscribe(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.subforums.Unsubscribe(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "unsubscribed"})
}

func (s *Server) handleReportSubforum(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	var cmd subforum.ReportCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	report, err := s.subforums.Report(r.Context(), userIDFromContext(r.Context()), id, cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, report)
}

func (s *Server) handleListModerators(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	mods, err := s.subforums.ListModerators(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, mods)
}

func (s *Server) handleAddModerator(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	var cmd subforum.AddModeratorCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	mod, err := s.subforums.AddModerator(r.Context(), userIDFromContext(r.Context()), id, cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, mod)
}

func (s *Server) handleApproveSubforumByToken(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if s.subforums.ApproveByToken(r.Context(), vars["uidb64"], vars["token"]) {
		s.respondJSON(w, http.StatusOK, map[string]string{"message": "subforum approved"})
		return
	}
	s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "approval link is invalid or expired", Code: string(errors.CodeInvalidArgument)})
}

func (s *Server) handleListPendingSubforums(w http.ResponseWriter, r *http.Request) {
	// fast 403 off the token's staff claim; the usecase re-checks against the db
	if !isStaffFromContext(r.Context()) {
		s.respondError(w, errors.ErrAdminOnly)
		return
	}
	subforums, err := s.subforums.ListPending(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, subforums)
}

func (s *Server) handleAdminDecide(w http.ResponseWriter, r *http.Request) {
	if !isStaffFromContext(r.Context()) {
		s.respondError(w, errors.ErrAdminOnly)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		s.respondError(w, err)
		return
	}
	var decision subforum.AdminDecision
	if err := decodeBody(r, &decision); err != nil {
		s.respondError(w, err)
		return
	}
	sf, err := s.subforums.AdminDecide(r.Context(), userIDFromContext(r.Context()), id, decision)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sf)
}
