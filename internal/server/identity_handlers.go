package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AriqGChowdhury/WSU-Forum/internal/identity"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var cmd identity.RegisterCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	user, err := s.users.Register(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]any{
		"message": "registration successful, check your email to activate your account",
		"user":    user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	resp, err := s.users.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Refresh string `json:"refresh"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	resp, err := s.users.Refresh(r.Context(), body.Refresh)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if s.users.Activate(r.Context(), vars["uidb64"], vars["token"]) {
		s.respondJSON(w, http.StatusOK, map[string]string{"message": "account activated"})
		return
	}
	s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "activation link is invalid or expired", Code: string(errors.CodeInvalidArgument)})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), userIDFromContext(r.Context())); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var cmd identity.ResetPasswordCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.users.ResetPassword(r.Context(), userIDFromContext(r.Context()), cmd); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.users.GetSettings(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var cmd identity.UpdateProfileCommand
	if err := decodeBody(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.users.UpdateSettings(r.Context(), userIDFromContext(r.Context()), cmd); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "settings updated"})
}
