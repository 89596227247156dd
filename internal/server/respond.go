package server

import (
	"encoding/json"
	"net/http"

	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

// respondError maps the AppError code taxonomy to HTTP statuses in one
// place; handlers never pick status codes themselves.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	appErr := errors.AsAppError(err)
	status := errors.HTTPStatus(appErr.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", appErr.Code, "err", err)
	}
	s.respondJSON(w, status, errorResponse{Error: appErr.Message, Code: string(appErr.Code)})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.InvalidArg("invalid request body")
	}
	return nil
}
