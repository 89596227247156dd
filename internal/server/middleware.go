package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/utils"
)

type contextKey string

const (
	ctxUserID  contextKey = "user_id"
	ctxIsStaff contextKey = "is_staff"
)

func userIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(ctxUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func isStaffFromContext(ctx context.Context) bool {
	staff, _ := ctx.Value(ctxIsStaff).(bool)
	return staff
}

func (s *Server) bearerClaims(r *http.Request) (*utils.Claims, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, errors.Unauthorized("missing bearer token")
	}
	claims, err := utils.ParseAccessToken(token, s.config)
	if err != nil {
		return nil, errors.Unauthorized("invalid or expired token")
	}
	return claims, nil
}

// requireAuth rejects requests without a valid access token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.bearerClaims(r)
		if err != nil {
			s.respondError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxIsStaff, claims.IsStaff)
		next(w, r.WithContext(ctx))
	}
}

// optionalAuth attaches the caller's identity when a token is present but
// serves anonymous requests too. Listing endpoints use it to fill viewer
// fields like is_subscribed.
func (s *Server) optionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, err := s.bearerClaims(r); err == nil {
			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxIsStaff, claims.IsStaff)
			r = r.WithContext(ctx)
		}
		next(w, r)
	}
}
