package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

type Server struct {
	config    config.Config
	logger    logger.Logger
	users     identity.UserUsecase
	content   content.ContentUsecase
	subforums subforum.SubforumUsecase

	httpServer *http.Server
}

func NewServer(cfg config.Config, logger logger.Logger, users identity.UserUsecase, contentUC content.ContentUsecase, subforums subforum.SubforumUsecase) *Server {
	return &Server{
		config:    cfg,
		logger:    logger,
		users:     users,
		content:   contentUC,
		subforums: subforums,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	// identity
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/token/refresh", s.handleRefresh).Methods(http.MethodPost)
	r.HandleFunc("/activate/{uidb64}/{token}", s.handleActivate).Methods(http.MethodGet)
	r.HandleFunc("/delete", s.requireAuth(s.handleDeleteAccount)).Methods(http.MethodDelete)
	r.HandleFunc("/reset", s.requireAuth(s.handleResetPassword)).Methods(http.MethodPost)
	r.HandleFunc("/settings", s.requireAuth(s.handleGetSettings)).Methods(http.MethodGet)
	r.HandleFunc("/settings", s.requireAuth(s.handleUpdateSettings)).Methods(http.MethodPatch)

	// content
	r.HandleFunc("/posts", s.requireAuth(s.handleListPosts)).Methods(http.MethodGet)
	r.HandleFunc("/posts", s.requireAuth(s.handleCreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", s.handleGetPost).Methods(http.MethodGet)
	r.HandleFunc("/delete/post/{id}", s.requireAuth(s.handleDeletePost)).Methods(http.MethodDelete)
	r.HandleFunc("/{post_id}/likes", s.requireAuth(s.handleToggleLike)).Methods(http.MethodPost)
	r.HandleFunc("/{post_id}/comments", s.requireAuth(s.handleAddComment)).Methods(http.MethodPost)
	r.HandleFunc("/{post_id}/comments", s.requireAuth(s.handleDeleteComment)).Methods(http.MethodDelete)
	r.HandleFunc("/{post_id}/save", s.requireAuth(s.handleToggleSave)).Methods(http.MethodPost)
	r.HandleFunc("/follow/{user_id}", s.requireAuth(s.handleToggleFollow)).Methods(http.MethodPost)
	r.HandleFunc("/search", s.requireAuth(s.handleSearch)).Methods(http.MethodPost)
	r.HandleFunc("/profile", s.requireAuth(s.handleOwnProfile)).Methods(http.MethodGet)
	r.HandleFunc("/profile/{user_id}", s.handleProfile).Methods(http.MethodGet)

	// subforums
	r.HandleFunc("/subforums", s.optionalAuth(s.handleListSubforums)).Methods(http.MethodGet)
	r.HandleFunc("/subforums", s.requireAuth(s.handleCreateSubforum)).Methods(http.MethodPost)
	r.HandleFunc("/subforums/trending", s.optionalAuth(s.handleTrendingSubforums)).Methods(http.MethodGet)
	r.HandleFunc("/subforums/tags", s.handleListTags).Methods(http.MethodGet)
	r.HandleFunc("/subforums/activate/{uidb64}/{token}", s.handleApproveSubforumByToken).Methods(http.MethodGet)
	r.HandleFunc("/subforums/{id}", s.optionalAuth(s.handleGetSubforum)).Methods(http.MethodGet)
	r.HandleFunc("/subforums/{id}/posts", s.optionalAuth(s.handleSubforumPosts)).Methods(http.MethodGet)
	r.HandleFunc("/subforums/{id}/stats", s.optionalAuth(s.handleSubforumStats)).Methods(http.MethodGet)
	r.HandleFunc("/subforums/{id}/subscribe", s.requireAuth(s.handleSubscribe)).Methods(http.MethodPost)
	r.HandleFunc("/subforums/{id}/subscribe", s.requireAuth(s.handleUnsubscribe)).Methods(http.MethodDelete)
	r.HandleFunc("/subforums/{id}/report", s.requireAuth(s.handleReportSubforum)).Methods(http.MethodPost)
	r.HandleFunc("/subforums/{id}/moderators", s.handleListModerators).Methods(http.MethodGet)
	r.HandleFunc("/subforums/{id}/moderators", s.requireAuth(s.handleAddModerator)).Methods(http.MethodPost)

	// admin
	r.HandleFunc("/admin/subforums/pending", s.requireAuth(s.handleListPendingSubforums)).Methods(http.MethodGet)
	r.HandleFunc("/admin/subforums/{id}/approve", s.requireAuth(s.handleAdminDecide)).Methods(http.MethodPut)

	return r
}

func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
