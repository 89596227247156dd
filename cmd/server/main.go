package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	contentrepository "github.com/AriqGChowdhury/WSU-Forum/internal/content/repository"
	contentusecase "github.com/AriqGChowdhury/WSU-Forum/internal/content/usecase"
	"github.com/AriqGChowdhury/WSU-Forum/internal/db"
	identityrepository "github.com/AriqGChowdhury/WSU-Forum/internal/identity/repository"
	identityusecase "github.com/AriqGChowdhury/WSU-Forum/internal/identity/usecase"
	"github.com/AriqGChowdhury/WSU-Forum/internal/notification"
	"github.com/AriqGChowdhury/WSU-Forum/internal/server"
	subforumrepository "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/repository"
	subforumusecase "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/usecase"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	ctx := context.Background()
	bunDB, err := db.Connect(ctx, *cfg)
	if err != nil {
		appLogger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer bunDB.Close()

	if err := db.RunMigrations(ctx, bunDB); err != nil {
		appLogger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	tokenGen := tokens.NewGenerator(cfg.Forum.TokenSecret, time.Duration(cfg.Forum.ActivationTokenTTL)*time.Second)
	mailer := notification.NewSMTPMailer(*cfg)
	notifier := notification.NewNotifier(mailer, tokenGen, *cfg, *appLogger)

	userRepo := identityrepository.NewUserRepository(bunDB, *appLogger)
	contentRepo := contentrepository.NewContentRepository(bunDB, *appLogger)
	subforumRepo := subforumrepository.NewSubforumRepository(bunDB, *appLogger)

	userUC := identityusecase.NewUserUsecase(userRepo, *appLogger, *cfg, tokenGen, notifier)
	contentUC := contentusecase.NewContentUsecase(contentRepo, *appLogger)
	subforumUC := subforumusecase.NewSubforumUsecase(subforumRepo, contentUC, userRepo, *appLogger, *cfg, tokenGen, notifier)

	srv := server.NewServer(*cfg, *appLogger, userUC, contentUC, subforumUC)

	go func() {
		if err := srv.Run(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", "err", err)
	}
}
