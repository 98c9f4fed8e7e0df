package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/club-membership/internal/config"
	"github.com/bagdasarian/club-membership/internal/db"
	"github.com/bagdasarian/club-membership/internal/handler"
	"github.com/bagdasarian/club-membership/internal/handler/server"
	"github.com/bagdasarian/club-membership/internal/logger"
	"github.com/bagdasarian/club-membership/internal/membership"
	"github.com/bagdasarian/club-membership/internal/repository"
	"github.com/bagdasarian/club-membership/internal/repository/memory"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
	"github.com/bagdasarian/club-membership/internal/service"
)

type repositories struct {
	clubs  repository.ClubRepository
	boards repository.BoardRepository
	posts  repository.PostRepository
}

func main() {
	cfg := config.Load()

	log := logger.New("club-membership", cfg.App.Env)
	defer log.Sync()

	var repos repositories
	switch cfg.App.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		repos = repositories{
			clubs:  memory.NewClubRepository(),
			boards: memory.NewBoardRepository(),
			posts:  memory.NewPostRepository(),
		}
	default:
		database := db.MustLoad(cfg)
		log.Info("connected to database", "host", cfg.Database.Host, "db", cfg.Database.DBName)
		defer database.Close()
		repos = repositories{
			clubs:  postgres.NewClubRepository(database),
			boards: postgres.NewBoardRepository(database),
			posts:  postgres.NewPostRepository(database),
		}
	}

	authority := membership.NewAuthority()
	clubService := service.NewClubService(repos.clubs, authority, log, cfg.App.ConflictRetries)
	boardService := service.NewBoardService(repos.clubs, repos.boards, repos.posts, log)

	h := handler.NewHandler(clubService, boardService, log)
	srv := server.NewServer(h, cfg.Server.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}
}
