package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/middleware"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	sessions *repository.Sessions
	ws       *config.WebSocket
}

func New(logger *slog.Logger) *App {
	return &App{
		logger:   logger,
		router:   http.NewServeMux(),
		sessions: repository.NewSessions(),
	}
}

func (a *App) Start(ctx context.Context) error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to configure websocket: %w", err)
	}
	a.ws = ws

	a.loadRoutes()

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Logging(a.logger),
		),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), time.Second*30,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
