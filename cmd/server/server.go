package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsDrac/bidhub/internal/dependency"
	"github.com/itsDrac/bidhub/pkg/config"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	HTTPServer   *http.Server
	Dependencies *dependency.Dependencies
}

func New(cfg *config.AppConfig) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dependencies, err := dependency.NewDependencies(ctx, cfg)
	if err != nil {
		slog.Error("[Dependency] failed to initialize -> ", "error", err.Error())
		return nil, err
	}

	serv := &Server{
		Dependencies: dependencies,
	}

	// builds router
	mux := serv.routes()
	serv.HTTPServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return serv, nil
}

// Run serves HTTP and runs the scheduler and notification worker until
// SIGINT or SIGTERM, then shuts everything down in order.
func (s *Server) Run() error {
	slog.Info("[SERVER] running -> ", "address", s.HTTPServer.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// background work stops before the database goes away
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	s.Dependencies.Scheduler.Start(bgCtx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Dependencies.Worker.Run(bgCtx)
	})
	g.Go(func() error {
		if err := s.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[SERVER] failed to serve -> ", "error", err.Error())
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Listen for the interrupt signal
		<-gctx.Done()
		slog.Info("[SERVER] shutdown signal received")

		// create shutdown context with 30 - sec timeout
		shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// stop jobs and the worker once http is down, even if shutdown failed
		defer func() {
			stopBackground()
			s.Dependencies.Scheduler.Wait()
		}()

		// Stop http server
		if err := s.HTTPServer.Shutdown(shutCtx); err != nil {
			slog.Error("[SERVER] shutdown failed -> ", "error", err.Error())
			return err
		}
		return nil
	})

	runErr := g.Wait()
	if err := s.Dependencies.Close(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	slog.Info("[SERVER] shutdown complete.")
	return nil
}
