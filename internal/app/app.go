package app

import (
	"bowling_backend/internal/config"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	envPath         string
	configPath      string
}

func NewApp(envPath, configPath string) *App {
	return &App{envPath: envPath, configPath: configPath}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.configPath)
}

func (s *App) Run() error {
	err := config.Load(s.envPath)
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting server at %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
