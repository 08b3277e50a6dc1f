package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.AppLogger
	port     int
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, appLogger *logger.AppLogger, port int, shutdown *ShutdownManager) *GracefulServer {
	return &GracefulServer{
		echo:     e,
		logger:   appLogger,
		port:     port,
		shutdown: shutdown,
	}
}

// Start starts the server and blocks until a shutdown signal arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.WithFields(logrus.Fields{"address": addr}).Info("Starting HTTP server")

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// SIGTERM is sent by Kubernetes or Docker, Interrupt by the terminal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.WithFields(logrus.Fields{"signal": sig.String()}).Info("Received shutdown signal")

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.WithFields(nil).Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("Server forced to shutdown")
		return err
	}

	if s.shutdown != nil {
		if err := s.shutdown.Shutdown(ctx); err != nil {
			return err
		}
	}

	s.logger.WithFields(nil).Info("Server shutdown completed")
	return nil
}

// ShutdownManager collects cleanup functions to run during shutdown
type ShutdownManager struct {
	logger    *logger.AppLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(appLogger *logger.AppLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    appLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.WithFields(logrus.Fields{"components": len(sm.functions)}).Info("Shutting down components")

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.WithFields(logrus.Fields{"component": i}).WithError(err).Error("Error during component shutdown")
			// Continue with other components even if one fails
		}
	}

	return nil
}
