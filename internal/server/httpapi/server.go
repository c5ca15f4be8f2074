// Package httpapi exposes the authentication service over JSON HTTP and
// classifies every request as authenticated or anonymous before dispatch.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/questionboard/questionboard/internal/logging"
	"github.com/questionboard/questionboard/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	auth    *services.AuthService
}

func NewServer(address string, l logging.Logger, as *services.AuthService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		auth:    as,
	}
}

// Router builds the route table. The authenticate middleware runs on every
// route; the /auth endpoints simply ignore the principal.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recovery, s.logRequests, s.authenticate)

	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", s.handleRefresh).Methods(http.MethodPost)
	r.HandleFunc("/users/me", s.handleMe).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
