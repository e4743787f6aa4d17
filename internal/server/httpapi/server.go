// Package httpapi exposes the auth backend over HTTP: signup, login,
// resume upload URLs, and a health endpoint. Error responses use the
// {"detail": "..."} envelope the clients expect.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/server/auth"
	"github.com/skillbridge/skillbridge/internal/server/users"
)

// userService is the slice of users.Service the handlers need.
type userService interface {
	Register(ctx context.Context, name, email, password, role string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.LoginResult, error)
	ParseToken(tokenString string) (*auth.Claims, error)
}

// resumeService issues presigned resume upload URLs.
type resumeService interface {
	UploadURL(ctx context.Context, email string) (key, url string, err error)
}

type Server struct {
	address string
	logger  logging.Logger
	users   userService
	resumes resumeService
}

func NewServer(address string, logger logging.Logger, us userService, rs resumeService) *Server {
	return &Server{
		address: address,
		logger:  logger.With("module", "http_server"),
		users:   us,
		resumes: rs,
	}
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.PathPrefix("/resumes").Subrouter()
	authed.Use(s.requireToken)
	authed.HandleFunc("/upload-url", s.handleResumeUploadURL).Methods(http.MethodPost)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
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
