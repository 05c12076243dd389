// Package server exposes the report API over HTTP.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"question-lab/auth"
	"question-lab/errors"
	"question-lab/observability"
	"question-lab/services"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const healthPath = "/healthz"

type Config struct {
	AppName        string
	Host           string
	Port           int
	AllowOrigins   []string
	RequestTimeout time.Duration
	// RequestRate caps accepted requests per second. Zero disables the limit.
	RequestRate float64
}

type Server struct {
	log           *slog.Logger
	cfg           Config
	reports       services.IReportService
	questions     services.IQuestionService
	monitoring    *observability.Monitoring
	authenticator *auth.Authenticator
	limiter       *rate.Limiter
}

func NewServer(
	log *slog.Logger,
	cfg Config,
	reports services.IReportService,
	questions services.IQuestionService,
	monitoring *observability.Monitoring,
	authenticator *auth.Authenticator,
) *Server {
	s := &Server{
		log:           log,
		cfg:           cfg,
		reports:       reports,
		questions:     questions,
		monitoring:    monitoring,
		authenticator: authenticator,
	}
	if cfg.RequestRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestRate), max(1, int(cfg.RequestRate)))
	}
	return s
}

// Handler wires the routes and the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, s.handleHealth)
	mux.HandleFunc("GET /report/{roomId}/top-slide", s.handleTopSlide)
	mux.HandleFunc("GET /report/questions/rooms/{roomId}/top3", s.handleTop3)
	mux.HandleFunc("GET /report/questions/rooms/{roomId}/search", s.handleSearch)
	mux.HandleFunc("GET /report/questions/rooms/{roomId}", s.handleListQuestions)
	mux.HandleFunc("POST /report/questions/rooms/{roomId}", s.handleIngest)

	var h http.Handler = mux
	h = s.withTimeout(h)
	if s.authenticator != nil {
		h = s.authenticator.Middleware(s.writeError, healthPath)(h)
	}
	h = s.withRateLimit(h)
	h = s.withCORS(h)
	return s.withRecovery(h)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Path    string `json:"path"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Debug("Response write failed", "error", err)
	}
}

func (s *Server) writeData(w http.ResponseWriter, status int, message string, data any) {
	s.writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeFor(err)
	if stderrors.Is(err, context.DeadlineExceeded) {
		code = errors.ReportErrorCode{Code: errors.CodeUnknown.Code, Status: http.StatusGatewayTimeout, Message: "The report took too long to build."}
	}
	if code.Status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "path", r.URL.Path, "code", code.Code, "error", err)
	} else {
		s.log.Debug("Request rejected", "path", r.URL.Path, "code", code.Code, "error", err)
	}
	s.writeJSON(w, code.Status, errorBody{
		Code:    code.Code,
		Message: code.Message,
		Detail:  err.Error(),
		Path:    r.URL.Path,
	})
}

func (s *Server) withTimeout(next http.Handler) http.Handler {
	if s.cfg.RequestTimeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != healthPath && !s.limiter.Allow() {
			s.writeError(w, r, errors.ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case origin == "":
		case s.originListed(origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
			setCORSMethods(w)
		case slices.Contains(s.cfg.AllowOrigins, "*"):
			// Browsers reject credentials alongside a wildcard origin
			w.Header().Set("Access-Control-Allow-Origin", "*")
			setCORSMethods(w)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originListed(origin string) bool {
	return slices.ContainsFunc(s.cfg.AllowOrigins, func(o string) bool {
		return strings.EqualFold(o, origin)
	})
}

func setCORSMethods(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")
}

func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("Handler panic", "path", r.URL.Path, "panic", rec)
				s.writeError(w, r, fmt.Errorf("%w: %v", errors.ErrWorkerPanic, rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
