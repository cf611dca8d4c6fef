package adapthttp

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// requireAdmin validates the presented session token and rejects requests
// whose identity lacks the admin capability. Tokens arrive as a Bearer header
// or, after the SSO flow, as a token cookie.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie("token"); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			writeError(w, http.StatusUnauthorized, app.ErrTokenInvalid)
			return
		}

		ident, err := s.auth.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		if !ident.Admin {
			writeError(w, http.StatusForbidden, app.ErrForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return after
	}
	return ""
}

func identityFrom(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(domain.Identity)
	return ident, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recoverMiddleware converts handler panics into a generic 500 without
// leaking internals to the caller.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic in handler", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
