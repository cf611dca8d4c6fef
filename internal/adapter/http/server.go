// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"portfolio/internal/app"

	"github.com/rs/cors"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth       *app.AuthService
	projects   *app.ProjectService
	contact    *app.ContactService
	webDir     string
	corsOrigin string
	sso        *SSOConfig
}

// New creates a Server wired to the given application services. sso may be
// nil when single sign-on is not configured.
func New(auth *app.AuthService, projects *app.ProjectService, contact *app.ContactService, webDir, corsOrigin string, sso *SSOConfig) *Server {
	return &Server{
		auth:       auth,
		projects:   projects,
		contact:    contact,
		webDir:     webDir,
		corsOrigin: corsOrigin,
		sso:        sso,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.Handle("PUT /auth/me", s.requireAdmin(http.HandlerFunc(s.handleUpdateMe)))
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	api.HandleFunc("GET /projects", s.handleListProjects)
	api.Handle("POST /projects", s.requireAdmin(http.HandlerFunc(s.handleCreateProject)))
	api.Handle("DELETE /projects/{id}", s.requireAdmin(http.HandlerFunc(s.handleDeleteProject)))

	api.HandleFunc("POST /contact", s.handleSubmitContact)
	api.Handle("GET /contact", s.requireAdmin(http.HandlerFunc(s.handleListContact)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{s.corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return s.recoverMiddleware(s.loggingMiddleware(c.Handler(root)))
}
