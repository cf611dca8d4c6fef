package adapthttp

import (
	"net/http"

	"portfolio/internal/domain"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := s.projects.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Technologies []string `json:"technologies"`
		ImageURL     string   `json:"imageUrl"`
		LiveURL      string   `json:"liveUrl"`
		GitHubURL    string   `json:"githubUrl"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := s.projects.Create(r.Context(), domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		GitHubURL:    req.GitHubURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
