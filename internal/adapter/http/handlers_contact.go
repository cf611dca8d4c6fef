package adapthttp

import (
	"net/http"
)

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := s.contact.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListContact(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 50)
	items, err := s.contact.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
