package server

import "net/http"

func (s *Server) handleHealthTip(w http.ResponseWriter, r *http.Request) {
	tip, err := s.store.HealthTip(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tip)
}

func (s *Server) handlePublicContent(w http.ResponseWriter, r *http.Request) {
	content, err := s.store.PublicContent(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
