package handler

import "net/http"

// ListRoutes handles GET /api/routes.
func (s *Server) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.routes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, routes)
}

// CreateRoute handles POST /api/routes.
// The coordinates value is stored exactly as sent.
func (s *Server) CreateRoute(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeObject(w, r)
	if !ok {
		return
	}
	rt, err := s.routes.Create(r.Context(), raw)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

// GetRoute handles GET /api/routes/{id}.
func (s *Server) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	rt, err := s.routes.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "route not found")
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

// DeleteRoute handles DELETE /api/routes/{id}.
func (s *Server) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.routes.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "route deleted"})
}
