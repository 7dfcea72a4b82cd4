package handler

import "net/http"

// ListMarkers handles GET /api/markers.
func (s *Server) ListMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := s.markers.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, markers)
}

// CreateMarker handles POST /api/markers.
func (s *Server) CreateMarker(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeObject(w, r)
	if !ok {
		return
	}
	m, err := s.markers.Create(r.Context(), raw)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// GetMarker handles GET /api/markers/{id}.
func (s *Server) GetMarker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	m, err := s.markers.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "marker not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// UpdateMarker handles PUT /api/markers/{id}. Only comment and rating are applied.
func (s *Server) UpdateMarker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	raw, ok := decodeObject(w, r)
	if !ok {
		return
	}
	m, err := s.markers.Update(r.Context(), id, raw)
	if err != nil {
		writeServiceError(w, r, err, "marker not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// DeleteMarker handles DELETE /api/markers/{id}. The marker's comments go
// with it. An unknown id still answers 200.
func (s *Server) DeleteMarker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.markers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "marker deleted"})
}

// ListMarkersByCity handles GET /api/cities/{city}/markers.
// The city match is case-insensitive.
func (s *Server) ListMarkersByCity(w http.ResponseWriter, r *http.Request) {
	city, ok := pathParam(w, r, "city")
	if !ok {
		return
	}
	markers, err := s.markers.ListByCity(r.Context(), city)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, markers)
}
