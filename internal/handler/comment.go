package handler

import "net/http"

// ListComments handles GET /api/markers/{id}/comments.
// A marker without comments, or an unknown marker, yields [].
func (s *Server) ListComments(w http.ResponseWriter, r *http.Request) {
	markerID, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	comments, err := s.comments.ListByMarker(r.Context(), markerID)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /api/markers/{id}/comments.
func (s *Server) CreateComment(w http.ResponseWriter, r *http.Request) {
	markerID, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	raw, ok := decodeObject(w, r)
	if !ok {
		return
	}
	c, err := s.comments.Create(r.Context(), markerID, raw)
	if err != nil {
		writeServiceError(w, r, err, "marker not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateComment handles PUT /api/comments/{id}.
func (s *Server) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	raw, ok := decodeObject(w, r)
	if !ok {
		return
	}
	c, err := s.comments.Update(r.Context(), id, raw)
	if err != nil {
		writeServiceError(w, r, err, "comment not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteComment handles DELETE /api/comments/{id}.
func (s *Server) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.comments.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "comment deleted"})
}
