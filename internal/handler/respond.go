package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/pkordes/russia-map/backend/internal/domain"
)

// messageResponse is the body of successful DELETE answers.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeObject reads the request body as a single JSON object. Only
// whitespace may follow the object.
// On failure it writes the error answer itself and returns false:
// 413 when the body exceeds the size limit, 400 otherwise.
func decodeObject(w http.ResponseWriter, r *http.Request) (domain.RawInput, bool) {
	var raw domain.RawInput
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&raw)
	if err == nil {
		err = expectEOF(dec)
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
		return nil, false
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body is required")
		return nil, false
	case errors.Is(err, errTrailingData):
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body must contain a single JSON object")
		return nil, false
	case err != nil:
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body must be a JSON object")
		return nil, false
	case raw == nil:
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return raw, true
}

var errTrailingData = errors.New("trailing data after JSON value")

// expectEOF reports errTrailingData unless the decoder has nothing but
// whitespace left. Read errors such as *http.MaxBytesError are returned as is.
func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &tooLarge):
		return err
	default:
		return errTrailingData
	}
}
