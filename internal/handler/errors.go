package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/russia-map/backend/internal/domain"
)

// Error codes carried in ErrorDetail.Code.
const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeStorage    = "storage_error"
	codeBadRequest = "bad_request"
	codeTooLarge   = "request_too_large"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service error onto its HTTP answer.
// notFound is the message used for domain.ErrNotFound, e.g. "marker not found",
// because the handler is the layer that knows what was being looked up.
// Anything that is neither a validation nor a not-found error is logged and
// reported as a storage failure without leaking its text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeStorage, "storage failure")
	}
}

// validationMessage returns "<field>: <reason>" for a wrapped
// domain.ValidationError, e.g. "rating: required field is missing".
func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Field + ": " + ve.Reason
	}
	return err.Error()
}
