package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorMessageResponse is the body of every error response.
type ErrorMessageResponse struct {
	Message string `json:"message"`
}

// RequestError reports a request the server could not interpret, e.g. a malformed path id or body.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

// BadRequest builds a RequestError with a formatted client-facing message.
func BadRequest(err error, format string, args ...any) *RequestError {
	return &RequestError{Message: fmt.Sprintf(format, args...), Err: err}
}

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, ErrorMessageResponse{Message: message})
}

// DecodeJSON reads the request body into dst. Any decoding failure is a RequestError.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return BadRequest(err, "Invalid request body")
	}
	return nil
}
