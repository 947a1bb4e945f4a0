package rest

import (
	"errors"
	"net/http"

	perrors "github.com/vistula/firstapi/internal/product/errors"
	"github.com/vistula/firstapi/pkg/web"
)

// handlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing an error response itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. It is the only place product errors become HTTP responses.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.respondError(w, r, err)
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *perrors.NotFoundError
	var reqErr *web.RequestError

	switch {
	case errors.As(err, &notFound):
		h.logger.WarnContext(r.Context(), "Product not found", "ID", notFound.ID)
		web.RespondError(w, h.logger, http.StatusNotFound, notFound.Error())
	case errors.As(err, &reqErr):
		h.logger.WarnContext(r.Context(), "Rejected malformed request", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, reqErr.Message)
	default:
		h.logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
