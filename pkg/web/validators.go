package web

import (
	"net/http"
	"strconv"
)

// ParseID extracts the numeric id path value. Any id that is not a base-10 int64 is a RequestError.
func ParseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, BadRequest(err, "Invalid ID: %s", raw)
	}
	return id, nil
}
