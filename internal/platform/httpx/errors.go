package httpx

import (
	"errors"
	"net/http"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Conflicts and
// validation failures both surface as 400, matching the public API contract.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrConflict):
		Problem(w, http.StatusBadRequest, "Conflict", err.Error())
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
