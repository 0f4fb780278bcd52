package httperrors

import (
	"errors"
	"net/http"

	"github.com/tareqmohamed/instanceinfo/internal/models"
)

// Write отдаёт ошибку как text/plain со статусом по её классу.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidTTL):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrTokenMissing), errors.Is(err, models.ErrTokenExpired):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrInstanceUnknown):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrMetadataFetch):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
