package imdshttp

import (
	"net/http"

	"github.com/tareqmohamed/instanceinfo/internal/models"
	"github.com/tareqmohamed/instanceinfo/pkg/httperrors"
	"github.com/tareqmohamed/instanceinfo/pkg/imdsproto"
)

// instanceIDHandler отдаёт instance ID, если токен действителен. Без настроенного ID — 404.
func (a *Server) instanceIDHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.tokens.Check(r.Header.Get(imdsproto.HeaderToken)); err != nil {
		httperrors.Write(w, err)
		return
	}
	if a.instanceID == "" {
		httperrors.Write(w, models.ErrInstanceUnknown)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(a.instanceID))
}
