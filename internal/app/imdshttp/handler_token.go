package imdshttp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"

	"github.com/tareqmohamed/instanceinfo/internal/models"
	"github.com/tareqmohamed/instanceinfo/pkg/httperrors"
	"github.com/tareqmohamed/instanceinfo/pkg/imdsproto"
)

// issueToken выдаёт токен на PUT-запрос с корректным TTL.
func (a *Server) issueToken(w http.ResponseWriter, r *http.Request) {
	ttl, err := parseTTL(r.Header.Get(imdsproto.HeaderTokenTTL))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	token := a.tokens.Create(ttl)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set(imdsproto.HeaderTokenTTL, strconv.Itoa(int(ttl/time.Second)))
	_, _ = w.Write([]byte(token))
}

// parseTTL разбирает TTL в секундах; вне диапазона 1..21600 — ошибка.
func parseTTL(value string) (time.Duration, error) {
	if value == "" {
		return 0, errors.Wrap(models.ErrInvalidTTL, "missing "+imdsproto.HeaderTokenTTL)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(models.ErrInvalidTTL, "%q is not a number", value)
	}
	if n < imdsproto.MinTokenTTLSeconds || n > imdsproto.MaxTokenTTLSeconds {
		return 0, errors.Wrapf(models.ErrInvalidTTL, "%d out of range", n)
	}

	return time.Duration(n) * time.Second, nil
}
