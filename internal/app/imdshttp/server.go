package imdshttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/ratelimit"

	"github.com/tareqmohamed/instanceinfo/pkg/imdsproto"
)

// Options настраивает эмулятор.
type Options struct {
	InstanceID string
	// RateLimit ограничивает число запросов в секунду; 0 — без ограничения.
	RateLimit int
}

// Server serves an IMDSv2-compatible subset of the instance metadata API.
type Server struct {
	instanceID string
	tokens     *TokenStore
	limiter    ratelimit.Limiter
}

// New создаёт HTTP-обработчик эмулятора.
func New(opts Options) (http.Handler, *Server) {
	srv := &Server{
		instanceID: opts.InstanceID,
		tokens:     NewTokenStore(),
	}
	if opts.RateLimit > 0 {
		srv.limiter = ratelimit.New(opts.RateLimit, ratelimit.WithoutSlack)
	}

	return srv.routes(), srv
}

// Tokens возвращает хранилище токенов, например для фоновой очистки.
func (a *Server) Tokens() *TokenStore {
	return a.tokens
}

// routes регистрирует обработчики токена и instance ID.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()
	if a.limiter != nil {
		r.Use(a.throttle)
	}

	r.Put(imdsproto.PathToken, a.issueToken)
	r.Get(imdsproto.PathInstanceID, a.instanceIDHandler)

	return r
}

// throttle придерживает запросы, как это делает настоящий сервис метаданных при превышении лимита.
func (a *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.limiter.Take()
		next.ServeHTTP(w, r)
	})
}
