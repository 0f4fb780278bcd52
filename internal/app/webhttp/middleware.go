package webhttp

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// requestLog пишет одну строку на запрос. Заголовки ответа не трогает,
// чтобы статика отдавалась ровно так же, как голым http.FileServer.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Клиентский X-Request-Id не используем: id всегда свой.
		reqID := uuid.NewString()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("web: %s %s %d %s request_id=%s", r.Method, r.URL.Path, status, time.Since(start).Round(time.Millisecond), reqID)
	})
}
