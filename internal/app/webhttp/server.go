package webhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tareqmohamed/instanceinfo/internal/config"
	"github.com/tareqmohamed/instanceinfo/internal/usecase/instancesvc"
)

type Server struct {
	Instances instancesvc.Service
	Cfg       *config.Config

	files http.Handler
}

// NewServer конструктор
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Instances: instancesvc.NewFromConfig(cfg),
		Cfg:       cfg,
	}

	return srv.routes(), srv, nil
}

// New собирает обработчик поверх готового сервиса instance ID.
func New(instances instancesvc.Service, staticDir string) http.Handler {
	srv := &Server{
		Instances: instances,
		Cfg:       &config.Config{StaticDir: staticDir},
	}

	return srv.routes()
}

// routes: единственный маршрут GET /, остальное уходит в файловый сервер без изменений.
func (s *Server) routes() http.Handler {
	files := http.FileServer(http.Dir(s.Cfg.StaticDir))
	s.files = files

	rtr := chi.NewRouter()
	rtr.Use(requestLog)
	rtr.Use(middleware.Recoverer)

	rtr.Get("/", s.index)

	rtr.NotFound(files.ServeHTTP)
	rtr.MethodNotAllowed(files.ServeHTTP)

	return rtr
}
