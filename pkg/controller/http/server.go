package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/grc-lab/riskreport/pkg/domain/model/config"
	"github.com/grc-lab/riskreport/pkg/usecase"
	"github.com/grc-lab/riskreport/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	appCfg *config.AppConfig
}

type Option func(*Server)

// WithAppConfig overrides the built-in template/category registry
func WithAppConfig(cfg *config.AppConfig) Option {
	return func(s *Server) {
		s.appCfg = cfg
	}
}

func New(uc *usecase.UseCases, opts ...Option) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		appCfg: config.DefaultAppConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Post("/", s.createReport)
			r.Get("/", s.listReports)
			r.Get("/{id}", s.getReport)
			r.Patch("/{id}", s.updateReport)
			r.Get("/{id}/export", s.exportReport)
			r.Get("/{id}/risk-items", s.listRiskItems)
		})

		r.Route("/risk-items", func(r chi.Router) {
			r.Post("/", s.createRiskItem)
			r.Patch("/{id}", s.updateRiskItem)
			r.Delete("/{id}", s.deleteRiskItem)
		})

		r.Get("/templates", s.listTemplates)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
