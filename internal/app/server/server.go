package server

import (
	"context"
	"errors"
	"fmt"
	"francoggm/payment-gateway/internal/app/server/handlers"
	"francoggm/payment-gateway/internal/config"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	handlers *handlers.Handlers
	gatherer prometheus.Gatherer
	logger   *zap.Logger
	http     *http.Server
}

func NewServer(cfg *config.Config, paymentService handlers.PaymentService, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	srv := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		handlers: handlers.NewHandlers(paymentService, logger),
		gatherer: gatherer,
		logger:   logger.Named("server"),
	}

	srv.registerRoutes()
	srv.http = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: srv.router,
	}

	return srv
}

func (s *Server) registerRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api/payments", func(r chi.Router) {
		r.Post("/", s.handlers.ProcessPayment)
		r.Get("/{id}", s.handlers.GetPayment)
	})
	s.router.Get("/health", s.handlers.Health)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks until the server stops. A graceful Shutdown is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
