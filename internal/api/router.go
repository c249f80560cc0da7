package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arora962/NagarikMitra/internal/api/handlers/http/admin"
	"github.com/Arora962/NagarikMitra/internal/api/handlers/http/public"
	"github.com/Arora962/NagarikMitra/internal/api/handlers/http/system"
	"github.com/Arora962/NagarikMitra/internal/config"
	"github.com/Arora962/NagarikMitra/internal/middleware"
	"github.com/Arora962/NagarikMitra/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc, svc)
	publicHandler := public.NewHandler(logger, svc, svc)
	systemHandler := system.NewHandler(logger, cfg.Storage.Driver)

	r := InitRouter(ctx, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(ctx context.Context, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.Limit(ctx, 5, 10, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/reports", func(rr chi.Router) {
				rr.Delete("/", adminHandler.AdminReportsClear)

				rr.Route("/{id}", func(ir chi.Router) {
					ir.Delete("/", adminHandler.AdminReportDelete)
					ir.Post("/advance", adminHandler.AdminReportAdvance)
					ir.Put("/department", adminHandler.AdminReportAssign)
				})
			})
		})

		// PUBLIC
		api.Route("/reports", func(pr chi.Router) {
			pr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			pr.Post("/", publicHandler.PublicReportSubmit)
			pr.Get("/", publicHandler.PublicReportList)
			pr.Get("/nearby", publicHandler.PublicReportsNearby)
			pr.Get("/{id}", publicHandler.PublicReportGet)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Http.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
