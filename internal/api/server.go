package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/cleanup"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx               *chi.Mux
	srv              *http.Server
	adherenceService service.AdherenceServiceI
	threadsService   service.ThreadsServiceI
	aliasService     service.AliasServiceI
	jwtService       JWTServiceI
	db               Pinger
	location         *time.Location
	requestTimeout   time.Duration
	now              func() time.Time
}

type ServicesList struct {
	AdherenceService service.AdherenceServiceI
	ThreadsService   service.ThreadsServiceI
	AliasService     service.AliasServiceI
	JwtService       JWTServiceI
	// Optional, checked by the health endpoint
	DB Pinger
}

type Option func(*Server)

// WithDefaultLocation sets the zone used for day boundaries when a request has no tz parameter.
func WithDefaultLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		adherenceService: servicesOptions.AdherenceService,
		threadsService:   servicesOptions.ThreadsService,
		aliasService:     servicesOptions.AliasService,
		jwtService:       servicesOptions.JwtService,
		db:               servicesOptions.DB,
		location:         time.Local,
		requestTimeout:   defaultRequestTimeout,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.RealIP)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(middleware.Recoverer)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/doses", s.RecordDose)
			r.Get("/doses", s.ListDoses)
			r.Get("/adherence", s.GetAdherence)

			r.Post("/aliases", s.CreateAlias)
			r.Get("/aliases/me", s.GetMyAlias)

			r.Get("/threads", s.GetThreads)
			r.Post("/threads", s.CreateThread)
			r.Get("/threads/{id}", s.GetThread)
			r.Delete("/threads/{id}", s.DeleteThread)
			r.Get("/threads/{id}/replies", s.GetReplies)
			r.Post("/threads/{id}/replies", s.CreateReply)
			r.Post("/threads/{id}/report", s.ReportThread)
			r.Post("/replies/{id}/report", s.ReportReply)
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server stops. A graceful Shutdown makes it return nil.
func (s *Server) Run(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.Shutdown(ctx)
		},
	})
	slog.Info("http server listening", slog.String("addr", addr))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
