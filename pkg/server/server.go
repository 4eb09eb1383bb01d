package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecolab-dev/ecolab/pkg/app"
	"github.com/ecolab-dev/ecolab/pkg/params"
)

// tracerName identifies this server's otel tracer.
const tracerName = "ecolab"

// Config configures the server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// IdleTimeout evicts sessions with no client activity for this
	// long. Zero disables eviction.
	IdleTimeout time.Duration

	// Seed drives each session's simulator. Zero derives a seed from
	// the clock at startup.
	Seed uint64

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the server's metrics. Defaults to a fresh
	// registry exposed at /metrics.
	Registry *prometheus.Registry

	// TracerProvider supplies the event tracer. Defaults to the global
	// otel provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the teaching apps.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	manager  *Manager
	metrics  *Metrics
	tracer   trace.Tracer
	registry *prometheus.Registry
	router   chi.Router
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// New builds a server from cfg.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}

	metrics := NewMetrics(cfg.Registry)

	s := &Server{
		cfg:      cfg,
		logger:   cfg.Logger,
		metrics:  metrics,
		tracer:   cfg.TracerProvider.Tracer(tracerName),
		registry: cfg.Registry,
		manager:  NewManager(cfg.IdleTimeout, cfg.Logger, metrics),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
		},
	}
	s.router = s.routes()
	return s
}

// routes wires the HTTP surface.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/api/apps", s.handleApps)
	r.Get("/ws/{app}", s.handleWS)

	return r
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the number of active sessions.
func (s *Server) Sessions() int {
	return s.manager.Len()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// appManifest is one entry of the /api/apps response.
type appManifest struct {
	Name   string        `json:"name"`
	Params []params.Spec `json:"params"`
	Views  []string      `json:"views"`
}

// handleApps lists the available apps with their parameter manifests, so
// input clients can present matching controls before connecting.
func (s *Server) handleApps(w http.ResponseWriter, _ *http.Request) {
	manifests := make([]appManifest, 0, len(app.Names()))
	for _, name := range app.Names() {
		a, err := app.New(name, 1)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		views := make([]string, 0, len(a.Views()))
		for _, v := range a.Views() {
			views = append(views, v.Name())
		}
		manifests = append(manifests, appManifest{
			Name:   name,
			Params: a.Specs(),
			Views:  views,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(manifests)
}

// handleWS upgrades the connection and runs a session around a fresh app
// instance. The session blocks this handler until the client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "app")
	a, err := app.New(name, s.cfg.Seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		s.metrics.WSErrors.WithLabelValues("upgrade").Inc()
		return
	}

	session := newSession(r.Context(), a, conn, s.logger, s.metrics, s.tracer)
	s.manager.Add(session)
	session.run()
}

// ListenAndServe serves until ctx is canceled, then drains sessions and
// shuts the listener down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.manager.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
