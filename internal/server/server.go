package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/logging"
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
	"github.com/atomicstack/header-menu/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

const (
	DefaultAddr       = ":8080"
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Config describes the HTTP host.
type Config struct {
	Addr           string   `json:"addr" validate:"required"`
	AllowedOrigins []string `json:"allowedOrigins"`
	// Page is highlighted when a request names none.
	Page  string `json:"page"`
	Plain bool   `json:"plain"`
}

// Source yields the snapshot a request is answered from. It is called once
// per request so the header always reflects the latest session.
type Source func() (session.State, error)

// Server answers header and navigation requests.
type Server struct {
	cfg    Config
	source Source
	bus    *navigation.Bus
	router *chi.Mux
}

// New wires the routes. A nil bus gets a fresh one.
func New(cfg Config, source Source, bus *navigation.Bus) *Server {
	if bus == nil {
		bus = navigation.New()
	}
	if source == nil {
		source = func() (session.State, error) { return session.State{}, nil }
	}
	s := &Server{cfg: cfg, source: source, bus: bus}
	s.router = s.setupRouter()
	return s
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = s.cfg.AllowedOrigins
	} else {
		corsOptions.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	}
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		requestLogger,
		chiMiddleware.Recoverer,
		cors.Handler(corsOptions),
		chiMiddleware.Heartbeat("/healthz"),
	)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/header", s.getHeader)
		r.Get("/navigate", s.getNavigations)
		r.Post("/navigate/{id}", s.postNavigate)
	})
	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			events.Server.Request(r.Method, r.URL.Path, chiMiddleware.GetReqID(r.Context()), resp.Status(), time.Since(start))
		}()
		next.ServeHTTP(resp, r)
	})
}

// getHeader builds the header for the device described by the query:
// screen= picks a class directly, otherwise mobile= and deviceType= are
// classified.
func (s *Server) getHeader(w http.ResponseWriter, r *http.Request) {
	device, err := deviceFromQuery(r)
	if err != nil {
		renderError(w, err, http.StatusBadRequest)
		return
	}
	st, err := s.source()
	if err != nil {
		renderError(w, fmt.Errorf("load session: %w", err), http.StatusInternalServerError)
		return
	}
	page := strings.TrimSpace(r.URL.Query().Get("page"))
	if page == "" {
		page = s.cfg.Page
	}
	header := layout.New(s.bus).Header(menu.Build(st), layout.Classify(device), page, s.cfg.Plain)
	renderJSON(w, header, http.StatusOK)
}

func deviceFromQuery(r *http.Request) (layout.Device, error) {
	q := r.URL.Query()
	if name := strings.TrimSpace(q.Get("screen")); name != "" && !strings.EqualFold(name, "auto") {
		screen, err := layout.ParseScreen(name)
		if err != nil {
			return layout.Device{}, err
		}
		return layout.DeviceForScreen(screen), nil
	}
	device := layout.Device{Type: strings.TrimSpace(q.Get("deviceType"))}
	if raw := strings.TrimSpace(q.Get("mobile")); raw != "" {
		mobile, err := strconv.ParseBool(raw)
		if err != nil {
			return layout.Device{}, fmt.Errorf("invalid mobile value %q", raw)
		}
		device.IsMobile = mobile
	}
	return device, nil
}

type navigateResponse struct {
	Event    string `json:"event"`
	Navigate string `json:"navigate"`
}

func (s *Server) postNavigate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		renderError(w, errors.New("missing navigation target"), http.StatusBadRequest)
		return
	}
	eventID := uuid.NewString()
	s.bus.Navigate(id)
	events.Server.Navigate(eventID, id)
	renderJSON(w, navigateResponse{Event: eventID, Navigate: id}, http.StatusAccepted)
}

func (s *Server) getNavigations(w http.ResponseWriter, _ *http.Request) {
	history := s.bus.History()
	if history == nil {
		history = []string{}
	}
	renderJSON(w, map[string][]string{"history": history}, http.StatusOK)
}

func renderJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(fmt.Errorf("encode response: %w", err))
	}
}

func renderError(w http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError {
		logging.Error(err)
	}
	renderJSON(w, map[string]string{"error": err.Error()}, status)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		events.Server.Start(s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
