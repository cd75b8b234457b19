package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"venuely/config"
	"venuely/transport/http/middleware"
	"venuely/transport/http/response"
	"venuely/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

const readHeaderTimeout = 10 * time.Second

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config         *config.Config
	Router         router.Router
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole

	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
	once   sync.Once
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:         cfg,
		Router:         r,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve listens until ctx is done, then drains and returns once the server has shut down.
func (h *HTTP) Serve(ctx context.Context) {
	h.once.Do(h.setupRoutes)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	drained := make(chan struct{})

	go func() {
		defer close(drained)

		<-ctx.Done()
		h.drain()
	}()

	h.setState(ServerStateReady)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-drained
}

// ServeHTTP lets the server run behind a serverless entrypoint without listening itself.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})

	h.mux.ServeHTTP(w, r)
}
func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.Recoverer)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.mux.Group(func(r chi.Router) {
		r.Use(h.AppMiddleware.Tracing)
		r.Use(h.AppMiddleware.RateLimit())
		r.Use(h.AuthMiddleware.APIKey)
		r.Use(h.AuthMiddleware.Auth)
		r.Use(h.AuthMiddleware.RBAC)

		h.Router.SetupRoutes(r)
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

// drain fails /health for the grace period so load balancers stop routing here, then gives
// in-flight requests the cleanup period to finish.
func (h *HTTP) drain() {
	shutdown := h.Config.Server.Shutdown
	grace := time.Duration(shutdown.GracePeriodSeconds) * time.Second

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Skipping grace period.")

		grace = 0
	} else {
		log.Info().Int64("seconds", shutdown.GracePeriodSeconds).Msg("Received SIGTERM. Entering grace period.")
	}

	h.setState(ServerStateInGracePeriod)
	time.Sleep(grace)

	log.Info().Int64("seconds", shutdown.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("HTTP server did not drain before the cleanup period ended")
		}
	}

	log.Info().Msg("Cleaning up completed.")
}
