package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"studio/config"
	"studio/transport/http/middleware"
	"studio/transport/http/response"
	"studio/transport/http/router"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "studio/docs"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config         *config.Config
	Router         router.Router
	State          ServerState
	mux            *chi.Mux
	appMiddleware  middleware.AppMiddleware
	authMiddleware middleware.AuthRole
	server         *http.Server
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:         cfg,
		Router:         r,
		appMiddleware:  appMiddleware,
		authMiddleware: authMiddleware,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.mux.ServeHTTP
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Adaptor()(w, r)
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.appMiddleware.Tracing)
	h.mux.Use(h.appMiddleware.RateLimit())

	if h.Config.App.CORS.Enable {
		corsConfig := h.Config.App.CORS

		h.mux.Use(cors.Handler(cors.Options{
			AllowCredentials: corsConfig.AllowCredentials,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedOrigins:   corsConfig.AllowedOrigins,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.HealthCheck)
	h.mux.Mount("/swagger", httpSwagger.WrapHandler)

	h.mux.Group(func(routerGroup chi.Router) {
		routerGroup.Use(h.authMiddleware.APIKey)
		routerGroup.Use(h.authMiddleware.Auth)
		routerGroup.Use(h.authMiddleware.RBAC)

		h.Router.SetupRoutes(routerGroup)
	})
}

// HealthCheck performs a server health check.
// @Summary Health Check
// @Description Report whether the server is in a healthy state and ready to serve requests.
// @Tags Server
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	if h.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly.")
		}
	} else {
		time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
