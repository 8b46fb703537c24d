package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"mfo-offers-api/internal/config"
	"mfo-offers-api/internal/events"
	"mfo-offers-api/internal/handler"
	"mfo-offers-api/internal/logging"
	"mfo-offers-api/internal/middleware"
	"mfo-offers-api/internal/service"
	"mfo-offers-api/internal/store"
	"mfo-offers-api/internal/tracing"
)

const connectTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(cfg.Server.Environment)

	if _, err := tracing.InitTracing(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: "mfo-offers-api",
		Environment: cfg.Server.Environment,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer tracing.Shutdown(context.Background())

	// The service tolerates a missing store: data endpoints report a server
	// error while the diagnostic endpoint stays available.
	var gateway service.Gateway
	if cfg.Database.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		mongo, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("store unavailable, starting without a database")
		} else {
			gateway = mongo
			defer mongo.Close(context.Background())
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, starting without a database")
	}

	ev := events.NewManager(cfg.Events.Enabled)
	defer ev.Shutdown()

	svc := service.NewService(gateway, ev, service.StatusFlags{
		DatabaseURLSet:  os.Getenv("DATABASE_URL") != "",
		DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
	})

	h := handler.NewHandlerWithOptions(svc, handler.NewHandlerOptions{
		MaxBodySize: cfg.Security.MaxRequestBodySize,
	})

	// Setup router
	r := chi.NewRouter()

	// Middleware (order matters)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.TracingMiddleware())

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/", h.Root)
	r.Route("/api/offers", func(r chi.Router) {
		r.Get("/", h.ListOffers)
		r.Post("/", h.CreateOffer)
		r.Post("/seed", h.SeedOffers)
	})
	r.Get("/test", h.TestDatabase)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info().Msg("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("error shutting down server")
		}
	}()

	log.Info().Str("addr", addr).Str("database", cfg.Database.Name).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}
