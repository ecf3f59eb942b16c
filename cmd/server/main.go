package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"carbon-footprint/backend/internal/app"
	"carbon-footprint/backend/internal/config"
	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/db/migrate"
	"carbon-footprint/backend/internal/logging"
	"carbon-footprint/backend/internal/server"
	"carbon-footprint/backend/internal/telemetry"
	"carbon-footprint/backend/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("error", logging.FormatJSON, os.Stderr)
		boot.Fatal().Err(err).Msg("config")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logging.ComponentLogger(logger, "server")

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTelEndpoint, cfg.OTelServiceName, cfg.OTelInsecure)
	if err != nil {
		log.Fatal().Err(err).Msg("otel")
	}
	providers.SetGlobal()
	metrics, err := providers.Metrics()
	if err != nil {
		log.Fatal().Err(err).Msg("otel metrics")
	}

	conn, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer conn.Close()

	if cfg.MigrateOnStart {
		if err := migrate.Apply(conn, cfg.DatabaseDriver); err != nil {
			log.Fatal().Err(err).Msg("migrate")
		}
		log.Info().Str("driver", cfg.DatabaseDriver).Msg("migrations applied")
	}

	services := app.NewServices(conn, app.Options{
		Metrics: metrics,
		Emitter: providers.EventEmitter(),
		Tracer:  providers.Tracer(),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: server.New(server.Deps{
			Services:     services,
			HealthPinger: conn,
			Logger:       logger,
			Tracer:       providers.Tracer(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	// Let in-flight async event emits finish before the log exporter goes away.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("HTTP server stopped")
}
