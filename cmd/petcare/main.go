// Service petcare ingests pet telemetry from devices and serves per-day and
// per-week readings for the mobile and web dashboards.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sathsarabandaraj/petcare/internal/config"
	"github.com/sathsarabandaraj/petcare/internal/db"
	"github.com/sathsarabandaraj/petcare/internal/deviceingest"
	"github.com/sathsarabandaraj/petcare/internal/telemetry"

	_ "github.com/sathsarabandaraj/petcare/docs/swagger" // registers /swagger/doc.json
)

func main() {
	cfg := config.LoadPetCare()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if cfg.MigrationsDir != "" {
		if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	connCtx, connCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connCancel()

	pool, err := db.Connect(connCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := telemetry.NewStore(pool)
	handler := telemetry.NewHandler(store,
		telemetry.WithCounters(telemetry.NewCounters(prometheus.DefaultRegisterer)))

	// Devices may also publish snapshots over MQTT.
	var sub *deviceingest.Subscriber
	if cfg.MQTT.Enabled() {
		client, err := deviceingest.Connect(cfg.MQTT)
		if err != nil {
			slog.Error("failed to connect to mqtt broker", "error", err)
			os.Exit(1)
		}
		sub = deviceingest.NewSubscriber(client, cfg.MQTT, handler)
		if err := sub.Start(); err != nil {
			slog.Error("failed to subscribe", "topic", cfg.MQTT.Topic, "error", err)
			os.Exit(1)
		}
	}

	serve(cfg.Base, newRouter(handler, pool))

	if sub != nil {
		sub.Stop()
	}
}

func serve(cfg config.Base, handler http.Handler) {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("petcare listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig)
	case err := <-errCh:
		slog.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
