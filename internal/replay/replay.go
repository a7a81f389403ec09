package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/sathsarabandaraj/petcare/internal/config"
	"github.com/sathsarabandaraj/petcare/internal/httpx"
)

type ingestResponse struct {
	Message string `json:"message"`
}

// Run loads the CSV and starts the reader → channel → sender pipeline.
// It blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Replay, client *httpx.Client) {
	rows, err := ReadCSV(cfg.CSVPath)
	if err != nil {
		slog.Error("failed to load CSV", "error", err, "path", cfg.CSVPath)
		return
	}
	slog.Info("csv loaded",
		"rows", len(rows),
		"path", cfg.CSVPath,
		"interval_ms", cfg.IntervalMS,
		"petcare_url", cfg.BaseURL,
	)

	snapCh := make(chan Snapshot, cfg.ChannelBuffer)

	// Sender goroutine – owns the HTTP client.
	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		sender(ctx, client, cfg.BaseURL, snapCh)
	}()

	readLoop(ctx, rows, time.Duration(cfg.IntervalMS)*time.Millisecond, snapCh)

	close(snapCh)
	<-doneCh
}

// readLoop sends rows one at a time on out, sleeping interval between them,
// and starts over from the first row after the last.
func readLoop(ctx context.Context, rows []Snapshot, interval time.Duration, out chan<- Snapshot) {
	for {
		for _, row := range rows {
			select {
			case out <- row:
			case <-ctx.Done():
				return
			}

			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return
			}
		}
		slog.Info("csv loop completed, restarting from beginning")
	}
}

func sender(ctx context.Context, client *httpx.Client, baseURL string, in <-chan Snapshot) {
	url := baseURL + "/api/pet-data"
	for snap := range in {
		if err := post(ctx, client, url, snap); err != nil {
			slog.Error("replay snapshot failed", "error", err)
		}
	}
}

// post sends one snapshot tagged with a fresh request id so it can be traced
// in the service logs.
func post(ctx context.Context, client *httpx.Client, url string, snap Snapshot) error {
	start := time.Now()
	requestID := uuid.NewString()

	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	resp, err := client.PostJSON(ctx, url, body, http.Header{middleware.RequestIDHeader: {requestID}})
	if err != nil {
		return fmt.Errorf("post %s: %w", requestID, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post %s: status %d", requestID, resp.StatusCode)
	}

	var result ingestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	slog.Info("snapshot replayed",
		"request_id", requestID,
		"vitals", snap.GPS != nil && snap.BPM != nil && snap.SpO2 != nil,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Healthy returns nil when the petcare service is reachable.
func Healthy(ctx context.Context, client *httpx.Client, baseURL string) error {
	resp, err := client.Get(ctx, baseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("petcare healthz: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("petcare healthz: status %d", resp.StatusCode)
	}
	return nil
}
