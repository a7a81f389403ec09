package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// compositeMetric labels counters for /api/pet-data and MQTT ingestion.
const compositeMetric = "pet_data"

// Handler exposes the telemetry HTTP endpoints.
type Handler struct {
	store    *Store
	counters *Counters
	now      func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the wall clock used for the default day and the
// current ISO week.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithCounters sets the Prometheus counters.  Without it the handler
// registers its own on a private registry.
func WithCounters(c *Counters) Option {
	return func(h *Handler) { h.counters = c }
}

// NewHandler creates a Handler backed by the given Store.
func NewHandler(store *Store, opts ...Option) *Handler {
	h := &Handler{store: store, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	if h.counters == nil {
		h.counters = NewCounters(prometheus.NewRegistry())
	}
	return h
}

// ---------------------------------------------------------------------------
// Response types
// ---------------------------------------------------------------------------

// StoredResponse is returned by single-metric writes.
type StoredResponse[T any] struct {
	Message string `json:"message" example:"Data stored"`
	Data    T      `json:"data"`
}

// DayResponse is returned by GET .../day/{date}.
type DayResponse[T any] struct {
	Date  string `json:"date" example:"2024-06-12"`
	Count int    `json:"count"`
	Data  []T    `json:"data"`
}

// WeekResponse is returned by GET .../week.
type WeekResponse[T any] struct {
	WeekStart string `json:"week_start" example:"2024-06-10T00:00:00Z"`
	WeekEnd   string `json:"week_end" example:"2024-06-16T23:59:59Z"`
	Count     int    `json:"count"`
	Data      []T    `json:"data"`
}

// MessageResponse acknowledges a composite ingestion.
type MessageResponse struct {
	Message string `json:"message" example:"Data stored"`
}

type errorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}

// ---------------------------------------------------------------------------
// Routing
// ---------------------------------------------------------------------------

// Routes returns a router with every metric table and the composite
// ingestion endpoint.  Mount it under /api.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	mountMetric(r, h, WaterLevel)
	mountMetric(r, h, HeartRate)
	mountMetric(r, h, RoamingPath)
	mountMetric(r, h, FoodWeight)
	mountMetric(r, h, BloodOxygen)
	r.Post("/pet-data", h.IngestSnapshot)
	return r
}

// mountMetric registers the write, day and week endpoints for m.
//
//	POST {path}            record a reading
//	GET  {path}/day        readings for today (UTC)
//	GET  {path}/day/{date} readings for date (YYYY-MM-DD)
//	GET  {path}/week       readings for the current ISO week
func mountMetric[T any](r chi.Router, h *Handler, m *Metric[T]) {
	r.Route(m.Path, func(r chi.Router) {
		r.Post("/", recordReading(h, m))
		r.Get("/day", readDay(h, m))
		r.Get("/day/{date}", readDay(h, m))
		r.Get("/week", readWeek(h, m))
	})
}

// ---------------------------------------------------------------------------
// Single-metric handlers
// ---------------------------------------------------------------------------

func recordReading[T any](h *Handler, m *Metric[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := m.newRequest()
		if err := decodeBody(r, req); err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}

		args, err := req.insertArgs()
		if err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}

		rec, err := Insert(r.Context(), h.store, m, args)
		if err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}
		h.counters.recordStored(m.Name, 1)

		writeJSON(w, http.StatusCreated, StoredResponse[T]{Message: "Data stored", Data: rec})
	}
}

func readDay[T any](h *Handler, m *Metric[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		if date == "" {
			date = Today(h.now())
		}

		win, err := DayWindow(date)
		if err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}

		rows, err := Between(r.Context(), h.store, m, win)
		if err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, DayResponse[T]{Date: date, Count: len(rows), Data: rows})
	}
}

func readWeek[T any](h *Handler, m *Metric[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win := WeekWindow(h.now())

		rows, err := Between(r.Context(), h.store, m, win)
		if err != nil {
			h.fail(w, m.Name, err, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, WeekResponse[T]{
			WeekStart: win.Start.Format(WindowLayout),
			WeekEnd:   win.End.Format(WindowLayout),
			Count:     len(rows),
			Data:      rows,
		})
	}
}

// ---------------------------------------------------------------------------
// POST /api/pet-data
// ---------------------------------------------------------------------------

// IngestSnapshot handles POST /api/pet-data.  Food weight and water level
// are always stored; location, heart rate and blood oxygen only when gps,
// bpm and spo2 are all present.
func (h *Handler) IngestSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap Snapshot
	if err := decodeBody(r, &snap); err != nil {
		h.fail(w, compositeMetric, err, "DB error")
		return
	}

	if err := h.Ingest(r.Context(), snap); err != nil {
		h.fail(w, compositeMetric, err, "DB error")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Data stored"})
}

// Ingest validates and stores a snapshot.  It is shared by the HTTP
// endpoint and the MQTT subscriber.
func (h *Handler) Ingest(ctx context.Context, snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	if err := h.store.Ingest(ctx, snap); err != nil {
		return err
	}

	h.counters.recordStored(FoodWeight.Name, 1)
	h.counters.recordStored(WaterLevel.Name, 1)
	if snap.HasVitals() {
		h.counters.recordStored(RoamingPath.Name, 1)
		h.counters.recordStored(HeartRate.Name, 1)
		h.counters.recordStored(BloodOxygen.Name, 1)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// decodeBody decodes a JSON body into v.  An empty body decodes to the zero
// value so that it is reported as missing fields.  Decoder detail is logged,
// not returned, since it names internal types.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("invalid request body", "path", r.URL.Path, "error", err)
		return errInvalidJSON
	}
	return nil
}

// fail maps err onto a response.  Validation failures echo their message;
// anything else is logged and answered with storageMsg.
func (h *Handler) fail(w http.ResponseWriter, metric string, err error, storageMsg string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		h.counters.recordValidationError(metric)
		writeErr(w, http.StatusBadRequest, verr.Msg)
		return
	}

	h.counters.recordStorageError(metric)
	slog.Error("DB error", "metric", metric, "error", err)
	writeErr(w, http.StatusInternalServerError, storageMsg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
