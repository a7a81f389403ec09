package replay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathsarabandaraj/petcare/internal/config"
	"github.com/sathsarabandaraj/petcare/internal/httpx"
)

const sampleCSV = `mode,pump,water_level,weight,lat,lng,alt,bpm,spo2
auto,true,2500,50,,,,,
manual, false, 1500, 500, 1, 2, 3, 80, 98
`

func TestParseCSV(t *testing.T) {
	rows, err := parseCSV(strings.NewReader(sampleCSV), "sample")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Snapshot{Mode: "auto", Pump: true, WaterLevel: 2500, Weight: 50}, rows[0])

	require.NotNil(t, rows[1].GPS)
	assert.Equal(t, GPS{Lat: 1, Lng: 2, Alt: 3}, *rows[1].GPS)
	require.NotNil(t, rows[1].BPM)
	assert.Equal(t, 80.0, *rows[1].BPM)
	require.NotNil(t, rows[1].SpO2)
	assert.Equal(t, 98.0, *rows[1].SpO2)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"header only", "mode,pump,water_level,weight,lat,lng,alt,bpm,spo2\n"},
		{"short row", "h\nauto,true,1,2\n"},
		{"bad pump", "h\nauto,maybe,1,2,,,,,\n"},
		{"bad weight", "h\nauto,true,1,heavy,,,,,\n"},
		{"partial gps", "h\nauto,true,1,2,1,,3,,\n"},
		{"bad bpm", "h\nauto,true,1,2,,,,fast,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(tt.csv), tt.name)
			assert.Error(t, err)
		})
	}
}

func TestSnapshotJSON_OmitsMissingVitals(t *testing.T) {
	b, err := json.Marshal(Snapshot{Mode: "auto", Pump: true, WaterLevel: 2500, Weight: 50})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"auto","pump":true,"waterLevel":2500,"weight":50}`, string(b))
}

func TestRun_PostsSnapshots(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []map[string]any
		ids    = map[string]bool{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pet-data", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		mu.Lock()
		bodies = append(bodies, body)
		ids[r.Header.Get("X-Request-Id")] = true
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Data stored"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "snapshots.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cfg := config.Replay{
		CSVPath:       path,
		IntervalMS:    5,
		BaseURL:       srv.URL,
		ChannelBuffer: 1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	Run(ctx, cfg, httpx.NewClient(time.Second, 0))

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(bodies), 2)
	assert.Equal(t, "auto", bodies[0]["mode"])
	assert.NotContains(t, bodies[0], "gps")
	assert.Contains(t, bodies[1], "gps")
	assert.Len(t, ids, len(bodies), "each post carries its own request id")
}

func TestPost_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields"}`))
	}))
	defer srv.Close()

	err := post(context.Background(), httpx.NewClient(time.Second, 0), srv.URL+"/api/pet-data", Snapshot{Mode: "auto"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
