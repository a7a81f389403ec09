package telemetry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodStatus(t *testing.T) {
	tests := []struct {
		weight float64
		want   string
	}{
		{1200, "full"},
		{700, "full"},
		{699.9, "half"},
		{400, "half"},
		{399, "low"},
		{100, "low"},
		{99.5, "empty"},
		{0, "empty"},
		{-5, "empty"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FoodStatus(tt.weight), "weight %v", tt.weight)
	}
}

func TestWaterStatus(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{2500, "high"},
		{2000.1, "high"},
		{2000, "medium"},
		{1500, "medium"},
		{1000, "medium"},
		{999, "low"},
		{0, "low"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaterStatus(tt.level), "level %v", tt.level)
	}
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"all required", `{"mode":"auto","pump":true,"waterLevel":1500,"weight":500}`, false},
		{"zero and false are values", `{"mode":0,"pump":false,"waterLevel":0,"weight":0}`, false},
		{"missing mode", `{"pump":true,"waterLevel":1500,"weight":500}`, true},
		{"null pump", `{"mode":"auto","pump":null,"waterLevel":1500,"weight":500}`, true},
		{"missing waterLevel", `{"mode":"auto","pump":true,"weight":500}`, true},
		{"null weight", `{"mode":"auto","pump":true,"waterLevel":1500,"weight":null}`, true},
		{"empty object", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var snap Snapshot
			require.NoError(t, json.Unmarshal([]byte(tt.body), &snap))

			err := snap.Validate()
			if tt.wantErr {
				assert.Equal(t, errMissingFields, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshotHasVitals(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"all vitals", `{"gps":{"lat":1,"lng":2,"alt":3},"bpm":80,"spo2":98}`, true},
		{"empty gps object still counts", `{"gps":{},"bpm":80,"spo2":98}`, true},
		{"zero vitals count", `{"gps":{"lat":0,"lng":0,"alt":0},"bpm":0,"spo2":0}`, true},
		{"no gps", `{"bpm":80,"spo2":98}`, false},
		{"null gps", `{"gps":null,"bpm":80,"spo2":98}`, false},
		{"no bpm", `{"gps":{"lat":1,"lng":2,"alt":3},"spo2":98}`, false},
		{"no spo2", `{"gps":{"lat":1,"lng":2,"alt":3},"bpm":80}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var snap Snapshot
			require.NoError(t, json.Unmarshal([]byte(tt.body), &snap))
			assert.Equal(t, tt.want, snap.HasVitals())
		})
	}
}
