package telemetry

import "encoding/json"

// Snapshot is a full device report as posted to /api/pet-data or published
// over MQTT.  Mode and pump are only checked for presence.
type Snapshot struct {
	Mode       json.RawMessage `json:"mode"`
	Pump       json.RawMessage `json:"pump"`
	WaterLevel *float64        `json:"waterLevel"`
	Weight     *float64        `json:"weight"`
	GPS        *GPS            `json:"gps"`
	BPM        *float64        `json:"bpm"`
	SpO2       *float64        `json:"spo2"`
}

// GPS is the optional location block of a Snapshot.  Missing coordinates are
// stored as NULL.
type GPS struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
	Alt *float64 `json:"alt"`
}

// Validate rejects snapshots missing mode, pump, waterLevel or weight.
// Zero and false are valid values.
func (s Snapshot) Validate() error {
	if !present(s.Mode) || !present(s.Pump) || s.WaterLevel == nil || s.Weight == nil {
		return errMissingFields
	}
	return nil
}

// HasVitals reports whether gps, bpm and spo2 are all present.
func (s Snapshot) HasVitals() bool {
	return s.GPS != nil && s.BPM != nil && s.SpO2 != nil
}

// FoodStatus classifies a bowl weight in grams.
func FoodStatus(weight float64) string {
	switch {
	case weight >= 700:
		return "full"
	case weight >= 400:
		return "half"
	case weight >= 100:
		return "low"
	default:
		return "empty"
	}
}

// WaterStatus classifies a raw reservoir level.
func WaterStatus(level float64) string {
	switch {
	case level > 2000:
		return "high"
	case level < 1000:
		return "low"
	default:
		return "medium"
	}
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
