package telemetry

import (
	"github.com/sathsarabandaraj/petcare/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// writeRequest is the decoded body of a single-metric write.  insertArgs
// returns a *ValidationError when a required field is absent or null.
type writeRequest interface {
	insertArgs() ([]any, error)
}

// Metric describes one append-only metric table: where it is routed, how a
// write body becomes insert arguments, and how a row is scanned back.
type Metric[T any] struct {
	Name  string
	Path  string
	Table string

	insertQuery string
	rangeQuery  string
	newRequest  func() writeRequest
	scan        func(rowScanner) (T, error)
}

// ---------------------------------------------------------------------------
// Water level
// ---------------------------------------------------------------------------

type waterLevelRequest struct {
	ADCValue *int64   `json:"adcValue"`
	Percent  *float64 `json:"percent"`
	Status   *string  `json:"status"`
}

func (r *waterLevelRequest) insertArgs() ([]any, error) {
	if r.ADCValue == nil || r.Percent == nil || r.Status == nil {
		return nil, errMissingFields
	}
	return []any{*r.ADCValue, *r.Percent, *r.Status}, nil
}

// WaterLevel is the pet_water_level table.
var WaterLevel = &Metric[models.WaterLevelReading]{
	Name:        "water_level",
	Path:        "/water-level",
	Table:       "pet_water_level",
	insertQuery: queryInsertWaterLevel,
	rangeQuery:  queryRangeWaterLevel,
	newRequest:  func() writeRequest { return &waterLevelRequest{} },
	scan: func(s rowScanner) (models.WaterLevelReading, error) {
		var r models.WaterLevelReading
		err := s.Scan(&r.ID, &r.ADCValue, &r.Percent, &r.Status, &r.Timestamp)
		return r, err
	},
}

// ---------------------------------------------------------------------------
// Heart rate
// ---------------------------------------------------------------------------

type heartRateRequest struct {
	BPM *float64 `json:"bpm"`
}

func (r *heartRateRequest) insertArgs() ([]any, error) {
	if r.BPM == nil {
		return nil, &ValidationError{Msg: "Missing bpm value"}
	}
	return []any{*r.BPM}, nil
}

// HeartRate is the pet_heart_rate table.
var HeartRate = &Metric[models.HeartRateReading]{
	Name:        "heart_rate",
	Path:        "/pet-bpm",
	Table:       "pet_heart_rate",
	insertQuery: queryInsertHeartRate,
	rangeQuery:  queryRangeHeartRate,
	newRequest:  func() writeRequest { return &heartRateRequest{} },
	scan: func(s rowScanner) (models.HeartRateReading, error) {
		var r models.HeartRateReading
		err := s.Scan(&r.ID, &r.BPM, &r.Timestamp)
		return r, err
	},
}

// ---------------------------------------------------------------------------
// Roaming path
// ---------------------------------------------------------------------------

type roamingPathRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  *float64 `json:"altitude"`
}

func (r *roamingPathRequest) insertArgs() ([]any, error) {
	if r.Latitude == nil || r.Longitude == nil || r.Altitude == nil {
		return nil, errMissingFields
	}
	return []any{*r.Latitude, *r.Longitude, *r.Altitude}, nil
}

// RoamingPath is the pet_roaming_path table.
var RoamingPath = &Metric[models.RoamingPathPoint]{
	Name:        "roaming_path",
	Path:        "/pet-location",
	Table:       "pet_roaming_path",
	insertQuery: queryInsertRoamingPath,
	rangeQuery:  queryRangeRoamingPath,
	newRequest:  func() writeRequest { return &roamingPathRequest{} },
	scan: func(s rowScanner) (models.RoamingPathPoint, error) {
		var r models.RoamingPathPoint
		err := s.Scan(&r.ID, &r.Latitude, &r.Longitude, &r.Altitude, &r.Timestamp)
		return r, err
	},
}

// ---------------------------------------------------------------------------
// Food weight
// ---------------------------------------------------------------------------

type foodWeightRequest struct {
	FoodWeight *float64 `json:"food_weight"`
	Status     *string  `json:"status"`
}

func (r *foodWeightRequest) insertArgs() ([]any, error) {
	if r.FoodWeight == nil {
		return nil, &ValidationError{Msg: "Missing food_weight value"}
	}
	return []any{*r.FoodWeight, r.Status}, nil
}

// FoodWeight is the pet_food_cup table.  The status label is optional on
// direct writes.
var FoodWeight = &Metric[models.FoodWeightReading]{
	Name:        "food_weight",
	Path:        "/pet-food-weight",
	Table:       "pet_food_cup",
	insertQuery: queryInsertFoodWeight,
	rangeQuery:  queryRangeFoodWeight,
	newRequest:  func() writeRequest { return &foodWeightRequest{} },
	scan: func(s rowScanner) (models.FoodWeightReading, error) {
		var r models.FoodWeightReading
		err := s.Scan(&r.ID, &r.WeightGrams, &r.Status, &r.Timestamp)
		return r, err
	},
}

// ---------------------------------------------------------------------------
// Blood oxygen
// ---------------------------------------------------------------------------

type bloodOxygenRequest struct {
	SpO2 *float64 `json:"spo2"`
}

func (r *bloodOxygenRequest) insertArgs() ([]any, error) {
	if r.SpO2 == nil {
		return nil, &ValidationError{Msg: "Missing spo2 value"}
	}
	return []any{*r.SpO2}, nil
}

// BloodOxygen is the pet_blood_oxygen table.
var BloodOxygen = &Metric[models.BloodOxygenReading]{
	Name:        "blood_oxygen",
	Path:        "/pet-spo2",
	Table:       "pet_blood_oxygen",
	insertQuery: queryInsertBloodOxygen,
	rangeQuery:  queryRangeBloodOxygen,
	newRequest:  func() writeRequest { return &bloodOxygenRequest{} },
	scan: func(s rowScanner) (models.BloodOxygenReading, error) {
		var r models.BloodOxygenReading
		err := s.Scan(&r.ID, &r.SpO2, &r.Timestamp)
		return r, err
	},
}
