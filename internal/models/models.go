// Package models contains the metric entities and shared response structs.
package models

import "time"

// HealthResponse is returned by /healthz and /readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// WaterLevelReading is a row of pet_water_level. ADCValue is NULL for rows
// written by composite ingestion, which only reports a level.
type WaterLevelReading struct {
	ID        int64     `json:"id"`
	ADCValue  *int64    `json:"adc_value"`
	Percent   float64   `json:"percent"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HeartRateReading is a row of pet_heart_rate.
type HeartRateReading struct {
	ID        int64     `json:"id"`
	BPM       float64   `json:"bpm"`
	Timestamp time.Time `json:"timestamp"`
}

// RoamingPathPoint is a row of pet_roaming_path.
type RoamingPathPoint struct {
	ID        int64     `json:"id"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Altitude  *float64  `json:"altitude"`
	Timestamp time.Time `json:"timestamp"`
}

// FoodWeightReading is a row of pet_food_cup.
type FoodWeightReading struct {
	ID          int64     `json:"id"`
	WeightGrams float64   `json:"weight_grams"`
	Status      *string   `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// BloodOxygenReading is a row of pet_blood_oxygen.
type BloodOxygenReading struct {
	ID        int64     `json:"id"`
	SpO2      float64   `json:"spo2"`
	Timestamp time.Time `json:"timestamp"`
}
