// Package telemetry implements the pet telemetry gateway: per-metric writes,
// day and ISO-week range reads, and composite device ingestion.
package telemetry

// SQL queries for the five metric tables.  Every insert lets the database
// assign the timestamp with NOW(); range reads are closed intervals ordered
// by timestamp ascending.
const (
	queryInsertWaterLevel = `
INSERT INTO pet_water_level (adc_value, percent, status, timestamp)
VALUES ($1, $2, $3, NOW())
RETURNING id, adc_value, percent, status, timestamp`

	queryRangeWaterLevel = `
SELECT id, adc_value, percent, status, timestamp
FROM pet_water_level
WHERE timestamp BETWEEN $1 AND $2
ORDER BY timestamp ASC`

	queryInsertHeartRate = `
INSERT INTO pet_heart_rate (bpm, timestamp)
VALUES ($1, NOW())
RETURNING id, bpm, timestamp`

	queryRangeHeartRate = `
SELECT id, bpm, timestamp
FROM pet_heart_rate
WHERE timestamp BETWEEN $1 AND $2
ORDER BY timestamp ASC`

	queryInsertRoamingPath = `
INSERT INTO pet_roaming_path (latitude, longitude, altitude, timestamp)
VALUES ($1, $2, $3, NOW())
RETURNING id, latitude, longitude, altitude, timestamp`

	queryRangeRoamingPath = `
SELECT id, latitude, longitude, altitude, timestamp
FROM pet_roaming_path
WHERE timestamp BETWEEN $1 AND $2
ORDER BY timestamp ASC`

	queryInsertFoodWeight = `
INSERT INTO pet_food_cup (weight_grams, status, timestamp)
VALUES ($1, $2, NOW())
RETURNING id, weight_grams, status, timestamp`

	queryRangeFoodWeight = `
SELECT id, weight_grams, status, timestamp
FROM pet_food_cup
WHERE timestamp BETWEEN $1 AND $2
ORDER BY timestamp ASC`

	queryInsertBloodOxygen = `
INSERT INTO pet_blood_oxygen (spo2, timestamp)
VALUES ($1, NOW())
RETURNING id, spo2, timestamp`

	queryRangeBloodOxygen = `
SELECT id, spo2, timestamp
FROM pet_blood_oxygen
WHERE timestamp BETWEEN $1 AND $2
ORDER BY timestamp ASC`

	// Composite ingestion writes.  The water row carries the device level in
	// percent and leaves adc_value NULL.
	queryIngestFoodWeight = `
INSERT INTO pet_food_cup (weight_grams, status, timestamp)
VALUES ($1, $2, NOW())`

	queryIngestWaterLevel = `
INSERT INTO pet_water_level (percent, status, timestamp)
VALUES ($1, $2, NOW())`

	queryIngestRoamingPath = `
INSERT INTO pet_roaming_path (latitude, longitude, altitude, timestamp)
VALUES ($1, $2, $3, NOW())`

	queryIngestHeartRate = `
INSERT INTO pet_heart_rate (bpm, timestamp)
VALUES ($1, NOW())`

	queryIngestBloodOxygen = `
INSERT INTO pet_blood_oxygen (spo2, timestamp)
VALUES ($1, NOW())`
)
