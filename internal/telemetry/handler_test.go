package telemetry_test

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathsarabandaraj/petcare/internal/models"
	"github.com/sathsarabandaraj/petcare/internal/telemetry"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// fixedNow is a Wednesday; its ISO week runs 2024-06-10 .. 2024-06-16.
var fixedNow = time.Date(2024, 6, 12, 15, 4, 5, 0, time.UTC)

// timeArg matches a time.Time query argument by instant.
type timeArg time.Time

func (a timeArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Equal(time.Time(a))
}

func setupRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := telemetry.NewHandler(telemetry.NewStore(db), telemetry.WithClock(func() time.Time { return fixedNow }))

	r := chi.NewRouter()
	r.Mount("/api", h.Routes())
	return r, mock
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

func TestRecordWaterLevel(t *testing.T) {
	r, mock := setupRouter(t)

	stored := time.Date(2024, 6, 12, 15, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO pet_water_level`).
		WithArgs(int64(512), 42.5, "medium").
		WillReturnRows(sqlmock.NewRows([]string{"id", "adc_value", "percent", "status", "timestamp"}).
			AddRow(int64(7), int64(512), 42.5, "medium", stored))

	w := do(r, http.MethodPost, "/api/water-level",
		`{"adcValue":512,"percent":42.5,"status":"medium","timestamp":"1999-01-01T00:00:00Z"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp telemetry.StoredResponse[models.WaterLevelReading]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Data stored", resp.Message)
	assert.Equal(t, int64(7), resp.Data.ID)
	require.NotNil(t, resp.Data.ADCValue)
	assert.Equal(t, int64(512), *resp.Data.ADCValue)
	assert.True(t, resp.Data.Timestamp.Equal(stored), "timestamp comes from the database, not the body")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_ZeroValuesAreAccepted(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`INSERT INTO pet_heart_rate`).
		WithArgs(0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bpm", "timestamp"}).AddRow(int64(1), 0.0, fixedNow))

	w := do(r, http.MethodPost, "/api/pet-bpm", `{"bpm":0}`)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFoodWeight_OptionalStatus(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`INSERT INTO pet_food_cup`).
		WithArgs(350.0, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "weight_grams", "status", "timestamp"}).
			AddRow(int64(3), 350.0, nil, fixedNow))

	w := do(r, http.MethodPost, "/api/pet-food-weight", `{"food_weight":350}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp telemetry.StoredResponse[models.FoodWeightReading]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.Status)
	assert.Equal(t, 350.0, resp.Data.WeightGrams)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		msg  string
	}{
		{"water level without status", "/api/water-level", `{"adcValue":512,"percent":42.5}`, "Missing required fields"},
		{"water level null adc", "/api/water-level", `{"adcValue":null,"percent":42.5,"status":"low"}`, "Missing required fields"},
		{"bpm empty object", "/api/pet-bpm", `{}`, "Missing bpm value"},
		{"bpm empty body", "/api/pet-bpm", ``, "Missing bpm value"},
		{"location without altitude", "/api/pet-location", `{"latitude":1,"longitude":2}`, "Missing required fields"},
		{"food weight missing", "/api/pet-food-weight", `{"status":"full"}`, "Missing food_weight value"},
		{"spo2 null", "/api/pet-spo2", `{"spo2":null}`, "Missing spo2 value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := setupRouter(t)

			w := do(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, errorBody(t, w))
			assert.NoError(t, mock.ExpectationsWereMet(), "no query may run")
		})
	}
}

func TestRecord_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"truncated", "/api/pet-bpm", `{"bpm":`},
		{"string for number", "/api/pet-bpm", `{"bpm":"80"}`},
		{"float for adc", "/api/water-level", `{"adcValue":1.5,"percent":40,"status":"low"}`},
		{"array body", "/api/pet-data", `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := setupRouter(t)

			w := do(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			msg := errorBody(t, w)
			assert.Equal(t, "Invalid JSON body", msg)
			assert.NotContains(t, msg, "Request")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecord_StorageFailureIsNotEchoed(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`INSERT INTO pet_blood_oxygen`).
		WithArgs(97.0).
		WillReturnError(errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	w := do(r, http.MethodPost, "/api/pet-spo2", `{"spo2":97}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database error", errorBody(t, w))
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Day reads
// ---------------------------------------------------------------------------

func TestReadDay(t *testing.T) {
	r, mock := setupRouter(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`FROM pet_heart_rate\s+WHERE timestamp BETWEEN \$1 AND \$2\s+ORDER BY timestamp ASC`).
		WithArgs(timeArg(start), timeArg(end)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bpm", "timestamp"}).
			AddRow(int64(1), 72.0, start.Add(time.Hour)).
			AddRow(int64(2), 80.0, start.Add(2*time.Hour)))

	w := do(r, http.MethodGet, "/api/pet-bpm/day/2024-03-01", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp telemetry.DayResponse[models.HeartRateReading]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 72.0, resp.Data[0].BPM)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadDay_DefaultsToToday(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`FROM pet_roaming_path`).
		WithArgs(
			timeArg(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)),
			timeArg(time.Date(2024, 6, 12, 23, 59, 59, 0, time.UTC)),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "latitude", "longitude", "altitude", "timestamp"}))

	w := do(r, http.MethodGet, "/api/pet-location/day", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"date":"2024-06-12","count":0,"data":[]}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadDay_InvalidDate(t *testing.T) {
	for _, date := range []string{"2024-02-30", "bad-date", "2024-13-40", "2024-1-5"} {
		t.Run(date, func(t *testing.T) {
			r, mock := setupRouter(t)

			w := do(r, http.MethodGet, "/api/water-level/day/"+date, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errorBody(t, w))
			assert.NoError(t, mock.ExpectationsWereMet(), "no query may run")
		})
	}
}

func TestReadDay_StorageFailure(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`FROM pet_food_cup`).
		WillReturnError(errors.New("relation \"pet_food_cup\" does not exist"))

	w := do(r, http.MethodGet, "/api/pet-food-weight/day/2024-06-12", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database error", errorBody(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Week reads
// ---------------------------------------------------------------------------

func TestReadWeek(t *testing.T) {
	r, mock := setupRouter(t)

	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 16, 23, 59, 59, 0, time.UTC)
	pct := 55.0

	mock.ExpectQuery(`FROM pet_water_level`).
		WithArgs(timeArg(start), timeArg(end)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "adc_value", "percent", "status", "timestamp"}).
			AddRow(int64(1), nil, 1500.0, "medium", start.Add(time.Minute)).
			AddRow(int64(2), int64(300), pct, "low", end))

	w := do(r, http.MethodGet, "/api/water-level/week", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp telemetry.WeekResponse[models.WaterLevelReading]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-10T00:00:00Z", resp.WeekStart)
	assert.Equal(t, "2024-06-16T23:59:59Z", resp.WeekEnd)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)
	assert.Nil(t, resp.Data[0].ADCValue)
	assert.Equal(t, "low", resp.Data[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadWeek_AllMetricsRouted(t *testing.T) {
	tables := map[string]string{
		"/api/water-level/week":     "pet_water_level",
		"/api/pet-bpm/week":         "pet_heart_rate",
		"/api/pet-location/week":    "pet_roaming_path",
		"/api/pet-food-weight/week": "pet_food_cup",
		"/api/pet-spo2/week":        "pet_blood_oxygen",
	}

	for path, table := range tables {
		t.Run(table, func(t *testing.T) {
			r, mock := setupRouter(t)

			mock.ExpectQuery(`FROM ` + table).
				WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}))

			w := do(r, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"count":0`)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ---------------------------------------------------------------------------
// Composite ingestion
// ---------------------------------------------------------------------------

func TestIngestSnapshot_WithoutVitals(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pet_food_cup`).
		WithArgs(50.0, "empty").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_water_level`).
		WithArgs(2500.0, "high").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := do(r, http.MethodPost, "/api/pet-data", `{"mode":"auto","pump":true,"waterLevel":2500,"weight":50}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Data stored"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngestSnapshot_WithVitals(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pet_food_cup`).
		WithArgs(500.0, "half").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_water_level`).
		WithArgs(1500.0, "medium").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_roaming_path`).
		WithArgs(1.0, 2.0, 3.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_heart_rate`).
		WithArgs(80.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_blood_oxygen`).
		WithArgs(98.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := do(r, http.MethodPost, "/api/pet-data",
		`{"mode":"manual","pump":false,"waterLevel":1500,"weight":500,"gps":{"lat":1,"lng":2,"alt":3},"bpm":80,"spo2":98}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngestSnapshot_PartialVitalsSkipped(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pet_food_cup`).
		WithArgs(800.0, "full").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_water_level`).
		WithArgs(900.0, "low").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := do(r, http.MethodPost, "/api/pet-data",
		`{"mode":"auto","pump":true,"waterLevel":900,"weight":800,"gps":{"lat":1,"lng":2,"alt":3},"bpm":80}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngestSnapshot_MissingWaterLevel(t *testing.T) {
	r, mock := setupRouter(t)

	w := do(r, http.MethodPost, "/api/pet-data", `{"mode":"auto","pump":true,"weight":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorBody(t, w))
	assert.NoError(t, mock.ExpectationsWereMet(), "no transaction may start")
}

func TestIngestSnapshot_RollsBackOnFailure(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pet_food_cup`).
		WithArgs(450.0, "half").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pet_water_level`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	w := do(r, http.MethodPost, "/api/pet-data", `{"mode":"auto","pump":true,"waterLevel":1200,"weight":450}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "DB error", errorBody(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}
