// Package replay reads recorded device snapshots from CSV and posts them to
// the composite ingestion endpoint.
package replay

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Snapshot is one recorded device report.  It marshals to the body accepted
// by POST /api/pet-data; vitals are omitted when the recording lacks them.
type Snapshot struct {
	Mode       string   `json:"mode"`
	Pump       bool     `json:"pump"`
	WaterLevel float64  `json:"waterLevel"`
	Weight     float64  `json:"weight"`
	GPS        *GPS     `json:"gps,omitempty"`
	BPM        *float64 `json:"bpm,omitempty"`
	SpO2       *float64 `json:"spo2,omitempty"`
}

// GPS is the location block of a Snapshot.
type GPS struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	Alt float64 `json:"alt"`
}

// csvFields is the expected column count:
//
//	mode, pump, water_level, weight, lat, lng, alt, bpm, spo2
const csvFields = 9

// ReadCSV loads and parses a snapshot CSV file.  The first row is a header
// and is skipped.  The location columns must be all set or all empty; bpm and
// spo2 may be empty.
func ReadCSV(path string) ([]Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %q: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f, path)
}

func parseCSV(in io.Reader, name string) ([]Snapshot, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []Snapshot
	lineNum := 1
	for {
		lineNum++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", lineNum, err)
		}
		if len(record) < csvFields {
			return nil, fmt.Errorf("csv line %d: expected %d fields, got %d", lineNum, csvFields, len(record))
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		snap, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", lineNum, err)
		}
		rows = append(rows, snap)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv %q contains no data rows", name)
	}
	return rows, nil
}

func parseRecord(record []string) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	snap.Mode = record[0]
	if snap.Pump, err = strconv.ParseBool(record[1]); err != nil {
		return Snapshot{}, fmt.Errorf("pump: %w", err)
	}
	if snap.WaterLevel, err = strconv.ParseFloat(record[2], 64); err != nil {
		return Snapshot{}, fmt.Errorf("water_level: %w", err)
	}
	if snap.Weight, err = strconv.ParseFloat(record[3], 64); err != nil {
		return Snapshot{}, fmt.Errorf("weight: %w", err)
	}

	lat, lng, alt := record[4], record[5], record[6]
	switch {
	case lat == "" && lng == "" && alt == "":
	case lat == "" || lng == "" || alt == "":
		return Snapshot{}, fmt.Errorf("gps: lat, lng and alt must be set together")
	default:
		var g GPS
		if g.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
			return Snapshot{}, fmt.Errorf("lat: %w", err)
		}
		if g.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
			return Snapshot{}, fmt.Errorf("lng: %w", err)
		}
		if g.Alt, err = strconv.ParseFloat(alt, 64); err != nil {
			return Snapshot{}, fmt.Errorf("alt: %w", err)
		}
		snap.GPS = &g
	}

	if snap.BPM, err = optionalFloat(record[7]); err != nil {
		return Snapshot{}, fmt.Errorf("bpm: %w", err)
	}
	if snap.SpO2, err = optionalFloat(record[8]); err != nil {
		return Snapshot{}, fmt.Errorf("spo2: %w", err)
	}
	return snap, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
