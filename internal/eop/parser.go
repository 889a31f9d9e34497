package eop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// columns maps the header names of the IERS finals CSV layout to the record
// fields they fill.
var columns = map[string]func(*Record, float64){
	"MJD":     func(r *Record, v float64) { r.MJD = v },
	"x_pole":  func(r *Record, v float64) { r.XP = v },
	"y_pole":  func(r *Record, v float64) { r.YP = v },
	"UT1-UTC": func(r *Record, v float64) { r.UT1MinusUTC = v },
	"dX":      func(r *Record, v float64) { r.DX = v },
	"dY":      func(r *Record, v float64) { r.DY = v },
}

// Parse reads a semicolon-separated IERS finals file (finals2000A.all.csv
// layout). Rows without polar motion are skipped, as are malformed rows,
// which are logged.
func Parse(r io.Reader, logger *slog.Logger) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("reading EOP header: %w", err)
	}
	header = append([]string(nil), header...)
	index := make(map[int]func(*Record, float64))
	seen := make(map[string]bool)
	for i, name := range header {
		name = strings.TrimSpace(name)
		// Later columns of the same name (the Bulletin B block) are ignored.
		if set, ok := columns[name]; ok && !seen[name] {
			index[i] = set
			seen[name] = true
		}
	}
	for _, required := range []string{"MJD", "x_pole", "y_pole"} {
		if !seen[required] {
			return nil, fmt.Errorf("EOP header lacks column %q", required)
		}
	}

	var (
		records []Record
		line    = 1
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed EOP row", "line", line, "error", err)
			continue
		}
		nan := math.NaN()
		rec := Record{MJD: nan, XP: nan, YP: nan, UT1MinusUTC: nan, DX: nan, DY: nan}
		for i, set := range index {
			if i >= len(row) {
				continue
			}
			field := strings.TrimSpace(row[i])
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				logger.Warn("invalid EOP value", "line", line, "column", header[i], "value", field)
				continue
			}
			set(&rec, v)
		}
		if math.IsNaN(rec.MJD) || math.IsNaN(rec.XP) || math.IsNaN(rec.YP) {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}
