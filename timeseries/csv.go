package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for timestamps (optional)
	ValueColumn string // Column name for observations (default: "TEC")
	IDColumn    string // Column name for series ID, e.g. a receiver (optional)
	IDFilter    string // Value to filter by ID column
	DateFormat  string // Preferred timestamp layout (default: "2006-01-02 15:04:05")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "TEC",
		DateFormat:  "2006-01-02 15:04:05",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// timestampLayouts are tried in order after CSVOptions.DateFormat.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Rows with blank, NA, NaN or null observations are skipped. When a date
// column is present every kept row must carry a parseable timestamp;
// otherwise an error naming the line is returned. Files without a date column
// get hourly spacing.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx, idIdx := 1, 0, -1
	name := opts.ValueColumn
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, dateIdx, idIdx = locateColumns(header, opts)
		name = clean(header[valueIdx])
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if clean(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		if valueIdx >= len(record) {
			continue
		}
		valStr := clean(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		if dateIdx >= 0 {
			line, _ := reader.FieldPos(valueIdx)
			if dateIdx >= len(record) {
				return nil, fmt.Errorf("line %d: missing timestamp", line)
			}
			dateStr := clean(record[dateIdx])
			ts, ok := parseTimestamp(dateStr, opts.DateFormat)
			if !ok {
				return nil, fmt.Errorf("line %d: unparseable timestamp %q", line, dateStr)
			}
			timestamps = append(timestamps, ts)
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if dateIdx < 0 {
		series := New(values)
		series.Name = name
		return series, nil
	}
	return &Series{Timestamps: timestamps, Values: values, Name: name}, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

func locateColumns(header []string, opts *CSVOptions) (valueIdx, dateIdx, idIdx int) {
	valueIdx, dateIdx, idIdx = -1, -1, -1
	for i, h := range header {
		h = clean(h)
		switch {
		case h == opts.ValueColumn:
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case h == "ds" || h == "time" || h == "timestamp" || h == "date" || h == "Date":
			if opts.DateColumn == "" && dateIdx == -1 {
				dateIdx = i
			}
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		}
	}

	// Default to last column if not specified
	if valueIdx == -1 {
		valueIdx = len(header) - 1
	}
	return valueIdx, dateIdx, idIdx
}

func parseTimestamp(s, preferred string) (time.Time, bool) {
	if preferred != "" {
		if ts, err := time.Parse(preferred, s); err == nil {
			return ts, true
		}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// WriteTable writes base and the given columns as CSV. The first column is
// the timestamp (or a 1-based index when base has none), followed by base's
// values and then each column's values, all headed by their series names.
// Every column must have base's length.
func WriteTable(w io.Writer, base *Series, columns ...*Series) error {
	n := base.Len()
	for _, c := range columns {
		if c.Len() != n {
			return fmt.Errorf("column %q has %d values, want %d", c.Name, c.Len(), n)
		}
	}
	indexed := len(base.Timestamps) == n

	writer := csv.NewWriter(w)

	header := []string{"index", columnName(base, "y")}
	if indexed {
		header[0] = "ds"
	}
	for i, c := range columns {
		header = append(header, columnName(c, "col"+strconv.Itoa(i+1)))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := 0; i < n; i++ {
		if indexed {
			row[0] = base.Timestamps[i].Format("2006-01-02 15:04:05")
		} else {
			row[0] = strconv.Itoa(i + 1)
		}
		row[1] = strconv.FormatFloat(base.Values[i], 'f', -1, 64)
		for j, c := range columns {
			row[j+2] = strconv.FormatFloat(c.Values[i], 'f', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveTable writes the table produced by WriteTable to filename.
func SaveTable(filename string, base *Series, columns ...*Series) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteTable(file, base, columns...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func columnName(s *Series, fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	return fallback
}
