package timeseries

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `timestamp,TEC
2024-01-01 00:00:00,50.5
2024-01-01 01:00:00,49.8
2024-01-01 02:00:00,48.1
2024-01-01 03:00:00,47.9`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, "TEC", series.Name)
	assert.Equal(t, []float64{50.5, 49.8, 48.1, 47.9}, series.Values)
	require.Len(t, series.Timestamps, 4)
	assert.Equal(t, time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), series.Timestamps[2])

	hours, err := series.ElapsedHours()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3}, hours, 1e-12)
}

func TestLoadCSVWithFilter(t *testing.T) {
	csvData := `station,ds,TEC
A,2024-01-01T00:00:00Z,10
B,2024-01-01T00:00:00Z,20
A,2024-01-01T00:30:00Z,11
B,2024-01-01T00:30:00Z,21
A,2024-01-01T01:00:00Z,12`

	opts := DefaultCSVOptions()
	opts.IDColumn = "station"
	opts.IDFilter = "A"

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 12}, series.Values)

	hours, err := series.ElapsedHours()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, hours, 1e-12)
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `date,TEC
2024-01-01,100
2024-01-02,NA
2024-01-03,102
2024-01-04,NaN
2024-01-05,
2024-01-06,105`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 102, 105}, series.Values)
	assert.Len(t, series.Timestamps, 3)
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	csvData := "2024-01-01 00:00:00;1.5\n2024-01-01 00:10:00;2.5\n"

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.Delimiter = ';'

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, series.Values)
	assert.Equal(t, 10*time.Minute, series.Timestamps[1].Sub(series.Timestamps[0]))
}

func TestLoadCSVMalformedTimestamp(t *testing.T) {
	csvData := `timestamp,TEC
2024-01-01 00:00:00,1
2024-01-01 00:00:30,2
2024-01-01 00:01:00x,3
2024-01-01 00:01:30,4`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.Error(t, err)
	assert.Nil(t, series)
	assert.ErrorContains(t, err, "line 4")
	assert.ErrorContains(t, err, "00:01:00x")
}

func TestLoadCSVCustomDateColumnUnparseable(t *testing.T) {
	csvData := "ds,TEC,extra\n2024-01-01,1,a\n"

	opts := DefaultCSVOptions()
	opts.DateColumn = "extra"
	_, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadCSVSubMinuteSpacing(t *testing.T) {
	csvData := `timestamp,TEC
2024-01-01 00:00:00,1
2024-01-01 00:00:30,2
2024-01-01 00:01:30,3`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)

	hours, err := series.ElapsedHours()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 30.0 / 3600, 90.0 / 3600}, hours, 1e-12)
}

func TestLoadCSVWithoutDateColumnIsHourly(t *testing.T) {
	csvData := `station,TEC
A,1
A,2`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)
	require.Len(t, series.Timestamps, 2)
	assert.Equal(t, time.Hour, series.Timestamps[1].Sub(series.Timestamps[0]))
}

func TestLoadCSVNoData(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("ds,TEC\n2024-01-01,NA\n"), nil)
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewRegular([]float64{10, 12.5}, start, time.Hour)
	base.Name = "TEC"
	trend := base.WithValues([]float64{10, 12}, "trend")
	detrended := base.WithValues([]float64{0, 0.5}, "detrended")

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, base, trend, detrended))

	expected := "ds,TEC,trend,detrended\n" +
		"2024-01-01 00:00:00,10,10,0\n" +
		"2024-01-01 01:00:00,12.5,12,0.5\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTableLengthMismatch(t *testing.T) {
	base := &Series{Values: []float64{1, 2}}
	short := &Series{Values: []float64{1}, Name: "short"}

	var buf bytes.Buffer
	assert.Error(t, WriteTable(&buf, base, short))
}

func TestSaveTableRoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewRegular([]float64{3, 4, 5}, start, 30*time.Minute)
	base.Name = "TEC"

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveTable(path, base, base.WithValues([]float64{1, 1, 1}, "trend")))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadCSV(path, DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, base.Values, loaded.Values)
	assert.Equal(t, base.Timestamps, loaded.Timestamps)
}
