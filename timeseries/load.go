package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData indicates a file or reader contained no parseable samples.
var ErrNoData = errors.New("timeseries: no valid data found")

// LoadText loads a series from a whitespace-delimited text file.
// The first column is the amplitude; an optional second column is the
// time axis. Files without a time column get a unit-spaced axis.
func LoadText(filename string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := ReadText(file)
	if err != nil {
		return nil, err
	}
	s.Name = filename
	return s, nil
}

// ReadText loads a series from whitespace-delimited text data.
func ReadText(r io.Reader) (*Series, error) {
	var values, times []float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue // non-numeric line (e.g. a header)
		}
		values = append(values, v)

		if len(fields) > 1 {
			t, err := strconv.ParseFloat(fields[1], 64)
			if err == nil {
				times = append(times, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	if len(times) == len(values) {
		return NewWithTimes(times, values)
	}
	return New(values), nil
}

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for amplitudes (default: "y")
	TimeColumn  string // Column name for the time axis (optional)
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := ReadCSV(file, opts)
	if err != nil {
		return nil, err
	}
	s.Name = filename
	return s, nil
}

// ReadCSV loads a series from an io.Reader of CSV data.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Series, error) {
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

	valueIdx, timeIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.TimeColumn != "" && h == opts.TimeColumn:
				timeIdx = i
			case h == "t" || h == "time" || h == "Time":
				if timeIdx == -1 {
					timeIdx = i
				}
			}
		}

		// Default to last column if the value column was not found.
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		// No header: first column time, second column value.
		timeIdx = 0
		valueIdx = 1
	}

	var values, times []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // skip invalid values
		}
		values = append(values, val)

		if timeIdx >= 0 && timeIdx < len(record) {
			tStr := strings.TrimSpace(strings.Trim(record[timeIdx], "\""))
			t, err := strconv.ParseFloat(tStr, 64)
			if err == nil {
				times = append(times, t)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	if len(times) == len(values) {
		return NewWithTimes(times, values)
	}
	return New(values), nil
}

// SaveCSV saves a series to a CSV file with a "t,y" header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("t,y\n")
	for i, v := range series.Values {
		writer.WriteString(strconv.FormatFloat(series.Times[i], 'f', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
