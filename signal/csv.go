package signal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads the given 0-based column of r as a sequence.
// A first row whose field does not parse as a number is treated as a header
// and skipped; any later non-numeric, NaN or ±Inf field is an error.
//
// Errors:
//   - ErrBadSample for malformed or non-finite fields, or a missing column.
//   - ErrEmptyCSV if no sample was read.
func ReadCSV(r io.Reader, column int) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("%w: negative column %d", ErrBadSample, column)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []float64
	for rec := 1; ; rec++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("signal: read csv: %w", err)
		}
		if column >= len(fields) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want column %d", ErrBadSample, rec, len(fields), column)
		}
		field := strings.TrimSpace(fields[column])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if rec == 1 {
				continue // header
			}
			return nil, fmt.Errorf("%w: record %d: %q", ErrBadSample, rec, field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: record %d: %q is not finite", ErrBadSample, rec, field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCSV
	}

	return out, nil
}

// ReadCSVFile opens path and reads one column with ReadCSV.
func ReadCSVFile(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("signal: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadCSV(f, column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
