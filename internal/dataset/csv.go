package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineError reports a malformed record in a pattern file.
type LineError struct {
	Line     int    // 1-based line number
	Fields   int    // fields found
	Expected int    // fields expected
	Details  string // parse failure, if any
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("at line %d: %s", e.Line, e.Details)
	}
	return fmt.Sprintf("at line %d, expected %d values, got %d", e.Line, e.Expected, e.Fields)
}

// Load reads comma-separated patterns from r.
//
// Each record holds inputs values followed by the targets; the target count
// is taken from the first record. Blank lines and lines starting with '#' are
// skipped.
func Load(r io.Reader, inputs int) (Set, error) {
	if inputs < 1 {
		return nil, fmt.Errorf("dataset: invalid input count %d", inputs)
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var set Set
	width := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading patterns: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if width == 0 {
			if len(record) <= inputs {
				return nil, &LineError{Line: line, Fields: len(record), Expected: inputs + 1}
			}
			width = len(record)
		}
		if len(record) != width {
			return nil, &LineError{Line: line, Fields: len(record), Expected: width}
		}

		values := make([]float64, width)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &LineError{Line: line, Fields: len(record), Expected: width,
					Details: fmt.Sprintf("field %d: %v", i+1, err)}
			}
			values[i] = v
		}

		set = append(set, Pattern{
			Inputs:  values[:inputs:inputs],
			Targets: values[inputs:],
		})
	}

	if len(set) == 0 {
		return nil, ErrEmptySet
	}
	return set, nil
}
