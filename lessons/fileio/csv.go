package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robbyt/go-pyprimer/lessons/containers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// FormatRow renders mixed values as CSV fields.
func FormatRow(vals ...any) []string {
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = fmt.Sprint(v)
	}
	return row
}

// WriteCSV writes rows to path. A header, if any, is simply the first row.
func WriteCSV(path string, rows [][]string) error {
	return WithFile(path, modeWrite, defaultPerm, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
}

// ReadCSV returns every row of path as a slice of fields. Rows may differ in length.
func ReadCSV(path string) ([][]string, error) {
	var rows [][]string
	err := WithFile(path, modeRead, 0, func(f *os.File) error {
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		for {
			row, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return csvError(path, err)
			}
			rows = append(rows, row)
		}
	})
	return rows, err
}

// ReadCSVRecords treats the first row of path as a header and returns the remaining
// rows keyed by it, in header order. A short row has no entry for its missing
// columns. Fields past the end of the header are dropped.
func ReadCSVRecords(path string) ([]string, []*containers.Mapping[string, string], error) {
	rows, err := ReadCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	records := make([]*containers.Mapping[string, string], 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := containers.NewMapping[string, string]()
		for i, name := range header[:min(len(header), len(row))] {
			rec.Set(name, row[i])
		}
		records = append(records, rec)
	}
	return header, records, nil
}

func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %s: %w", errkind.ErrValue, path, err)
	}
	return err
}
