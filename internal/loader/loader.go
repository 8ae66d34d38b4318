// Package loader reads banking transactions from a delimited source file and
// enforces the structural invariants later pipeline stages rely on: mandatory
// header fields, uniform row width, and no fully empty rows. A structurally
// invalid file fails as a whole; no partial batch is ever returned.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"bankingetl/internal/transaction"
)

// ErrSourceNotFound is wrapped by LoadFile when the source path does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// MissingFieldsError reports mandatory header fields absent from the source.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing mandatory fields: %s", strings.Join(e.Fields, ", "))
}

// ColumnMismatchError reports a data row whose field count differs from the
// header. Row numbers are 1-based file line numbers, so the first data row is 2.
type ColumnMismatchError struct {
	Row  int
	Got  int
	Want int
}

func (e *ColumnMismatchError) Error() string {
	return fmt.Sprintf("row %d has %d columns, expected %d", e.Row, e.Got, e.Want)
}

// EmptyRowError reports a data row in which every field is empty.
type EmptyRowError struct {
	Row int
}

func (e *EmptyRowError) Error() string {
	return fmt.Sprintf("empty row detected at line %d", e.Row)
}

// LoadFile reads the CSV at path and returns one Record per data row, in file
// order. All rows are shape-checked before any record is returned.
func LoadFile(path string) ([]transaction.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads CSV content from r. Split out from LoadFile so tests and other
// callers can feed in-memory sources.
func Load(r io.Reader) ([]transaction.Record, error) {
	cr := csv.NewReader(r)
	// Rows are width-checked against the header ourselves so the error can
	// carry the row number.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MissingFieldsError{Fields: transaction.MandatoryFields()}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if missing := missingMandatory(header); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	var records []transaction.Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		if len(fields) != len(header) {
			return nil, &ColumnMismatchError{Row: row, Got: len(fields), Want: len(header)}
		}
		if allEmpty(fields) {
			return nil, &EmptyRowError{Row: row}
		}

		rec := make(transaction.Record, len(header))
		for i, name := range header {
			rec[name] = fields[i]
		}
		records = append(records, rec)
	}

	return records, nil
}

func missingMandatory(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, name := range transaction.MandatoryFields() {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
