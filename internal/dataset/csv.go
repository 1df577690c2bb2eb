package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Veraticus/parlatoga/internal/common"
)

const utf8BOM = "\ufeff"

// csvTable reads a delimited file with a header row.
type csvTable struct {
	columns map[string]int
	name    string
}

// csvRow is one data row together with its position for error messages.
type csvRow struct {
	table  *csvTable
	fields []string
	line   int
}

// readCSV opens path, checks that every required column is present, and calls
// fn for each data row in file order. The first error stops the read.
func readCSV(path string, required []string, fn func(csvRow) error) error {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return parseCSV(f, filepath.Base(path), required, fn)
}

func parseCSV(r io.Reader, name string, required []string, fn func(csvRow) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s is empty", common.ErrMalformedRecord, name)
	}
	if err != nil {
		return fmt.Errorf("%w: %s header: %v", common.ErrMalformedRecord, name, err)
	}

	table := &csvTable{name: name, columns: make(map[string]int, len(header))}
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		col = strings.TrimSpace(col)
		if _, dup := table.columns[col]; !dup {
			table.columns[col] = i
		}
	}
	for _, col := range required {
		if _, ok := table.columns[col]; !ok {
			return fmt.Errorf("%w: %s has no %q column", common.ErrMissingColumn, name, col)
		}
	}

	for {
		fields, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("%w: %s: %v", common.ErrMalformedRecord, name, readErr)
		}
		line, _ := reader.FieldPos(0)
		if blankRecord(fields) {
			continue
		}
		if err := fn(csvRow{table: table, fields: fields, line: line}); err != nil {
			return err
		}
	}
}

func blankRecord(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// errorf builds a malformed-record error pointing at a cell.
func (r csvRow) errorf(column, format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d column %q: %s",
		common.ErrMalformedRecord, r.table.name, r.line, column, fmt.Sprintf(format, args...))
}

// text returns the trimmed value of a required, non-empty cell.
func (r csvRow) text(column string) (string, error) {
	idx := r.table.columns[column]
	if idx >= len(r.fields) {
		return "", r.errorf(column, "missing value")
	}
	v := strings.TrimSpace(r.fields[idx])
	if v == "" {
		return "", r.errorf(column, "missing value")
	}
	return v, nil
}

// integer reads a whole number; integral floats such as "12.0" are accepted.
func (r csvRow) integer(column string) (int, error) {
	v, err := r.text(column)
	if err != nil {
		return 0, err
	}
	if n, convErr := strconv.Atoi(v); convErr == nil {
		return n, nil
	}
	f, convErr := strconv.ParseFloat(v, 64)
	if convErr != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, r.errorf(column, "%q is not a whole number", v)
	}
	return int(f), nil
}

func (r csvRow) number(column string) (float64, error) {
	v, err := r.text(column)
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(v, 64)
	if convErr != nil {
		return 0, r.errorf(column, "%q is not a number", v)
	}
	return f, nil
}
