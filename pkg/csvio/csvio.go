package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is the raw content of one CSV source: the header row split off and
// every data row with fields still as strings. Fully blank lines never
// produce a row.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile reads and parses an entire CSV file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// Read parses CSV from r. Rows may carry varying field counts; the targets
// table has an optional trailing column while the other sources are fixed
// width, so width checks belong to the per-table parsers.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var table Table
	for n := 0; ; n++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n+1, err)
		}
		if n == 0 {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	if table.Header == nil {
		return nil, fmt.Errorf("missing header row")
	}
	return &table, nil
}

// WriteFile creates path, truncating any previous file, and writes the
// header followed by the rows. Output never appends to an earlier run.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
