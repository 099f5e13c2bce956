package ingest

import "fmt"

// RowError describes one data row that failed strict parsing.
type RowError struct {
	Source string `json:"source"` // table name: plans, zips
	Row    int    `json:"row"`    // 1-based data row number, header excluded
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s %q: %s", e.Source, e.Row, e.Field, e.Value, e.Reason)
}

// LoadError aggregates every row failure of one source. A malformed field
// is unrecoverable: the load reports all failures at once and the run
// stops before any output is written.
type LoadError struct {
	Source string
	Rows   []RowError
}

func (e *LoadError) Error() string {
	if len(e.Rows) == 1 {
		return fmt.Sprintf("load %s: 1 row rejected: %s", e.Source, e.Rows[0].Error())
	}
	return fmt.Sprintf("load %s: %d rows rejected, first: %s", e.Source, len(e.Rows), e.Rows[0].Error())
}
