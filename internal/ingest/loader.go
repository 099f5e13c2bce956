package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/benchrate/slcsp/internal/contracts"
	"github.com/benchrate/slcsp/pkg/csvio"
)

// Source table names used in errors and logs.
const (
	SourcePlans = "plans"
	SourceZips  = "zips"
)

// Field counts after the header row.
const (
	planFieldCount = 5 // plan_id, state, metal_level, rate, rate_area
	zipFieldCount  = 5 // zipcode, state, county_code, name, rate_area
)

// LoadPlansFile reads and parses the plans table from path.
func LoadPlansFile(path string) ([]contracts.Plan, error) {
	table, err := csvio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Plans(table)
}

// LoadZipAreasFile reads and parses the zips table from path.
func LoadZipAreasFile(path string) ([]contracts.ZipArea, error) {
	table, err := csvio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ZipAreas(table)
}

// LoadTargetsFile reads the target list from path.
func LoadTargetsFile(path string) ([]contracts.TargetZip, error) {
	table, err := csvio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Targets(table), nil
}

// Plans parses the plans table into typed records. The rate must parse as
// a non-negative decimal and rate_area as an integer; every failing row is
// collected and the whole load fails when any row failed.
func Plans(table *csvio.Table) ([]contracts.Plan, error) {
	plans := make([]contracts.Plan, 0, len(table.Rows))
	var rejected []RowError

	for i, row := range table.Rows {
		plan, rowErr := parsePlan(i+1, row)
		if rowErr != nil {
			rejected = append(rejected, *rowErr)
			continue
		}
		plans = append(plans, plan)
	}

	if len(rejected) > 0 {
		return nil, &LoadError{Source: SourcePlans, Rows: rejected}
	}
	return plans, nil
}

// ZipAreas parses the zips table into typed records.
func ZipAreas(table *csvio.Table) ([]contracts.ZipArea, error) {
	areas := make([]contracts.ZipArea, 0, len(table.Rows))
	var rejected []RowError

	for i, row := range table.Rows {
		area, rowErr := parseZipArea(i+1, row)
		if rowErr != nil {
			rejected = append(rejected, *rowErr)
			continue
		}
		areas = append(areas, area)
	}

	if len(rejected) > 0 {
		return nil, &LoadError{Source: SourceZips, Rows: rejected}
	}
	return areas, nil
}

// Targets reads the target list, preserving order and duplicates verbatim.
// Only the first column is read; the rate column of a template file may be
// present and is ignored. Target rows are never rejected, so every row
// yields exactly one output line later.
func Targets(table *csvio.Table) []contracts.TargetZip {
	targets := make([]contracts.TargetZip, 0, len(table.Rows))
	for _, row := range table.Rows {
		var zip string
		if len(row) > 0 {
			zip = row[0]
		}
		targets = append(targets, contracts.TargetZip{Zipcode: zip})
	}
	return targets
}

func parsePlan(row int, fields []string) (contracts.Plan, *RowError) {
	if len(fields) != planFieldCount {
		return contracts.Plan{}, &RowError{
			Source: SourcePlans,
			Row:    row,
			Field:  "record",
			Value:  strings.Join(fields, ","),
			Reason: fmt.Sprintf("expected %d fields, got %d", planFieldCount, len(fields)),
		}
	}

	rate, err := parseRate(fields[3])
	if err != nil {
		return contracts.Plan{}, &RowError{
			Source: SourcePlans,
			Row:    row,
			Field:  "rate",
			Value:  fields[3],
			Reason: err.Error(),
		}
	}

	area, err := strconv.Atoi(fields[4])
	if err != nil {
		return contracts.Plan{}, &RowError{
			Source: SourcePlans,
			Row:    row,
			Field:  "rate_area",
			Value:  fields[4],
			Reason: "not a valid integer",
		}
	}

	return contracts.Plan{
		PlanID:     fields[0],
		State:      fields[1],
		MetalLevel: fields[2],
		Rate:       rate,
		RateArea:   area,
	}, nil
}

func parseZipArea(row int, fields []string) (contracts.ZipArea, *RowError) {
	if len(fields) != zipFieldCount {
		return contracts.ZipArea{}, &RowError{
			Source: SourceZips,
			Row:    row,
			Field:  "record",
			Value:  strings.Join(fields, ","),
			Reason: fmt.Sprintf("expected %d fields, got %d", zipFieldCount, len(fields)),
		}
	}

	area, err := strconv.Atoi(fields[4])
	if err != nil {
		return contracts.ZipArea{}, &RowError{
			Source: SourceZips,
			Row:    row,
			Field:  "rate_area",
			Value:  fields[4],
			Reason: "not a valid integer",
		}
	}

	return contracts.ZipArea{
		Zipcode:    fields[0],
		State:      fields[1],
		CountyCode: fields[2],
		Name:       fields[3],
		RateArea:   area,
	}, nil
}

// parseRate enforces the rate contract: a decimal number, never negative.
func parseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a valid decimal")
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("must not be negative")
	}
	return rate, nil
}
