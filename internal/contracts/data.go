package contracts

import "github.com/shopspring/decimal"

// Plan represents one row of the plans table: a single plan offering priced
// for one pricing zone.
type Plan struct {
	PlanID     string          `json:"plan_id"`
	State      string          `json:"state"`
	MetalLevel string          `json:"metal_level"`
	Rate       decimal.Decimal `json:"rate"`
	RateArea   int             `json:"rate_area"`
}

// Key returns the plan's pricing zone.
func (p Plan) Key() AreaKey {
	return AreaKey{State: p.State, RateArea: p.RateArea}
}

// AreaKey identifies a pricing zone. The key is always the full
// (state, rate_area) pair; the numeric part alone is ambiguous because
// different states reuse the same rate area numbers.
type AreaKey struct {
	State    string `json:"state"`
	RateArea int    `json:"rate_area"`
}

// ZipArea represents one row of the zips table, mapping a zipcode to a
// pricing zone through its county. A zipcode spanning several counties
// appears once per county and may map to more than one zone.
type ZipArea struct {
	Zipcode    string `json:"zipcode"`
	State      string `json:"state"`
	CountyCode string `json:"county_code"`
	Name       string `json:"name"`
	RateArea   int    `json:"rate_area"`
}

// Key returns the row's pricing zone.
func (z ZipArea) Key() AreaKey {
	return AreaKey{State: z.State, RateArea: z.RateArea}
}

// TargetZip represents one row of the target list. Rows keep their input
// position; the output table mirrors the target list line for line,
// duplicates included.
type TargetZip struct {
	Zipcode string `json:"zipcode"`
}

// RateResult is the resolved benchmark rate for one target row. A nil rate
// means the zipcode was unresolvable and renders as an empty field.
type RateResult struct {
	Zipcode string           `json:"zipcode"`
	Rate    *decimal.Decimal `json:"rate,omitempty"`
}

// Resolved reports whether a benchmark rate was found.
func (r RateResult) Resolved() bool {
	return r.Rate != nil
}

// FormattedRate renders the rate with exactly two decimal places, or an
// empty string when no rate was found.
func (r RateResult) FormattedRate() string {
	if r.Rate == nil {
		return ""
	}
	return r.Rate.StringFixed(2)
}
