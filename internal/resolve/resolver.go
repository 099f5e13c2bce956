package resolve

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/benchrate/slcsp/internal/contracts"
	"github.com/benchrate/slcsp/pkg/logger"
)

// Exclusion reasons recorded for unresolvable zipcodes.
const (
	ReasonNoArea      = "no_rate_area"
	ReasonTooFewRates = "too_few_distinct_rates"
)

// Resolver computes benchmark rates for target zipcodes. It joins plans to
// zipcodes through the full (state, rate_area) pair and ranks distinct
// rates only: two plans priced identically are a single price point.
type Resolver struct {
	rules  Rules
	logger *logger.Logger
}

// NewResolver creates a new resolver.
func NewResolver(rules Rules, logger *logger.Logger) *Resolver {
	return &Resolver{
		rules:  rules,
		logger: logger.WithField("module", "resolve"),
	}
}

// Resolution holds the outcome for the full target list, in input order,
// plus per-zipcode exclusion reasons for reporting.
type Resolution struct {
	Results  []contracts.RateResult
	Excluded map[string]string // zipcode -> reason, unresolvable zips only
}

// ResolvedCount returns how many target rows carry a rate.
func (r *Resolution) ResolvedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Resolved() {
			count++
		}
	}
	return count
}

// Resolve computes one result per target row, preserving target order and
// duplicates. Steps:
//  1. Index tier rates by pricing zone
//  2. Index zipcodes to their zone sets
//  3. Resolve each distinct zipcode once, memoized
//  4. Reuse the memoized outcome for repeated targets
func (r *Resolver) Resolve(ctx context.Context, plans []contracts.Plan, areas []contracts.ZipArea, targets []contracts.TargetZip) *Resolution {
	rateIndex := r.buildRateIndex(plans)
	zipIndex := buildZipIndex(areas)

	resolution := &Resolution{
		Results:  make([]contracts.RateResult, 0, len(targets)),
		Excluded: make(map[string]string),
	}

	memo := make(map[string]*decimal.Decimal)
	for _, target := range targets {
		rate, seen := memo[target.Zipcode]
		if !seen {
			var reason string
			rate, reason = r.resolveZip(target.Zipcode, rateIndex, zipIndex)
			memo[target.Zipcode] = rate
			if reason != "" {
				resolution.Excluded[target.Zipcode] = reason
			}
		}
		resolution.Results = append(resolution.Results, contracts.RateResult{
			Zipcode: target.Zipcode,
			Rate:    rate,
		})
	}

	r.logger.WithFields(map[string]interface{}{
		"zones":      len(rateIndex),
		"zipcodes":   len(zipIndex),
		"targets":    len(targets),
		"resolved":   resolution.ResolvedCount(),
		"unresolved": len(targets) - resolution.ResolvedCount(),
	}).Info("Resolution completed")

	return resolution
}

// buildRateIndex maps each pricing zone to the rates of plans in the
// configured tier. The tier match is exact, case included.
func (r *Resolver) buildRateIndex(plans []contracts.Plan) map[contracts.AreaKey][]decimal.Decimal {
	index := make(map[contracts.AreaKey][]decimal.Decimal)
	for _, plan := range plans {
		if plan.MetalLevel != r.rules.MetalLevel {
			continue
		}
		key := plan.Key()
		index[key] = append(index[key], plan.Rate)
	}
	return index
}

// buildZipIndex maps each zipcode to the set of pricing zones it spans. A
// zipcode crossing county lines may span several zones; all of them feed
// the candidate pool.
func buildZipIndex(areas []contracts.ZipArea) map[string]map[contracts.AreaKey]struct{} {
	index := make(map[string]map[contracts.AreaKey]struct{})
	for _, area := range areas {
		keys, ok := index[area.Zipcode]
		if !ok {
			keys = make(map[contracts.AreaKey]struct{})
			index[area.Zipcode] = keys
		}
		keys[area.Key()] = struct{}{}
	}
	return index
}

// resolveZip computes one zipcode's benchmark rate, or nil plus the
// exclusion reason.
func (r *Resolver) resolveZip(zip string, rateIndex map[contracts.AreaKey][]decimal.Decimal, zipIndex map[string]map[contracts.AreaKey]struct{}) (*decimal.Decimal, string) {
	keys, ok := zipIndex[zip]
	if !ok {
		return nil, ReasonNoArea
	}

	var candidates []decimal.Decimal
	for key := range keys {
		candidates = append(candidates, rateIndex[key]...)
	}

	distinct := distinctAscending(candidates)
	if len(distinct) < r.rules.RateRank {
		r.logger.WithFields(map[string]interface{}{
			"zipcode":    zip,
			"candidates": len(candidates),
			"distinct":   len(distinct),
		}).Debug("Too few distinct rates")
		return nil, ReasonTooFewRates
	}

	rate := distinct[r.rules.RateRank-1]
	return &rate, ""
}

// distinctAscending sorts candidate rates ascending and collapses equal
// values, comparing numerically so 10.0 and 10.00 are one price point.
func distinctAscending(rates []decimal.Decimal) []decimal.Decimal {
	if len(rates) == 0 {
		return nil
	}

	sorted := make([]decimal.Decimal, len(rates))
	copy(sorted, rates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	distinct := make([]decimal.Decimal, 0, len(sorted))
	for i, rate := range sorted {
		if i == 0 || !rate.Equal(distinct[len(distinct)-1]) {
			distinct = append(distinct, rate)
		}
	}
	return distinct
}
