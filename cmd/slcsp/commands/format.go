package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/benchrate/slcsp/internal/pipeline"
	"github.com/benchrate/slcsp/internal/resolve"
)

// ═══════════════════════════════════════════════════════════
// Run report formatting
// Diagnostics go to the structured logger; this block is stdout only
// ═══════════════════════════════════════════════════════════

// Unresolved zipcodes listed in the report before truncating.
const maxUnresolvedListed = 10

// printSummary prints the run report to stdout.
func printSummary(s *pipeline.Summary, rules resolve.Rules, listUnresolved bool) {
	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  SLCSP run %s\n", s.RunID)
	PrintSeparator()
	PrintKeyValue("Benchmark", fmt.Sprintf("%s, rank %d", rules.MetalLevel, rules.RateRank), 10)
	PrintKeyValue("Plans", fmt.Sprintf("%d (%d %s)", s.Plans, s.TierPlans, rules.MetalLevel), 10)
	PrintKeyValue("Zip areas", fmt.Sprintf("%d", s.ZipAreas), 10)
	PrintKeyValue("Targets", fmt.Sprintf("%d", s.Targets), 10)
	PrintKeyValue("Resolved", fmt.Sprintf("%d", s.Resolved), 10)
	PrintKeyValue("Unresolved", fmt.Sprintf("%d", s.Unresolved), 10)
	PrintKeyValue("Output", s.OutputFile, 10)
	PrintKeyValue("Duration", s.Duration.Round(time.Millisecond).String(), 10)

	if listUnresolved && len(s.Excluded) > 0 {
		PrintWarning(fmt.Sprintf("%d zipcode(s) left blank", len(s.Excluded)))
		PrintList(unresolvedItems(s.Excluded))
	}

	PrintSeparator()
	PrintSuccess("Run completed")
}

// unresolvedItems renders the exclusion map as sorted "zipcode (reason)"
// lines, truncated past maxUnresolvedListed.
func unresolvedItems(excluded map[string]string) []string {
	zips := make([]string, 0, len(excluded))
	for zip := range excluded {
		zips = append(zips, zip)
	}
	sort.Strings(zips)

	items := make([]string, 0, len(zips))
	for i, zip := range zips {
		if i == maxUnresolvedListed {
			items = append(items, fmt.Sprintf("and %d more", len(zips)-i))
			break
		}
		items = append(items, fmt.Sprintf("%s (%s)", zip, excluded[zip]))
	}
	return items
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Println("───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator() {
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("   • %s\n", item)
	}
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(key string, value string, keyWidth int) {
	fmt.Printf("   %-*s : %s\n", keyWidth, key, value)
}
