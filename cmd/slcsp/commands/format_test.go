package commands

import (
	"strings"
	"testing"
)

func TestUnresolvedItems(t *testing.T) {
	excluded := map[string]string{
		"90210": "too_few_distinct_rates",
		"40813": "no_rate_area",
	}

	items := unresolvedItems(excluded)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	// Sorted by zipcode
	if items[0] != "40813 (no_rate_area)" {
		t.Errorf("Expected first item to be 40813, got %q", items[0])
	}
	if items[1] != "90210 (too_few_distinct_rates)" {
		t.Errorf("Expected second item to be 90210, got %q", items[1])
	}
}

func TestUnresolvedItems_Truncates(t *testing.T) {
	excluded := make(map[string]string)
	for i := 0; i < 25; i++ {
		excluded[strings.Repeat("0", 4)+string(rune('a'+i))] = "no_rate_area"
	}

	items := unresolvedItems(excluded)
	if len(items) != maxUnresolvedListed+1 {
		t.Fatalf("Expected %d items, got %d", maxUnresolvedListed+1, len(items))
	}

	last := items[len(items)-1]
	if last != "and 15 more" {
		t.Errorf("Expected truncation line 'and 15 more', got %q", last)
	}
}
